// Package router wires controllers and middleware into a gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

// Options configures the engine built by New
type Options struct {
	ServiceName string
	PrettyJSON  bool
	Logger      *logrus.Logger
	// Registry receives the request metrics and backs /metrics.
	// A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New builds the gin engine with every route of the API.
// db is owned by the caller and only borrowed by the services.
func New(db *gorm.DB, opts Options) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	// binding errors report json field names, matching model validation messages
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.RegisterJSONFieldNames(v)
	}

	metrics, err := middleware.NewMetrics(opts.Registry)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	render := controllers.Renderer{Pretty: opts.PrettyJSON}
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db), render)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db), render)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db), render)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		metrics.Handler(),
		gin.Recovery(),
	)

	router.GET("/", controllers.IndexHandler)
	router.GET("/health", controllers.HealthCheck(sqlDB, opts.ServiceName))
	router.GET(middleware.MetricsPath, gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}
