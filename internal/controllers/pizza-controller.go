package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
	render  Renderer
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, render Renderer) PizzaController {
	return &pizzaController{service: service, render: render}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		requestLogger(ctx).WithError(err).Error("Failed to retrieve pizzas")
		c.render.JSON(ctx, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve pizzas"})
		return
	}
	c.render.JSON(ctx, http.StatusOK, models.PizzaViews(pizzas))
}
