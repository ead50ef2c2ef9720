package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza puts a pizza on a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required" example:"5"`
	PizzaID      *uint    `json:"pizza_id" binding:"required" example:"1"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required" example:"3"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
	render  Renderer
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, render Renderer) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, render: render}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.render.JSON(ctx, http.StatusBadRequest, models.NewErrorsResponse(bindingMessages(err)...))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), services.CreateRestaurantPizzaInput{
		Price:        *req.Price,
		PizzaID:      *req.PizzaID,
		RestaurantID: *req.RestaurantID,
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.render.JSON(ctx, http.StatusBadRequest, models.NewErrorsResponse(verr.Messages...))
			return
		}
		requestLogger(ctx).WithError(err).Error("Failed to create restaurant pizza")
		c.render.JSON(ctx, http.StatusInternalServerError, models.NewErrorsResponse("An error occurred: "+err.Error()))
		return
	}
	c.render.JSON(ctx, http.StatusCreated, created.Detail())
}

// bindingMessages explains why a request body could not be bound
func bindingMessages(err error) []string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return models.ValidationErrorFromFields(fieldErrors).Messages
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		switch typeErr.Type.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return []string{fmt.Sprintf("%s must be a positive integer", typeErr.Field)}
		default:
			return []string{fmt.Sprintf("%s must be a number", typeErr.Field)}
		}
	}

	if errors.Is(err, io.EOF) {
		return []string{"request body is required"}
	}
	return []string{"request body must be a valid JSON object"}
}
