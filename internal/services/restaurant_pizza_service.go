package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRestaurantPizzaInput carries the fields needed to put a pizza on a restaurant's menu
type CreateRestaurantPizzaInput struct {
	Price        float64
	PizzaID      uint
	RestaurantID uint
}

// RestaurantPizzaService manages the pizzas offered by restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new restaurant pizza.
	// It returns a *models.ValidationError when the price is out of range or
	// the pizza or restaurant does not exist; nothing is written in that case.
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	restaurantPizza, err := models.NewRestaurantPizza(input.Price, input.PizzaID, input.RestaurantID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var problems []string
		pizzaExists, err := recordExists(tx, &models.Pizza{}, restaurantPizza.PizzaID)
		if err != nil {
			return err
		}
		if !pizzaExists {
			problems = append(problems, fmt.Sprintf("pizza %d does not exist", restaurantPizza.PizzaID))
		}
		restaurantExists, err := recordExists(tx, &models.Restaurant{}, restaurantPizza.RestaurantID)
		if err != nil {
			return err
		}
		if !restaurantExists {
			problems = append(problems, fmt.Sprintf("restaurant %d does not exist", restaurantPizza.RestaurantID))
		}
		if len(problems) > 0 {
			return models.NewValidationError(problems...)
		}

		if err := tx.Omit(clause.Associations).Create(&restaurantPizza).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return models.NewValidationError("pizza or restaurant does not exist")
			}
			return fmt.Errorf("create restaurant pizza: %w", err)
		}

		if err := tx.Preload("Pizza").Preload("Restaurant").First(&restaurantPizza, restaurantPizza.ID).Error; err != nil {
			return fmt.Errorf("reload restaurant pizza %d: %w", restaurantPizza.ID, err)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}

// recordExists reports whether a row with the given primary key exists for model
func recordExists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check %T %d: %w", model, id, err)
	}
	return count > 0, nil
}
