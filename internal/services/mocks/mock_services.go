// Package mocks provides testify/mock implementations of the service interfaces.
package mocks

import (
	"context"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// RestaurantService is a mock of services.RestaurantService
type RestaurantService struct {
	mock.Mock
}

var _ services.RestaurantService = (*RestaurantService)(nil)

func (m *RestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]models.Restaurant)
	return restaurants, args.Error(1)
}

func (m *RestaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(models.Restaurant)
	return restaurant, args.Error(1)
}

func (m *RestaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	created, _ := args.Get(0).(models.Restaurant)
	return created, args.Error(1)
}

func (m *RestaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PizzaService is a mock of services.PizzaService
type PizzaService struct {
	mock.Mock
}

var _ services.PizzaService = (*PizzaService)(nil)

func (m *PizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.Pizza)
	return pizzas, args.Error(1)
}

func (m *PizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	args := m.Called(ctx, id)
	pizza, _ := args.Get(0).(models.Pizza)
	return pizza, args.Error(1)
}

func (m *PizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	args := m.Called(ctx, pizza)
	created, _ := args.Get(0).(models.Pizza)
	return created, args.Error(1)
}

// RestaurantPizzaService is a mock of services.RestaurantPizzaService
type RestaurantPizzaService struct {
	mock.Mock
}

var _ services.RestaurantPizzaService = (*RestaurantPizzaService)(nil)

func (m *RestaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input services.CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	args := m.Called(ctx, input)
	created, _ := args.Get(0).(models.RestaurantPizza)
	return created, args.Error(1)
}
