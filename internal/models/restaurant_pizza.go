package models

import (
	"gorm.io/gorm"
)

// Price bounds for a pizza offered at a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza records that a pizza is offered at a restaurant at a given price
type RestaurantPizza struct {
	ID           uint    `gorm:"primaryKey"`
	Price        float64 `gorm:"not null" validate:"price"`
	RestaurantID uint    `gorm:"not null;index" validate:"required"`
	PizzaID      uint    `gorm:"not null;index" validate:"required"`

	Restaurant Restaurant `validate:"-"`
	Pizza      Pizza      `validate:"-"`
}

// RestaurantPizzaDetail is the association projection with the pizza and the
// restaurant nested one level deep
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Price        float64           `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaView         `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// NewRestaurantPizza builds a validated association.
// It returns a *ValidationError when the price is outside [MinPrice, MaxPrice]
// or an identifier is missing.
func NewRestaurantPizza(price float64, pizzaID, restaurantID uint) (RestaurantPizza, error) {
	rp := RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	if err := rp.Validate(); err != nil {
		return RestaurantPizza{}, err
	}
	return rp, nil
}

// Validate checks the price range and the foreign key fields
func (rp RestaurantPizza) Validate() error {
	return validateStruct(rp)
}

// BeforeSave rejects invalid rows on every gorm write path
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}

// Detail projects the association. Pizza and Restaurant must be preloaded.
func (rp RestaurantPizza) Detail() RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.View(),
		Restaurant:   rp.Restaurant.Summary(),
	}
}
