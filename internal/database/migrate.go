package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts sample restaurants, pizzas and menu entries when no restaurant exists yet.
// It reports whether anything was inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range restaurants {
			if err := restaurants[i].Validate(); err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(&restaurants[i]).Error; err != nil {
				return err
			}
		}
		for i := range pizzas {
			if err := pizzas[i].Validate(); err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(&pizzas[i]).Error; err != nil {
				return err
			}
		}
		for i := range restaurants {
			rp, err := models.NewRestaurantPizza(1, pizzas[i].ID, restaurants[i].ID)
			if err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}

	log.Info("Database seeded successfully")
	return true, nil
}
