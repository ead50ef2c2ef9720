package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

// Creates a restaurant and a pizza, and puts the pizza on the restaurant's menu.
// With -pizza-id an existing pizza is offered instead of creating one.
//
//	go run ./scripts -restaurant "Dom's Pizza" -pizza Marinara -ingredients "Dough, Tomato, Garlic" -price 9
//	go run ./scripts -restaurant "Dom's Pizza" -pizza-id 2 -price 12
func main() {
	// Parse command line flags
	dbURI := flag.String("db", config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURI), "Database URI")
	restaurantName := flag.String("restaurant", "Development Pizzeria", "Restaurant name")
	address := flag.String("address", "1 Dev Street", "Restaurant address")
	pizzaName := flag.String("pizza", "Margherita", "Pizza name")
	ingredients := flag.String("ingredients", "Dough, Tomato Sauce, Mozzarella, Basil", "Pizza ingredients")
	pizzaID := flag.Uint("pizza-id", 0, "Offer an existing pizza instead of creating one")
	price := flag.Float64("price", 10, "Price of the pizza at the restaurant (1 to 30)")
	flag.Parse()

	dbConfig, err := database.ParseURL(*dbURI)
	if err != nil {
		log.Fatal("Invalid database URI:", err)
	}
	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	ctx := context.Background()

	pizzaService := services.NewPizzaService(db)
	var pizza models.Pizza
	if *pizzaID > 0 {
		pizza, err = pizzaService.GetPizzaByID(ctx, *pizzaID)
		if errors.Is(err, models.ErrNotFound) {
			log.Fatalf("Pizza %d does not exist", *pizzaID)
		}
		if err != nil {
			log.Fatal("Failed to load pizza:", err)
		}
	} else {
		pizza, err = pizzaService.CreatePizza(ctx, models.Pizza{Name: *pizzaName, Ingredients: *ingredients})
		if err != nil {
			log.Fatal("Failed to create pizza:", err)
		}
	}

	restaurant, err := services.NewRestaurantService(db).CreateRestaurant(ctx, models.Restaurant{Name: *restaurantName, Address: *address})
	if err != nil {
		log.Fatal("Failed to create restaurant:", err)
	}

	restaurantPizza, err := services.NewRestaurantPizzaService(db).CreateRestaurantPizza(ctx, services.CreateRestaurantPizzaInput{
		Price:        *price,
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	})
	if err != nil {
		log.Fatal("Failed to add pizza to menu:", err)
	}

	fmt.Printf("✓ Development menu created!\n")
	fmt.Printf("Restaurant: %s (ID: %d)\n", restaurant.Name, restaurant.ID)
	fmt.Printf("Pizza: %s (ID: %d)\n", pizza.Name, pizza.ID)
	fmt.Printf("Price: %.2f (Restaurant pizza ID: %d)\n", restaurantPizza.Price, restaurantPizza.ID)
	fmt.Println("\nTry it out:")
	fmt.Printf("curl http://localhost:5555/restaurants/%d\n", restaurant.ID)
}
