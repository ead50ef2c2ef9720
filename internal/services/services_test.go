package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), database.NewGormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	ctx := context.Background()
	restaurantSvc := NewRestaurantService(db)
	pizzaSvc := NewPizzaService(db)

	var f fixture
	for _, r := range []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
	} {
		created, err := restaurantSvc.CreateRestaurant(ctx, r)
		require.NoError(t, err)
		f.restaurants = append(f.restaurants, created)
	}
	for _, p := range []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	} {
		created, err := pizzaSvc.CreatePizza(ctx, p)
		require.NoError(t, err)
		f.pizzas = append(f.pizzas, created)
	}
	return f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB, where ...any) int64 {
	var count int64
	q := db.Model(&models.RestaurantPizza{})
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}

func TestPizzaService(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := NewPizzaService(db)
	ctx := context.Background()

	t.Run("lists pizzas in insertion order", func(t *testing.T) {
		pizzas, err := svc.GetAllPizzas(ctx)
		require.NoError(t, err)
		require.Len(t, pizzas, 3)
		for i, p := range pizzas {
			assert.Equal(t, f.pizzas[i].ID, p.ID)
			assert.Equal(t, f.pizzas[i].Name, p.Name)
		}
	})

	t.Run("gets a pizza by id", func(t *testing.T) {
		pizza, err := svc.GetPizzaByID(ctx, f.pizzas[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Geri", pizza.Name)
	})

	t.Run("missing pizza is not found", func(t *testing.T) {
		_, err := svc.GetPizzaByID(ctx, 999)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("create rejects a pizza without ingredients", func(t *testing.T) {
		_, err := svc.CreatePizza(ctx, models.Pizza{Name: "Plain"})
		assert.True(t, models.IsValidationError(err))
	})
}

func TestRestaurantService_ListAndGet(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := NewRestaurantService(db)
	menu := NewRestaurantPizzaService(db)
	ctx := context.Background()

	_, err := menu.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: 5, PizzaID: f.pizzas[2].ID, RestaurantID: f.restaurants[0].ID})
	require.NoError(t, err)
	_, err = menu.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: 7, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
	require.NoError(t, err)

	t.Run("lists restaurants without their menus", func(t *testing.T) {
		restaurants, err := svc.ListRestaurants(ctx)
		require.NoError(t, err)
		require.Len(t, restaurants, 2)
		assert.Equal(t, "Karen's Pizza Shack", restaurants[0].Name)
		assert.Equal(t, "Sanjay's Pizza", restaurants[1].Name)
		assert.Empty(t, restaurants[0].RestaurantPizzas)
	})

	t.Run("gets a restaurant with pizzas preloaded", func(t *testing.T) {
		restaurant, err := svc.GetRestaurantByID(ctx, f.restaurants[0].ID)
		require.NoError(t, err)
		require.Len(t, restaurant.RestaurantPizzas, 2)
		assert.Equal(t, 5.0, restaurant.RestaurantPizzas[0].Price)
		assert.Equal(t, "Melanie", restaurant.RestaurantPizzas[0].Pizza.Name)
		assert.Equal(t, 7.0, restaurant.RestaurantPizzas[1].Price)
		assert.Equal(t, "Emma", restaurant.RestaurantPizzas[1].Pizza.Name)
	})

	t.Run("repeated reads return the same projection", func(t *testing.T) {
		first, err := svc.GetRestaurantByID(ctx, f.restaurants[0].ID)
		require.NoError(t, err)
		second, err := svc.GetRestaurantByID(ctx, f.restaurants[0].ID)
		require.NoError(t, err)
		assert.Equal(t, first.Detail(), second.Detail())
	})

	t.Run("missing restaurant is not found", func(t *testing.T) {
		_, err := svc.GetRestaurantByID(ctx, 4242)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("create requires a name", func(t *testing.T) {
		_, err := svc.CreateRestaurant(ctx, models.Restaurant{Address: "nowhere"})
		assert.True(t, models.IsValidationError(err))
	})
}

func TestRestaurantService_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := NewRestaurantService(db)
	menu := NewRestaurantPizzaService(db)
	ctx := context.Background()

	target := f.restaurants[0]
	other := f.restaurants[1]
	for i, p := range f.pizzas {
		_, err := menu.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: float64(10 + i), PizzaID: p.ID, RestaurantID: target.ID})
		require.NoError(t, err)
	}
	_, err := menu.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: 3, PizzaID: f.pizzas[0].ID, RestaurantID: other.ID})
	require.NoError(t, err)

	before := countRestaurantPizzas(t, db)
	require.Equal(t, int64(4), before)

	require.NoError(t, svc.DeleteRestaurant(ctx, target.ID))

	assert.Equal(t, before-3, countRestaurantPizzas(t, db))
	assert.Zero(t, countRestaurantPizzas(t, db, "restaurant_id = ?", target.ID))
	assert.Equal(t, int64(1), countRestaurantPizzas(t, db, "restaurant_id = ?", other.ID))

	_, err = svc.GetRestaurantByID(ctx, target.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// pizzas are not owned by the restaurant
	pizzas, err := NewPizzaService(db).GetAllPizzas(ctx)
	require.NoError(t, err)
	assert.Len(t, pizzas, 3)

	t.Run("deleting again is not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRestaurant(ctx, target.ID), models.ErrNotFound)
	})
}

func TestRestaurantPizzaService_Create(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := NewRestaurantPizzaService(db)
	ctx := context.Background()
	restaurant := f.restaurants[0]
	pizza := f.pizzas[0]

	t.Run("valid prices are stored as given", func(t *testing.T) {
		for _, price := range []float64{1, 2.5, 15, 29.99, 30} {
			created, err := svc.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: price, PizzaID: pizza.ID, RestaurantID: restaurant.ID})
			require.NoError(t, err, "price %v", price)
			assert.NotZero(t, created.ID)
			assert.Equal(t, price, created.Price)

			var stored models.RestaurantPizza
			require.NoError(t, db.First(&stored, created.ID).Error)
			assert.Equal(t, price, stored.Price)
		}
	})

	t.Run("created association is returned with pizza and restaurant", func(t *testing.T) {
		created, err := svc.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: 5, PizzaID: pizza.ID, RestaurantID: restaurant.ID})
		require.NoError(t, err)
		detail := created.Detail()
		assert.Equal(t, 5.0, detail.Price)
		assert.Equal(t, pizza.View(), detail.Pizza)
		assert.Equal(t, restaurant.Summary(), detail.Restaurant)
	})

	t.Run("out of range prices are rejected without writing", func(t *testing.T) {
		before := countRestaurantPizzas(t, db)
		for _, price := range []float64{-1, 0, 0.5, 30.01, 31, 100} {
			_, err := svc.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: price, PizzaID: pizza.ID, RestaurantID: restaurant.ID})
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr), "price %v", price)
			assert.Equal(t, []string{"price must be between 1 and 30"}, verr.Messages)
		}
		assert.Equal(t, before, countRestaurantPizzas(t, db))
	})

	t.Run("unknown pizza and restaurant are validation errors", func(t *testing.T) {
		before := countRestaurantPizzas(t, db)
		_, err := svc.CreateRestaurantPizza(ctx, CreateRestaurantPizzaInput{Price: 5, PizzaID: 999, RestaurantID: 998})
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"pizza 999 does not exist", "restaurant 998 does not exist"}, verr.Messages)
		assert.Equal(t, before, countRestaurantPizzas(t, db))
	})

	t.Run("the persistence hook rejects invalid rows written directly", func(t *testing.T) {
		before := countRestaurantPizzas(t, db)
		err := db.Create(&models.RestaurantPizza{Price: 45, PizzaID: pizza.ID, RestaurantID: restaurant.ID}).Error
		assert.True(t, models.IsValidationError(err))
		assert.Equal(t, before, countRestaurantPizzas(t, db))
	})
}
