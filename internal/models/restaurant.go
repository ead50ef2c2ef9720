package models

// Restaurant represents a restaurant and the pizzas it offers.
// Deleting a restaurant removes its restaurant_pizzas rows.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null" validate:"required"`
	Address string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// RestaurantSummary is the {id, name, address} projection of a restaurant
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantPizzaEntry is an association as nested inside a restaurant.
// It carries the pizza but not the restaurant again.
type RestaurantPizzaEntry struct {
	ID           uint      `json:"id"`
	Price        float64   `json:"price"`
	PizzaID      uint      `json:"pizza_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Pizza        PizzaView `json:"pizza"`
}

// RestaurantDetail is the full restaurant projection with its menu
type RestaurantDetail struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// Summary projects the restaurant without its associations
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// Detail projects the restaurant including every association and its pizza.
// RestaurantPizzas must be preloaded together with their Pizza.
func (r Restaurant) Detail() RestaurantDetail {
	entries := make([]RestaurantPizzaEntry, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entries = append(entries, RestaurantPizzaEntry{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        rp.Pizza.View(),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

// Validate checks the required restaurant fields
func (r Restaurant) Validate() error {
	return validateStruct(r)
}

// RestaurantSummaries projects a slice of restaurants, never returning nil
func RestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, r.Summary())
	}
	return summaries
}
