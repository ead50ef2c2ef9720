package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null" validate:"required"`
	Ingredients string `gorm:"not null" validate:"required"`

	// RestaurantPizzas is never serialized from the pizza side
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID"`
}

// PizzaView is the public JSON shape of a pizza
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// View projects the pizza to {id, name, ingredients}
func (p Pizza) View() PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// Validate checks the required pizza fields
func (p Pizza) Validate() error {
	return validateStruct(p)
}

// PizzaViews projects a slice of pizzas, never returning nil
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
