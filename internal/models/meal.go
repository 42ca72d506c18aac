package models

import "time"

// Meal represents one daily lunch offer.
// Date is a calendar date in "2006-01-02" form.
// Available soft-excludes the meal from public listings without deleting history.
type Meal struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Date        string    `json:"date"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMealRequest represents a request to create a meal
type CreateMealRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
}

// UpdateMealRequest represents a full-row meal update.
// Available is a pointer so an omitted field can be told apart from an explicit
// false; an omitted field re-enables the meal.
type UpdateMealRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Available   *bool   `json:"available,omitempty"`
}
