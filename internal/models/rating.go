package models

import "time"

// Rating bounds accepted by the ledger, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating represents one append-only meal rating. There is no update or delete.
type Rating struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	MealID    int       `json:"meal_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AddRatingRequest represents a request to rate a meal
type AddRatingRequest struct {
	MealID  int    `json:"meal_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// RatingView is a rating row joined with the rater's username
type RatingView struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	MealID    int       `json:"meal_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
