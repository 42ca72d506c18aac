package models

import "time"

// OrderStatusPending is the status every new order starts in.
// Later transitions are free-form text set by an administrator.
const OrderStatusPending = "pending"

// Order represents a placed lunch order.
// TotalPrice is computed from the meal price at creation time and is never
// recomputed, even if the meal price changes afterwards.
type Order struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	MealID     int       `json:"meal_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlaceOrderRequest represents a request to place an order.
// The owner is always the authenticated caller, never taken from the body.
type PlaceOrderRequest struct {
	MealID   int `json:"meal_id"`
	Quantity int `json:"quantity"`
}

// UpdateOrderStatusRequest represents an admin status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderView is an order row joined with meal and user data for listings
type OrderView struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	MealID          int       `json:"meal_id"`
	Quantity        int       `json:"quantity"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	MealName        string    `json:"meal_name"`
	MealDescription string    `json:"meal_description,omitempty"`
	Username        string    `json:"user_name"`
}
