package services

import (
	"context"
	"strings"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

// OrderRepository is the interface that wraps methods for orders table data access
type OrderRepository interface {
	// Method Create inserts a new order with its frozen total price.
	Create(ctx context.Context, order *models.Order) error
	// Method ListAll retrieves all orders joined with meal and user data.
	ListAll(ctx context.Context) ([]models.OrderView, error)
	// Method ListByUser retrieves the orders owned by one user.
	ListByUser(ctx context.Context, userID int) ([]models.OrderView, error)
	// Method UpdateStatus sets a new status on an order.
	UpdateStatus(ctx context.Context, id int, status string) error
}

// MealCatalog is the read-side dependency of the order workflow on the meal
// catalog. Only available meals are visible through it.
type MealCatalog interface {
	GetAvailableByID(ctx context.Context, id int) (*models.Meal, error)
}

// orderService implements the order workflow
type orderService struct {
	orderRepo OrderRepository
	catalog   MealCatalog
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, catalog MealCatalog) *orderService {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
	}
}

// Place creates an order for the calling user. The total price is computed
// from the meal price at this instant and stored immutably; later catalog
// price changes never touch it. The owner is always callerID, never request
// data. Concurrent placements each re-check availability independently, there
// is no stock reservation.
func (s *orderService) Place(ctx context.Context, callerID int, req *models.PlaceOrderRequest) (*models.Order, error) {
	if req.MealID <= 0 || req.Quantity <= 0 {
		return nil, apperrors.Invalid("meal_id and quantity are required")
	}

	meal, err := s.catalog.GetAvailableByID(ctx, req.MealID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:     callerID,
		MealID:     meal.ID,
		Quantity:   req.Quantity,
		TotalPrice: meal.Price * float64(req.Quantity),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns orders scoped by role: admins see every order, everyone else
// only their own. Rows are newest first.
func (s *orderService) List(ctx context.Context, callerID int, admin bool) ([]models.OrderView, error) {
	if admin {
		return s.orderRepo.ListAll(ctx)
	}
	return s.orderRepo.ListByUser(ctx, callerID)
}

// SetStatus transitions an order to a new admin-defined status
func (s *orderService) SetStatus(ctx context.Context, id int, status string) error {
	if strings.TrimSpace(status) == "" {
		return apperrors.Invalid("status is required")
	}

	return s.orderRepo.UpdateStatus(ctx, id, status)
}
