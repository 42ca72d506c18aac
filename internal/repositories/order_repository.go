package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *orderRepository {
	return &orderRepository{db: db}
}

// orderViewQuery joins orders with meal and user data for listings
const orderViewQuery = `
	SELECT orders.id, orders.user_id, orders.meal_id, orders.quantity,
	       orders.total_price, orders.status, orders.created_at,
	       meals.name, meals.description, users.username
	FROM orders
	JOIN meals ON orders.meal_id = meals.id
	JOIN users ON orders.user_id = users.id
`

// Create inserts a new order. TotalPrice must already be computed by the
// caller; it is stored as-is and never touched again.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id, meal_id, quantity, total_price)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, order.UserID, order.MealID, order.Quantity, order.TotalPrice)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to create order: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get last insert id: %w", err))
	}

	order.ID = int(id)
	order.Status = models.OrderStatusPending
	return nil
}

// ListAll retrieves all orders, newest first
func (r *orderRepository) ListAll(ctx context.Context) ([]models.OrderView, error) {
	rows, err := r.db.QueryContext(ctx, orderViewQuery+" ORDER BY orders.created_at DESC")
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("failed to query orders: %w", err))
	}
	defer rows.Close()

	return scanOrderViews(rows)
}

// ListByUser retrieves the orders owned by one user, newest first
func (r *orderRepository) ListByUser(ctx context.Context, userID int) ([]models.OrderView, error) {
	query := orderViewQuery + " WHERE orders.user_id = ? ORDER BY orders.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("failed to query orders: %w", err))
	}
	defer rows.Close()

	return scanOrderViews(rows)
}

// UpdateStatus sets a new status on an order
func (r *orderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to update order status: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get affected rows: %w", err))
	}
	if affected == 0 {
		return apperrors.NotFound("order")
	}

	return nil
}

func scanOrderViews(rows *sql.Rows) ([]models.OrderView, error) {
	var orders []models.OrderView
	for rows.Next() {
		var order models.OrderView
		var mealDescription sql.NullString
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.MealID,
			&order.Quantity,
			&order.TotalPrice,
			&order.Status,
			&order.CreatedAt,
			&order.MealName,
			&mealDescription,
			&order.Username,
		); err != nil {
			return nil, apperrors.Storage(fmt.Errorf("failed to scan order: %w", err))
		}
		order.MealDescription = mealDescription.String
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(fmt.Errorf("error iterating orders: %w", err))
	}

	return orders, nil
}
