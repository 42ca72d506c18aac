package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

type mealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *sql.DB) *mealRepository {
	return &mealRepository{db: db}
}

// ListAvailable retrieves available meals ordered by date descending.
// When date is non-empty the listing is restricted to that calendar date.
func (r *mealRepository) ListAvailable(ctx context.Context, date string) ([]models.Meal, error) {
	query := `
		SELECT id, name, description, price, DATE_FORMAT(date, '%Y-%m-%d'), available, created_at
		FROM meals
		WHERE available = TRUE
	`
	var args []any

	// String comparison so a filter that matches nothing (including malformed
	// input) yields zero rows instead of a coercion error.
	if date != "" {
		query += " AND DATE_FORMAT(date, '%Y-%m-%d') = ?"
		args = append(args, date)
	}

	query += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("failed to query meals: %w", err))
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var meal models.Meal
		var description sql.NullString
		if err := rows.Scan(&meal.ID, &meal.Name, &description, &meal.Price, &meal.Date, &meal.Available, &meal.CreatedAt); err != nil {
			return nil, apperrors.Storage(fmt.Errorf("failed to scan meal: %w", err))
		}
		meal.Description = description.String
		meals = append(meals, meal)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(fmt.Errorf("error iterating meals: %w", err))
	}

	return meals, nil
}

// GetByID retrieves a meal by ID regardless of availability
func (r *mealRepository) GetByID(ctx context.Context, id int) (*models.Meal, error) {
	query := `
		SELECT id, name, description, price, DATE_FORMAT(date, '%Y-%m-%d'), available, created_at
		FROM meals
		WHERE id = ?
	`

	return r.scanMeal(r.db.QueryRowContext(ctx, query, id))
}

// GetAvailableByID retrieves a meal only if it exists and is currently
// available. Order placement re-checks availability and price through this
// lookup at call time.
func (r *mealRepository) GetAvailableByID(ctx context.Context, id int) (*models.Meal, error) {
	query := `
		SELECT id, name, description, price, DATE_FORMAT(date, '%Y-%m-%d'), available, created_at
		FROM meals
		WHERE id = ? AND available = TRUE
	`

	return r.scanMeal(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts a new meal and sets its generated ID
func (r *mealRepository) Create(ctx context.Context, meal *models.Meal) error {
	query := `
		INSERT INTO meals (name, description, price, date)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, meal.Name, meal.Description, meal.Price, meal.Date)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to create meal: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get last insert id: %w", err))
	}

	meal.ID = int(id)
	return nil
}

// Update overwrites the full meal row
func (r *mealRepository) Update(ctx context.Context, id int, name, description string, price float64, date string, available bool) error {
	query := `
		UPDATE meals
		SET name = ?, description = ?, price = ?, date = ?, available = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, name, description, price, date, available, id)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to update meal: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get affected rows: %w", err))
	}
	if affected == 0 {
		return apperrors.NotFound("meal")
	}

	return nil
}

// Delete removes a meal row. Orders and ratings referencing it are kept.
func (r *mealRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to delete meal: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get affected rows: %w", err))
	}
	if affected == 0 {
		return apperrors.NotFound("meal")
	}

	return nil
}

// ExistsOnDate checks if any meal exists for the given calendar date
func (r *mealRepository) ExistsOnDate(ctx context.Context, date string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM meals WHERE date = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, date).Scan(&exists)
	if err != nil {
		return false, apperrors.Storage(fmt.Errorf("failed to check meal existence: %w", err))
	}

	return exists, nil
}

func (r *mealRepository) scanMeal(row *sql.Row) (*models.Meal, error) {
	meal := &models.Meal{}
	var description sql.NullString
	err := row.Scan(
		&meal.ID,
		&meal.Name,
		&description,
		&meal.Price,
		&meal.Date,
		&meal.Available,
		&meal.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("meal")
	}
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("failed to get meal: %w", err))
	}

	meal.Description = description.String
	return meal, nil
}
