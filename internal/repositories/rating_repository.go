package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

type ratingRepository struct {
	db *sql.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *sql.DB) *ratingRepository {
	return &ratingRepository{db: db}
}

// Create appends a new rating and sets its generated ID
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (user_id, meal_id, rating, comment)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, rating.UserID, rating.MealID, rating.Rating, rating.Comment)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to create rating: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to get last insert id: %w", err))
	}

	rating.ID = int(id)
	return nil
}

// ListByMeal retrieves the ratings for one meal joined with the rater's
// username, newest first
func (r *ratingRepository) ListByMeal(ctx context.Context, mealID int) ([]models.RatingView, error) {
	query := `
		SELECT ratings.id, ratings.user_id, ratings.meal_id, ratings.rating,
		       ratings.comment, ratings.created_at, users.username
		FROM ratings
		JOIN users ON ratings.user_id = users.id
		WHERE ratings.meal_id = ?
		ORDER BY ratings.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, mealID)
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("failed to query ratings: %w", err))
	}
	defer rows.Close()

	var ratings []models.RatingView
	for rows.Next() {
		var rating models.RatingView
		var comment sql.NullString
		if err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.MealID,
			&rating.Rating,
			&comment,
			&rating.CreatedAt,
			&rating.Username,
		); err != nil {
			return nil, apperrors.Storage(fmt.Errorf("failed to scan rating: %w", err))
		}
		rating.Comment = comment.String
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(fmt.Errorf("error iterating ratings: %w", err))
	}

	return ratings, nil
}
