package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRatingTestRepository creates a rating repository with a mock database
func setupRatingTestRepository(t *testing.T) (*ratingRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRatingRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestRatingRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupRatingTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO ratings`).
			WithArgs(2, 1, 5, "Very tasty").
			WillReturnResult(sqlmock.NewResult(3, 1))

		rating := &models.Rating{
			UserID:  2,
			MealID:  1,
			Rating:  5,
			Comment: "Very tasty",
		}
		err := repo.Create(context.Background(), rating)

		require.NoError(t, err)
		assert.Equal(t, 3, rating.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupRatingTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO ratings`).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), &models.Rating{UserID: 2, MealID: 1, Rating: 4})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRatingRepository_ListByMeal(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "meal_id", "rating", "comment", "created_at", "username"}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupRatingTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow(2, 3, 1, 4, nil, createdAt, "jonas").
			AddRow(1, 2, 1, 5, "Very tasty", createdAt, "ona")
		mock.ExpectQuery(`SELECT (.+) FROM ratings`).
			WithArgs(1).
			WillReturnRows(rows)

		ratings, err := repo.ListByMeal(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, ratings, 2)
		assert.Equal(t, "jonas", ratings[0].Username)
		assert.Empty(t, ratings[0].Comment)
		assert.Equal(t, "Very tasty", ratings[1].Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result", func(t *testing.T) {
		repo, mock, cleanup := setupRatingTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT (.+) FROM ratings`).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows(columns))

		ratings, err := repo.ListByMeal(context.Background(), 9)

		require.NoError(t, err)
		assert.Empty(t, ratings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
