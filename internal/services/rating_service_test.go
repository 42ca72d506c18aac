package services

import (
	"context"
	"testing"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRatingRepository is a mock implementation of RatingRepository
type mockRatingRepository struct {
	ratings []models.RatingView
	err     error
	created *models.Rating
}

func (m *mockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if m.err != nil {
		return m.err
	}
	rating.ID = 1
	m.created = rating
	return nil
}

func (m *mockRatingRepository) ListByMeal(ctx context.Context, mealID int) ([]models.RatingView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ratings, nil
}

func TestRatingService_Add(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.AddRatingRequest
		expectedError error
	}{
		{
			name: "lowest allowed rating",
			req:  &models.AddRatingRequest{MealID: 1, Rating: 1},
		},
		{
			name: "highest allowed rating",
			req:  &models.AddRatingRequest{MealID: 1, Rating: 5, Comment: "Very tasty"},
		},
		{
			name:          "rating below range",
			req:           &models.AddRatingRequest{MealID: 1, Rating: -1},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "rating above range",
			req:           &models.AddRatingRequest{MealID: 1, Rating: 6},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing rating",
			req:           &models.AddRatingRequest{MealID: 1},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing meal_id",
			req:           &models.AddRatingRequest{Rating: 4},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRatingRepository{}
			svc := NewRatingService(repo)

			ratingID, err := svc.Add(context.Background(), 2, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, ratingID)
				assert.Nil(t, repo.created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, ratingID)
			require.NotNil(t, repo.created)
			assert.Equal(t, 2, repo.created.UserID)
		})
	}

	t.Run("repeat ratings are appended, not rejected", func(t *testing.T) {
		repo := &mockRatingRepository{}
		svc := NewRatingService(repo)

		_, err := svc.Add(context.Background(), 2, &models.AddRatingRequest{MealID: 1, Rating: 3})
		require.NoError(t, err)
		_, err = svc.Add(context.Background(), 2, &models.AddRatingRequest{MealID: 1, Rating: 5})
		require.NoError(t, err)
	})
}

func TestRatingService_ListForMeal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockRatingRepository{ratings: []models.RatingView{
			{ID: 2, MealID: 1, Rating: 4, Username: "jonas"},
			{ID: 1, MealID: 1, Rating: 5, Username: "ona"},
		}}
		svc := NewRatingService(repo)

		ratings, err := svc.ListForMeal(context.Background(), 1)

		require.NoError(t, err)
		assert.Len(t, ratings, 2)
	})

	t.Run("storage error is passed through", func(t *testing.T) {
		svc := NewRatingService(&mockRatingRepository{err: apperrors.Storage(assert.AnError)})

		_, err := svc.ListForMeal(context.Background(), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})
}
