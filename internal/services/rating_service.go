package services

import (
	"context"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

// RatingRepository is the interface that wraps methods for ratings table data access
type RatingRepository interface {
	// Method Create appends a new rating and writes the generated ID back.
	Create(ctx context.Context, rating *models.Rating) error
	// Method ListByMeal retrieves the ratings for one meal joined with usernames.
	ListByMeal(ctx context.Context, mealID int) ([]models.RatingView, error)
}

// ratingService implements the append-only rating ledger
type ratingService struct {
	ratingRepo RatingRepository
}

// NewRatingService creates a new rating service
func NewRatingService(ratingRepo RatingRepository) *ratingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// Add records a rating for a meal. Any authenticated user may rate any meal
// any number of times; there is no purchase precondition.
func (s *ratingService) Add(ctx context.Context, callerID int, req *models.AddRatingRequest) (int, error) {
	if req.MealID <= 0 || req.Rating == 0 {
		return 0, apperrors.Invalid("meal_id and rating are required")
	}

	if req.Rating < models.RatingMin || req.Rating > models.RatingMax {
		return 0, apperrors.Invalid("rating must be between 1 and 5")
	}

	rating := &models.Rating{
		UserID:  callerID,
		MealID:  req.MealID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return 0, err
	}

	return rating.ID, nil
}

// ListForMeal returns the ratings for one meal, newest first
func (s *ratingService) ListForMeal(ctx context.Context, mealID int) ([]models.RatingView, error) {
	return s.ratingRepo.ListByMeal(ctx, mealID)
}
