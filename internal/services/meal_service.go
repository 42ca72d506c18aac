package services

import (
	"context"
	"strings"
	"time"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
)

// mealDateLayout is the calendar date format accepted for meal dates
const mealDateLayout = "2006-01-02"

// MealRepository is the interface that wraps methods for meals table data access
type MealRepository interface {
	// Method ListAvailable retrieves the available meals ordered by date
	// descending, optionally restricted to one calendar date.
	ListAvailable(ctx context.Context, date string) ([]models.Meal, error)
	// Method GetByID retrieves a meal by ID regardless of availability.
	GetByID(ctx context.Context, id int) (*models.Meal, error)
	// Method Create inserts a new meal and writes the generated ID back.
	Create(ctx context.Context, meal *models.Meal) error
	// Method Update overwrites the full meal row, including availability.
	Update(ctx context.Context, id int, name, description string, price float64, date string, available bool) error
	// Method Delete removes a meal row.
	Delete(ctx context.Context, id int) error
}

// mealService implements the meal catalog business logic
type mealService struct {
	mealRepo MealRepository
}

// NewMealService creates a new meal service
func NewMealService(mealRepo MealRepository) *mealService {
	return &mealService{mealRepo: mealRepo}
}

// ListAvailable returns the available meals, optionally filtered by date.
// The filter is passed through as-is; a value matching no rows simply yields
// an empty list.
func (s *mealService) ListAvailable(ctx context.Context, date string) ([]models.Meal, error) {
	return s.mealRepo.ListAvailable(ctx, date)
}

// GetByID returns a single meal
func (s *mealService) GetByID(ctx context.Context, id int) (*models.Meal, error) {
	return s.mealRepo.GetByID(ctx, id)
}

// Create adds a new meal to the catalog and returns its generated ID
func (s *mealService) Create(ctx context.Context, req *models.CreateMealRequest) (int, error) {
	if err := validateMealFields(req.Name, req.Price, req.Date); err != nil {
		return 0, err
	}

	meal := &models.Meal{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Date:        req.Date,
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return 0, err
	}

	return meal.ID, nil
}

// Update overwrites a meal. An omitted "available" field defaults to true,
// so an update without it re-enables a previously disabled meal. This mirrors
// the listing contract where availability is assumed unless switched off.
func (s *mealService) Update(ctx context.Context, id int, req *models.UpdateMealRequest) error {
	if err := validateMealFields(req.Name, req.Price, req.Date); err != nil {
		return err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	return s.mealRepo.Update(ctx, id, strings.TrimSpace(req.Name), req.Description, req.Price, req.Date, available)
}

// Delete removes a meal from the catalog. Existing orders and ratings keep
// their meal_id reference; history is preserved through the soft availability
// flag, deletion is the hard path.
func (s *mealService) Delete(ctx context.Context, id int) error {
	return s.mealRepo.Delete(ctx, id)
}

func validateMealFields(name string, price float64, date string) error {
	if strings.TrimSpace(name) == "" || price == 0 || date == "" {
		return apperrors.Invalid("name, price and date are required")
	}
	if price < 0 {
		return apperrors.Invalid("price must be positive")
	}
	if _, err := time.Parse(mealDateLayout, date); err != nil {
		return apperrors.Invalid("date must be in YYYY-MM-DD format")
	}
	return nil
}
