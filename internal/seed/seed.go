// Package seed creates the bootstrap accounts and sample data at startup
package seed

import (
	"context"
	"time"

	"github.com/lunchday/backend/internal/config"
	"github.com/lunchday/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the user data access needed for seeding
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// MealStore is the meal data access needed for seeding
type MealStore interface {
	Create(ctx context.Context, meal *models.Meal) error
	ExistsOnDate(ctx context.Context, date string) (bool, error)
}

// Run seeds the default admin and test-user accounts plus one meal for the
// current date, each only if absent. Failures are logged and do not abort
// startup.
func Run(ctx context.Context, users UserStore, meals MealStore, cfg config.SeedConfig, logger *zap.Logger) {
	seedUser(ctx, users, "admin", cfg.AdminPassword, models.RoleAdmin, logger)
	seedUser(ctx, users, "testuser", cfg.TestUserPassword, models.RoleUser, logger)
	seedTodayMeal(ctx, meals, logger)
}

func seedUser(ctx context.Context, users UserStore, username, password, role string, logger *zap.Logger) {
	exists, err := users.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Warn("failed to check seed user", zap.String("username", username), zap.Error(err))
		return
	}
	if exists {
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Warn("failed to hash seed password", zap.String("username", username), zap.Error(err))
		return
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		logger.Warn("failed to seed user", zap.String("username", username), zap.Error(err))
		return
	}

	logger.Info("seeded user", zap.String("username", username), zap.String("role", role))
}

func seedTodayMeal(ctx context.Context, meals MealStore, logger *zap.Logger) {
	today := time.Now().Format("2006-01-02")

	exists, err := meals.ExistsOnDate(ctx, today)
	if err != nil {
		logger.Warn("failed to check seed meal", zap.Error(err))
		return
	}
	if exists {
		return
	}

	meal := &models.Meal{
		Name:        "Chicken cutlets with potatoes",
		Description: "Crispy chicken cutlets, boiled potatoes, vegetable salad",
		Price:       5.50,
		Date:        today,
	}
	if err := meals.Create(ctx, meal); err != nil {
		logger.Warn("failed to seed meal", zap.Error(err))
		return
	}

	logger.Info("seeded today's meal", zap.Int("meal_id", meal.ID))
}
