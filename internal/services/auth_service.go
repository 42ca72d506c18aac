package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/auth"
	"github.com/lunchday/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// The generated ID is written back into "user". A username collision is
	// reported as apperrors.ErrDuplicateUsername without mutating state.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username.
	//
	// If no user with such username exists, an apperrors.ErrNotFound error is
	// returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// authService implements registration, login and token issuance
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Register creates a new user account and returns its generated ID.
// The role is caller-suppliable and defaults to "user"; self-service admin
// registration is an accepted trust-model property of this service.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (int, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return 0, apperrors.Invalid("username and password are required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return 0, apperrors.Invalid("role must be \"user\" or \"admin\"")
	}

	// Hash password with a slow, salted hash before storage
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.Storage(err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return user.ID, nil
}

// Login authenticates a user and issues a signed token carrying the user's
// id, username and role. Unknown username and wrong password return the same
// error so responses carry no enumeration signal.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", nil, apperrors.Invalid("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return "", nil, apperrors.Storage(err)
	}

	return token, &models.PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
