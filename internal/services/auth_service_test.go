package services

import (
	"context"
	"testing"
	"time"

	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/auth"
	"github.com/lunchday/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user      *models.User
	getErr    error
	createErr error
	created   *models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func TestAuthService_Register(t *testing.T) {
	logger := zap.NewNop()
	tokenGen := auth.NewTokenGenerator("test-secret", time.Hour)

	tests := []struct {
		name          string
		req           *models.RegisterRequest
		userRepo      *mockUserRepository
		expectedError error
		expectedRole  string
	}{
		{
			name:         "success with default role",
			req:          &models.RegisterRequest{Username: "jonas", Password: "test123"},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleUser,
		},
		{
			name:         "success with explicit admin role",
			req:          &models.RegisterRequest{Username: "boss", Password: "test123", Role: models.RoleAdmin},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleAdmin,
		},
		{
			name:          "missing username",
			req:           &models.RegisterRequest{Password: "test123"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing password",
			req:           &models.RegisterRequest{Username: "jonas"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "whitespace-only username",
			req:           &models.RegisterRequest{Username: "   ", Password: "test123"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "unknown role",
			req:           &models.RegisterRequest{Username: "jonas", Password: "test123", Role: "superuser"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "duplicate username",
			req:           &models.RegisterRequest{Username: "jonas", Password: "test123"},
			userRepo:      &mockUserRepository{createErr: apperrors.ErrDuplicateUsername},
			expectedError: apperrors.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, tokenGen, logger)

			userID, err := svc.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, userID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, userID)
			require.NotNil(t, tt.userRepo.created)
			assert.Equal(t, tt.expectedRole, tt.userRepo.created.Role)

			// Password is stored as a bcrypt hash, never in clear
			assert.NotEqual(t, tt.req.Password, tt.userRepo.created.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(tt.userRepo.created.PasswordHash), []byte(tt.req.Password)))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	logger := zap.NewNop()
	tokenGen := auth.NewTokenGenerator("test-secret", time.Hour)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("test123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	knownUser := &models.User{
		ID:           7,
		Username:     "jonas",
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: knownUser}, tokenGen, logger)

		token, user, err := svc.Login(context.Background(), &models.LoginRequest{Username: "jonas", Password: "test123"})

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "jonas", user.Username)
		assert.Equal(t, models.RoleAdmin, user.Role)

		// The token round-trips the identity exactly as registered
		identity, err := tokenGen.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, auth.Identity{ID: 7, Username: "jonas", Role: models.RoleAdmin}, identity)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: knownUser}, tokenGen, logger)

		_, _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "jonas"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("unknown username and wrong password return the same error", func(t *testing.T) {
		unknownSvc := NewAuthService(&mockUserRepository{getErr: apperrors.NotFound("user")}, tokenGen, logger)
		wrongPassSvc := NewAuthService(&mockUserRepository{user: knownUser}, tokenGen, logger)

		_, _, unknownErr := unknownSvc.Login(context.Background(), &models.LoginRequest{Username: "ghost", Password: "test123"})
		_, _, wrongPassErr := wrongPassSvc.Login(context.Background(), &models.LoginRequest{Username: "jonas", Password: "wrong"})

		require.Error(t, unknownErr)
		require.Error(t, wrongPassErr)
		assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
		// Identical error shape, no user enumeration signal
		assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	})

	t.Run("storage error is passed through", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{getErr: apperrors.Storage(assert.AnError)}, tokenGen, logger)

		_, _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "jonas", Password: "test123"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
