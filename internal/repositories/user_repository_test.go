package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lunchday/backend/internal/apperrors"
	"github.com/lunchday/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			user: &models.User{
				Username:     "jonas",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("jonas", "hashedpassword", models.RoleUser).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "duplicate username",
			user: &models.User{
				Username:     "jonas",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("jonas", "hashedpassword", models.RoleUser).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'jonas' for key 'uq_users_username'"})
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name: "database error on insert",
			user: &models.User{
				Username:     "jonas",
				PasswordHash: "hashedpassword",
				Role:         models.RoleAdmin,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("jonas", "hashedpassword", models.RoleAdmin).
					WillReturnError(errors.New("database error"))
			},
			expectedError: apperrors.ErrStorage,
		},
		{
			name: "error getting last insert id",
			user: &models.User{
				Username:     "jonas",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("jonas", "hashedpassword", models.RoleUser).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("last insert id error")))
			},
			expectedError: apperrors.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.user.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		username      string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name:     "success",
			username: "jonas",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
					AddRow(1, "jonas", "hashedpassword", models.RoleUser, createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("jonas").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:           1,
				Username:     "jonas",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
				CreatedAt:    createdAt,
			},
		},
		{
			name:     "user not found",
			username: "ghost",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("ghost").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}))
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:     "database error",
			username: "jonas",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("jonas").
					WillReturnError(errors.New("database error"))
			},
			expectedError: apperrors.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		setupMock      func(sqlmock.Sqlmock)
		expectedError  bool
		expectedExists bool
	}{
		{
			name:     "exists",
			username: "admin",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("admin").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedExists: true,
		},
		{
			name:     "does not exist",
			username: "ghost",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("ghost").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedExists: false,
		},
		{
			name:     "database error",
			username: "admin",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("admin").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.ExistsByUsername(context.Background(), tt.username)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
