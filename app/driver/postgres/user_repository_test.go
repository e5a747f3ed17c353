package postgres

import (
	"context"
	"testing"
	"time"

	"tripshare/app/domain"
	"tripshare/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)

	return repo, mockDB
}

func createTestUser(t *testing.T, role domain.UserRole) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		DisplayName:  "Admin",
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		Role:         role,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func userColumns() []string {
	return []string{"id", "email", "display_name", "password_hash", "role", "created_at"}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		setupDB func(pgxmock.PgxPoolIface, *domain.User)
		wantErr error
	}{
		{
			name: "successful user creation",
			user: createTestUser(t, domain.UserRoleAdmin),
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						user.ID, user.Email, user.DisplayName,
						user.PasswordHash, user.Role, user.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate email maps to ErrUserAlreadyExists",
			user: createTestUser(t, domain.UserRoleUser),
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						user.ID, user.Email, user.DisplayName,
						user.PasswordHash, user.Role, user.CreatedAt,
					).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.user)

			err := repo.Create(context.Background(), tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	user := createTestUser(t, domain.UserRoleAdmin)

	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestUserRepository(t)
		defer mockDB.Close()

		rows := pgxmock.NewRows(userColumns()).AddRow(
			user.ID, user.Email, user.DisplayName, user.PasswordHash, user.Role, user.CreatedAt,
		)
		mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs(user.Email).
			WillReturnRows(rows)

		got, err := repo.GetByEmail(context.Background(), user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		assert.True(t, got.Role.IsAdmin())
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown email maps to ErrUserNotFound", func(t *testing.T) {
		repo, mockDB := createTestUserRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	user := createTestUser(t, domain.UserRoleUser)

	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestUserRepository(t)
		defer mockDB.Close()

		rows := pgxmock.NewRows(userColumns()).AddRow(
			user.ID, user.Email, user.DisplayName, user.PasswordHash, user.Role, user.CreatedAt,
		)
		mockDB.ExpectQuery("SELECT (.+) FROM users WHERE id").
			WithArgs(user.ID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.False(t, got.Role.IsAdmin())
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestUserRepository(t)
		defer mockDB.Close()

		unknown := uuid.New()
		mockDB.ExpectQuery("SELECT (.+) FROM users WHERE id").
			WithArgs(unknown).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(context.Background(), unknown)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
