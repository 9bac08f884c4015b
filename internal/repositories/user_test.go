package repositories

import (
	"errors"
	"testing"
	"time"

	"bookhaven/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(count int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"})
	now := time.Now()
	for i := 0; i < count; i++ {
		rows.AddRow("user-1", "jane", "jane@example.com", "$2a$10$hash", now, now)
	}
	return rows
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(userRows(1))

		repo := NewUserRepository(db)
		user, err := repo.Create("jane", "jane@example.com", "$2a$10$hash")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		repo := NewUserRepository(db)
		_, err = repo.Create("jane", "jane@example.com", "$2a$10$hash")

		assert.ErrorIs(t, err, models.ErrUserExists)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@example.com").
			WillReturnRows(userRows(0))

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail("nobody@example.com")

		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET password_hash = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		assert.ErrorIs(t, repo.UpdatePassword("missing", "$2a$10$hash"), models.ErrUserNotFound)
	})
}
