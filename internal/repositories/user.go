package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bookhaven/internal/models"

	"github.com/google/uuid"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, email, password_hash, created_at, updated_at"

// Create persists a new user. The password must already be hashed.
func (r *UserRepository) Create(username, email, passwordHash string) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, userColumns)

	now := time.Now()
	user := &models.User{}

	err := scanUser(r.db.QueryRow(query, uuid.New().String(), username, email, passwordHash, now, now), user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, models.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	user := &models.User{}
	err := scanUser(r.db.QueryRow(query, id), user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email (for authentication)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	user := &models.User{}
	err := scanUser(r.db.QueryRow(query, email), user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// UpdatePassword stores a new password hash for a user
func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	result, err := r.db.Exec(
		"UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3",
		passwordHash, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

func scanUser(s scanner, user *models.User) error {
	return s.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
