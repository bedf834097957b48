package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// CreateUser inserts a new user with a pre-hashed password.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (*types.User, error) {
	user := &types.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := db.pool.Exec(ctx, query, user.ID, user.Name, user.Email, passwordHash, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns the user and password hash for an email,
// or (nil, "", nil) when no such user exists.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, string, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	var user types.User
	var hash string
	err := db.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, hash, nil
}

// GetUserByID returns a user by ID, or (nil, nil) when not found.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = $1`

	var user types.User
	err := db.pool.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	// 23505 is the PostgreSQL unique_violation code.
	type sqlState interface{ SQLState() string }
	var se sqlState
	return errors.As(err, &se) && se.SQLState() == "23505"
}
