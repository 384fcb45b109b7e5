package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Compile-time interface check.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository stores accounts.
type UserRepository struct {
	db *sql.DB
}

// Create stores a new user. A taken username is a validation error on the
// username field.
func (r *UserRepository) Create(ctx context.Context, username string, passwordHash []byte) (ports.User, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.User{}, &domain.ValidationError{Fields: map[string]string{"username": "is already taken"}}
		}
		return ports.User{}, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return ports.User{}, fmt.Errorf("reading user id: %w", err)
	}
	return ports.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}

// FindByUsername looks an account up by name.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (ports.User, error) {
	var u ports.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.User{}, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return ports.User{}, fmt.Errorf("finding user: %w", err)
	}
	return u, nil
}
