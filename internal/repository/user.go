package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dailydiet/dailydiet-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user bound to their freshly minted session token.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, session_token, name, email, created_at) VALUES (?, ?, ?, ?, ?)`

	user.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, user.ID, user.SessionToken, user.Name, user.Email, user.CreatedAt)
	if err != nil {
		if isDuplicateEmailError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetBySessionToken resolves an opaque session token to its bound user.
func (r *UserRepository) GetBySessionToken(ctx context.Context, token string) (*model.User, error) {
	query := `SELECT id, session_token, name, email, created_at FROM users WHERE session_token = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&user.ID, &user.SessionToken, &user.Name, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, session_token, name, email, created_at FROM users WHERE email = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.SessionToken, &user.Name, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEmailError checks if err is a unique-key violation on the email
// column. MySQL reports code 1062 ("Duplicate entry ... for key ...email"),
// SQLite reports "UNIQUE constraint failed: users.email".
func isDuplicateEmailError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "Duplicate entry") && !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return strings.Contains(msg, "email")
}
