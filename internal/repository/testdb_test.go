package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/dailydiet/dailydiet-go/internal/model"
)

// newTestDB opens an isolated in-memory SQLite database with the schema
// applied. Each test gets its own store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// A single connection keeps every statement on the same in-memory DB.
	db.SetMaxOpenConns(1)

	if err := Apply(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, db *sql.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		SessionToken: uuid.NewString(),
		Name:         "Test User",
		Email:        email,
	}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}
