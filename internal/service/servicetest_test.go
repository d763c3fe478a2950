package service

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/repository"
)

// testServices wires the full service stack against an isolated in-memory
// SQLite store.
type testServices struct {
	sessions *SessionService
	meals    *MealService
	metrics  *MetricsService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	if err := repository.Apply(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	mealRepo := repository.NewMealRepository(db)
	return testServices{
		sessions: NewSessionService(repository.NewUserRepository(db)),
		meals:    NewMealService(mealRepo),
		metrics:  NewMetricsService(mealRepo),
	}
}

// register creates a user through the session service and returns the
// session outcome.
func (s testServices) register(t *testing.T, name, email string) Session {
	t.Helper()

	sess, err := s.sessions.ResolveOrCreate(context.Background(), "", model.RegisterRequest{Name: name, Email: email})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	if !sess.Created {
		t.Fatalf("register %s: expected a new session", email)
	}
	return sess
}
