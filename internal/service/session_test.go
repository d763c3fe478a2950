package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dailydiet/dailydiet-go/internal/model"
)

func TestResolveOrCreate_MintsNewSession(t *testing.T) {
	svc := newTestServices(t)

	sess := svc.register(t, "John Doe", "john@email.com")

	if sess.UserID == "" {
		t.Error("expected a user id")
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}

	// The minted token must resolve back to the same user.
	userID, err := svc.sessions.Resolve(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if userID != sess.UserID {
		t.Errorf("resolved %q, want %q", userID, sess.UserID)
	}
}

func TestResolveOrCreate_ExistingToken(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	first := svc.register(t, "John Doe", "john@email.com")

	// A known token returns the bound user without creating anything; the
	// submitted name and email are not applied.
	sess, err := svc.sessions.ResolveOrCreate(ctx, first.Token, model.RegisterRequest{
		Name:  "Someone Else",
		Email: "else@email.com",
	})
	if err != nil {
		t.Fatalf("ResolveOrCreate() unexpected error: %v", err)
	}
	if sess.Created {
		t.Error("expected existing session, got a new one")
	}
	if sess.UserID != first.UserID {
		t.Errorf("bound user = %q, want %q", sess.UserID, first.UserID)
	}
	if sess.Token != first.Token {
		t.Errorf("token changed for existing session")
	}
}

func TestResolveOrCreate_UnknownTokenTreatedAsFirstContact(t *testing.T) {
	svc := newTestServices(t)

	sess, err := svc.sessions.ResolveOrCreate(context.Background(), "stale-token", model.RegisterRequest{
		Name:  "Jane Doe",
		Email: "jane@email.com",
	})
	if err != nil {
		t.Fatalf("ResolveOrCreate() unexpected error: %v", err)
	}
	if !sess.Created {
		t.Fatal("expected a fresh session for an unknown token")
	}
	if sess.Token == "stale-token" {
		t.Error("stale token must be replaced, not reused")
	}
}

func TestResolveOrCreate_DuplicateEmail(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	first := svc.register(t, "John Doe", "john@email.com")

	_, err := svc.sessions.ResolveOrCreate(ctx, "", model.RegisterRequest{
		Name:  "John Lennon",
		Email: "john@email.com",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The first registration must still resolve untouched.
	userID, err := svc.sessions.Resolve(ctx, first.Token)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if userID != first.UserID {
		t.Errorf("resolved %q, want %q", userID, first.UserID)
	}
}

func TestResolveOrCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.RegisterRequest
		wantErr error
	}{
		{
			name:    "empty name",
			req:     model.RegisterRequest{Email: "john@email.com"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty email",
			req:     model.RegisterRequest{Name: "John Doe"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			req:     model.RegisterRequest{Name: "John Doe", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(t)
			_, err := svc.sessions.ResolveOrCreate(context.Background(), "", tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolve_Unauthenticated(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.sessions.Resolve(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty token: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.sessions.Resolve(ctx, "unknown"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("unknown token: expected ErrUnauthenticated, got %v", err)
	}
}
