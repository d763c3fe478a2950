package service

import (
	"context"
	"errors"
	"net/mail"

	"github.com/dailydiet/dailydiet-go/internal/crypto"
	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmailTaken      = errors.New("email already taken")
	ErrUnauthenticated = errors.New("missing or unknown session credential")
)

// Session is the outcome of resolving a credential at registration time.
// Created reports whether a new user and token were minted; when false the
// token matched an existing session and no state changed.
type Session struct {
	UserID  string
	Token   string
	Created bool
}

// SessionService binds opaque session tokens to user records. It performs no
// transport I/O; cookie handling stays with the caller.
type SessionService struct {
	users *repository.UserRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(users *repository.UserRepository) *SessionService {
	return &SessionService{users: users}
}

// ResolveOrCreate resolves token to its bound user, or registers a new user
// under a freshly minted token when token is empty or unknown. A stale token
// is treated the same as no token at all.
func (s *SessionService) ResolveOrCreate(ctx context.Context, token string, req model.RegisterRequest) (Session, error) {
	if token != "" {
		user, err := s.users.GetBySessionToken(ctx, token)
		if err == nil {
			return Session{UserID: user.ID, Token: token}, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, err
		}
	}

	if req.Name == "" {
		return Session{}, ErrNameRequired
	}
	if req.Email == "" {
		return Session{}, ErrEmailRequired
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return Session{}, ErrInvalidEmail
	}

	fresh, err := crypto.NewSessionToken()
	if err != nil {
		return Session{}, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		SessionToken: fresh,
		Name:         req.Name,
		Email:        req.Email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, err
	}

	return Session{UserID: user.ID, Token: fresh, Created: true}, nil
}

// Resolve maps a session token to its user id. It gates every meal and
// metrics operation and has no side effects.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}

	user, err := s.users.GetBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	return user.ID, nil
}
