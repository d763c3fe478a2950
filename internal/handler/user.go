package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dailydiet/dailydiet-go/internal/middleware"
	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/service"
)

// UserHandler handles HTTP requests for user registration.
type UserHandler struct {
	sessions   *service.SessionService
	sessionTTL time.Duration
}

// NewUserHandler creates a new UserHandler. sessionTTL controls the expiry
// of the minted session cookie.
func NewUserHandler(sessions *service.SessionService, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{sessions: sessions, sessionTTL: sessionTTL}
}

// HandleRegister handles POST /api/v1/users requests. When the request
// carries no usable session credential, the freshly minted token is handed
// back in the sessionId cookie for reuse on all subsequent calls.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	sess, err := h.sessions.ResolveOrCreate(r.Context(), middleware.TokenFromRequest(r), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if sess.Created {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			MaxAge:   int(h.sessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	w.WriteHeader(http.StatusCreated)
}
