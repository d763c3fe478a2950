package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dailydiet/dailydiet-go/internal/middleware"
	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/service"
)

// MealHandler handles HTTP requests for meal ledger and metrics operations.
type MealHandler struct {
	meals   *service.MealService
	metrics *service.MetricsService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(meals *service.MealService, metrics *service.MetricsService) *MealHandler {
	return &MealHandler{meals: meals, metrics: metrics}
}

// HandleCreateMeal handles POST /api/v1/meals requests.
func (h *MealHandler) HandleCreateMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	req, ok := decodeMealRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.meals.Create(r.Context(), userID, req); err != nil {
		if isMealValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleListMeals handles GET /api/v1/meals requests.
func (h *MealHandler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	meals, err := h.meals.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MealListResponse{Meals: meals})
}

// HandleGetMeal handles GET /api/v1/meals/{meal_id} requests.
func (h *MealHandler) HandleGetMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	mealID, ok := mealIDParam(w, r)
	if !ok {
		return
	}

	meal, err := h.meals.Get(r.Context(), userID, mealID)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MealDetailResponse{Meal: meal})
}

// HandleUpdateMeal handles PUT /api/v1/meals/{meal_id} requests.
func (h *MealHandler) HandleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	mealID, ok := mealIDParam(w, r)
	if !ok {
		return
	}

	req, ok := decodeMealRequest(w, r)
	if !ok {
		return
	}

	if err := h.meals.Update(r.Context(), userID, mealID, req); err != nil {
		switch {
		case isMealValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrMealNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteMeal handles DELETE /api/v1/meals/{meal_id} requests.
func (h *MealHandler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	mealID, ok := mealIDParam(w, r)
	if !ok {
		return
	}

	if err := h.meals.Delete(r.Context(), userID, mealID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMetrics handles GET /api/v1/meals/metrics requests.
func (h *MealHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	metrics, err := h.metrics.Summarize(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MetricsResponse{Metrics: metrics})
}

// decodeMealRequest reads a meal payload from the request body, writing the
// error response itself when decoding fails.
func decodeMealRequest(w http.ResponseWriter, r *http.Request) (model.MealRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return model.MealRequest{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.MealRequest{}, false
	}

	return req, true
}

// mealIDParam extracts and bounds-checks the meal_id URL parameter.
func mealIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	mealID := chi.URLParam(r, "meal_id")
	if mealID == "" || len(mealID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid meal id"))
		return "", false
	}
	return mealID, true
}

func isMealValidationError(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrDateRequired)
}
