package service

import (
	"context"
	"errors"

	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDateRequired        = errors.New("date is required")
	ErrMealNotFound        = errors.New("meal not found")
)

// MealService handles meal ledger business logic. Every operation takes the
// authenticated user id and never reaches outside that user's partition.
type MealService struct {
	repo *repository.MealRepository
}

// NewMealService creates a new MealService.
func NewMealService(repo *repository.MealRepository) *MealService {
	return &MealService{repo: repo}
}

func validateMeal(req model.MealRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if req.Description == "" {
		return ErrDescriptionRequired
	}
	if req.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// Create records a new meal for userID and returns the generated meal id.
// Meals carry no uniqueness constraint; creation only fails on invalid input.
func (s *MealService) Create(ctx context.Context, userID string, req model.MealRequest) (string, error) {
	if err := validateMeal(req); err != nil {
		return "", err
	}

	meal := &model.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet,
		Date:        req.Date.Time,
	}

	if err := s.repo.Create(ctx, meal); err != nil {
		return "", err
	}

	return meal.ID, nil
}

// Update replaces all mutable fields of one of userID's meals. The id and
// owner are untouched.
func (s *MealService) Update(ctx context.Context, userID, mealID string, req model.MealRequest) error {
	if err := validateMeal(req); err != nil {
		return err
	}

	meal := &model.Meal{
		ID:          mealID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet,
		Date:        req.Date.Time,
	}

	err := s.repo.Update(ctx, meal)
	if errors.Is(err, repository.ErrMealNotFound) {
		return ErrMealNotFound
	}
	return err
}

// List returns the list view of all of userID's meals in storage order.
// Callers that need chronological order use the metrics timeline instead.
func (s *MealService) List(ctx context.Context, userID string) ([]model.MealSummary, error) {
	meals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.MealSummary, len(meals))
	for i, m := range meals {
		result[i] = model.MealSummary{
			ID:       m.ID,
			Name:     m.Name,
			IsOnDiet: m.IsOnDiet,
			Date:     m.Date,
		}
	}
	return result, nil
}

// Get returns the detail view of one of userID's meals.
func (s *MealService) Get(ctx context.Context, userID, mealID string) (model.MealResponse, error) {
	meal, err := s.repo.GetByID(ctx, userID, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return model.MealResponse{}, ErrMealNotFound
		}
		return model.MealResponse{}, err
	}

	return model.MealResponse{
		ID:          meal.ID,
		Name:        meal.Name,
		Description: meal.Description,
		IsOnDiet:    meal.IsOnDiet,
		Date:        meal.Date,
	}, nil
}

// Delete removes one of userID's meals. Repeating a delete reports
// ErrMealNotFound, never success.
func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	err := s.repo.Delete(ctx, userID, mealID)
	if errors.Is(err, repository.ErrMealNotFound) {
		return ErrMealNotFound
	}
	return err
}
