package service

import (
	"context"

	"github.com/dailydiet/dailydiet-go/internal/model"
	"github.com/dailydiet/dailydiet-go/internal/repository"
)

// MetricsService computes adherence statistics over a user's meal history.
type MetricsService struct {
	repo *repository.MealRepository
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(repo *repository.MealRepository) *MetricsService {
	return &MetricsService{repo: repo}
}

// Timeline returns the user's meals ordered by date descending, most recent
// first.
func (s *MetricsService) Timeline(ctx context.Context, userID string) ([]model.TimelineEntry, error) {
	return s.repo.Timeline(ctx, userID)
}

// Summarize computes meal totals and the best on-diet streak for a user.
func (s *MetricsService) Summarize(ctx context.Context, userID string) (model.Metrics, error) {
	timeline, err := s.repo.Timeline(ctx, userID)
	if err != nil {
		return model.Metrics{}, err
	}
	return summarize(timeline), nil
}

// summarize folds a timeline into totals and the length of the longest run
// of consecutive on-diet entries, in a single pass. The run length is the
// same whichever direction the timeline is scanned; an empty or all-off-diet
// history yields zero.
func summarize(timeline []model.TimelineEntry) model.Metrics {
	m := model.Metrics{Meals: len(timeline)}

	var run int
	for _, e := range timeline {
		if e.IsOnDiet {
			m.MealsOnDiet++
			run++
			if run > m.BestOnDietSequence {
				m.BestOnDietSequence = run
			}
		} else {
			m.MealsOffDiet++
			run = 0
		}
	}

	return m
}
