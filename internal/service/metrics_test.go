package service

import (
	"context"
	"testing"
	"time"

	"github.com/dailydiet/dailydiet-go/internal/model"
)

func timelineFrom(flags ...bool) []model.TimelineEntry {
	entries := make([]model.TimelineEntry, len(flags))
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, onDiet := range flags {
		entries[i] = model.TimelineEntry{IsOnDiet: onDiet, Date: base.Add(time.Duration(i) * time.Hour)}
	}
	return entries
}

func reversed(entries []model.TimelineEntry) []model.TimelineEntry {
	out := make([]model.TimelineEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		timeline []model.TimelineEntry
		want     model.Metrics
	}{
		{
			name:     "empty history",
			timeline: nil,
			want:     model.Metrics{},
		},
		{
			name:     "all off diet",
			timeline: timelineFrom(false, false, false),
			want:     model.Metrics{Meals: 3, MealsOffDiet: 3},
		},
		{
			name:     "all on diet",
			timeline: timelineFrom(true, true, true),
			want:     model.Metrics{BestOnDietSequence: 3, Meals: 3, MealsOnDiet: 3},
		},
		{
			name:     "broken streak",
			timeline: timelineFrom(true, true, false, true),
			want:     model.Metrics{BestOnDietSequence: 2, Meals: 4, MealsOnDiet: 3, MealsOffDiet: 1},
		},
		{
			name:     "tied maximal runs",
			timeline: timelineFrom(true, true, false, true, true),
			want:     model.Metrics{BestOnDietSequence: 2, Meals: 5, MealsOnDiet: 4, MealsOffDiet: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.timeline); got != tt.want {
				t.Errorf("summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize_OrderDirectionInvariant(t *testing.T) {
	timelines := [][]model.TimelineEntry{
		timelineFrom(true, true, false, true),
		timelineFrom(false, true, true, true, false, true),
		timelineFrom(true),
		timelineFrom(false),
		nil,
	}

	for _, timeline := range timelines {
		forward := summarize(timeline)
		backward := summarize(reversed(timeline))
		if forward.BestOnDietSequence != backward.BestOnDietSequence {
			t.Errorf("streak not direction-invariant: forward %d, backward %d",
				forward.BestOnDietSequence, backward.BestOnDietSequence)
		}
	}
}

func TestSummarize_EmptyHistory(t *testing.T) {
	svc := newTestServices(t)
	sess := svc.register(t, "John Doe", "john@email.com")

	metrics, err := svc.metrics.Summarize(context.Background(), sess.UserID)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if metrics != (model.Metrics{}) {
		t.Errorf("expected all-zero metrics, got %+v", metrics)
	}
}

func TestSummarize_FourMealDay(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	sess := svc.register(t, "John Doe", "john@email.com")

	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	meals := []struct {
		name   string
		onDiet bool
		at     time.Duration
	}{
		{"Breakfast", true, 8 * time.Hour},
		{"Lunch", true, 12 * time.Hour},
		{"Cheese Cake", false, 14 * time.Hour},
		{"Dinner", true, 19 * time.Hour},
	}
	for _, m := range meals {
		req := mealReq(m.name, "It's a "+m.name, m.onDiet, day.Add(m.at))
		if _, err := svc.meals.Create(ctx, sess.UserID, req); err != nil {
			t.Fatalf("create %s: %v", m.name, err)
		}
	}

	metrics, err := svc.metrics.Summarize(ctx, sess.UserID)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}

	want := model.Metrics{BestOnDietSequence: 2, Meals: 4, MealsOnDiet: 3, MealsOffDiet: 1}
	if metrics != want {
		t.Errorf("Summarize() = %+v, want %+v", metrics, want)
	}
}

func TestSummarize_ScopedToOwner(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	alice := svc.register(t, "Alice", "alice@email.com")
	bob := svc.register(t, "Bob", "bob@email.com")

	if _, err := svc.meals.Create(ctx, alice.UserID, mealReq("Lunch", "It's a lunch", true, time.Now().UTC())); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	metrics, err := svc.metrics.Summarize(ctx, bob.UserID)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if metrics.Meals != 0 {
		t.Errorf("another user's meals leaked into metrics: %+v", metrics)
	}
}

func TestTimeline_MostRecentFirst(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	sess := svc.register(t, "John Doe", "john@email.com")

	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Duration{8 * time.Hour, 19 * time.Hour, 12 * time.Hour} {
		if _, err := svc.meals.Create(ctx, sess.UserID, mealReq("Meal", "A meal", true, day.Add(at))); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	entries, err := svc.metrics.Timeline(ctx, sess.UserID)
	if err != nil {
		t.Fatalf("Timeline() unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].Date.UTC().Equal(day.Add(19 * time.Hour)) {
		t.Errorf("expected most recent meal first, got %v", entries[0].Date)
	}
}
