package model

import "time"

// Meal represents a single recorded meal. Every meal is owned by exactly one
// user; the owner is fixed at creation and never changes.
type Meal struct {
	ID          string
	UserID      string
	Name        string
	Description string
	IsOnDiet    bool
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MealRequest represents a meal create or update payload.
type MealRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsOnDiet    bool     `json:"isOnDiet"`
	Date        DateTime `json:"date"`
}

// MealSummary is the list-view projection of a meal.
type MealSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	IsOnDiet bool      `json:"isOnDiet"`
	Date     time.Time `json:"date"`
}

// MealListResponse wraps the meal list view.
type MealListResponse struct {
	Meals []MealSummary `json:"meals"`
}

// MealResponse is the detail-view projection of a meal.
type MealResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOnDiet    bool      `json:"isOnDiet"`
	Date        time.Time `json:"date"`
}

// MealDetailResponse wraps the meal detail view.
type MealDetailResponse struct {
	Meal MealResponse `json:"meal"`
}

// TimelineEntry is the slice of a meal the metrics engine consumes.
type TimelineEntry struct {
	IsOnDiet bool
	Date     time.Time
}

// Metrics represents a user's adherence statistics.
type Metrics struct {
	BestOnDietSequence int `json:"bestOnDietSequence"`
	Meals              int `json:"meals"`
	MealsOnDiet        int `json:"mealsOnDiet"`
	MealsOffDiet       int `json:"mealsOffDiet"`
}

// MetricsResponse wraps the metrics view.
type MetricsResponse struct {
	Metrics Metrics `json:"metrics"`
}
