package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dailydiet/dailydiet-go/internal/model"
)

var ErrMealNotFound = errors.New("meal not found")

// MealRepository handles meal persistence operations. Every query is scoped
// by the owning user id; a meal id alone never matches, so a meal that
// belongs to another user is indistinguishable from one that does not exist.
type MealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new MealRepository.
func NewMealRepository(db *sql.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create inserts a new meal owned by meal.UserID.
func (r *MealRepository) Create(ctx context.Context, meal *model.Meal) error {
	query := `INSERT INTO meals (id, user_id, name, description, is_on_diet, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.IsOnDiet, meal.Date, meal.CreatedAt, meal.UpdatedAt,
	)
	return err
}

// GetByID retrieves a meal by id within the owner's partition.
func (r *MealRepository) GetByID(ctx context.Context, userID, mealID string) (*model.Meal, error) {
	query := `SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals WHERE user_id = ? AND id = ?`

	meal := &model.Meal{}
	err := r.db.QueryRowContext(ctx, query, userID, mealID).Scan(
		&meal.ID, &meal.UserID, &meal.Name, &meal.Description, &meal.IsOnDiet,
		&meal.Date, &meal.CreatedAt, &meal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	return meal, nil
}

// Update replaces the mutable fields of a meal in a single conditional
// statement. A zero affected-row count means the meal is absent from the
// owner's partition; there is no separate existence check to race against.
func (r *MealRepository) Update(ctx context.Context, meal *model.Meal) error {
	query := `UPDATE meals SET name = ?, description = ?, is_on_diet = ?, date = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`

	meal.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		meal.Name, meal.Description, meal.IsOnDiet, meal.Date, meal.UpdatedAt, meal.UserID, meal.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMealNotFound
	}

	return nil
}

// Delete removes a meal from the owner's partition. Deleting an id that is
// absent, already deleted, or owned by someone else reports ErrMealNotFound.
func (r *MealRepository) Delete(ctx context.Context, userID, mealID string) error {
	query := `DELETE FROM meals WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, mealID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMealNotFound
	}

	return nil
}

// ListByUser retrieves all meals owned by a user in storage order.
func (r *MealRepository) ListByUser(ctx context.Context, userID string) ([]model.Meal, error) {
	query := `SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []model.Meal
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Description, &m.IsOnDiet,
			&m.Date, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}

	return meals, rows.Err()
}

// Timeline retrieves the diet flags of a user's meals ordered by meal date
// descending, most recent first. Insertion time breaks date ties.
func (r *MealRepository) Timeline(ctx context.Context, userID string) ([]model.TimelineEntry, error) {
	query := `SELECT is_on_diet, date FROM meals WHERE user_id = ? ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TimelineEntry
	for rows.Next() {
		var e model.TimelineEntry
		if err := rows.Scan(&e.IsOnDiet, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
