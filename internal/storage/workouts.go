package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/weespies87/gymapp/internal/models"
)

// CreateWorkoutEntry вставляет новую запись тренировки и возвращает её ID.
func (s *Storage) CreateWorkoutEntry(ctx context.Context, entry models.WorkoutEntry) (int64, error) {
	const op = "storage.CreateWorkoutEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO workout_entries (username, activity, sets, reps, weight)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		entry.Username, entry.Activity, entry.Sets, entry.Reps, entry.Weight).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListWorkoutEntries возвращает все записи тренировок пользователя.
func (s *Storage) ListWorkoutEntries(ctx context.Context, username string) ([]*models.WorkoutEntry, error) {
	const op = "storage.ListWorkoutEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, activity, sets, reps, weight, logged_date
			  FROM workout_entries
			  WHERE username = $1
			  ORDER BY logged_date DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.WorkoutEntry
	for rows.Next() {
		var e models.WorkoutEntry
		if err = rows.Scan(&e.ID, &e.Username, &e.Activity, &e.Sets, &e.Reps,
			&e.Weight, &e.LoggedDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListWorkoutEntriesByDate возвращает записи тренировок пользователя за указанный день.
func (s *Storage) ListWorkoutEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.WorkoutEntry, error) {
	const op = "storage.ListWorkoutEntriesByDate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, activity, sets, reps, weight, logged_date
			  FROM workout_entries
			  WHERE username = $1 AND logged_date = $2::date
			  ORDER BY id DESC`
	rows, err := s.DB.QueryContext(ctx, query, username, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.WorkoutEntry
	for rows.Next() {
		var e models.WorkoutEntry
		if err = rows.Scan(&e.ID, &e.Username, &e.Activity, &e.Sets, &e.Reps,
			&e.Weight, &e.LoggedDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
