package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/weespies87/gymapp/internal/models"
)

// CreateCardioEntry вставляет новую запись кардио и возвращает её ID.
func (s *Storage) CreateCardioEntry(ctx context.Context, entry models.CardioEntry) (int64, error) {
	const op = "storage.CreateCardioEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO cardio_entries (username, activity, distance, duration)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		entry.Username, entry.Activity, entry.Distance, entry.Duration).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCardioEntriesByDate возвращает записи кардио пользователя за указанный день.
func (s *Storage) ListCardioEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.CardioEntry, error) {
	const op = "storage.ListCardioEntriesByDate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, activity, distance, duration, speed, logged_date
			  FROM cardio_entries
			  WHERE username = $1 AND logged_date = $2::date
			  ORDER BY id DESC`
	rows, err := s.DB.QueryContext(ctx, query, username, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.CardioEntry
	for rows.Next() {
		var e models.CardioEntry
		var speed sql.NullFloat64
		if err = rows.Scan(&e.ID, &e.Username, &e.Activity, &e.Distance,
			&e.Duration, &speed, &e.LoggedDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if speed.Valid {
			e.Speed = &speed.Float64
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
