package storage

import (
	"context"
	"fmt"

	"github.com/weespies87/gymapp/internal/models"
)

// CreateMeasurement вставляет новый набор замеров и возвращает его ID.
func (s *Storage) CreateMeasurement(ctx context.Context, m models.Measurement) (int64, error) {
	const op = "storage.CreateMeasurement"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO measurements (username, height, weight, weight_goal,
			      arms, thighs, waist, hips)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		m.Username, m.Height, m.Weight, m.WeightGoal,
		m.Arms, m.Thighs, m.Waist, m.Hips).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMeasurements возвращает историю замеров пользователя.
func (s *Storage) ListMeasurements(ctx context.Context, username string) ([]*models.Measurement, error) {
	const op = "storage.ListMeasurements"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, height, weight, weight_goal, arms, thighs,
			      waist, hips, created_at
			  FROM measurements
			  WHERE username = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err = rows.Scan(&m.ID, &m.Username, &m.Height, &m.Weight, &m.WeightGoal,
			&m.Arms, &m.Thighs, &m.Waist, &m.Hips, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
