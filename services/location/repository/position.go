package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// PositionRepo provides PostgreSQL persistence for position samples
type PositionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(cfg *models.Config, db *sqlx.DB) *PositionRepo {
	return &PositionRepo{
		cfg: cfg,
		db:  db,
	}
}

// positionRow is the flat scan target for position_samples
type positionRow struct {
	ID         int64     `db:"id"`
	AlertID    string    `db:"alert_id"`
	Latitude   float64   `db:"latitude"`
	Longitude  float64   `db:"longitude"`
	Accuracy   float64   `db:"accuracy"`
	Speed      float64   `db:"speed"`
	Heading    float64   `db:"heading"`
	Geohash    string    `db:"geohash"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (r positionRow) toSample() *models.PositionSample {
	return &models.PositionSample{
		ID:      r.ID,
		AlertID: r.AlertID,
		Position: models.Position{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Accuracy:  r.Accuracy,
			Speed:     r.Speed,
			Heading:   r.Heading,
			Timestamp: r.RecordedAt,
		},
		Geohash:    r.Geohash,
		RecordedAt: r.RecordedAt,
	}
}

// AppendPosition inserts an immutable position sample row
func (r *PositionRepo) AppendPosition(ctx context.Context, sample *models.PositionSample) error {
	query := `
		INSERT INTO position_samples (
			alert_id, latitude, longitude, accuracy, speed, heading, geohash, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		sample.AlertID,
		sample.Position.Latitude,
		sample.Position.Longitude,
		sample.Position.Accuracy,
		sample.Position.Speed,
		sample.Position.Heading,
		sample.Geohash,
		sample.RecordedAt,
	).Scan(&sample.ID)
	if err != nil {
		return fmt.Errorf("failed to append position sample: %w", err)
	}
	return nil
}

// GetLatestPosition returns the alert's most recent sample, nil if the
// alert has no samples
func (r *PositionRepo) GetLatestPosition(ctx context.Context, alertID string) (*models.PositionSample, error) {
	query := `
		SELECT id, alert_id, latitude, longitude, accuracy, speed, heading,
			COALESCE(geohash, '') AS geohash, recorded_at
		FROM position_samples
		WHERE alert_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var row positionRow
	err := r.db.GetContext(ctx, &row, query, alertID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}
	return row.toSample(), nil
}

// GetPositionHistory returns samples in [startTime, endTime] ordered by
// recorded_at
func (r *PositionRepo) GetPositionHistory(ctx context.Context, alertID string, startTime, endTime time.Time) ([]*models.PositionSample, error) {
	query := `
		SELECT id, alert_id, latitude, longitude, accuracy, speed, heading,
			COALESCE(geohash, '') AS geohash, recorded_at
		FROM position_samples
		WHERE alert_id = $1 AND recorded_at BETWEEN $2 AND $3
		ORDER BY recorded_at ASC
	`

	var rows []positionRow
	if err := r.db.SelectContext(ctx, &rows, query, alertID, startTime, endTime); err != nil {
		return nil, fmt.Errorf("failed to get position history: %w", err)
	}

	samples := make([]*models.PositionSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, row.toSample())
	}
	return samples, nil
}
