package vision

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/sutt/travel-gateway/internal/database"
)

// Repository handles camera alert persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new camera alert
func (r *Repository) Create(ctx context.Context, alert *CameraAlert) (*CameraAlert, error) {
	dbAlert := &database.CameraAlert{
		CameraID:   alert.CameraID,
		Timestamp:  alert.Timestamp,
		AlertType:  alert.AlertType,
		Confidence: alert.Confidence,
		ImageURL:   alert.ImageURL,
		Lat:        alert.Lat,
		Lng:        alert.Lng,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.db.NewInsert().
		Model(dbAlert).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera alert: %w", err)
	}

	return &CameraAlert{
		ID:         dbAlert.ID,
		CameraID:   dbAlert.CameraID,
		Timestamp:  dbAlert.Timestamp,
		AlertType:  dbAlert.AlertType,
		Confidence: dbAlert.Confidence,
		ImageURL:   dbAlert.ImageURL,
		Lat:        dbAlert.Lat,
		Lng:        dbAlert.Lng,
		CreatedAt:  dbAlert.CreatedAt,
	}, nil
}
