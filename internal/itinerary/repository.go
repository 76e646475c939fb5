package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/sutt/travel-gateway/internal/database"
)

// Repository handles itinerary persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new itinerary
func (r *Repository) Create(ctx context.Context, it *Itinerary) (*Itinerary, error) {
	dbItinerary := &database.Itinerary{
		UserID:    it.UserID,
		Places:    it.Places,
		StartDate: it.StartDate,
		EndDate:   it.EndDate,
		Score:     it.Score,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.NewInsert().
		Model(dbItinerary).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}

	return &Itinerary{
		ID:        dbItinerary.ID,
		UserID:    dbItinerary.UserID,
		Places:    dbItinerary.Places,
		StartDate: dbItinerary.StartDate,
		EndDate:   dbItinerary.EndDate,
		Score:     dbItinerary.Score,
		CreatedAt: dbItinerary.CreatedAt,
	}, nil
}
