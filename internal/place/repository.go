package place

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/sutt/travel-gateway/internal/database"
)

var ErrNotFound = errors.New("place not found")

// Repository handles place persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new place
func (r *Repository) Create(ctx context.Context, p *Place) (*Place, error) {
	dbPlace := &database.Place{
		Name:             p.Name,
		Lat:              p.Lat,
		Lng:              p.Lng,
		Type:             p.Type,
		Rating:           p.Rating,
		CapacityEstimate: p.CapacityEstimate,
	}

	_, err := r.db.NewInsert().
		Model(dbPlace).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	return mapDBPlaceToModel(dbPlace), nil
}

// GetByID retrieves a place by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Place, error) {
	dbPlace := new(database.Place)
	err := r.db.NewSelect().
		Model(dbPlace).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get place by id: %w", err)
	}

	return mapDBPlaceToModel(dbPlace), nil
}

// ListTopRated returns up to limit places ordered by rating descending.
// Unrated places sort last.
func (r *Repository) ListTopRated(ctx context.Context, limit int) ([]*Place, error) {
	var dbPlaces []*database.Place
	err := r.db.NewSelect().
		Model(&dbPlaces).
		OrderExpr("rating DESC NULLS LAST").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	places := make([]*Place, 0, len(dbPlaces))
	for _, dbp := range dbPlaces {
		places = append(places, mapDBPlaceToModel(dbp))
	}
	return places, nil
}

// mapDBPlaceToModel converts database model to domain model
func mapDBPlaceToModel(dbp *database.Place) *Place {
	return &Place{
		ID:               dbp.ID,
		Name:             dbp.Name,
		Lat:              dbp.Lat,
		Lng:              dbp.Lng,
		Type:             dbp.Type,
		Rating:           dbp.Rating,
		CapacityEstimate: dbp.CapacityEstimate,
	}
}
