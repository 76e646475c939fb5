package itinerary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/place"
)

// ErrNoDates is returned when a generation request carries no dates.
var ErrNoDates = errors.New("at least one date is required")

const (
	candidatePoolSize = 50
	maxSelectedPlaces = 5
)

// PlaceLister is the slice of the place store the recommender needs.
type PlaceLister interface {
	ListTopRated(ctx context.Context, limit int) ([]*place.Place, error)
}

// ItineraryStore persists generated itineraries.
type ItineraryStore interface {
	Create(ctx context.Context, it *Itinerary) (*Itinerary, error)
}

// Service is the mock recommender: it picks the top-rated places and scores
// the result by how many it found.
type Service struct {
	places      PlaceLister
	itineraries ItineraryStore
}

func NewService(places PlaceLister, itineraries ItineraryStore) *Service {
	return &Service{places: places, itineraries: itineraries}
}

// Generate builds and persists an itinerary for the user over the given
// dates. Up to five top-rated places are selected; the trip spans the
// earliest through the latest requested date. Score is 0.5 plus 0.1 per
// selected place.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, dates []time.Time) (*Itinerary, error) {
	if len(dates) == 0 {
		return nil, ErrNoDates
	}

	candidates, err := s.places.ListTopRated(ctx, candidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	n := len(candidates)
	if n > maxSelectedPlaces {
		n = maxSelectedPlaces
	}
	selected := make([]uuid.UUID, 0, n)
	for _, p := range candidates[:n] {
		selected = append(selected, p.ID)
	}

	start, end := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}

	it := &Itinerary{
		UserID:    userID,
		Places:    selected,
		StartDate: start,
		EndDate:   end,
		Score:     0.5 + float64(len(selected))*0.1,
	}

	created, err := s.itineraries.Create(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("failed to store itinerary: %w", err)
	}

	return created, nil
}
