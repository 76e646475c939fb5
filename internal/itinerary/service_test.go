package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutt/travel-gateway/internal/place"
)

type fakePlaceLister struct {
	places []*place.Place
}

func (f *fakePlaceLister) ListTopRated(_ context.Context, limit int) ([]*place.Place, error) {
	if len(f.places) > limit {
		return f.places[:limit], nil
	}
	return f.places, nil
}

type fakeItineraryStore struct {
	created *Itinerary
}

func (f *fakeItineraryStore) Create(_ context.Context, it *Itinerary) (*Itinerary, error) {
	stored := *it
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	f.created = &stored
	return &stored, nil
}

func ratedPlace(rating float64) *place.Place {
	return &place.Place{ID: uuid.New(), Name: "p", Rating: &rating}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGenerate_SelectsTopFive(t *testing.T) {
	lister := &fakePlaceLister{}
	for i := 0; i < 8; i++ {
		lister.places = append(lister.places, ratedPlace(float64(5-i%5)))
	}
	store := &fakeItineraryStore{}
	svc := NewService(lister, store)

	userID := uuid.New()
	it, err := svc.Generate(context.Background(), userID, []time.Time{date("2026-09-01")})
	require.NoError(t, err)

	assert.Len(t, it.Places, 5)
	assert.Equal(t, userID, it.UserID)
	assert.InDelta(t, 1.0, it.Score, 1e-9)
	require.NotNil(t, store.created)
	assert.Equal(t, it.ID, store.created.ID)
}

func TestGenerate_FewerPlacesThanLimit(t *testing.T) {
	lister := &fakePlaceLister{places: []*place.Place{ratedPlace(4), ratedPlace(2)}}
	svc := NewService(lister, &fakeItineraryStore{})

	it, err := svc.Generate(context.Background(), uuid.New(), []time.Time{date("2026-09-01")})
	require.NoError(t, err)

	assert.Len(t, it.Places, 2)
	assert.InDelta(t, 0.7, it.Score, 1e-9)
}

func TestGenerate_NoPlaces(t *testing.T) {
	svc := NewService(&fakePlaceLister{}, &fakeItineraryStore{})

	it, err := svc.Generate(context.Background(), uuid.New(), []time.Time{date("2026-09-01")})
	require.NoError(t, err)

	assert.Empty(t, it.Places)
	assert.InDelta(t, 0.5, it.Score, 1e-9)
}

func TestGenerate_DateSpan(t *testing.T) {
	svc := NewService(&fakePlaceLister{}, &fakeItineraryStore{})

	dates := []time.Time{date("2026-09-03"), date("2026-09-01"), date("2026-09-05")}
	it, err := svc.Generate(context.Background(), uuid.New(), dates)
	require.NoError(t, err)

	assert.Equal(t, date("2026-09-01"), it.StartDate)
	assert.Equal(t, date("2026-09-05"), it.EndDate)
}

func TestGenerate_NoDates(t *testing.T) {
	svc := NewService(&fakePlaceLister{}, &fakeItineraryStore{})

	_, err := svc.Generate(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNoDates)
}
