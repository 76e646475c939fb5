package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/place"
)

const forecastDays = 7

// DailyFlow is the predicted visitor flow for a single day.
type DailyFlow struct {
	Date string `json:"date"`
	Flow int    `json:"flow"`
}

// Forecast is the 7-day visitor-flow prediction for a place.
type Forecast struct {
	PlaceID uuid.UUID   `json:"place_id"`
	Daily   []DailyFlow `json:"daily"`
}

// PlaceGetter is the slice of the place store the forecaster needs.
type PlaceGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*place.Place, error)
}

// ResultCache is a read-through cache for computed forecasts.
type ResultCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Service produces a synthetic visitor-flow forecast derived from a place's
// rating. A stand-in for a real weather/crowd model.
type Service struct {
	places PlaceGetter
	cache  ResultCache
	logger *logging.Logger
	now    func() time.Time
}

func NewService(places PlaceGetter, cache ResultCache, logger *logging.Logger) *Service {
	return &Service{
		places: places,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Next7 returns the 7-day forecast for a place starting today (UTC).
// Base flow is rating x 100, rising by 5 per day out. Results are cached;
// cache failures degrade to recomputation.
func (s *Service) Next7(ctx context.Context, placeID uuid.UUID) (*Forecast, error) {
	cacheKey := fmt.Sprintf("next7:%s:%s", placeID, s.now().UTC().Format("2006-01-02"))

	if s.cache != nil {
		var cached Forecast
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("forecast cache read failed", "error", err.Error())
		} else if hit {
			return &cached, nil
		}
	}

	target, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, place.ErrNotFound) {
			return nil, place.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}

	baseFlow := int(target.RatingOrDefault() * 100)
	today := s.now().UTC()

	daily := make([]DailyFlow, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		day := today.AddDate(0, 0, i)
		daily = append(daily, DailyFlow{
			Date: day.Format("2006-01-02"),
			Flow: baseFlow + i*5,
		})
	}

	result := &Forecast{PlaceID: placeID, Daily: daily}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.logger.Warn("forecast cache write failed", "error", err.Error())
		}
	}

	return result, nil
}
