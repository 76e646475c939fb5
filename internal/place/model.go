package place

import "github.com/google/uuid"

type Place struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	Type             *string   `json:"type,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	CapacityEstimate *int      `json:"capacity_estimate,omitempty"`
}

// RatingOrDefault returns the place rating, falling back to 3 when unrated.
// Unrated places are treated as mid-range by the forecast model.
func (p *Place) RatingOrDefault() float64 {
	if p.Rating == nil {
		return 3
	}
	return *p.Rating
}
