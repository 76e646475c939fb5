package itinerary

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Places    []uuid.UUID `json:"places"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Score     float64     `json:"score"`
	CreatedAt time.Time   `json:"created_at"`
}
