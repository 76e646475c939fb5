package vision

import (
	"time"

	"github.com/google/uuid"
)

// CameraAlert is a camera-detected event ingested from the vision pipeline.
type CameraAlert struct {
	ID         uuid.UUID `json:"id"`
	CameraID   string    `json:"camera_id"`
	Timestamp  time.Time `json:"timestamp"`
	AlertType  string    `json:"alert_type"`
	Confidence *float64  `json:"confidence,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
