package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the users table model. Email carries a unique index; duplicate
// registrations surface as a unique-constraint violation at insert time
// rather than being pre-checked.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name         string    `bun:"name,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	LanguagePref string    `bun:"language_pref,notnull,default:'en'"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Place is the places table model.
type Place struct {
	bun.BaseModel `bun:"table:places"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name             string    `bun:"name,notnull"`
	Lat              float64   `bun:"lat,notnull"`
	Lng              float64   `bun:"lng,notnull"`
	Type             *string   `bun:"type"`
	Rating           *float64  `bun:"rating"`
	CapacityEstimate *int      `bun:"capacity_estimate"`
}

// Itinerary is the itineraries table model. Places holds the ordered place
// IDs selected for the trip.
type Itinerary struct {
	bun.BaseModel `bun:"table:itineraries"`

	ID        uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    uuid.UUID   `bun:"user_id,notnull,type:uuid"`
	Places    []uuid.UUID `bun:"places,array"`
	StartDate time.Time   `bun:"start_date,notnull"`
	EndDate   time.Time   `bun:"end_date,notnull"`
	Score     float64     `bun:"score,notnull"`
	CreatedAt time.Time   `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// CameraAlert is the camera_alerts table model for vision-pipeline intake.
type CameraAlert struct {
	bun.BaseModel `bun:"table:camera_alerts"`

	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CameraID   string    `bun:"camera_id,notnull"`
	Timestamp  time.Time `bun:"timestamp,notnull"`
	AlertType  string    `bun:"alert_type,notnull"`
	Confidence *float64  `bun:"confidence"`
	ImageURL   *string   `bun:"image_url"`
	Lat        *float64  `bun:"lat"`
	Lng        *float64  `bun:"lng"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
