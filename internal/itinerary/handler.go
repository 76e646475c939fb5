package itinerary

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/auth"
	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
)

const dateLayout = "2006-01-02"

// Handler contains HTTP handlers for itinerary endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateRequest represents the itinerary generation request body
type GenerateRequest struct {
	Dates       []string       `json:"dates"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// GenerateResponse represents the generated itinerary
type GenerateResponse struct {
	ItineraryID uuid.UUID   `json:"itinerary_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Places      []uuid.UUID `json:"places"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Score       float64     `json:"score"`
}

// Generate handles itinerary generation for the authenticated user
// @Summary      Generate an itinerary
// @Description  Build a trip itinerary from the top-rated places for the given dates
// @Tags         itinerary
// @Accept       json
// @Produce      json
// @Param        request body GenerateRequest true "Trip dates and preferences"
// @Security     BearerAuth
// @Success      200 {object} GenerateResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid request"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /api/itinerary/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	currentUser, ok := auth.UserFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid itinerary request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, ds := range req.Dates {
		d, err := time.Parse(dateLayout, ds)
		if err != nil {
			httputil.RespondErrorWithCode(w, "dates must be formatted YYYY-MM-DD", httputil.CodeValidation, http.StatusBadRequest)
			return
		}
		dates = append(dates, d)
	}

	it, err := h.service.Generate(r.Context(), currentUser.ID, dates)
	if err != nil {
		if errors.Is(err, ErrNoDates) {
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidation, http.StatusBadRequest)
			return
		}
		logger.Error("itinerary generation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to generate itinerary", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("itinerary generated", "itinerary_id", it.ID, "places", len(it.Places))

	httputil.RespondJSON(w, GenerateResponse{
		ItineraryID: it.ID,
		UserID:      it.UserID,
		Places:      it.Places,
		StartDate:   it.StartDate.Format(dateLayout),
		EndDate:     it.EndDate.Format(dateLayout),
		Score:       it.Score,
	}, http.StatusOK)
}
