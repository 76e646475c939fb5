package forecast

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/place"
)

// Handler contains HTTP handlers for forecast endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Next7 handles the 7-day visitor-flow forecast lookup
// @Summary      7-day visitor-flow forecast
// @Description  Predicted daily visitor flow for a place over the next week
// @Tags         forecast
// @Produce      json
// @Param        place_id query string true "Place ID"
// @Security     BearerAuth
// @Success      200 {object} Forecast
// @Failure      400 {object} httputil.ErrorResponse "Missing or malformed place_id"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Place not found"
// @Router       /api/forecast/next7 [get]
func (h *Handler) Next7(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	placeID, err := uuid.Parse(r.URL.Query().Get("place_id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "place_id must be a valid id", httputil.CodeValidation, http.StatusBadRequest)
		return
	}

	fc, err := h.service.Next7(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, place.ErrNotFound) {
			httputil.RespondErrorWithCode(w, "Place not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("forecast failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to build forecast", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, fc, http.StatusOK)
}
