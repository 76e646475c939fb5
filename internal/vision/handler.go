package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
)

// AlertStore persists ingested camera alerts.
type AlertStore interface {
	Create(ctx context.Context, alert *CameraAlert) (*CameraAlert, error)
}

// Handler contains HTTP handlers for vision alert intake
type Handler struct {
	alerts AlertStore
}

func NewHandler(alerts AlertStore) *Handler {
	return &Handler{alerts: alerts}
}

// AlertRequest represents an incoming camera alert
type AlertRequest struct {
	CameraID   string    `json:"camera_id"`
	Timestamp  time.Time `json:"timestamp"`
	AlertType  string    `json:"alert_type"`
	Confidence float64   `json:"confidence"`
	Coords     *Coords   `json:"coords,omitempty"`
}

// Coords is an optional lat/lng pair attached to an alert
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AlertAck acknowledges a stored alert
type AlertAck struct {
	Status  string    `json:"status"`
	AlertID uuid.UUID `json:"alert_id"`
}

// Ingest handles camera alert intake
// @Summary      Ingest a camera alert
// @Description  Store a camera-detected alert from the vision pipeline
// @Tags         vision
// @Accept       json
// @Produce      json
// @Param        request body AlertRequest true "Camera alert"
// @Security     BearerAuth
// @Success      200 {object} AlertAck
// @Failure      400 {object} httputil.ErrorResponse "Invalid request"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /api/vision/alerts [post]
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid alert request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if req.CameraID == "" || req.AlertType == "" || req.Timestamp.IsZero() {
		httputil.RespondErrorWithCode(w, "camera_id, timestamp, and alert_type are required", httputil.CodeValidation, http.StatusBadRequest)
		return
	}

	alert := &CameraAlert{
		CameraID:   req.CameraID,
		Timestamp:  req.Timestamp,
		AlertType:  req.AlertType,
		Confidence: &req.Confidence,
	}
	if req.Coords != nil {
		alert.Lat = &req.Coords.Lat
		alert.Lng = &req.Coords.Lng
	}

	stored, err := h.alerts.Create(r.Context(), alert)
	if err != nil {
		logger.Error("failed to store camera alert", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to store alert", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("camera alert stored", "alert_id", stored.ID, "camera_id", stored.CameraID, "alert_type", stored.AlertType)

	httputil.RespondJSON(w, AlertAck{Status: "ok", AlertID: stored.ID}, http.StatusOK)
}
