package itinerary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutt/travel-gateway/internal/auth"
	"github.com/sutt/travel-gateway/internal/user"
)

func postGenerate(handler *Handler, body string, u *user.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if u != nil {
		req = req.WithContext(auth.ContextWithUser(req.Context(), u))
	}
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)
	return rec
}

func TestGenerateHandler(t *testing.T) {
	svc := NewService(&fakePlaceLister{}, &fakeItineraryStore{})
	handler := NewHandler(svc)
	currentUser := &user.User{ID: uuid.New(), Email: "ann@x.com"}

	rec := postGenerate(handler, `{"dates": ["2026-09-02", "2026-09-01"], "preferences": {}}`, currentUser)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, currentUser.ID, resp.UserID)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2026-09-02", resp.EndDate)
}

func TestGenerateHandler_Unauthenticated(t *testing.T) {
	handler := NewHandler(NewService(&fakePlaceLister{}, &fakeItineraryStore{}))

	rec := postGenerate(handler, `{"dates": ["2026-09-01"]}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateHandler_BadDateFormat(t *testing.T) {
	handler := NewHandler(NewService(&fakePlaceLister{}, &fakeItineraryStore{}))
	currentUser := &user.User{ID: uuid.New(), Email: "ann@x.com"}

	rec := postGenerate(handler, `{"dates": ["02-09-2026"]}`, currentUser)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateHandler_NoDates(t *testing.T) {
	handler := NewHandler(NewService(&fakePlaceLister{}, &fakeItineraryStore{}))
	currentUser := &user.User{ID: uuid.New(), Email: "ann@x.com"}

	rec := postGenerate(handler, `{"dates": []}`, currentUser)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
