package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
)

// stubLimiter returns a fixed decision.
type stubLimiter struct {
	allowed bool
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, nil
}

func newAuthRouter(t *testing.T, limiter RateLimiter) (chi.Router, *fakeUserStore) {
	t.Helper()

	store := newFakeUserStore()
	logger := logging.NewLogger(true)
	tokenService := NewJWTService(testSecret)
	service := NewService(store, tokenService, logger, 24*time.Hour)
	handler := NewHandler(service, limiter, logger)
	mw := NewMiddleware(tokenService, store)

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/token", handler.Token)
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)
		r.Get("/api/me", func(w http.ResponseWriter, req *http.Request) {
			u, _ := UserFromContext(req.Context())
			httputil.RespondJSON(w, map[string]string{"email": u.Email}, http.StatusOK)
		})
	})

	return r, store
}

func postJSON(router http.Handler, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: true})

	rec := postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123secret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "ann@x.com", resp.Email)
	assert.Equal(t, "Ann", resp.Name)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: true})

	rec := postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Email already registered", resp.Error)
	assert.Equal(t, httputil.CodeEmailRegistered, resp.Code)
}

func TestRegisterEndpoint_InvalidBody(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: true})

	rec := postJSON(router, "/auth/register", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint_RateLimited(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: false})

	rec := postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123secret"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestTokenEndpoint_BadCredentials(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: true})

	rec := postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Unknown user and wrong password produce identical responses
	unknown := postForm(router, "/auth/token", url.Values{"username": {"nobody@x.com"}, "password": {"pw123secret"}})
	wrongPw := postForm(router, "/auth/token", url.Values{"username": {"ann@x.com"}, "password": {"wrongpw12"}})

	for _, rec := range []*httptest.ResponseRecorder{unknown, wrongPw} {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp httputil.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Incorrect email or password", resp.Error)
	}
}

// Full flow: register, exchange credentials for a token, use the token on a
// protected route.
func TestAuthFlow(t *testing.T) {
	router, _ := newAuthRouter(t, &stubLimiter{allowed: true})

	rec := postJSON(router, "/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postForm(router, "/auth/token", url.Values{"username": {"ann@x.com"}, "password": {"pw123"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var token AuthToken
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&token))
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	protected := httptest.NewRecorder()
	router.ServeHTTP(protected, req)

	require.Equal(t, http.StatusOK, protected.Code)
	var me map[string]string
	require.NoError(t, json.NewDecoder(protected.Body).Decode(&me))
	assert.Equal(t, "ann@x.com", me["email"])
}
