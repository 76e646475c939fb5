package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/user"
)

// RateLimiter gates requests per client key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     *Service
	rateLimiter RateLimiter
	logger      *logging.Logger
}

func NewHandler(service *Service, rateLimiter RateLimiter, logger *logging.Logger) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	LanguagePref string `json:"language_pref,omitempty"`
}

// RegisterResponse represents the registration response
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new user account with name, email, and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration details"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error or email already registered"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if !h.allow(r, "register", logger) {
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	newUser, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, req.LanguagePref)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			logger.Warn("registration failed: email already registered")
			httputil.RespondErrorWithCode(w, "Email already registered", httputil.CodeEmailRegistered, http.StatusBadRequest)
			return
		}
		if isValidationError(err) {
			logger.Warn("registration failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidation, http.StatusBadRequest)
			return
		}
		logger.Error("registration failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user registered", "user_id", newUser.ID)

	httputil.RespondJSON(w, RegisterResponse{
		UserID: newUser.ID,
		Email:  newUser.Email,
		Name:   newUser.Name,
	}, http.StatusCreated)
}

// Token handles the OAuth2 password-grant style login. The body is
// form-encoded with username (the email) and password fields.
// @Summary      Obtain an access token
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "Email"
// @Param        password formData string true "Password"
// @Success      200 {object} AuthToken
// @Failure      400 {object} httputil.ErrorResponse "Incorrect email or password"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Router       /auth/token [post]
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if !h.allow(r, "token", logger) {
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid token request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// Same message for unknown user and wrong password, to
			// avoid account enumeration.
			logger.Warn("login failed: invalid credentials")
			httputil.RespondErrorWithCode(w, "Incorrect email or password", httputil.CodeInvalidCredentials, http.StatusBadRequest)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in", "email", email)

	httputil.RespondJSON(w, token, http.StatusOK)
}

// allow applies the per-IP rate limit. Limiter failures are logged and fail
// open so Redis downtime does not lock everyone out.
func (h *Handler) allow(r *http.Request, purpose string, logger *logging.Logger) bool {
	if h.rateLimiter == nil {
		return true
	}

	ip := getClientIP(r)
	allowed, err := h.rateLimiter.Allow(r.Context(), purpose+":"+ip)
	if err != nil {
		logger.Error("failed to check rate limit", "error", err.Error())
		return true
	}
	if !allowed {
		logger.Warn("rate limit exceeded", "purpose", purpose, "ip", ip)
	}
	return allowed
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrInvalidEmailFormat) ||
		errors.Is(err, ErrPasswordRequired)
}

// getClientIP returns the remote address without the port. The RealIP
// middleware has already folded X-Forwarded-For into RemoteAddr.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
