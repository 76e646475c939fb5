package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// UserStore is the slice of the credential store the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, languagePref string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// AuthToken is the bearer token issued on successful login.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service handles authentication business logic
type Service struct {
	users        UserStore
	tokenService TokenService
	logger       *logging.Logger
	tokenTTL     time.Duration
}

func NewService(users UserStore, tokenService TokenService, logger *logging.Logger, tokenTTL time.Duration) *Service {
	return &Service{
		users:        users,
		tokenService: tokenService,
		logger:       logger,
		tokenTTL:     tokenTTL,
	}
}

// Register creates a new user account. Uniqueness of the email is enforced
// by the store; a conflict surfaces as user.ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, name, email, password, languagePref string) (*user.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, name, email, passwordHash, languagePref)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login authenticates a user and issues an access token. Unknown email and
// wrong password both map to ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthToken, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokenService.IssueToken(existingUser.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthToken{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}
