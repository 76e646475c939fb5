package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/sutt/travel-gateway/internal/database"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the credential-store adapter over the users collection.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Email uniqueness is enforced by the unique
// index on users.email, so two concurrent registrations for the same email
// cannot both succeed; the loser gets ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, name, email, passwordHash, languagePref string) (*User, error) {
	if languagePref == "" {
		languagePref = "en"
	}

	dbUser := &database.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		LanguagePref: languagePref,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email. The match is exact and
// case-sensitive; addresses are stored as given.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID,
		Name:         dbu.Name,
		Email:        dbu.Email,
		PasswordHash: dbu.PasswordHash,
		LanguagePref: dbu.LanguagePref,
		CreatedAt:    dbu.CreatedAt,
	}
}
