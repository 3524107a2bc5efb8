package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/backend/pkg/apperr"
)

// Directory exposes account lookup and creation over the credential store.
type Directory interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, email, password string) (User, error)
}

type directory struct {
	repo Repository
	log  zerolog.Logger
}

// NewDirectory returns the default Directory implementation.
func NewDirectory(repo Repository, log zerolog.Logger) Directory {
	return &directory{repo: repo, log: log.With().Str("component", "user_directory").Logger()}
}

func (d *directory) FindByID(ctx context.Context, id int64) (User, error) {
	return d.repo.FindByID(ctx, id)
}

func (d *directory) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.repo.FindByEmail(ctx, email)
}

// Create hashes the password and persists the account. A store-level unique
// violation surfaces as ErrEmailTaken; the primary uniqueness check lives in
// the auth flow, this one catches the concurrent-register race.
func (d *directory) Create(ctx context.Context, email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(apperr.Internal, "failed to register user", err)
	}
	created, err := d.repo.Create(ctx, User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, err
		}
		d.log.Error().Err(err).Str("email", email).Msg("create user failed")
		return User{}, apperr.Wrap(apperr.Internal, "failed to register user", err)
	}
	return created, nil
}
