package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/backend/pkg/apperr"
	"github.com/storekit/backend/pkg/user"
)

// ErrInvalidCredentials is deliberately identical for an unknown email and a
// wrong password so responses carry no oracle for which part failed.
var ErrInvalidCredentials = apperr.New(apperr.Unauthorized, "invalid credentials")

// UseCase describes registration and login behavior.
type UseCase interface {
	Register(ctx context.Context, email, password string) (user.User, error)
	ValidateCredentials(ctx context.Context, email, password string) (user.User, error)
	IssueToken(ctx context.Context, u user.User, extended bool) (Token, error)
}

type service struct {
	users  user.Directory
	tokens TokenIssuer
	log    zerolog.Logger
}

// NewService returns the default implementation of UseCase.
func NewService(users user.Directory, tokens TokenIssuer, log zerolog.Logger) UseCase {
	return &service{users: users, tokens: tokens, log: log.With().Str("component", "auth").Logger()}
}

// Register creates a new account. The existence check here is a fast path;
// the authoritative uniqueness guard is the store's unique constraint, which
// the directory maps back onto the same conflict error.
func (s *service) Register(ctx context.Context, email, password string) (user.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return user.User{}, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		s.log.Error().Err(err).Str("email", email).Msg("register lookup failed")
		return user.User{}, apperr.Wrap(apperr.Internal, "failed to register user", err)
	}
	return s.users.Create(ctx, email, password)
}

// ValidateCredentials returns the account iff email and password match a
// stored pair.
func (s *service) ValidateCredentials(ctx context.Context, email, password string) (user.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		s.log.Error().Err(err).Str("email", email).Msg("credential lookup failed")
		return user.User{}, apperr.Wrap(apperr.Internal, "failed to login", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken signs a bearer token for the account. extended selects the
// remember-me tier (7d) over the default (1h).
func (s *service) IssueToken(ctx context.Context, u user.User, extended bool) (Token, error) {
	tok, err := s.tokens.Issue(ctx, u, extended)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", u.ID).Msg("token issuance failed")
		return Token{}, apperr.Wrap(apperr.Internal, "failed to login", err)
	}
	return tok, nil
}
