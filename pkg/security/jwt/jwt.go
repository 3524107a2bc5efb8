package jwt

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storekit/backend/pkg/auth"
	"github.com/storekit/backend/pkg/user"
)

// TTL tiers selected by the login remember-me flag. The label is returned
// to clients verbatim.
const (
	defaultTTL   = time.Hour
	defaultLabel = "1h"

	extendedTTL   = 7 * 24 * time.Hour
	extendedLabel = "7d"
)

type Issuer struct {
	secret []byte
	issuer string
}

func NewIssuer(secret, issuer string) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer}
}

// Claims carry the account identity: subject is the decimal user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func (g *Issuer) Issue(ctx context.Context, u user.User, extended bool) (auth.Token, error) {
	ttl, label := defaultTTL, defaultLabel
	if extended {
		ttl, label = extendedTTL, extendedLabel
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: u.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return auth.Token{}, err
	}
	return auth.Token{AccessToken: signed, ExpiresIn: label}, nil
}
