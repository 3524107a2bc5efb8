package auth

import (
	"context"

	"github.com/storekit/backend/pkg/user"
)

// Token is a signed bearer token plus the TTL label chosen at issuance.
// ExpiresIn is the verbatim tier label ("1h" or "7d"), not seconds; clients
// display it as-is.
type Token struct {
	AccessToken string
	ExpiresIn   string
}

// TokenIssuer abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, u user.User, extended bool) (Token, error)
}
