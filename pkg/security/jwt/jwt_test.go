package jwt

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storekit/backend/pkg/user"
)

func parseClaims(t *testing.T, token, secret string) *Claims {
	t.Helper()
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	return claims
}

func TestIssue_DefaultTier(t *testing.T) {
	g := NewIssuer("secret", "store-admin")
	u := user.User{ID: 42, Email: "a@example.com"}

	tok, err := g.Issue(context.Background(), u, false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok.ExpiresIn != "1h" {
		t.Fatalf("ExpiresIn = %q, want %q", tok.ExpiresIn, "1h")
	}

	claims := parseClaims(t, tok.AccessToken, "secret")
	if claims.Subject != "42" {
		t.Errorf("sub = %q, want %q", claims.Subject, "42")
	}
	if claims.Email != "a@example.com" {
		t.Errorf("email = %q, want %q", claims.Email, "a@example.com")
	}
	if claims.Issuer != "store-admin" {
		t.Errorf("iss = %q, want %q", claims.Issuer, "store-admin")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != defaultTTL {
		t.Errorf("ttl = %v, want %v", ttl, defaultTTL)
	}
}

func TestIssue_ExtendedTier(t *testing.T) {
	g := NewIssuer("secret", "store-admin")

	tok, err := g.Issue(context.Background(), user.User{ID: 7, Email: "b@example.com"}, true)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok.ExpiresIn != "7d" {
		t.Fatalf("ExpiresIn = %q, want %q", tok.ExpiresIn, "7d")
	}
	claims := parseClaims(t, tok.AccessToken, "secret")
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != extendedTTL {
		t.Errorf("ttl = %v, want %v", got, extendedTTL)
	}
}

func TestIssue_WrongSecretFailsVerification(t *testing.T) {
	g := NewIssuer("right-secret", "store-admin")
	tok, err := g.Issue(context.Background(), user.User{ID: 1, Email: "c@example.com"}, false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tok.AccessToken, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}
