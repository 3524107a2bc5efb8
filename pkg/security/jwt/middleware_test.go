package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/pkg/user"
)

func newProtectedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"email":  c.Locals("email"),
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestMiddleware_AcceptsFreshToken(t *testing.T) {
	g := NewIssuer("secret", "store-admin")
	tok, err := g.Issue(context.Background(), user.User{ID: 9, Email: "a@example.com"}, false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	app := newProtectedApp("secret", "store-admin")
	resp := request(t, app, "Bearer "+tok.AccessToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	app := newProtectedApp("secret", "store-admin")
	resp := request(t, app, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestMiddleware_RejectsTamperedToken(t *testing.T) {
	g := NewIssuer("secret", "store-admin")
	tok, err := g.Issue(context.Background(), user.User{ID: 9, Email: "a@example.com"}, false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	app := newProtectedApp("secret", "store-admin")
	resp := request(t, app, "Bearer "+tok.AccessToken+"x")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestMiddleware_RejectsForeignIssuer(t *testing.T) {
	g := NewIssuer("secret", "someone-else")
	tok, err := g.Issue(context.Background(), user.User{ID: 9, Email: "a@example.com"}, false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	app := newProtectedApp("secret", "store-admin")
	resp := request(t, app, "Bearer "+tok.AccessToken)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestMiddleware_RejectsNonBearerScheme(t *testing.T) {
	app := newProtectedApp("secret", "store-admin")
	resp := request(t, app, "Basic dXNlcjpwYXNz")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
