package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubReadiness struct{ err error }

func (s *stubReadiness) Ready(context.Context) error { return s.err }

func newHealthApp(err error) *fiber.App {
	app := fiber.New()
	h := NewHealthHandler(&stubReadiness{err: err})
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
	return app
}

func TestHealth_AlwaysOK(t *testing.T) {
	app := newHealthApp(errors.New("db down"))
	resp := get(t, app, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReady_OK(t *testing.T) {
	app := newHealthApp(nil)
	resp := get(t, app, "/ready")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ready", decodeBody(t, resp)["status"])
}

func TestReady_DependencyDown(t *testing.T) {
	app := newHealthApp(errors.New("postgres: dial refused"))
	resp := get(t, app, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, "not_ready", decodeBody(t, resp)["status"])
}
