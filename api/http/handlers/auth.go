package handlers

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/api/http/presenter"
	"github.com/storekit/backend/pkg/apperr"
	"github.com/storekit/backend/pkg/auth"
)

type AuthHandler struct {
	useCase auth.UseCase
}

func NewAuthHandler(useCase auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() error {
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return apperr.New(apperr.Invalid, "email must be a valid email address")
	}
	if len(r.Password) < 6 {
		return apperr.New(apperr.Invalid, "password must be at least 6 characters")
	}
	return nil
}

type registerResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register handles user registration.
// @Summary Register a new user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} registerResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.validate(); err != nil {
		return presenter.FromError(c, err)
	}

	u, err := h.useCase.Register(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, registerResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func (r loginRequest) validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return apperr.New(apperr.Invalid, "email and password are required")
	}
	return nil
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
}

// Login validates credentials and issues a bearer token. rememberMe selects
// the extended TTL tier.
// @Summary Login user and get JWT token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.validate(); err != nil {
		return presenter.FromError(c, err)
	}

	u, err := h.useCase.ValidateCredentials(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return presenter.FromError(c, err)
	}
	token, err := h.useCase.IssueToken(c.Context(), u, req.RememberMe)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, loginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	})
}
