package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnpath/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for the mock authentication flow.
type AuthService interface {
	// Method Login accepts any non-empty email and password and issues a new access token.
	//
	// The previous token stops being accepted.
	Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error)
	// Method Register behaves like Login and additionally requires a name.
	Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error)
	// Method Logout revokes the stored access token.
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*models.AuthStatus, error)
	SetOnboardingSeen(ctx context.Context, seen bool) error
}

// AuthHandler handles HTTP requests for authentication and onboarding
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/register", h.Register)
	r.Get("/auth/status", h.Status)
	r.Put("/onboarding", h.SetOnboarding)
	r.With(authMiddleware).Post("/auth/logout", h.Logout)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Mock login: any non-empty email and password is accepted
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to login")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Register handles POST /api/v1/auth/register
// @Summary Register
// @Description Mock registration: any non-empty name, email and password is accepted
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to register")
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.respondServiceError(w, err, "failed to logout")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Status handles GET /api/v1/auth/status
// @Summary Get auth status
// @Description Report whether onboarding was seen and whether a user is logged in
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthStatus
// @Failure 500 {object} map[string]string
// @Router /auth/status [get]
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get status")
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// SetOnboarding handles PUT /api/v1/onboarding
// @Summary Update onboarding flag
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.OnboardingRequest true "Onboarding flag"
// @Success 200 {object} models.OnboardingRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /onboarding [put]
func (h *AuthHandler) SetOnboarding(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.SetOnboardingSeen(r.Context(), req.HasSeenOnboarding); err != nil {
		h.respondServiceError(w, err, "failed to update onboarding")
		return
	}

	h.respondJSON(w, http.StatusOK, req)
}
