package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnpath/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for the user's progress and rewards.
type ProgressService interface {
	GetProgress(ctx context.Context) models.UserProgress
	// Method GetViews returns the derived course lists together with streak, gems and daily reward state.
	GetViews(ctx context.Context) models.Views
	// Method CheckIn records the daily visit. The streak changes only on the first visit of a calendar day.
	CheckIn(ctx context.Context) models.CheckInResult
	// Method ClaimDailyReward awards the streak reward once per calendar day.
	//
	// Later claims on the same day report a zero reward.
	ClaimDailyReward(ctx context.Context) models.DailyRewardResult
	// Method AwardGems adds gems and returns the new total.
	//
	// Negative amounts and amounts that would overflow the total return an error
	// matching progress.ErrInvalidAmount.
	AwardGems(ctx context.Context, amount int) (int, error)
}

// ProgressHandler handles HTTP requests for progress, streaks and gems
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes behind the auth middleware
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/progress", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetProgress)
		r.Get("/views", h.GetViews)
		r.Post("/check-in", h.CheckIn)
		r.Post("/daily-reward", h.ClaimDailyReward)
		r.Post("/gems", h.AwardGems)
	})
}

// GetProgress handles GET /api/v1/progress
// @Summary Get user progress
// @Description Get enrollments, streak, gems and badges
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserProgress
// @Failure 401 {object} map[string]string
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetProgress(r.Context()))
}

// GetViews handles GET /api/v1/progress/views
// @Summary Get home screen views
// @Description Get trending, enrolled and unenrolled courses with streak, gems and daily reward state
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Views
// @Failure 401 {object} map[string]string
// @Router /progress/views [get]
func (h *ProgressHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetViews(r.Context()))
}

// CheckIn handles POST /api/v1/progress/check-in
// @Summary Daily check-in
// @Description Record the daily visit and update the login streak
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.CheckInResult
// @Failure 401 {object} map[string]string
// @Router /progress/check-in [post]
func (h *ProgressHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.CheckIn(r.Context()))
}

// ClaimDailyReward handles POST /api/v1/progress/daily-reward
// @Summary Claim daily reward
// @Description Award 5 gems, 10 from a 7 day streak and 25 from a 30 day streak, once per day
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DailyRewardResult
// @Failure 401 {object} map[string]string
// @Router /progress/daily-reward [post]
func (h *ProgressHandler) ClaimDailyReward(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.ClaimDailyReward(r.Context()))
}

// AwardGems handles POST /api/v1/progress/gems
// @Summary Award gems
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.AwardGemsRequest true "Gem amount"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /progress/gems [post]
func (h *ProgressHandler) AwardGems(w http.ResponseWriter, r *http.Request) {
	var req models.AwardGemsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	total, err := h.service.AwardGems(r.Context(), req.Amount)
	if err != nil {
		h.respondServiceError(w, err, "failed to award gems")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]int{"totalGems": total})
}
