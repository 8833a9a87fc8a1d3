package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnpath/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for catalog browsing and learning actions.
type CourseService interface {
	// Method GetCourses returns the list representation of every course in catalog order.
	GetCourses(ctx context.Context) []models.CourseListItem
	// Method GetTrendingCourses returns up to three trending courses in catalog order.
	GetTrendingCourses(ctx context.Context) []models.CourseListItem
	GetEnrolledCourses(ctx context.Context) []models.CourseListItem
	GetUnenrolledCourses(ctx context.Context) []models.CourseListItem
	// Method GetCourse returns a course with its lessons, contents and achievements.
	//
	// An unknown id returns an error matching progress.ErrCourseNotFound.
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	// Method GetLesson returns a lesson of a course.
	GetLesson(ctx context.Context, courseID, lessonID string) (*models.Lesson, error)
	// Method GetContent returns a content item of a course. Quiz answers are never part of the response.
	GetContent(ctx context.Context, courseID, contentID string) (*models.Content, error)
	// Method Enroll enrolls the user in a course and unlocks its first lesson.
	//
	// Enrolling twice is reported with AlreadyEnrolled and changes nothing.
	Enroll(ctx context.Context, courseID string) (*models.EnrollmentResult, error)
	// Method CompleteContent marks a content item as completed, unlocks the next item or lesson,
	// recomputes the course progress and evaluates achievements.
	//
	// Locked items are rejected with an error matching progress.ErrContentLocked.
	CompleteContent(ctx context.Context, courseID, contentID string) (*models.CompletionResult, error)
	// Method SubmitQuizAnswer checks an answer to a quiz and reveals the correct option.
	SubmitQuizAnswer(ctx context.Context, courseID, contentID, optionID string) (*models.QuizAnswerResult, error)
	// Method GetSelection returns the currently selected course, lesson and content.
	GetSelection(ctx context.Context) models.Selection
	// Method SetSelection replaces the current selection.
	//
	// Empty ids clear their level and every level below it.
	SetSelection(ctx context.Context, req models.SelectionRequest) (models.Selection, error)
}

// CourseHandler handles HTTP requests for courses and learning actions
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/courses", h.GetCourses)
	r.Get("/courses/trending", h.GetTrendingCourses)
	r.Get("/courses/{courseId}", h.GetCourse)
	r.Get("/courses/{courseId}/lessons/{lessonId}", h.GetLesson)
	r.Get("/courses/{courseId}/contents/{contentId}", h.GetContent)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/courses/enrolled", h.GetEnrolledCourses)
		r.Get("/courses/unenrolled", h.GetUnenrolledCourses)
		r.Post("/courses/{courseId}/enroll", h.Enroll)
		r.Post("/courses/{courseId}/contents/{contentId}/complete", h.CompleteContent)
		r.Post("/courses/{courseId}/contents/{contentId}/answer", h.SubmitAnswer)
		r.Get("/selection", h.GetSelection)
		r.Put("/selection", h.SetSelection)
	})
}

// GetCourses handles GET /api/v1/courses
// @Summary Get all courses
// @Description Get the list of all courses in catalog order
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseListItem
// @Router /courses [get]
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetCourses(r.Context()))
}

// GetTrendingCourses handles GET /api/v1/courses/trending
// @Summary Get trending courses
// @Description Get up to three trending courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseListItem
// @Router /courses/trending [get]
func (h *CourseHandler) GetTrendingCourses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetTrendingCourses(r.Context()))
}

// GetEnrolledCourses handles GET /api/v1/courses/enrolled
// @Summary Get enrolled courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.CourseListItem
// @Failure 401 {object} map[string]string
// @Router /courses/enrolled [get]
func (h *CourseHandler) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetEnrolledCourses(r.Context()))
}

// GetUnenrolledCourses handles GET /api/v1/courses/unenrolled
// @Summary Get courses available for enrollment
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.CourseListItem
// @Failure 401 {object} map[string]string
// @Router /courses/unenrolled [get]
func (h *CourseHandler) GetUnenrolledCourses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetUnenrolledCourses(r.Context()))
}

// GetCourse handles GET /api/v1/courses/{courseId}
// @Summary Get course by ID
// @Description Get a course with its lessons, contents and achievements
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.GetCourse(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// GetLesson handles GET /api/v1/courses/{courseId}/lessons/{lessonId}
// @Summary Get lesson by ID
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/lessons/{lessonId} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GetLesson(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// GetContent handles GET /api/v1/courses/{courseId}/contents/{contentId}
// @Summary Get content by ID
// @Description Get a text, image, quiz or code item. Quiz answers are not included.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Param contentId path string true "Content ID"
// @Success 200 {object} models.Content
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/contents/{contentId} [get]
func (h *CourseHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetContent(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "contentId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get content")
		return
	}

	h.respondJSON(w, http.StatusOK, content)
}

// Enroll handles POST /api/v1/courses/{courseId}/enroll
// @Summary Enroll in a course
// @Description Enroll in a course and unlock its first lesson. Enrolling twice changes nothing.
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.EnrollmentResult
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/enroll [post]
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Enroll(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to enroll")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// CompleteContent handles POST /api/v1/courses/{courseId}/contents/{contentId}/complete
// @Summary Complete a content item
// @Description Mark a content item as completed and unlock the next item or lesson
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param contentId path string true "Content ID"
// @Success 200 {object} models.CompletionResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/contents/{contentId}/complete [post]
func (h *CourseHandler) CompleteContent(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CompleteContent(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "contentId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to complete content")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// SubmitAnswer handles POST /api/v1/courses/{courseId}/contents/{contentId}/answer
// @Summary Answer a quiz
// @Description Check an answer to a quiz item and reveal the correct option
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param contentId path string true "Content ID"
// @Param request body models.AnswerRequest true "Selected option"
// @Success 200 {object} models.QuizAnswerResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{courseId}/contents/{contentId}/answer [post]
func (h *CourseHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.SubmitQuizAnswer(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "contentId"), req.OptionID)
	if err != nil {
		h.respondServiceError(w, err, "failed to submit answer")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetSelection handles GET /api/v1/selection
// @Summary Get current selection
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Selection
// @Failure 401 {object} map[string]string
// @Router /selection [get]
func (h *CourseHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.GetSelection(r.Context()))
}

// SetSelection handles PUT /api/v1/selection
// @Summary Change current selection
// @Description Select a course, lesson and content. Empty ids clear their level and every level below it.
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SelectionRequest true "Selection"
// @Success 200 {object} models.Selection
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /selection [put]
func (h *CourseHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	selection, err := h.service.SetSelection(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to change selection")
		return
	}

	h.respondJSON(w, http.StatusOK, selection)
}
