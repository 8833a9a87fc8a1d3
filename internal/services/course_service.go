package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/learnpath/backend/internal/models"
	"github.com/learnpath/backend/internal/progress"
	"go.uber.org/zap"
)

// ErrInvalidInput is returned when a request is missing a required value
var ErrInvalidInput = errors.New("invalid input")

// ProgressStore is the interface that wraps the operations of the progress model.
type ProgressStore interface {
	// Method Courses returns a copy of the whole catalog in catalog order.
	Courses() []models.Course
	// Method Course returns a copy of a single course.
	//
	// An unknown id returns an error matching progress.ErrCourseNotFound.
	Course(courseID string) (models.Course, error)
	// Method Lesson returns a copy of a lesson.
	//
	// Unknown ids return errors matching progress.ErrCourseNotFound or progress.ErrLessonNotFound.
	Lesson(courseID, lessonID string) (models.Lesson, error)
	// Method Content returns a copy of a content item together with the id of the lesson holding it.
	Content(courseID, contentID string) (models.Content, string, error)
	TrendingCourses() []models.Course
	EnrolledCourses() []models.Course
	UnenrolledCourses() []models.Course
	UserProgress() models.UserProgress
	// Method Views returns every derived view in one snapshot.
	Views() models.Views
	// Method CompleteContent marks a content item as completed and runs the unlock cascade.
	//
	// Locked items are rejected with progress.ErrContentLocked and nothing is changed.
	CompleteContent(courseID, contentID string) (models.CompletionResult, error)
	// Method Enroll enrolls the user in a course. Enrolling twice is a no-op.
	Enroll(courseID string) (models.EnrollmentResult, error)
	// Method SubmitQuizAnswer checks an answer and awards the correct answer bonus once.
	SubmitQuizAnswer(courseID, contentID, optionID string) (models.QuizAnswerResult, error)
	// Method AwardGems adds gems to the user's total. Negative or overflowing amounts are rejected with progress.ErrInvalidAmount.
	AwardGems(amount int) error
	// Method CheckIn records the daily visit and updates the streak on the first visit of a day.
	CheckIn() models.CheckInResult
	// Method ClaimDailyReward returns the awarded gems, 0 when already claimed today.
	ClaimDailyReward() int
}

// ViewListener receives the derived views after every successful mutation
type ViewListener func(models.Views)

type courseService struct {
	store     ProgressStore
	logger    *zap.Logger
	listeners []ViewListener

	mu        sync.RWMutex
	selection selection
}

type selection struct {
	courseID  string
	lessonID  string
	contentID string
}

// NewCourseService creates a new course service. Listeners are called with the
// fresh views after every successful mutation.
func NewCourseService(store ProgressStore, logger *zap.Logger, listeners ...ViewListener) *courseService {
	return &courseService{
		store:     store,
		logger:    logger,
		listeners: listeners,
	}
}

// GetCourses returns the list representation of every course
func (s *courseService) GetCourses(ctx context.Context) []models.CourseListItem {
	return models.NewCourseList(s.store.Courses())
}

// GetTrendingCourses returns up to three trending courses
func (s *courseService) GetTrendingCourses(ctx context.Context) []models.CourseListItem {
	return models.NewCourseList(s.store.TrendingCourses())
}

// GetEnrolledCourses returns the courses the user is enrolled in
func (s *courseService) GetEnrolledCourses(ctx context.Context) []models.CourseListItem {
	return models.NewCourseList(s.store.EnrolledCourses())
}

// GetUnenrolledCourses returns the courses the user is not enrolled in
func (s *courseService) GetUnenrolledCourses(ctx context.Context) []models.CourseListItem {
	return models.NewCourseList(s.store.UnenrolledCourses())
}

// GetCourse returns a course with its lessons and contents
func (s *courseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}

	course, err := s.store.Course(courseID)
	if err != nil {
		s.logNotFound("course lookup failed", err, zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// GetLesson returns a lesson of a course
func (s *courseService) GetLesson(ctx context.Context, courseID, lessonID string) (*models.Lesson, error) {
	if courseID == "" || lessonID == "" {
		return nil, fmt.Errorf("%w: course id and lesson id are required", ErrInvalidInput)
	}

	lesson, err := s.store.Lesson(courseID, lessonID)
	if err != nil {
		s.logNotFound("lesson lookup failed", err, zap.String("course_id", courseID), zap.String("lesson_id", lessonID))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return &lesson, nil
}

// GetContent returns a content item of a course
func (s *courseService) GetContent(ctx context.Context, courseID, contentID string) (*models.Content, error) {
	if courseID == "" || contentID == "" {
		return nil, fmt.Errorf("%w: course id and content id are required", ErrInvalidInput)
	}

	content, _, err := s.store.Content(courseID, contentID)
	if err != nil {
		s.logNotFound("content lookup failed", err, zap.String("course_id", courseID), zap.String("content_id", contentID))
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return &content, nil
}

// GetProgress returns the user's progress record
func (s *courseService) GetProgress(ctx context.Context) models.UserProgress {
	return s.store.UserProgress()
}

// GetViews returns the derived views
func (s *courseService) GetViews(ctx context.Context) models.Views {
	return s.store.Views()
}

// CompleteContent marks a content item as completed
func (s *courseService) CompleteContent(ctx context.Context, courseID, contentID string) (*models.CompletionResult, error) {
	if courseID == "" || contentID == "" {
		return nil, fmt.Errorf("%w: course id and content id are required", ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.store.CompleteContent(courseID, contentID)
	if err != nil {
		s.logNotFound("content completion rejected", err, zap.String("course_id", courseID), zap.String("content_id", contentID))
		return nil, fmt.Errorf("failed to complete content: %w", err)
	}

	s.logger.Info("content completed",
		zap.String("course_id", courseID),
		zap.String("content_id", contentID),
		zap.Bool("already_completed", result.AlreadyCompleted),
		zap.Bool("lesson_completed", result.LessonCompleted),
		zap.Int("progress", result.Progress),
		zap.Int("gems_awarded", result.GemsAwarded),
	)
	for _, achievement := range result.EarnedAchievements {
		s.logger.Info("achievement earned", zap.String("course_id", courseID), zap.String("achievement_id", achievement.ID))
	}
	s.publish()
	return &result, nil
}

// Enroll enrolls the user in a course
func (s *courseService) Enroll(ctx context.Context, courseID string) (*models.EnrollmentResult, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.store.Enroll(courseID)
	if err != nil {
		s.logNotFound("enrollment rejected", err, zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to enroll: %w", err)
	}

	s.logger.Info("course enrolled", zap.String("course_id", courseID), zap.Bool("already_enrolled", result.AlreadyEnrolled))
	s.publish()
	return &result, nil
}

// SubmitQuizAnswer checks an answer to a quiz item
func (s *courseService) SubmitQuizAnswer(ctx context.Context, courseID, contentID, optionID string) (*models.QuizAnswerResult, error) {
	if courseID == "" || contentID == "" || optionID == "" {
		return nil, fmt.Errorf("%w: course id, content id and option id are required", ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.store.SubmitQuizAnswer(courseID, contentID, optionID)
	if err != nil {
		s.logNotFound("quiz answer rejected", err, zap.String("course_id", courseID), zap.String("content_id", contentID))
		return nil, fmt.Errorf("failed to submit answer: %w", err)
	}

	s.logger.Info("quiz answered",
		zap.String("course_id", courseID),
		zap.String("content_id", contentID),
		zap.Bool("correct", result.Correct),
		zap.Int("gems_awarded", result.GemsAwarded),
	)
	s.publish()
	return &result, nil
}

// AwardGems adds gems to the user's total
func (s *courseService) AwardGems(ctx context.Context, amount int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.store.AwardGems(amount); err != nil {
		s.logger.Warn("gem award rejected", zap.Int("amount", amount), zap.Error(err))
		return 0, fmt.Errorf("failed to award gems: %w", err)
	}

	s.logger.Info("gems awarded", zap.Int("amount", amount))
	views := s.publish()
	return views.TotalGems, nil
}

// CheckIn records the daily visit
func (s *courseService) CheckIn(ctx context.Context) models.CheckInResult {
	result := s.store.CheckIn()
	s.logger.Info("daily check-in",
		zap.Int("streak", result.StreakDays),
		zap.Bool("streak_updated", result.StreakUpdated),
	)
	s.publish()
	return result
}

// RefreshViews republishes the current views without changing anything.
// Day dependent values such as the daily reward flag are recomputed.
func (s *courseService) RefreshViews(ctx context.Context) {
	views := s.publish()
	s.logger.Debug("views refreshed", zap.Bool("daily_reward_claimed", views.HasClaimedDailyReward))
}

// ClaimDailyReward awards the daily streak reward
func (s *courseService) ClaimDailyReward(ctx context.Context) models.DailyRewardResult {
	reward := s.store.ClaimDailyReward()
	s.logger.Info("daily reward claimed", zap.Int("reward", reward))
	views := s.publish()
	return models.DailyRewardResult{
		Reward:     reward,
		TotalGems:  views.TotalGems,
		StreakDays: views.StreakDays,
	}
}

// GetSelection returns fresh copies of the selected course, lesson and content
func (s *courseService) GetSelection(ctx context.Context) models.Selection {
	s.mu.RLock()
	current := s.selection
	s.mu.RUnlock()

	var out models.Selection
	if current.courseID == "" {
		return out
	}
	course, err := s.store.Course(current.courseID)
	if err != nil {
		return out
	}
	out.Course = &course
	if current.lessonID != "" {
		if lesson, err := s.store.Lesson(current.courseID, current.lessonID); err == nil {
			out.Lesson = &lesson
		}
	}
	if current.contentID != "" {
		if content, _, err := s.store.Content(current.courseID, current.contentID); err == nil {
			out.Content = &content
		}
	}
	return out
}

// SetSelection replaces the selection. Empty ids clear their level and every
// level below it. A content id without a lesson id selects the content's lesson.
func (s *courseService) SetSelection(ctx context.Context, req models.SelectionRequest) (models.Selection, error) {
	next := selection{}
	if req.CourseID == "" {
		if req.LessonID != "" || req.ContentID != "" {
			return models.Selection{}, fmt.Errorf("%w: course id is required", ErrInvalidInput)
		}
	} else {
		if _, err := s.store.Course(req.CourseID); err != nil {
			return models.Selection{}, fmt.Errorf("failed to select course: %w", err)
		}
		next.courseID = req.CourseID

		if req.LessonID != "" {
			if _, err := s.store.Lesson(req.CourseID, req.LessonID); err != nil {
				return models.Selection{}, fmt.Errorf("failed to select lesson: %w", err)
			}
			next.lessonID = req.LessonID
		}
		if req.ContentID != "" {
			_, lessonID, err := s.store.Content(req.CourseID, req.ContentID)
			if err != nil {
				return models.Selection{}, fmt.Errorf("failed to select content: %w", err)
			}
			if next.lessonID != "" && next.lessonID != lessonID {
				return models.Selection{}, fmt.Errorf("failed to select content: %w: %s is not part of lesson %s",
					progress.ErrContentNotFound, req.ContentID, next.lessonID)
			}
			next.lessonID = lessonID
			next.contentID = req.ContentID
		}
	}

	s.mu.Lock()
	s.selection = next
	s.mu.Unlock()

	s.logger.Debug("selection changed",
		zap.String("course_id", next.courseID),
		zap.String("lesson_id", next.lessonID),
		zap.String("content_id", next.contentID),
	)
	return s.GetSelection(ctx), nil
}

// publish hands the current views to every listener and returns them
func (s *courseService) publish() models.Views {
	views := s.store.Views()
	for _, listener := range s.listeners {
		listener(views)
	}
	return views
}

func (s *courseService) logNotFound(msg string, err error, fields ...zap.Field) {
	if progress.IsNotFound(err) {
		s.logger.Warn(msg, append(fields, zap.Error(err))...)
		return
	}
	s.logger.Info(msg, append(fields, zap.Error(err))...)
}
