// Package progress implements the course progress model: the catalog, the single
// user's progress record and the operations that keep lock flags, completion
// flags, course progress, streaks and gems consistent.
package progress

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/learnpath/backend/internal/models"
)

const (
	// DefaultQuizCompletionBonus is awarded the first time a quiz item is completed
	DefaultQuizCompletionBonus = 10
	// DefaultQuizAnswerBonus is awarded the first time a quiz is answered correctly
	DefaultQuizAnswerBonus = 5
)

// Option configures a Store
type Option func(*Store)

// WithClock sets the clock used for streaks, rewards and access timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the location whose calendar days drive streaks and daily rewards
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithQuizCompletionBonus overrides DefaultQuizCompletionBonus
func WithQuizCompletionBonus(amount int) Option {
	return func(s *Store) {
		s.quizCompletionBonus = amount
	}
}

// WithQuizAnswerBonus overrides DefaultQuizAnswerBonus
func WithQuizAnswerBonus(amount int) Option {
	return func(s *Store) {
		s.quizAnswerBonus = amount
	}
}

// Store owns the course catalog and the user's progress.
//
// All state is private: every operation takes the store lock and every query
// returns deep copies, so callers can never mutate the catalog directly.
type Store struct {
	mu       sync.Mutex
	courses  []models.Course
	progress models.UserProgress
	rules    []models.AchievementRule

	now                 func() time.Time
	loc                 *time.Location
	quizCompletionBonus int
	quizAnswerBonus     int
}

// NewStore creates a store from seed data. The inputs are copied.
func NewStore(courses []models.Course, userProgress models.UserProgress, rules []models.AchievementRule, opts ...Option) *Store {
	s := &Store{
		courses:             make([]models.Course, len(courses)),
		progress:            userProgress.Clone(),
		rules:               slices.Clone(rules),
		now:                 time.Now,
		loc:                 time.UTC,
		quizCompletionBonus: DefaultQuizCompletionBonus,
		quizAnswerBonus:     DefaultQuizAnswerBonus,
	}
	for i, c := range courses {
		s.courses[i] = c.Clone()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// course returns the catalog course with the given id. Caller holds s.mu.
func (s *Store) course(id string) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

// enrollment returns the enrollment record of a course. Caller holds s.mu.
func (s *Store) enrollment(courseID string) *models.Enrollment {
	for i := range s.progress.EnrolledCourses {
		if s.progress.EnrolledCourses[i].CourseID == courseID {
			return &s.progress.EnrolledCourses[i]
		}
	}
	return nil
}

// findContent returns the lesson and content positions of a content item
func findContent(course *models.Course, contentID string) (int, int, bool) {
	for li := range course.Lessons {
		for ci := range course.Lessons[li].Contents {
			if course.Lessons[li].Contents[ci].ID == contentID {
				return li, ci, true
			}
		}
	}
	return -1, -1, false
}

// findLesson returns the position of a lesson within its course
func findLesson(course *models.Course, lessonID string) int {
	for li := range course.Lessons {
		if course.Lessons[li].ID == lessonID {
			return li
		}
	}
	return -1
}

// calculateProgress computes the course percentage from the enrollment record. Caller holds s.mu.
func (s *Store) calculateProgress(course *models.Course) int {
	enrollment := s.enrollment(course.ID)
	if enrollment == nil {
		return 0
	}
	total := course.TotalContents()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(enrollment.CompletedContents)) / float64(total) * 100))
}

// day truncates t to the start of its calendar day in the store location
func (s *Store) day(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Store) today() time.Time {
	return s.day(s.now())
}

func appendUnique(list []string, id string) []string {
	if slices.Contains(list, id) {
		return list
	}
	return append(list, id)
}
