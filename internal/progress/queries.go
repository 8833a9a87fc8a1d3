package progress

import (
	"fmt"

	"github.com/learnpath/backend/internal/models"
)

const trendingLimit = 3

// Courses returns a copy of the whole catalog in catalog order
func (s *Store) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(*models.Course) bool { return true }, 0)
}

// Course returns a copy of a single course
func (s *Store) Course(courseID string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	return course.Clone(), nil
}

// Lesson returns a copy of a lesson of a course
func (s *Store) Lesson(courseID, lessonID string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.Lesson{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	li := findLesson(course, lessonID)
	if li == -1 {
		return models.Lesson{}, fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}
	return course.Lessons[li].Clone(), nil
}

// Content returns a copy of a content item of a course together with the id of its lesson
func (s *Store) Content(courseID, contentID string) (models.Content, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.Content{}, "", fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	li, ci, ok := findContent(course, contentID)
	if !ok {
		return models.Content{}, "", fmt.Errorf("%w: %s", ErrContentNotFound, contentID)
	}
	return course.Lessons[li].Contents[ci].Clone(), course.Lessons[li].ID, nil
}

// TrendingCourses returns up to three trending courses in catalog order
func (s *Store) TrendingCourses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(c *models.Course) bool { return c.IsTrending }, trendingLimit)
}

// EnrolledCourses returns the courses the user is enrolled in
func (s *Store) EnrolledCourses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(c *models.Course) bool { return c.IsEnrolled }, 0)
}

// UnenrolledCourses returns the courses the user is not enrolled in
func (s *Store) UnenrolledCourses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(c *models.Course) bool { return !c.IsEnrolled }, 0)
}

// UserProgress returns a copy of the user's progress record
func (s *Store) UserProgress() models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.progress.Clone()
}

// CalculateCourseProgress returns the completion percentage of a course from its
// enrollment record, 0 for unknown, not enrolled or empty courses.
func (s *Store) CalculateCourseProgress(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return 0
	}
	return s.calculateProgress(course)
}

// Views returns all derived views in one consistent snapshot
func (s *Store) Views() models.Views {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.Views{
		TrendingCourses:       models.NewCourseList(s.filter(func(c *models.Course) bool { return c.IsTrending }, trendingLimit)),
		EnrolledCourses:       models.NewCourseList(s.filter(func(c *models.Course) bool { return c.IsEnrolled }, 0)),
		UnenrolledCourses:     models.NewCourseList(s.filter(func(c *models.Course) bool { return !c.IsEnrolled }, 0)),
		StreakDays:            s.progress.Streak.CurrentStreak,
		HighestStreak:         s.progress.Streak.HighestStreak,
		TotalGems:             s.progress.TotalGems,
		HasClaimedDailyReward: s.hasClaimedDailyReward(),
	}
}

// filter returns copies of matching courses, at most limit of them when limit > 0. Caller holds s.mu.
func (s *Store) filter(match func(*models.Course) bool, limit int) []models.Course {
	out := []models.Course{}
	for i := range s.courses {
		if limit > 0 && len(out) == limit {
			break
		}
		if match(&s.courses[i]) {
			out = append(out, s.courses[i].Clone())
		}
	}
	return out
}
