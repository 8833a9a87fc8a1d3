package progress

import (
	"fmt"

	"github.com/learnpath/backend/internal/models"
)

// CompleteContent marks a content item completed and cascades the change:
// the next item of the lesson is unlocked, or, for the last item, the lesson is
// completed and the next lesson with its first item is unlocked. Course progress
// is recomputed afterwards and achievement rules are evaluated.
//
// Completing a quiz awards the quiz completion bonus once. Completing an
// already completed item changes nothing but the access timestamp.
// Unknown ids return ErrCourseNotFound or ErrContentNotFound, a locked item
// returns ErrContentLocked; in those cases the store is left untouched.
func (s *Store) CompleteContent(courseID, contentID string) (models.CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.CompletionResult{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	li, ci, ok := findContent(course, contentID)
	if !ok {
		return models.CompletionResult{}, fmt.Errorf("%w: %s", ErrContentNotFound, contentID)
	}
	lesson := &course.Lessons[li]
	content := &lesson.Contents[ci]
	if content.IsLocked && !content.IsCompleted {
		return models.CompletionResult{}, fmt.Errorf("%w: %s", ErrContentLocked, contentID)
	}

	result := models.CompletionResult{
		CourseID:           courseID,
		ContentID:          contentID,
		LessonID:           lesson.ID,
		AlreadyCompleted:   content.IsCompleted,
		EarnedAchievements: []models.Achievement{},
	}
	enrollment := s.enrollment(courseID)

	content.IsCompleted = true
	if enrollment != nil {
		enrollment.CompletedContents = appendUnique(enrollment.CompletedContents, contentID)
		enrollment.LastAccessedDate = s.now()
	}

	if next := ci + 1; next < len(lesson.Contents) {
		lesson.Contents[next].IsLocked = false
		result.UnlockedContentID = lesson.Contents[next].ID
	} else {
		lesson.IsCompleted = true
		result.LessonCompleted = true
		if enrollment != nil {
			enrollment.CompletedLessons = appendUnique(enrollment.CompletedLessons, lesson.ID)
		}
		if nextLesson := li + 1; nextLesson < len(course.Lessons) {
			unlocked := &course.Lessons[nextLesson]
			unlocked.IsLocked = false
			result.UnlockedLessonID = unlocked.ID
			if len(unlocked.Contents) > 0 {
				unlocked.Contents[0].IsLocked = false
				result.UnlockedContentID = unlocked.Contents[0].ID
			}
		}
	}

	course.Progress = s.calculateProgress(course)
	result.Progress = course.Progress

	if content.IsQuiz() && !result.AlreadyCompleted {
		result.GemsAwarded = s.addGems(s.quizCompletionBonus)
		if enrollment != nil {
			enrollment.EarnedGems = cappedSum(enrollment.EarnedGems, result.GemsAwarded)
		}
	}

	result.EarnedAchievements = append(result.EarnedAchievements, s.evaluateRules(course, enrollment)...)
	return result, nil
}

// Enroll enrolls the user in a course: the course is flagged enrolled with zero
// progress, its first lesson and that lesson's first item are unlocked and a
// fresh enrollment record is added.
//
// Enrolling twice is a no-op reported through AlreadyEnrolled.
func (s *Store) Enroll(courseID string) (models.EnrollmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.EnrollmentResult{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	if course.IsEnrolled {
		return models.EnrollmentResult{
			CourseID:        courseID,
			AlreadyEnrolled: true,
			Progress:        course.Progress,
		}, nil
	}

	course.IsEnrolled = true
	course.Progress = 0
	if len(course.Lessons) > 0 {
		first := &course.Lessons[0]
		first.IsLocked = false
		if len(first.Contents) > 0 {
			first.Contents[0].IsLocked = false
		}
	}

	if s.enrollment(courseID) == nil {
		s.progress.EnrolledCourses = append(s.progress.EnrolledCourses, models.Enrollment{
			CourseID:           courseID,
			LastAccessedDate:   s.now(),
			CompletedLessons:   []string{},
			CompletedContents:  []string{},
			EarnedAchievements: []string{},
			AnsweredQuizzes:    []string{},
		})
	}

	return models.EnrollmentResult{CourseID: courseID, Progress: course.Progress}, nil
}
