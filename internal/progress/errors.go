package progress

import "errors"

// Errors returned by Store operations. They are wrapped with the offending id,
// so callers must match them with errors.Is.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrContentNotFound = errors.New("content not found")
	ErrOptionNotFound  = errors.New("quiz option not found")
	ErrNotQuiz         = errors.New("content is not a quiz")
	ErrContentLocked   = errors.New("content is locked")
	ErrInvalidAmount   = errors.New("gem amount must be non-negative and fit the total")
)

// IsNotFound reports whether err is one of the reference-not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrLessonNotFound) ||
		errors.Is(err, ErrContentNotFound) ||
		errors.Is(err, ErrOptionNotFound)
}
