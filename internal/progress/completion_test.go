package progress

import (
	"fmt"
	"math"
	"testing"

	"github.com/learnpath/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CopiesSeed(t *testing.T) {
	courses := []models.Course{testCourse("1", true, true)}
	store := NewStore(courses, models.UserProgress{}, nil)

	courses[0].Title = "changed"
	courses[0].Lessons[0].Contents[0].IsCompleted = true

	course := mustCourse(t, store, "1")
	assert.Equal(t, "Course 1", course.Title)
	assert.False(t, course.Lessons[0].Contents[0].IsCompleted)
}

func TestStore_CompleteContent_UnlocksNextItem(t *testing.T) {
	store := newTestStore(t, nil)

	result, err := store.CompleteContent("1", "1-1-1")
	require.NoError(t, err)

	assert.False(t, result.AlreadyCompleted)
	assert.False(t, result.LessonCompleted)
	assert.Equal(t, "1-1", result.LessonID)
	assert.Equal(t, "1-1-2", result.UnlockedContentID)
	assert.Empty(t, result.UnlockedLessonID)
	assert.Equal(t, 13, result.Progress)
	assert.Zero(t, result.GemsAwarded)

	assert.True(t, mustContent(t, store, "1", "1-1-1").IsCompleted)
	assert.False(t, mustContent(t, store, "1", "1-1-2").IsLocked)
	assert.True(t, mustContent(t, store, "1", "1-1-3").IsLocked)
	assert.Equal(t, 13, mustCourse(t, store, "1").Progress)
	assert.Equal(t, []string{"1-1-1"}, mustEnrollment(t, store, "1").CompletedContents)
	assert.Equal(t, testNow, mustEnrollment(t, store, "1").LastAccessedDate)
}

func TestStore_CompleteContent_LastItemCompletesLesson(t *testing.T) {
	store := newTestStore(t, nil)

	var last models.CompletionResult
	for i := 1; i <= 6; i++ {
		var err error
		last, err = store.CompleteContent("1", fmt.Sprintf("1-1-%d", i))
		require.NoError(t, err)
	}

	assert.True(t, last.LessonCompleted)
	assert.Equal(t, "1-2", last.UnlockedLessonID)
	assert.Equal(t, "1-2-1", last.UnlockedContentID)
	assert.Equal(t, 75, last.Progress)
	assert.Equal(t, DefaultQuizCompletionBonus, last.GemsAwarded)

	course := mustCourse(t, store, "1")
	assert.True(t, course.Lessons[0].IsCompleted)
	assert.False(t, course.Lessons[1].IsLocked)
	assert.False(t, course.Lessons[1].IsCompleted)
	assert.False(t, course.Lessons[1].Contents[0].IsLocked)
	assert.True(t, course.Lessons[1].Contents[1].IsLocked)

	enrollment := mustEnrollment(t, store, "1")
	assert.Equal(t, []string{"1-1"}, enrollment.CompletedLessons)
	assert.Len(t, enrollment.CompletedContents, 6)
	assert.Equal(t, DefaultQuizCompletionBonus, enrollment.EarnedGems)
	assert.Equal(t, 30+DefaultQuizCompletionBonus, store.UserProgress().TotalGems)
}

func TestStore_CompleteContent_WholeCourse(t *testing.T) {
	store := newTestStore(t, nil)
	ids := []string{"1-1-1", "1-1-2", "1-1-3", "1-1-4", "1-1-5", "1-1-6", "1-2-1", "1-2-2"}

	for i, id := range ids {
		result, err := store.CompleteContent("1", id)
		require.NoError(t, err)

		want := int(math.Round(100 * float64(i+1) / float64(len(ids))))
		assert.Equal(t, want, result.Progress, "after completing %s", id)
		assert.Equal(t, want, store.CalculateCourseProgress("1"))
	}

	course := mustCourse(t, store, "1")
	assert.Equal(t, 100, course.Progress)
	assert.True(t, course.Lessons[1].IsCompleted)
	assert.True(t, course.IsEnrolled)
	assert.Equal(t, 30+2*DefaultQuizCompletionBonus, store.UserProgress().TotalGems)
}

func TestStore_CompleteContent_AlreadyCompletedQuiz(t *testing.T) {
	store := newTestStore(t, nil)
	for i := 1; i <= 6; i++ {
		_, err := store.CompleteContent("1", fmt.Sprintf("1-1-%d", i))
		require.NoError(t, err)
	}
	gems := store.UserProgress().TotalGems

	result, err := store.CompleteContent("1", "1-1-6")
	require.NoError(t, err)

	assert.True(t, result.AlreadyCompleted)
	assert.Zero(t, result.GemsAwarded)
	assert.Empty(t, result.EarnedAchievements)
	assert.Equal(t, gems, store.UserProgress().TotalGems)
	assert.Len(t, mustEnrollment(t, store, "1").CompletedContents, 6)
	assert.Equal(t, []string{"1-1"}, mustEnrollment(t, store, "1").CompletedLessons)
}

func TestStore_CompleteContent_Errors(t *testing.T) {
	tests := []struct {
		name        string
		courseID    string
		contentID   string
		expectedErr error
	}{
		{
			name:        "unknown course",
			courseID:    "42",
			contentID:   "1-1-1",
			expectedErr: ErrCourseNotFound,
		},
		{
			name:        "unknown content",
			courseID:    "1",
			contentID:   "1-9-9",
			expectedErr: ErrContentNotFound,
		},
		{
			name:        "content of another course",
			courseID:    "1",
			contentID:   "2-1-1",
			expectedErr: ErrContentNotFound,
		},
		{
			name:        "locked content",
			courseID:    "1",
			contentID:   "1-1-3",
			expectedErr: ErrContentLocked,
		},
		{
			name:        "not enrolled course",
			courseID:    "2",
			contentID:   "2-1-1",
			expectedErr: ErrContentLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, nil)
			coursesBefore := store.Courses()
			progressBefore := store.UserProgress()

			result, err := store.CompleteContent(tt.courseID, tt.contentID)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, models.CompletionResult{}, result)
			assert.Equal(t, coursesBefore, store.Courses())
			assert.Equal(t, progressBefore, store.UserProgress())
		})
	}
}

func TestStore_Enroll(t *testing.T) {
	store := newTestStore(t, nil)
	before := mustCourse(t, store, "2")

	result, err := store.Enroll("2")
	require.NoError(t, err)

	assert.False(t, result.AlreadyEnrolled)
	assert.Equal(t, 0, result.Progress)

	course := mustCourse(t, store, "2")
	assert.True(t, course.IsEnrolled)
	assert.Equal(t, 0, course.Progress)
	assert.False(t, course.Lessons[0].IsLocked)
	assert.False(t, course.Lessons[0].Contents[0].IsLocked)
	for _, content := range course.Lessons[0].Contents[1:] {
		assert.True(t, content.IsLocked, content.ID)
	}
	assert.Equal(t, before.Lessons[1], course.Lessons[1])
	for _, lesson := range course.Lessons {
		assert.False(t, lesson.IsCompleted)
		for _, content := range lesson.Contents {
			assert.False(t, content.IsCompleted)
		}
	}

	enrollment := mustEnrollment(t, store, "2")
	assert.Empty(t, enrollment.CompletedContents)
	assert.Empty(t, enrollment.CompletedLessons)
	assert.Zero(t, enrollment.EarnedGems)
	assert.Equal(t, testNow, enrollment.LastAccessedDate)
}

func TestStore_Enroll_Twice(t *testing.T) {
	store := newTestStore(t, nil)
	_, err := store.Enroll("2")
	require.NoError(t, err)
	_, err = store.CompleteContent("2", "2-1-1")
	require.NoError(t, err)

	result, err := store.Enroll("2")
	require.NoError(t, err)

	assert.True(t, result.AlreadyEnrolled)
	assert.Equal(t, 13, result.Progress)
	assert.Len(t, store.UserProgress().EnrolledCourses, 2)
	assert.True(t, mustContent(t, store, "2", "2-1-1").IsCompleted)
}

func TestStore_Enroll_UnknownCourse(t *testing.T) {
	store := newTestStore(t, nil)
	before := store.UserProgress()

	_, err := store.Enroll("42")

	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, before, store.UserProgress())
}

func TestStore_Enroll_ThenCompleteFirstItem(t *testing.T) {
	store := newTestStore(t, nil)
	_, err := store.Enroll("3")
	require.NoError(t, err)

	result, err := store.CompleteContent("3", "3-1-1")
	require.NoError(t, err)

	assert.Equal(t, "3-1-2", result.UnlockedContentID)
	assert.Equal(t, 13, mustCourse(t, store, "3").Progress)
}
