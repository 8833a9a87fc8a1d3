package progress

import (
	"testing"

	"github.com/learnpath/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseIDs(courses []models.Course) []string {
	ids := []string{}
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestStore_DerivedCourseLists(t *testing.T) {
	store := newTestStore(t, nil)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, courseIDs(store.Courses()))
	assert.Equal(t, []string{"1", "2", "4"}, courseIDs(store.TrendingCourses()))
	assert.Equal(t, []string{"1"}, courseIDs(store.EnrolledCourses()))
	assert.Equal(t, []string{"2", "3", "4", "5"}, courseIDs(store.UnenrolledCourses()))

	_, err := store.Enroll("4")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "4"}, courseIDs(store.EnrolledCourses()))
	assert.Equal(t, []string{"2", "3", "5"}, courseIDs(store.UnenrolledCourses()))
}

func TestStore_EmptyCatalog(t *testing.T) {
	store := NewStore(nil, models.UserProgress{}, nil)

	assert.Empty(t, store.Courses())
	assert.NotNil(t, store.TrendingCourses())
	assert.Empty(t, store.EnrolledCourses())
	assert.Zero(t, store.CalculateCourseProgress("1"))
}

func TestStore_QueriesReturnCopies(t *testing.T) {
	store := newTestStore(t, nil)

	course := mustCourse(t, store, "1")
	course.Lessons[0].Contents[0].IsCompleted = true
	course.Achievements[0].IsEarned = true

	content := mustContent(t, store, "1", "1-1-6")
	content.Options[0].IsCorrect = true

	userProgress := store.UserProgress()
	userProgress.EnrolledCourses[0].CompletedContents = append(userProgress.EnrolledCourses[0].CompletedContents, "1-1-1")
	userProgress.TotalGems = 1000

	fresh := mustCourse(t, store, "1")
	assert.False(t, fresh.Lessons[0].Contents[0].IsCompleted)
	assert.False(t, fresh.Achievements[0].IsEarned)
	assert.False(t, mustContent(t, store, "1", "1-1-6").Options[0].IsCorrect)
	assert.Empty(t, mustEnrollment(t, store, "1").CompletedContents)
	assert.Equal(t, 30, store.UserProgress().TotalGems)
}

func TestStore_Lookups(t *testing.T) {
	store := newTestStore(t, nil)

	lesson, err := store.Lesson("1", "1-2")
	require.NoError(t, err)
	assert.Equal(t, "Lesson 2", lesson.Title)
	assert.Len(t, lesson.Contents, 2)

	_, err = store.Lesson("1", "1-9")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, err = store.Lesson("9", "1-1")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	content, lessonID, err := store.Content("1", "1-1-4")
	require.NoError(t, err)
	assert.Equal(t, models.ContentTypeCode, content.Type)
	assert.Equal(t, "1-1", lessonID)

	_, _, err = store.Content("1", "1-1-9")
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(ErrContentLocked))
}

func TestStore_CalculateCourseProgress(t *testing.T) {
	store := newTestStore(t, nil)

	assert.Zero(t, store.CalculateCourseProgress("1"))
	assert.Zero(t, store.CalculateCourseProgress("2"))
	assert.Zero(t, store.CalculateCourseProgress("missing"))

	_, err := store.CompleteContent("1", "1-1-1")
	require.NoError(t, err)
	_, err = store.CompleteContent("1", "1-1-2")
	require.NoError(t, err)

	assert.Equal(t, 25, store.CalculateCourseProgress("1"))
}

func TestStore_Views(t *testing.T) {
	clock := &testClock{now: testNow}
	store := newTestStore(t, clock)

	views := store.Views()
	assert.Len(t, views.TrendingCourses, 3)
	assert.Len(t, views.EnrolledCourses, 1)
	assert.Len(t, views.UnenrolledCourses, 4)
	assert.Equal(t, 5, views.StreakDays)
	assert.Equal(t, 12, views.HighestStreak)
	assert.Equal(t, 30, views.TotalGems)
	assert.False(t, views.HasClaimedDailyReward)

	store.CheckIn()
	reward := store.ClaimDailyReward()

	views = store.Views()
	assert.Equal(t, 6, views.StreakDays)
	assert.Equal(t, 30+reward, views.TotalGems)
	assert.True(t, views.HasClaimedDailyReward)
	assert.Equal(t, 2, views.EnrolledCourses[0].TotalLessons)
}
