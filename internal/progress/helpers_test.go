package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/learnpath/backend/internal/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

// testClock is a settable clock for streak and reward tests
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) advance(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

// testCourse builds a course with two lessons:
// <id>-1 holds six items (the last one a quiz), <id>-2 holds a text item and a quiz.
// An enrolled course has its first lesson and first two items unlocked.
func testCourse(id string, enrolled, trending bool) models.Course {
	types := []models.ContentType{
		models.ContentTypeText,
		models.ContentTypeImage,
		models.ContentTypeText,
		models.ContentTypeCode,
		models.ContentTypeText,
		models.ContentTypeQuiz,
	}
	first := models.Lesson{ID: id + "-1", Title: "Lesson 1", IsLocked: !enrolled, Duration: 45}
	for i, typ := range types {
		first.Contents = append(first.Contents, testContent(fmt.Sprintf("%s-1-%d", id, i+1), typ, !enrolled || i > 1))
	}
	second := models.Lesson{
		ID:       id + "-2",
		Title:    "Lesson 2",
		IsLocked: true,
		Duration: 30,
		Contents: []models.Content{
			testContent(id+"-2-1", models.ContentTypeText, true),
			testContent(id+"-2-2", models.ContentTypeQuiz, true),
		},
	}

	return models.Course{
		ID:         id,
		Title:      "Course " + id,
		Category:   "Programming",
		IsTrending: trending,
		IsEnrolled: enrolled,
		Level:      models.LevelBeginner,
		Lessons:    []models.Lesson{first, second},
		Achievements: []models.Achievement{
			{ID: id + "-a1", Title: "First Steps"},
			{ID: id + "-a2", Title: "Lesson Finisher"},
			{ID: id + "-a3", Title: "Graduate"},
			{ID: id + "-a4", Title: "Quiz Master"},
		},
	}
}

func testContent(id string, typ models.ContentType, locked bool) models.Content {
	c := models.Content{ID: id, Title: "Item " + id, Type: typ, IsLocked: locked}
	switch typ {
	case models.ContentTypeQuiz:
		c.Question = "Which one?"
		c.Options = []models.QuizOption{
			{ID: "a", Text: "wrong"},
			{ID: "b", Text: "right", IsCorrect: true},
		}
		c.Explanation = "b is right"
	case models.ContentTypeCode:
		c.Text = "Run it"
		c.Code = `print("Hello, World!")`
		c.Language = "python"
	case models.ContentTypeImage:
		c.Text = "Look at it"
		c.ImageURL = "https://example.com/image.png"
	default:
		c.Text = "Read it"
	}
	return c
}

func testRules(courseID string) []models.AchievementRule {
	return []models.AchievementRule{
		{CourseID: courseID, AchievementID: courseID + "-a1", Kind: models.RuleContentsCompleted, Threshold: 1},
		{CourseID: courseID, AchievementID: courseID + "-a2", Kind: models.RuleLessonsCompleted, Threshold: 1},
		{CourseID: courseID, AchievementID: courseID + "-a3", Kind: models.RuleProgressReached, Threshold: 100},
		{CourseID: courseID, AchievementID: courseID + "-a4", Kind: models.RuleQuizzesCorrect, Threshold: 2},
	}
}

// newTestStore creates a store with course "1" enrolled and trending, and
// courses "2".."5" not enrolled, of which "2", "4" and "5" are trending.
func newTestStore(t *testing.T, clock *testClock) *Store {
	t.Helper()
	if clock == nil {
		clock = &testClock{now: testNow}
	}

	courses := []models.Course{
		testCourse("1", true, true),
		testCourse("2", false, true),
		testCourse("3", false, false),
		testCourse("4", false, true),
		testCourse("5", false, true),
	}
	userProgress := models.UserProgress{
		UserID: "user1",
		EnrolledCourses: []models.Enrollment{
			{
				CourseID:           "1",
				LastAccessedDate:   testNow.AddDate(0, 0, -3),
				CompletedLessons:   []string{},
				CompletedContents:  []string{},
				EarnedAchievements: []string{},
				AnsweredQuizzes:    []string{},
			},
		},
		Streak: models.Streak{
			CurrentStreak: 5,
			LastLoginDate: clock.now.AddDate(0, 0, -1),
			HighestStreak: 12,
		},
		TotalGems: 30,
	}

	var rules []models.AchievementRule
	for _, c := range courses {
		rules = append(rules, testRules(c.ID)...)
	}

	store := NewStore(courses, userProgress, rules, WithClock(clock.Now))
	require.NotNil(t, store)
	return store
}

func mustCourse(t *testing.T, s *Store, id string) models.Course {
	t.Helper()
	course, err := s.Course(id)
	require.NoError(t, err)
	return course
}

func mustContent(t *testing.T, s *Store, courseID, contentID string) models.Content {
	t.Helper()
	content, _, err := s.Content(courseID, contentID)
	require.NoError(t, err)
	return content
}

func mustEnrollment(t *testing.T, s *Store, courseID string) models.Enrollment {
	t.Helper()
	for _, e := range s.UserProgress().EnrolledCourses {
		if e.CourseID == courseID {
			return e
		}
	}
	require.FailNow(t, "enrollment not found", courseID)
	return models.Enrollment{}
}
