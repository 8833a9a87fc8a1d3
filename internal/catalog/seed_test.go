package catalog

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/learnpath/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	seed, err := Default()
	require.NoError(t, err)

	require.Len(t, seed.Courses, 4)
	assert.Equal(t, "Python for Absolute Beginners", seed.Courses[0].Title)
	assert.Equal(t, 30, seed.Courses[0].TotalContents())
	assert.Equal(t, "user1", seed.UserProgress.UserID)
	assert.Equal(t, 30, seed.UserProgress.TotalGems)
	assert.Equal(t, 5, seed.UserProgress.Streak.CurrentStreak)
	assert.Equal(t, 12, seed.UserProgress.Streak.HighestStreak)
	assert.NotEmpty(t, seed.AchievementRules)
}

func TestDefault_ProgressMatchesEnrollment(t *testing.T) {
	seed, err := Default()
	require.NoError(t, err)

	enrollments := map[string]models.Enrollment{}
	for _, e := range seed.UserProgress.EnrolledCourses {
		enrollments[e.CourseID] = e
	}

	for _, course := range seed.Courses {
		enrollment, enrolled := enrollments[course.ID]
		assert.Equal(t, course.IsEnrolled, enrolled, course.ID)
		if !enrolled {
			assert.Zero(t, course.Progress, course.ID)
			continue
		}
		want := int(math.Round(float64(len(enrollment.CompletedContents)) / float64(course.TotalContents()) * 100))
		assert.Equal(t, want, course.Progress, course.ID)

		completed := 0
		for _, lesson := range course.Lessons {
			completed += lesson.CompletedContents()
		}
		assert.Equal(t, len(enrollment.CompletedContents), completed, course.ID)
	}
}

// Completed items form a prefix of the course and everything after the first
// incomplete item stays locked.
func TestDefault_LockOrder(t *testing.T) {
	seed, err := Default()
	require.NoError(t, err)

	for _, course := range seed.Courses {
		frontier := false
		for _, lesson := range course.Lessons {
			for _, content := range lesson.Contents {
				if frontier {
					assert.False(t, content.IsCompleted, content.ID)
					assert.True(t, content.IsLocked, content.ID)
					continue
				}
				if !content.IsCompleted {
					frontier = true
					assert.Equal(t, !course.IsEnrolled, content.IsLocked, content.ID)
				}
			}
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		expectedError string
	}{
		{
			name:          "malformed yaml",
			data:          "courses: [",
			expectedError: "failed to decode seed",
		},
		{
			name: "duplicate course",
			data: `
courses:
  - {id: "1", level: Beginner}
  - {id: "1", level: Beginner}
`,
			expectedError: "duplicate id",
		},
		{
			name: "invalid level",
			data: `
courses:
  - {id: "1", level: Expert}
`,
			expectedError: "invalid level",
		},
		{
			name: "quiz without correct option",
			data: `
courses:
  - id: "1"
    level: Beginner
    lessons:
      - id: "1-1"
        contents:
          - id: "1-1-1"
            type: quiz
            options: [{id: a}, {id: b}]
`,
			expectedError: "exactly one correct option",
		},
		{
			name: "unknown content type",
			data: `
courses:
  - id: "1"
    level: Beginner
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: video}
`,
			expectedError: "invalid type",
		},
		{
			name: "rule for unknown achievement",
			data: `
courses:
  - {id: "1", level: Beginner}
achievementRules:
  - {courseId: "1", achievementId: "a9", kind: lessons_completed, threshold: 1}
`,
			expectedError: "has no achievement",
		},
		{
			name: "rule with unknown kind",
			data: `
courses:
  - id: "1"
    level: Beginner
    achievements: [{id: a1}]
achievementRules:
  - {courseId: "1", achievementId: "a1", kind: logins, threshold: 1}
`,
			expectedError: "invalid kind",
		},
		{
			name: "enrollment for unenrolled course",
			data: `
courses:
  - {id: "1", level: Beginner}
userProgress:
  enrolledCourses:
    - {courseId: "1"}
`,
			expectedError: "not flagged as enrolled",
		},
		{
			name: "enrolled without record",
			data: `
courses:
  - {id: "1", level: Beginner, isEnrolled: true}
`,
			expectedError: "without an enrollment record",
		},
		{
			name: "progress without completions",
			data: `
courses:
  - id: "1"
    level: Beginner
    isEnrolled: true
    progress: 99
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: text}
          - {id: "1-1-2", type: text, isLocked: true}
userProgress:
  enrolledCourses:
    - {courseId: "1"}
`,
			expectedError: "progress 99 does not match completed contents, expected 0",
		},
		{
			name: "progress on unenrolled course",
			data: `
courses:
  - id: "1"
    level: Beginner
    progress: 40
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: text}
`,
			expectedError: "expected 0",
		},
		{
			name: "completion flag without enrollment record entry",
			data: `
courses:
  - id: "1"
    level: Beginner
    isEnrolled: true
    progress: 50
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: text, isCompleted: true}
          - {id: "1-1-2", type: text, isCompleted: true}
userProgress:
  enrolledCourses:
    - {courseId: "1", completedContents: ["1-1-1"]}
`,
			expectedError: "content 1-1-2: completion flag disagrees with enrollment record",
		},
		{
			name: "completed content missing its flag",
			data: `
courses:
  - id: "1"
    level: Beginner
    isEnrolled: true
    progress: 50
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: text}
          - {id: "1-1-2", type: text}
userProgress:
  enrolledCourses:
    - {courseId: "1", completedContents: ["1-1-1"]}
`,
			expectedError: "content 1-1-1: completion flag disagrees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := Parse([]byte(tt.data))

			assert.Nil(t, seed)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestParse_ConsistentCompletion(t *testing.T) {
	data := `
courses:
  - id: "1"
    level: Beginner
    isEnrolled: true
    progress: 33
    lessons:
      - id: "1-1"
        contents:
          - {id: "1-1-1", type: text, isCompleted: true}
          - {id: "1-1-2", type: text}
          - {id: "1-1-3", type: text, isLocked: true}
userProgress:
  enrolledCourses:
    - {courseId: "1", completedContents: ["1-1-1"]}
`

	seed, err := Parse([]byte(data))

	require.NoError(t, err)
	assert.Equal(t, 33, seed.Courses[0].Progress)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, defaultSeed, 0o600))

	seed, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, seed.Courses, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestSeed_Stamp(t *testing.T) {
	seed, err := Default()
	require.NoError(t, err)
	accessed := seed.UserProgress.EnrolledCourses[0].LastAccessedDate
	now := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

	seed.Stamp(now)

	assert.Equal(t, now, seed.UserProgress.Streak.LastLoginDate)
	assert.Equal(t, accessed, seed.UserProgress.EnrolledCourses[0].LastAccessedDate)
	assert.False(t, accessed.IsZero())
}
