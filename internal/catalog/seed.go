// Package catalog loads the course catalog, achievement rules and initial user
// progress that seed the progress store.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/learnpath/backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the startup data of the progress store
type Seed struct {
	Courses          []models.Course          `yaml:"courses"`
	AchievementRules []models.AchievementRule `yaml:"achievementRules"`
	UserProgress     models.UserProgress      `yaml:"userProgress"`
}

// Default returns the embedded seed catalog
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// LoadFile reads and validates a seed file
func LoadFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML
func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Stamp fills missing login and access timestamps with now
func (s *Seed) Stamp(now time.Time) {
	if s.UserProgress.Streak.LastLoginDate.IsZero() {
		s.UserProgress.Streak.LastLoginDate = now
	}
	for i := range s.UserProgress.EnrolledCourses {
		if s.UserProgress.EnrolledCourses[i].LastAccessedDate.IsZero() {
			s.UserProgress.EnrolledCourses[i].LastAccessedDate = now
		}
	}
}

// Validate checks identifiers, content shapes, rules and enrollments.
// All problems are reported together.
func (s *Seed) Validate() error {
	var errs []error

	courses := make(map[string]*models.Course, len(s.Courses))
	contentIDs := make(map[string]string)
	for i := range s.Courses {
		course := &s.Courses[i]
		if course.ID == "" {
			errs = append(errs, fmt.Errorf("course %d: id is required", i))
			continue
		}
		if _, ok := courses[course.ID]; ok {
			errs = append(errs, fmt.Errorf("course %s: duplicate id", course.ID))
			continue
		}
		courses[course.ID] = course
		if !course.Level.IsValid() {
			errs = append(errs, fmt.Errorf("course %s: invalid level %q", course.ID, course.Level))
		}
		errs = append(errs, validateCourse(course, contentIDs)...)
	}

	for i, rule := range s.AchievementRules {
		course, ok := courses[rule.CourseID]
		if !ok {
			errs = append(errs, fmt.Errorf("rule %d: unknown course %q", i, rule.CourseID))
			continue
		}
		if !hasAchievement(course, rule.AchievementID) {
			errs = append(errs, fmt.Errorf("rule %d: course %s has no achievement %q", i, rule.CourseID, rule.AchievementID))
		}
		if !rule.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("rule %d: invalid kind %q", i, rule.Kind))
		}
		if rule.Threshold <= 0 {
			errs = append(errs, fmt.Errorf("rule %d: threshold must be positive", i))
		}
	}

	enrolled := make(map[string]bool)
	completed := make(map[string][]string)
	for _, enrollment := range s.UserProgress.EnrolledCourses {
		course, ok := courses[enrollment.CourseID]
		if !ok {
			errs = append(errs, fmt.Errorf("enrollment: unknown course %q", enrollment.CourseID))
			continue
		}
		if !course.IsEnrolled {
			errs = append(errs, fmt.Errorf("enrollment: course %s is not flagged as enrolled", course.ID))
		}
		if enrolled[course.ID] {
			errs = append(errs, fmt.Errorf("enrollment: duplicate record for course %s", course.ID))
		}
		enrolled[course.ID] = true
		completed[course.ID] = enrollment.CompletedContents
		for _, id := range enrollment.CompletedContents {
			if contentIDs[id] != course.ID {
				errs = append(errs, fmt.Errorf("enrollment %s: unknown content %q", course.ID, id))
			}
		}
	}
	for id, course := range courses {
		if course.IsEnrolled && !enrolled[id] {
			errs = append(errs, fmt.Errorf("course %s: enrolled without an enrollment record", id))
		}
		errs = append(errs, validateCompletion(course, completed[id])...)
	}

	return errors.Join(errs...)
}

func validateCourse(course *models.Course, contentIDs map[string]string) []error {
	var errs []error
	lessonIDs := make(map[string]bool)
	for _, lesson := range course.Lessons {
		if lesson.ID == "" || lessonIDs[lesson.ID] {
			errs = append(errs, fmt.Errorf("course %s: missing or duplicate lesson id %q", course.ID, lesson.ID))
		}
		lessonIDs[lesson.ID] = true
		for _, content := range lesson.Contents {
			if _, ok := contentIDs[content.ID]; ok || content.ID == "" {
				errs = append(errs, fmt.Errorf("lesson %s: missing or duplicate content id %q", lesson.ID, content.ID))
			}
			contentIDs[content.ID] = course.ID
			if !content.Type.IsValid() {
				errs = append(errs, fmt.Errorf("content %s: invalid type %q", content.ID, content.Type))
			}
			if content.IsQuiz() {
				errs = append(errs, validateQuiz(content)...)
			}
		}
	}
	return errs
}

// validateCompletion checks that completion flags and the progress percentage
// agree with the completed content ids of the course's enrollment record
func validateCompletion(course *models.Course, completedIDs []string) []error {
	var errs []error
	done := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}
	for _, lesson := range course.Lessons {
		for _, content := range lesson.Contents {
			if content.IsCompleted != done[content.ID] {
				errs = append(errs, fmt.Errorf("content %s: completion flag disagrees with enrollment record", content.ID))
			}
		}
	}

	expected := 0
	if total := course.TotalContents(); total > 0 {
		expected = int(math.Round(float64(len(done)) / float64(total) * 100))
	}
	if course.Progress != expected {
		errs = append(errs, fmt.Errorf("course %s: progress %d does not match completed contents, expected %d", course.ID, course.Progress, expected))
	}
	return errs
}

func validateQuiz(content models.Content) []error {
	var errs []error
	if len(content.Options) < 2 {
		errs = append(errs, fmt.Errorf("quiz %s: needs at least two options", content.ID))
	}
	correct := 0
	for _, option := range content.Options {
		if option.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		errs = append(errs, fmt.Errorf("quiz %s: needs exactly one correct option, has %d", content.ID, correct))
	}
	return errs
}

func hasAchievement(course *models.Course, id string) bool {
	for _, a := range course.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
