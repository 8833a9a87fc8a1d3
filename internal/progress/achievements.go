package progress

import (
	"github.com/learnpath/backend/internal/models"
)

// evaluateRules earns every not yet earned achievement of the course whose rule
// threshold is reached, and returns the newly earned ones. Caller holds s.mu.
func (s *Store) evaluateRules(course *models.Course, enrollment *models.Enrollment) []models.Achievement {
	if enrollment == nil {
		return nil
	}

	var earned []models.Achievement
	for _, rule := range s.rules {
		if rule.CourseID != course.ID {
			continue
		}
		idx := achievementIndex(course, rule.AchievementID)
		if idx == -1 || course.Achievements[idx].IsEarned {
			continue
		}
		if ruleMetric(rule.Kind, course, enrollment) < rule.Threshold {
			continue
		}

		course.Achievements[idx].IsEarned = true
		enrollment.EarnedAchievements = appendUnique(enrollment.EarnedAchievements, rule.AchievementID)
		earned = append(earned, course.Achievements[idx])
	}
	return earned
}

func ruleMetric(kind models.RuleKind, course *models.Course, enrollment *models.Enrollment) int {
	switch kind {
	case models.RuleContentsCompleted:
		return len(enrollment.CompletedContents)
	case models.RuleLessonsCompleted:
		return len(enrollment.CompletedLessons)
	case models.RuleProgressReached:
		return course.Progress
	case models.RuleQuizzesCorrect:
		return len(enrollment.AnsweredQuizzes)
	}
	return 0
}

func achievementIndex(course *models.Course, id string) int {
	for i := range course.Achievements {
		if course.Achievements[i].ID == id {
			return i
		}
	}
	return -1
}
