package models

// Achievement represents a course achievement a user can earn
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	IsEarned    bool   `json:"isEarned" yaml:"isEarned"`
}

// RuleKind represents the metric an achievement rule is evaluated against
type RuleKind string

const (
	// RuleContentsCompleted counts completed content items of the course
	RuleContentsCompleted RuleKind = "contents_completed"
	// RuleLessonsCompleted counts completed lessons of the course
	RuleLessonsCompleted RuleKind = "lessons_completed"
	// RuleProgressReached compares against the course progress percentage
	RuleProgressReached RuleKind = "progress_reached"
	// RuleQuizzesCorrect counts quizzes of the course answered correctly
	RuleQuizzesCorrect RuleKind = "quizzes_correct"
)

// IsValid reports whether the rule kind is known
func (k RuleKind) IsValid() bool {
	switch k {
	case RuleContentsCompleted, RuleLessonsCompleted, RuleProgressReached, RuleQuizzesCorrect:
		return true
	}
	return false
}

// AchievementRule earns AchievementID of CourseID once the Kind metric reaches Threshold
type AchievementRule struct {
	CourseID      string   `json:"courseId" yaml:"courseId"`
	AchievementID string   `json:"achievementId" yaml:"achievementId"`
	Kind          RuleKind `json:"kind" yaml:"kind"`
	Threshold     int      `json:"threshold" yaml:"threshold"`
}
