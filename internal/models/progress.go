package models

import "time"

// Enrollment is the user's progress snapshot for a single course
type Enrollment struct {
	CourseID           string    `json:"courseId" yaml:"courseId"`
	LastAccessedDate   time.Time `json:"lastAccessedDate" yaml:"lastAccessedDate"`
	CompletedLessons   []string  `json:"completedLessons" yaml:"completedLessons"`
	CompletedContents  []string  `json:"completedContents" yaml:"completedContents"`
	EarnedAchievements []string  `json:"earnedAchievements" yaml:"earnedAchievements"`
	AnsweredQuizzes    []string  `json:"answeredQuizzes" yaml:"answeredQuizzes"`
	EarnedGems         int       `json:"earnedGems" yaml:"earnedGems"`
}

// Clone returns a deep copy of the enrollment
func (e Enrollment) Clone() Enrollment {
	out := e
	out.CompletedLessons = append([]string{}, e.CompletedLessons...)
	out.CompletedContents = append([]string{}, e.CompletedContents...)
	out.EarnedAchievements = append([]string{}, e.EarnedAchievements...)
	out.AnsweredQuizzes = append([]string{}, e.AnsweredQuizzes...)
	return out
}

// Streak tracks consecutive login days
type Streak struct {
	CurrentStreak int       `json:"currentStreak" yaml:"currentStreak"`
	LastLoginDate time.Time `json:"lastLoginDate" yaml:"lastLoginDate"`
	HighestStreak int       `json:"highestStreak" yaml:"highestStreak"`
	// RewardClaimedOn is the day of the last daily reward claim, zero if never claimed
	RewardClaimedOn time.Time `json:"rewardClaimedOn,omitempty" yaml:"rewardClaimedOn,omitempty"`
}

// UserProgress is the single user's progress across the catalog
type UserProgress struct {
	UserID          string       `json:"userId" yaml:"userId"`
	EnrolledCourses []Enrollment `json:"enrolledCourses" yaml:"enrolledCourses"`
	Streak          Streak       `json:"streak" yaml:"streak"`
	TotalGems       int          `json:"totalGems" yaml:"totalGems"`
	EarnedBadges    []string     `json:"earnedBadges" yaml:"earnedBadges"`
}

// Clone returns a deep copy of the user progress
func (p UserProgress) Clone() UserProgress {
	out := p
	out.EnrolledCourses = make([]Enrollment, len(p.EnrolledCourses))
	for i, e := range p.EnrolledCourses {
		out.EnrolledCourses[i] = e.Clone()
	}
	out.EarnedBadges = append([]string{}, p.EarnedBadges...)
	return out
}

// Views is the set of derived views re-published after every mutation
type Views struct {
	TrendingCourses       []CourseListItem `json:"trendingCourses"`
	EnrolledCourses       []CourseListItem `json:"enrolledCourses"`
	UnenrolledCourses     []CourseListItem `json:"unenrolledCourses"`
	StreakDays            int              `json:"streakDays"`
	HighestStreak         int              `json:"highestStreak"`
	TotalGems             int              `json:"totalGems"`
	HasClaimedDailyReward bool             `json:"hasClaimedDailyReward"`
}

// CompletionResult describes the effects of completing a content item
type CompletionResult struct {
	CourseID           string        `json:"courseId"`
	ContentID          string        `json:"contentId"`
	LessonID           string        `json:"lessonId"`
	AlreadyCompleted   bool          `json:"alreadyCompleted"`
	LessonCompleted    bool          `json:"lessonCompleted"`
	UnlockedContentID  string        `json:"unlockedContentId,omitempty"`
	UnlockedLessonID   string        `json:"unlockedLessonId,omitempty"`
	Progress           int           `json:"progress"`
	GemsAwarded        int           `json:"gemsAwarded"`
	EarnedAchievements []Achievement `json:"earnedAchievements"`
}

// EnrollmentResult describes the effects of enrolling in a course
type EnrollmentResult struct {
	CourseID        string `json:"courseId"`
	AlreadyEnrolled bool   `json:"alreadyEnrolled"`
	Progress        int    `json:"progress"`
}

// QuizAnswerResult describes the outcome of answering a quiz
type QuizAnswerResult struct {
	CourseID           string        `json:"courseId"`
	ContentID          string        `json:"contentId"`
	OptionID           string        `json:"optionId"`
	Correct            bool          `json:"correct"`
	CorrectOptionID    string        `json:"correctOptionId"`
	Explanation        string        `json:"explanation"`
	GemsAwarded        int           `json:"gemsAwarded"`
	EarnedAchievements []Achievement `json:"earnedAchievements"`
}

// DailyRewardResult describes the outcome of claiming the daily reward
type DailyRewardResult struct {
	Reward     int `json:"reward"`
	TotalGems  int `json:"totalGems"`
	StreakDays int `json:"streakDays"`
}

// CheckInResult describes the outcome of a daily check-in
type CheckInResult struct {
	StreakDays            int  `json:"streakDays"`
	HighestStreak         int  `json:"highestStreak"`
	StreakUpdated         bool `json:"streakUpdated"`
	HasClaimedDailyReward bool `json:"hasClaimedDailyReward"`
}
