package progress

import (
	"fmt"
	"math"
	"slices"

	"github.com/learnpath/backend/internal/models"
)

const (
	baseDailyReward  = 5
	weekStreakBonus  = 5
	monthStreakBonus = 15
	weekStreakDays   = 7
	monthStreakDays  = 30
)

// StreakReward returns the daily reward for a streak length:
// 5 gems, 10 from a 7 day streak and 25 from a 30 day streak.
func StreakReward(streak int) int {
	reward := baseDailyReward
	if streak >= weekStreakDays {
		reward += weekStreakBonus
	}
	if streak >= monthStreakDays {
		reward += monthStreakBonus
	}
	return reward
}

// AwardGems adds amount to the user's total gems. Negative amounts and amounts
// that would overflow the total are rejected.
func (s *Store) AwardGems(amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount < 0 || amount > math.MaxInt-s.progress.TotalGems {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	s.progress.TotalGems += amount
	return nil
}

// addGems credits a reward to the total and returns the amount actually added.
// The total saturates at math.MaxInt. Caller holds s.mu.
func (s *Store) addGems(amount int) int {
	added := min(amount, math.MaxInt-s.progress.TotalGems)
	s.progress.TotalGems += added
	return added
}

func cappedSum(total, amount int) int {
	return total + min(amount, math.MaxInt-total)
}

// UpdateStreak applies today's login to the streak: a login the day after the
// previous one extends the streak, a login after a gap resets it to 1 and a
// second login on the same day leaves it unchanged.
func (s *Store) UpdateStreak() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateStreak()
}

// updateStreak reports whether the streak count was touched. Caller holds s.mu.
func (s *Store) updateStreak() bool {
	streak := &s.progress.Streak
	today := s.today()
	last := s.day(streak.LastLoginDate)

	updated := true
	switch {
	case last.Equal(today.AddDate(0, 0, -1)):
		streak.CurrentStreak++
	case !last.Equal(today):
		streak.CurrentStreak = 1
	default:
		updated = false
	}
	if streak.CurrentStreak > streak.HighestStreak {
		streak.HighestStreak = streak.CurrentStreak
	}

	streak.LastLoginDate = s.now()
	return updated
}

// CheckIn records the user's daily visit. The streak is only updated on the
// first visit of a calendar day.
func (s *Store) CheckIn() models.CheckInResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	if !s.day(s.progress.Streak.LastLoginDate).Equal(s.today()) {
		updated = s.updateStreak()
	}

	return models.CheckInResult{
		StreakDays:            s.progress.Streak.CurrentStreak,
		HighestStreak:         s.progress.Streak.HighestStreak,
		StreakUpdated:         updated,
		HasClaimedDailyReward: s.hasClaimedDailyReward(),
	}
}

// ClaimDailyReward awards the streak reward once per calendar day and returns it.
// A claim without a check-in today first applies today's login to the streak.
// Further claims on the same day return 0 and change nothing.
func (s *Store) ClaimDailyReward() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasClaimedDailyReward() {
		return 0
	}
	if !s.day(s.progress.Streak.LastLoginDate).Equal(s.today()) {
		s.updateStreak()
	}

	reward := s.addGems(StreakReward(s.progress.Streak.CurrentStreak))
	s.progress.Streak.RewardClaimedOn = s.today()
	return reward
}

// HasClaimedDailyReward reports whether today's reward was already claimed
func (s *Store) HasClaimedDailyReward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasClaimedDailyReward()
}

func (s *Store) hasClaimedDailyReward() bool {
	claimed := s.progress.Streak.RewardClaimedOn
	return !claimed.IsZero() && s.day(claimed).Equal(s.today())
}

// SubmitQuizAnswer checks an answer to a quiz item. The first correct answer of
// an enrolled course's quiz awards the quiz answer bonus and may earn achievements.
func (s *Store) SubmitQuizAnswer(courseID, contentID, optionID string) (models.QuizAnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.course(courseID)
	if course == nil {
		return models.QuizAnswerResult{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	li, ci, ok := findContent(course, contentID)
	if !ok {
		return models.QuizAnswerResult{}, fmt.Errorf("%w: %s", ErrContentNotFound, contentID)
	}
	content := &course.Lessons[li].Contents[ci]
	if !content.IsQuiz() {
		return models.QuizAnswerResult{}, fmt.Errorf("%w: %s", ErrNotQuiz, contentID)
	}
	if content.IsLocked && !content.IsCompleted {
		return models.QuizAnswerResult{}, fmt.Errorf("%w: %s", ErrContentLocked, contentID)
	}
	option, ok := content.Option(optionID)
	if !ok {
		return models.QuizAnswerResult{}, fmt.Errorf("%w: %s", ErrOptionNotFound, optionID)
	}

	result := models.QuizAnswerResult{
		CourseID:           courseID,
		ContentID:          contentID,
		OptionID:           optionID,
		Correct:            option.IsCorrect,
		Explanation:        content.Explanation,
		EarnedAchievements: []models.Achievement{},
	}
	for _, opt := range content.Options {
		if opt.IsCorrect {
			result.CorrectOptionID = opt.ID
			break
		}
	}
	if !option.IsCorrect {
		return result, nil
	}

	enrollment := s.enrollment(courseID)
	if enrollment == nil || slices.Contains(enrollment.AnsweredQuizzes, contentID) {
		return result, nil
	}
	enrollment.AnsweredQuizzes = append(enrollment.AnsweredQuizzes, contentID)
	result.GemsAwarded = s.addGems(s.quizAnswerBonus)
	enrollment.EarnedGems = cappedSum(enrollment.EarnedGems, result.GemsAwarded)

	result.EarnedAchievements = append(result.EarnedAchievements, s.evaluateRules(course, enrollment)...)
	return result, nil
}
