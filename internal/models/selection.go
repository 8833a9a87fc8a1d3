package models

// Selection is the current course/lesson/content the user is looking at
type Selection struct {
	Course  *Course  `json:"course"`
	Lesson  *Lesson  `json:"lesson"`
	Content *Content `json:"content"`
}

// SelectionRequest represents a request to change the current selection.
// Empty ids clear the corresponding level and every level below it.
type SelectionRequest struct {
	CourseID  string `json:"courseId"`
	LessonID  string `json:"lessonId"`
	ContentID string `json:"contentId"`
}

// AnswerRequest represents a quiz answer submission
type AnswerRequest struct {
	OptionID string `json:"optionId"`
}

// AwardGemsRequest represents a request to award gems
type AwardGemsRequest struct {
	Amount int `json:"amount"`
}
