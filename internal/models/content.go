package models

// ContentType represents the variant of a content item
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeQuiz  ContentType = "quiz"
	ContentTypeCode  ContentType = "code"
)

// IsValid reports whether the content type is one of the known variants
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeQuiz, ContentTypeCode:
		return true
	}
	return false
}

// QuizOption is a single answer option of a quiz.
// IsCorrect is never serialized to JSON, correctness is revealed by answering.
type QuizOption struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"-" yaml:"isCorrect"`
}

// Content is an atomic learning unit of a lesson.
//
// Type selects the variant; only the payload fields of that variant are filled:
//   - text:  Text
//   - image: Text, ImageURL
//   - quiz:  Question, Options, Explanation
//   - code:  Text, Code, Language
type Content struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Type        ContentType `json:"type" yaml:"type"`
	IsCompleted bool        `json:"isCompleted" yaml:"isCompleted"`
	IsLocked    bool        `json:"isLocked" yaml:"isLocked"`

	Text        string       `json:"text,omitempty" yaml:"text,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Question    string       `json:"question,omitempty" yaml:"question,omitempty"`
	Options     []QuizOption `json:"options,omitempty" yaml:"options,omitempty"`
	Explanation string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Code        string       `json:"code,omitempty" yaml:"code,omitempty"`
	Language    string       `json:"language,omitempty" yaml:"language,omitempty"`
}

// Clone returns a deep copy of the content item
func (c Content) Clone() Content {
	out := c
	out.Options = append([]QuizOption(nil), c.Options...)
	return out
}

// IsQuiz reports whether the content item is a quiz
func (c *Content) IsQuiz() bool {
	return c.Type == ContentTypeQuiz
}

// Option returns the quiz option with the given id
func (c *Content) Option(id string) (QuizOption, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return QuizOption{}, false
}
