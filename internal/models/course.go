package models

// Level represents the difficulty level of a course
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// IsValid reports whether the level is one of the known course levels
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Instructor holds the public profile of a course author
type Instructor struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// Course represents a course of the catalog together with the user's enrollment state
type Course struct {
	ID            string        `json:"id" yaml:"id"`
	Title         string        `json:"title" yaml:"title"`
	Description   string        `json:"description" yaml:"description"`
	ThumbnailURL  string        `json:"thumbnailUrl" yaml:"thumbnailUrl"`
	Category      string        `json:"category" yaml:"category"`
	IsTrending    bool          `json:"isTrending" yaml:"isTrending"`
	IsEnrolled    bool          `json:"isEnrolled" yaml:"isEnrolled"`
	Progress      int           `json:"progress" yaml:"progress"`
	Lessons       []Lesson      `json:"lessons" yaml:"lessons"`
	Achievements  []Achievement `json:"achievements" yaml:"achievements"`
	Instructor    Instructor    `json:"instructor" yaml:"instructor"`
	TotalDuration int           `json:"totalDuration" yaml:"totalDuration"`
	Level         Level         `json:"level" yaml:"level"`
	Tags          []string      `json:"tags" yaml:"tags"`
}

// TotalContents returns the number of content items across all lessons of the course
func (c *Course) TotalContents() int {
	total := 0
	for _, lesson := range c.Lessons {
		total += len(lesson.Contents)
	}
	return total
}

// Clone returns a deep copy of the course
func (c Course) Clone() Course {
	out := c
	out.Lessons = make([]Lesson, len(c.Lessons))
	for i, lesson := range c.Lessons {
		out.Lessons[i] = lesson.Clone()
	}
	out.Achievements = append([]Achievement(nil), c.Achievements...)
	out.Tags = append([]string(nil), c.Tags...)
	return out
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ThumbnailURL  string     `json:"thumbnailUrl"`
	Category      string     `json:"category"`
	IsTrending    bool       `json:"isTrending"`
	IsEnrolled    bool       `json:"isEnrolled"`
	Progress      int        `json:"progress"`
	TotalLessons  int        `json:"totalLessons"`
	TotalDuration int        `json:"totalDuration"`
	Level         Level      `json:"level"`
	Instructor    Instructor `json:"instructor"`
}

// NewCourseListItem builds the list representation of a course
func NewCourseListItem(c Course) CourseListItem {
	return CourseListItem{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		ThumbnailURL:  c.ThumbnailURL,
		Category:      c.Category,
		IsTrending:    c.IsTrending,
		IsEnrolled:    c.IsEnrolled,
		Progress:      c.Progress,
		TotalLessons:  len(c.Lessons),
		TotalDuration: c.TotalDuration,
		Level:         c.Level,
		Instructor:    c.Instructor,
	}
}

// NewCourseList builds list items for a slice of courses
func NewCourseList(courses []Course) []CourseListItem {
	items := make([]CourseListItem, 0, len(courses))
	for _, c := range courses {
		items = append(items, NewCourseListItem(c))
	}
	return items
}
