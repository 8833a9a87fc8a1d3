package models

// Lesson represents an ordered sequence of content items within a course
type Lesson struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Contents    []Content `json:"contents" yaml:"contents"`
	IsCompleted bool      `json:"isCompleted" yaml:"isCompleted"`
	IsLocked    bool      `json:"isLocked" yaml:"isLocked"`
	// Duration in minutes
	Duration int `json:"duration" yaml:"duration"`
}

// Clone returns a deep copy of the lesson
func (l Lesson) Clone() Lesson {
	out := l
	out.Contents = make([]Content, len(l.Contents))
	for i, content := range l.Contents {
		out.Contents[i] = content.Clone()
	}
	return out
}

// CompletedContents returns the number of completed content items of the lesson
func (l *Lesson) CompletedContents() int {
	completed := 0
	for _, content := range l.Contents {
		if content.IsCompleted {
			completed++
		}
	}
	return completed
}
