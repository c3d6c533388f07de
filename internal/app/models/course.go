package models

import (
	"time"
)

// Course is the root of the catalog hierarchy. Deleting a course
// cascades to its modules.
type Course struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	DurationWeeks int        `json:"durationWeeks" db:"duration_weeks"`
	StartDate     *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"`
}

// Module belongs to a course; owns lessons and live sessions.
type Module struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    int64  `json:"courseId" db:"course_id"`
	Title       string `json:"title" db:"title"`
	WeekNumber  int    `json:"weekNumber" db:"week_number"`
	Description string `json:"description" db:"description"`
}

// Lesson belongs to a module; owns content items.
type Lesson struct {
	ID       int64  `json:"id" db:"id"`
	ModuleID int64  `json:"moduleId" db:"module_id"`
	Title    string `json:"title" db:"title"`
	Order    int    `json:"order" db:"item_order"`
}

// ContentType enumerates the kinds of content a lesson can carry.
type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPDF   ContentType = "pdf"
	ContentQuiz  ContentType = "quiz"
	ContentText  ContentType = "text"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentVideo, ContentPDF, ContentQuiz, ContentText:
		return true
	}
	return false
}

// ContentItem is a single piece of lesson content. Exactly which payload
// field is populated depends on the type.
type ContentItem struct {
	ID              int64       `json:"id" db:"id"`
	LessonID        int64       `json:"lessonId" db:"lesson_id"`
	Type            ContentType `json:"type" db:"type"`
	Title           string      `json:"title" db:"title"`
	FilePath        *string     `json:"filePath,omitempty" db:"file_path"`
	ExternalURL     *string     `json:"externalUrl,omitempty" db:"external_url"`
	DurationSeconds *int64      `json:"durationSeconds,omitempty" db:"duration_seconds"`
	Content         *string     `json:"content,omitempty" db:"content"`
}
