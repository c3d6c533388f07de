package dto

import "time"

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	DurationWeeks int        `json:"durationWeeks"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

// ModuleRequest is the payload for creating or updating a module.
type ModuleRequest struct {
	CourseID    int64  `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	WeekNumber  int    `json:"weekNumber" binding:"required"`
	Description string `json:"description"`
}

// LessonRequest is the payload for creating or updating a lesson.
type LessonRequest struct {
	ModuleID int64  `json:"moduleId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Order    int    `json:"order"`
}

// ContentItemRequest is the payload for creating or updating a content
// item. Creation arrives as multipart form data (the file travels as a
// separate part), updates as JSON; both tag sets are needed.
type ContentItemRequest struct {
	LessonID        int64   `json:"lessonId" form:"lessonId" binding:"required"`
	Type            string  `json:"type" form:"type" binding:"required"`
	Title           string  `json:"title" form:"title" binding:"required"`
	ExternalURL     *string `json:"externalUrl" form:"externalUrl"`
	DurationSeconds *int64  `json:"durationSeconds" form:"durationSeconds"`
	Content         *string `json:"content" form:"content"`
}

// LiveSessionRequest is the payload for creating or updating a live session.
type LiveSessionRequest struct {
	ModuleID        int64     `json:"moduleId" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	MeetingURL      string    `json:"meetingUrl" binding:"required,url"`
	ScheduledTime   time.Time `json:"scheduledTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required"`
}

// ListFilterRequest carries common list query parameters.
type ListFilterRequest struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}
