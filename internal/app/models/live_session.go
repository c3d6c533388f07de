package models

import (
	"time"
)

// LiveSession is a scheduled online meeting attached to a module.
type LiveSession struct {
	ID              int64     `json:"id" db:"id"`
	ModuleID        int64     `json:"moduleId" db:"module_id"`
	Title           string    `json:"title" db:"title"`
	MeetingURL      string    `json:"meetingUrl" db:"meeting_url"`
	ScheduledTime   time.Time `json:"scheduledTime" db:"scheduled_time"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
}
