package models

import (
	"time"
)

// CapstoneProject is a student's final project upload. StudentID is
// fixed to the acting identity at creation; Grade is set only through
// admin-initiated updates.
type CapstoneProject struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	SubmissionFile string    `json:"submissionFile" db:"submission_file"`
	SubmittedAt    time.Time `json:"submittedAt" db:"submitted_at"`
	Grade          *string   `json:"grade,omitempty" db:"grade"`
}

// OwnerID returns the owning student. Used by instance-level policy checks.
func (c *CapstoneProject) OwnerID() int64 {
	return c.StudentID
}

// SetOwnerID fixes the owning student at creation. Called only by the
// write-path guard.
func (c *CapstoneProject) SetOwnerID(id int64) {
	c.StudentID = id
}
