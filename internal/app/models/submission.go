package models

import (
	"time"
)

// QuizSubmission records a student's attempt at a quiz. StudentID is
// always the acting identity, fixed at creation and immutable after.
type QuizSubmission struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	QuizID      int64     `json:"quizId" db:"quiz_id"`
	Score       float64   `json:"score" db:"score"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
}

// OwnerID returns the owning student. Used by instance-level policy checks.
func (s *QuizSubmission) OwnerID() int64 {
	return s.StudentID
}

// SetOwnerID fixes the owning student at creation. Called only by the
// write-path guard.
func (s *QuizSubmission) SetOwnerID(id int64) {
	s.StudentID = id
}

// Answer belongs to exactly one submission; the submission's ownership
// transitively governs answer ownership.
type Answer struct {
	ID           int64  `json:"id" db:"id"`
	SubmissionID int64  `json:"submissionId" db:"submission_id"`
	QuestionID   int64  `json:"questionId" db:"question_id"`
	AnswerText   string `json:"answerText" db:"answer_text"`
}

// AnswerDetails is an answer joined with its submission's owner, so
// instance-level policy can resolve transitive ownership in one fetch.
type AnswerDetails struct {
	Answer
	StudentID int64 `json:"studentId" db:"student_id"`
}

// OwnerID returns the owner of the parent submission.
func (a *AnswerDetails) OwnerID() int64 {
	return a.StudentID
}
