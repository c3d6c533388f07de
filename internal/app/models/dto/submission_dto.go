package dto

// SubmissionRequest is the payload for creating or updating a quiz
// submission. StudentID is accepted in the payload but always discarded:
// the write-path guard fixes ownership to the acting identity.
type SubmissionRequest struct {
	StudentID int64   `json:"studentId"`
	QuizID    int64   `json:"quizId" binding:"required"`
	Score     float64 `json:"score"`
}

// AnswerRequest is the payload for creating or updating an answer. The
// target submission must belong to the acting identity unless the actor
// is an admin.
type AnswerRequest struct {
	SubmissionID int64  `json:"submissionId" binding:"required"`
	QuestionID   int64  `json:"questionId" binding:"required"`
	AnswerText   string `json:"answerText" binding:"required"`
}
