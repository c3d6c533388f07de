package dto

// QuizRequest is the payload for creating or updating a quiz. Exactly
// one of lessonId, moduleId, courseId must be set; the write-path guard
// rejects anything else.
type QuizRequest struct {
	Title    string `json:"title" binding:"required"`
	LessonID *int64 `json:"lessonId"`
	ModuleID *int64 `json:"moduleId"`
	CourseID *int64 `json:"courseId"`
}

// QuestionRequest is the payload for creating or updating a question.
type QuestionRequest struct {
	QuizID        int64             `json:"quizId" binding:"required"`
	Text          string            `json:"text" binding:"required"`
	Type          string            `json:"type" binding:"required"`
	Options       map[string]string `json:"options"`
	CorrectAnswer *string           `json:"correctAnswer"`
}

// QuestionResponse is the serialized view of a question. CorrectAnswer
// is populated only for admin readers.
type QuestionResponse struct {
	ID            int64             `json:"id"`
	QuizID        int64             `json:"quizId"`
	Text          string            `json:"text"`
	Type          string            `json:"type"`
	Options       map[string]string `json:"options,omitempty"`
	CorrectAnswer *string           `json:"correctAnswer,omitempty"`
}
