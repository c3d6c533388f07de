package models

// Quiz is attached to exactly one of lesson, module or course.
// The parent-exclusivity invariant is enforced on every write, not
// only on creation.
type Quiz struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	LessonID *int64 `json:"lessonId,omitempty" db:"lesson_id"`
	ModuleID *int64 `json:"moduleId,omitempty" db:"module_id"`
	CourseID *int64 `json:"courseId,omitempty" db:"course_id"`
}

// ParentCount returns how many of the lesson/module/course references
// are set. A persisted quiz always has exactly one.
func (q *Quiz) ParentCount() int {
	count := 0
	if q.LessonID != nil {
		count++
	}
	if q.ModuleID != nil {
		count++
	}
	if q.CourseID != nil {
		count++
	}
	return count
}

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionEssay          QuestionType = "essay"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionEssay:
		return true
	}
	return false
}

// Question belongs to a quiz. Options maps a choice key to its text,
// e.g. {"A": "option1", "B": "option2"}; nil for essay questions.
// CorrectAnswer is never serialized to non-admin readers.
type Question struct {
	ID            int64             `json:"id" db:"id"`
	QuizID        int64             `json:"quizId" db:"quiz_id"`
	Text          string            `json:"text" db:"text"`
	Type          QuestionType      `json:"type" db:"type"`
	Options       map[string]string `json:"options,omitempty" db:"options"`
	CorrectAnswer *string           `json:"-" db:"correct_answer"`
}
