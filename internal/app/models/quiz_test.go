package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizParentCount(t *testing.T) {
	lessonID := int64(1)
	moduleID := int64(2)
	courseID := int64(3)

	tests := []struct {
		name string
		quiz Quiz
		want int
	}{
		{"none", Quiz{}, 0},
		{"lesson", Quiz{LessonID: &lessonID}, 1},
		{"module", Quiz{ModuleID: &moduleID}, 1},
		{"course", Quiz{CourseID: &courseID}, 1},
		{"two", Quiz{LessonID: &lessonID, CourseID: &courseID}, 2},
		{"all", Quiz{LessonID: &lessonID, ModuleID: &moduleID, CourseID: &courseID}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quiz.ParentCount())
		})
	}
}

func TestQuestionTypeValid(t *testing.T) {
	assert.True(t, QuestionMultipleChoice.Valid())
	assert.True(t, QuestionTrueFalse.Valid())
	assert.True(t, QuestionEssay.Valid())
	assert.False(t, QuestionType("matching").Valid())
	assert.False(t, QuestionType("").Valid())
}

func TestContentTypeValid(t *testing.T) {
	assert.True(t, ContentVideo.Valid())
	assert.True(t, ContentPDF.Valid())
	assert.True(t, ContentQuiz.Valid())
	assert.True(t, ContentText.Valid())
	assert.False(t, ContentType("audio").Valid())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, PaymentPending.Valid())
	assert.True(t, PaymentCompleted.Valid())
	assert.True(t, PaymentFailed.Valid())
	assert.False(t, PaymentStatus("refunded").Valid())

	assert.True(t, EnrollmentActive.Valid())
	assert.True(t, EnrollmentCompleted.Valid())
	assert.True(t, EnrollmentDropped.Valid())
	assert.False(t, EnrollmentStatus("paused").Valid())
}
