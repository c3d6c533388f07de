package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

func TestGuardInjectOwner(t *testing.T) {
	guard := NewGuard()

	t.Run("overwrites client-supplied owner", func(t *testing.T) {
		payment := &models.Payment{UserID: 999}
		err := guard.InjectOwner(studentActor(), payment)
		require.NoError(t, err)
		assert.Equal(t, int64(2), payment.UserID)
	})

	t.Run("admin creates as itself too", func(t *testing.T) {
		capstone := &models.CapstoneProject{StudentID: 42}
		err := guard.InjectOwner(adminActor(), capstone)
		require.NoError(t, err)
		assert.Equal(t, int64(1), capstone.StudentID)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		enrollment := &models.Enrollment{}
		err := guard.InjectOwner(Anonymous(), enrollment)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestGuardCheckQuizParent(t *testing.T) {
	guard := NewGuard()
	lessonID := int64(1)
	moduleID := int64(2)
	courseID := int64(3)

	tests := []struct {
		name    string
		quiz    models.Quiz
		wantErr bool
	}{
		{"no parent", models.Quiz{}, true},
		{"lesson only", models.Quiz{LessonID: &lessonID}, false},
		{"module only", models.Quiz{ModuleID: &moduleID}, false},
		{"course only", models.Quiz{CourseID: &courseID}, false},
		{"lesson and module", models.Quiz{LessonID: &lessonID, ModuleID: &moduleID}, true},
		{"lesson and course", models.Quiz{LessonID: &lessonID, CourseID: &courseID}, true},
		{"module and course", models.Quiz{ModuleID: &moduleID, CourseID: &courseID}, true},
		{"all three", models.Quiz{LessonID: &lessonID, ModuleID: &moduleID, CourseID: &courseID}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckQuizParent(&tt.quiz)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuardResolveCapstoneGrade(t *testing.T) {
	guard := NewGuard()
	current := "B"
	requested := "A"

	tests := []struct {
		name      string
		actor     Actor
		current   *string
		requested *string
		want      *string
	}{
		{"admin sets grade", adminActor(), nil, &requested, &requested},
		{"admin changes grade", adminActor(), &current, &requested, &requested},
		{"admin clears grade", adminActor(), &current, nil, nil},
		{"student change discarded", studentActor(), &current, &requested, &current},
		{"student cannot set ungraded", studentActor(), nil, &requested, nil},
		{"student keeps stored grade", studentActor(), &current, nil, &current},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guard.ResolveCapstoneGrade(tt.actor, tt.current, tt.requested)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}
