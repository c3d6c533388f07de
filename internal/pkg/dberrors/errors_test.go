package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505", "users_email_key")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pgError("23505", ""))))
	assert.False(t, IsUniqueViolation(pgError("23503", "")))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := pgError("23505", "payments_transaction_id_key")
	assert.True(t, IsDuplicateConstraintError(err, "payments_transaction_id_key"))
	assert.False(t, IsDuplicateConstraintError(err, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(pgError("23514", "payments_transaction_id_key"), "payments_transaction_id_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(pgError("23503", "enrollments_course_id_fkey")))
	assert.False(t, IsForeignKeyViolation(pgError("23505", "")))
	assert.False(t, IsForeignKeyViolation(errors.New("plain error")))
}

func TestIsCheckViolation(t *testing.T) {
	err := pgError("23514", "quizzes_single_parent")
	assert.True(t, IsCheckViolation(err, "quizzes_single_parent"))
	assert.True(t, IsCheckViolation(fmt.Errorf("update: %w", err), "quizzes_single_parent"))
	assert.False(t, IsCheckViolation(err, "some_other_check"))
	assert.False(t, IsCheckViolation(pgError("23505", "quizzes_single_parent"), "quizzes_single_parent"))
	assert.False(t, IsCheckViolation(errors.New("plain error"), "quizzes_single_parent"))
}
