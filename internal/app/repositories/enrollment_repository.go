package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
	"github.com/osmandemir/learnsphere/internal/pkg/dberrors"
	"github.com/osmandemir/learnsphere/internal/pkg/logger"
)

// EnrollmentRepository handles database operations for enrollments.
type EnrollmentRepository struct {
	DB *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.CourseID, &e.PaymentID, &e.EnrolledAt, &e.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func selectEnrollmentQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "user_id", "course_id", "payment_id", "enrolled_at", "status").
		From("enrollments").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new enrollment inside the given Querier and returns its
// ID. The payments unique constraint rejects a payment already backing
// another enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, q Querier, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := squirrel.Insert("enrollments").
		Columns("user_id", "course_id", "payment_id", "status").
		Values(enrollment.UserID, enrollment.CourseID, enrollment.PaymentID, enrollment.Status).
		Suffix("RETURNING id, enrolled_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id, &enrollment.EnrolledAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrPaymentAlreadyUsed
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves an enrollment by ID.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := selectEnrollmentQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEnrollment(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves enrollments. A nil userID returns all enrollments;
// otherwise only the given user's rows are returned.
func (r *EnrollmentRepository) List(ctx context.Context, userID, courseID *int64) ([]*models.Enrollment, error) {
	builder := selectEnrollmentQuery().OrderBy("enrolled_at DESC")
	if userID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *userID})
	}
	if courseID != nil {
		builder = builder.Where(squirrel.Eq{"course_id": *courseID})
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// UpdateStatus sets the status of an enrollment.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	sql, args, err := squirrel.Update("enrollments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// Delete removes an enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
