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

// SubmissionRepository handles database operations for quiz submissions.
type SubmissionRepository struct {
	DB *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func scanSubmission(row pgx.Row) (*models.QuizSubmission, error) {
	var s models.QuizSubmission
	err := row.Scan(&s.ID, &s.QuizID, &s.StudentID, &s.SubmittedAt, &s.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func selectSubmissionQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "quiz_id", "student_id", "submitted_at", "score").
		From("quiz_submissions").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new submission inside the given Querier and returns its ID.
func (r *SubmissionRepository) Create(ctx context.Context, q Querier, submission *models.QuizSubmission) (int64, error) {
	sql, args, err := squirrel.Insert("quiz_submissions").
		Columns("quiz_id", "student_id", "score").
		Values(submission.QuizID, submission.StudentID, submission.Score).
		Suffix("RETURNING id, submitted_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id, &submission.SubmittedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Msg("Error executing create submission query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a submission by ID.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.QuizSubmission, error) {
	sql, args, err := selectSubmissionQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSubmission(r.DB.QueryRow(ctx, sql, args...))
}

// GetByIDForUpdate retrieves a submission by ID inside the given Querier,
// locking the row for the remainder of the transaction.
func (r *SubmissionRepository) GetByIDForUpdate(ctx context.Context, q Querier, id int64) (*models.QuizSubmission, error) {
	sql, args, err := selectSubmissionQuery().
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSubmission(q.QueryRow(ctx, sql, args...))
}

// List retrieves submissions. A nil studentID returns all submissions;
// otherwise only the given student's rows are returned.
func (r *SubmissionRepository) List(ctx context.Context, quizID, studentID *int64) ([]*models.QuizSubmission, error) {
	builder := selectSubmissionQuery().OrderBy("submitted_at DESC")
	if quizID != nil {
		builder = builder.Where(squirrel.Eq{"quiz_id": *quizID})
	}
	if studentID != nil {
		builder = builder.Where(squirrel.Eq{"student_id": *studentID})
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

	submissions := make([]*models.QuizSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// UpdateScore sets the score of a submission.
func (r *SubmissionRepository) UpdateScore(ctx context.Context, id int64, score float64) error {
	sql, args, err := squirrel.Update("quiz_submissions").
		Set("score", score).
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
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

// Delete removes a submission and its answers by cascade.
func (r *SubmissionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("quiz_submissions").
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
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

// AnswerRepository handles database operations for submission answers.
type AnswerRepository struct {
	DB *pgxpool.Pool
}

// NewAnswerRepository creates a new AnswerRepository.
func NewAnswerRepository(db *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func selectAnswerDetailsQuery() squirrel.SelectBuilder {
	return squirrel.Select("a.id", "a.submission_id", "a.question_id", "a.answer_text", "s.student_id").
		From("answers a").
		Join("quiz_submissions s ON s.id = a.submission_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAnswerDetails(row pgx.Row) (*models.AnswerDetails, error) {
	var d models.AnswerDetails
	err := row.Scan(&d.ID, &d.SubmissionID, &d.QuestionID, &d.AnswerText, &d.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a new answer inside the given Querier and returns its ID.
func (r *AnswerRepository) Create(ctx context.Context, q Querier, answer *models.Answer) (int64, error) {
	sql, args, err := squirrel.Insert("answers").
		Columns("submission_id", "question_id", "answer_text").
		Values(answer.SubmissionID, answer.QuestionID, answer.AnswerText).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrSubmissionNotFound
		}
		logger.Error().Err(err).Msg("Error executing create answer query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves an answer by ID, joined with its submission's owner so
// that callers can authorize it without a second query.
func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*models.AnswerDetails, error) {
	sql, args, err := selectAnswerDetailsQuery().Where(squirrel.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanAnswerDetails(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves answers. A nil studentID returns all answers; otherwise
// only rows whose submission belongs to the given student are returned.
func (r *AnswerRepository) List(ctx context.Context, submissionID, studentID *int64) ([]*models.AnswerDetails, error) {
	builder := selectAnswerDetailsQuery().OrderBy("a.id ASC")
	if submissionID != nil {
		builder = builder.Where(squirrel.Eq{"a.submission_id": *submissionID})
	}
	if studentID != nil {
		builder = builder.Where(squirrel.Eq{"s.student_id": *studentID})
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

	answers := make([]*models.AnswerDetails, 0)
	for rows.Next() {
		d, err := scanAnswerDetails(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, d)
	}
	return answers, rows.Err()
}

// Update updates an answer's response.
func (r *AnswerRepository) Update(ctx context.Context, answer *models.Answer) error {
	sql, args, err := squirrel.Update("answers").
		Set("answer_text", answer.AnswerText).
		Where(squirrel.Eq{"id": answer.ID}).
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
		return apperrors.ErrAnswerNotFound
	}
	return nil
}

// Delete removes an answer.
func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("answers").
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
		return apperrors.ErrAnswerNotFound
	}
	return nil
}
