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

// QuizRepository handles database operations for quizzes.
type QuizRepository struct {
	DB *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{DB: db}
}

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var q models.Quiz
	err := row.Scan(&q.ID, &q.Title, &q.LessonID, &q.ModuleID, &q.CourseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, err
	}
	return &q, nil
}

func selectQuizQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "lesson_id", "module_id", "course_id").
		From("quizzes").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new quiz and returns its ID. It accepts a Querier so
// callers can run it inside a transaction.
func (r *QuizRepository) Create(ctx context.Context, q Querier, quiz *models.Quiz) (int64, error) {
	sql, args, err := squirrel.Insert("quizzes").
		Columns("title", "lesson_id", "module_id", "course_id").
		Values(quiz.Title, quiz.LessonID, quiz.ModuleID, quiz.CourseID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsCheckViolation(err, "quizzes_single_parent") {
			return 0, apperrors.NewInvariantError("a quiz must be associated with exactly one of: lesson, module, or course")
		}
		logger.Error().Err(err).Msg("Error executing create quiz query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a quiz by ID.
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	sql, args, err := selectQuizQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanQuiz(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves quizzes, optionally filtered by parent.
func (r *QuizRepository) List(ctx context.Context, lessonID, moduleID, courseID *int64) ([]*models.Quiz, error) {
	builder := selectQuizQuery().OrderBy("id ASC")
	if lessonID != nil {
		builder = builder.Where(squirrel.Eq{"lesson_id": *lessonID})
	}
	if moduleID != nil {
		builder = builder.Where(squirrel.Eq{"module_id": *moduleID})
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

	quizzes := make([]*models.Quiz, 0)
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

// Update updates an existing quiz inside the given Querier.
func (r *QuizRepository) Update(ctx context.Context, q Querier, quiz *models.Quiz) error {
	sql, args, err := squirrel.Update("quizzes").
		Set("title", quiz.Title).
		Set("lesson_id", quiz.LessonID).
		Set("module_id", quiz.ModuleID).
		Set("course_id", quiz.CourseID).
		Where(squirrel.Eq{"id": quiz.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err, "quizzes_single_parent") {
			return apperrors.NewInvariantError("a quiz must be associated with exactly one of: lesson, module, or course")
		}
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizNotFound
	}
	return nil
}

// Delete removes a quiz and its questions by cascade.
func (r *QuizRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("quizzes").
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
		return apperrors.ErrQuizNotFound
	}
	return nil
}

// QuestionRepository handles database operations for quiz questions.
type QuestionRepository struct {
	DB *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	err := row.Scan(&q.ID, &q.QuizID, &q.Text, &q.Type, &q.Options, &q.CorrectAnswer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

func selectQuestionQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "quiz_id", "text", "type", "options", "correct_answer").
		From("questions").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new question and returns its ID.
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (int64, error) {
	sql, args, err := squirrel.Insert("questions").
		Columns("quiz_id", "text", "type", "options", "correct_answer").
		Values(question.QuizID, question.Text, question.Type, question.Options, question.CorrectAnswer).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Msg("Error executing create question query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	sql, args, err := selectQuestionQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanQuestion(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves questions, optionally filtered by quiz.
func (r *QuestionRepository) List(ctx context.Context, quizID *int64) ([]*models.Question, error) {
	builder := selectQuestionQuery().OrderBy("id ASC")
	if quizID != nil {
		builder = builder.Where(squirrel.Eq{"quiz_id": *quizID})
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

	questions := make([]*models.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Update updates an existing question.
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	sql, args, err := squirrel.Update("questions").
		Set("quiz_id", question.QuizID).
		Set("text", question.Text).
		Set("type", question.Type).
		Set("options", question.Options).
		Set("correct_answer", question.CorrectAnswer).
		Where(squirrel.Eq{"id": question.ID}).
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
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// Delete removes a question.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("questions").
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
		return apperrors.ErrQuestionNotFound
	}
	return nil
}
