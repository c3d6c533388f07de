package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
	"github.com/osmandemir/learnsphere/internal/pkg/logger"
)

// CapstoneRepository handles database operations for capstone projects.
type CapstoneRepository struct {
	DB *pgxpool.Pool
}

// NewCapstoneRepository creates a new CapstoneRepository.
func NewCapstoneRepository(db *pgxpool.Pool) *CapstoneRepository {
	return &CapstoneRepository{DB: db}
}

func scanCapstone(row pgx.Row) (*models.CapstoneProject, error) {
	var c models.CapstoneProject
	err := row.Scan(&c.ID, &c.StudentID, &c.Title, &c.Description, &c.SubmissionFile, &c.SubmittedAt, &c.Grade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCapstoneNotFound
		}
		return nil, err
	}
	return &c, nil
}

func selectCapstoneQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "student_id", "title", "description", "submission_file", "submitted_at", "grade").
		From("capstone_projects").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new capstone project and returns its ID.
func (r *CapstoneRepository) Create(ctx context.Context, project *models.CapstoneProject) (int64, error) {
	sql, args, err := squirrel.Insert("capstone_projects").
		Columns("student_id", "title", "description", "submission_file", "grade").
		Values(project.StudentID, project.Title, project.Description, project.SubmissionFile, project.Grade).
		Suffix("RETURNING id, submitted_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id, &project.SubmittedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create capstone query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a capstone project by ID.
func (r *CapstoneRepository) GetByID(ctx context.Context, id int64) (*models.CapstoneProject, error) {
	sql, args, err := selectCapstoneQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCapstone(r.DB.QueryRow(ctx, sql, args...))
}

// GetByIDForUpdate retrieves a capstone project inside the given Querier,
// locking the row so grade resolution and the subsequent write are atomic.
func (r *CapstoneRepository) GetByIDForUpdate(ctx context.Context, q Querier, id int64) (*models.CapstoneProject, error) {
	sql, args, err := selectCapstoneQuery().
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCapstone(q.QueryRow(ctx, sql, args...))
}

// List retrieves capstone projects. A nil studentID returns all projects;
// otherwise only the given student's rows are returned.
func (r *CapstoneRepository) List(ctx context.Context, studentID *int64) ([]*models.CapstoneProject, error) {
	builder := selectCapstoneQuery().OrderBy("submitted_at DESC")
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

	projects := make([]*models.CapstoneProject, 0)
	for rows.Next() {
		c, err := scanCapstone(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, c)
	}
	return projects, rows.Err()
}

// Update writes a capstone project's mutable fields inside the given Querier.
func (r *CapstoneRepository) Update(ctx context.Context, q Querier, project *models.CapstoneProject) error {
	sql, args, err := squirrel.Update("capstone_projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("submission_file", project.SubmissionFile).
		Set("grade", project.Grade).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCapstoneNotFound
	}
	return nil
}

// Delete removes a capstone project.
func (r *CapstoneRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("capstone_projects").
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
		return apperrors.ErrCapstoneNotFound
	}
	return nil
}
