package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
	"github.com/osmandemir/learnsphere/internal/pkg/helpers"
	"github.com/osmandemir/learnsphere/internal/pkg/logger"
)

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.DurationWeeks, &c.StartDate, &c.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func selectCourseQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "description", "duration_weeks", "start_date", "end_date").
		From("courses").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new course and returns its ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := squirrel.Insert("courses").
		Columns("title", "description", "duration_weeks", "start_date", "end_date").
		Values(course.Title, course.Description, course.DurationWeeks, course.StartDate, course.EndDate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := selectCourseQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCourse(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves a paginated list of courses.
func (r *CourseRepository) List(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	var totalItems int64
	countSql, countArgs, err := squirrel.Select("count(*)").From("courses").
		PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Course{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := selectCourseQuery().
		OrderBy("id ASC").
		Limit(uint64(limit)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		courses = append(courses, c)
	}
	return courses, pagination, rows.Err()
}

// Update updates an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := squirrel.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("duration_weeks", course.DurationWeeks).
		Set("start_date", course.StartDate).
		Set("end_date", course.EndDate).
		Where(squirrel.Eq{"id": course.ID}).
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
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course. Modules, lessons and content under it are
// removed by cascading foreign keys.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("courses").
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
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// ModuleRepository handles database operations for course modules.
type ModuleRepository struct {
	DB *pgxpool.Pool
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func scanModule(row pgx.Row) (*models.Module, error) {
	var m models.Module
	err := row.Scan(&m.ID, &m.CourseID, &m.Title, &m.WeekNumber, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, err
	}
	return &m, nil
}

func selectModuleQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "course_id", "title", "week_number", "description").
		From("modules").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new module and returns its ID.
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) (int64, error) {
	sql, args, err := squirrel.Insert("modules").
		Columns("course_id", "title", "week_number", "description").
		Values(module.CourseID, module.Title, module.WeekNumber, module.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create module query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a module by ID.
func (r *ModuleRepository) GetByID(ctx context.Context, id int64) (*models.Module, error) {
	sql, args, err := selectModuleQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanModule(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves modules, optionally filtered by course.
func (r *ModuleRepository) List(ctx context.Context, courseID *int64) ([]*models.Module, error) {
	builder := selectModuleQuery().OrderBy("week_number ASC")
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

	modules := make([]*models.Module, 0)
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// Update updates an existing module.
func (r *ModuleRepository) Update(ctx context.Context, module *models.Module) error {
	sql, args, err := squirrel.Update("modules").
		Set("course_id", module.CourseID).
		Set("title", module.Title).
		Set("week_number", module.WeekNumber).
		Set("description", module.Description).
		Where(squirrel.Eq{"id": module.ID}).
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
		return apperrors.ErrModuleNotFound
	}
	return nil
}

// Delete removes a module and, by cascade, its lessons and live sessions.
func (r *ModuleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("modules").
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
		return apperrors.ErrModuleNotFound
	}
	return nil
}
