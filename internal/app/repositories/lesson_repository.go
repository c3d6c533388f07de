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

// LessonRepository handles database operations for lessons.
type LessonRepository struct {
	DB *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{DB: db}
}

func scanLesson(row pgx.Row) (*models.Lesson, error) {
	var l models.Lesson
	err := row.Scan(&l.ID, &l.ModuleID, &l.Title, &l.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, err
	}
	return &l, nil
}

func selectLessonQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "module_id", "title", "item_order").
		From("lessons").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new lesson and returns its ID.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	sql, args, err := squirrel.Insert("lessons").
		Columns("module_id", "title", "item_order").
		Values(lesson.ModuleID, lesson.Title, lesson.Order).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create lesson query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a lesson by ID.
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	sql, args, err := selectLessonQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanLesson(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves lessons, optionally filtered by module.
func (r *LessonRepository) List(ctx context.Context, moduleID *int64) ([]*models.Lesson, error) {
	builder := selectLessonQuery().OrderBy("item_order ASC")
	if moduleID != nil {
		builder = builder.Where(squirrel.Eq{"module_id": *moduleID})
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

	lessons := make([]*models.Lesson, 0)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Update updates an existing lesson.
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := squirrel.Update("lessons").
		Set("module_id", lesson.ModuleID).
		Set("title", lesson.Title).
		Set("item_order", lesson.Order).
		Where(squirrel.Eq{"id": lesson.ID}).
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
		return apperrors.ErrLessonNotFound
	}
	return nil
}

// Delete removes a lesson and its content items by cascade.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("lessons").
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
		return apperrors.ErrLessonNotFound
	}
	return nil
}

// ContentItemRepository handles database operations for lesson content items.
type ContentItemRepository struct {
	DB *pgxpool.Pool
}

// NewContentItemRepository creates a new ContentItemRepository.
func NewContentItemRepository(db *pgxpool.Pool) *ContentItemRepository {
	return &ContentItemRepository{DB: db}
}

func scanContentItem(row pgx.Row) (*models.ContentItem, error) {
	var ci models.ContentItem
	err := row.Scan(&ci.ID, &ci.LessonID, &ci.Type, &ci.Title,
		&ci.FilePath, &ci.ExternalURL, &ci.DurationSeconds, &ci.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentItemNotFound
		}
		return nil, err
	}
	return &ci, nil
}

func selectContentItemQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "lesson_id", "type", "title",
		"file_path", "external_url", "duration_seconds", "content").
		From("content_items").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new content item and returns its ID.
func (r *ContentItemRepository) Create(ctx context.Context, item *models.ContentItem) (int64, error) {
	sql, args, err := squirrel.Insert("content_items").
		Columns("lesson_id", "type", "title",
			"file_path", "external_url", "duration_seconds", "content").
		Values(item.LessonID, item.Type, item.Title,
			item.FilePath, item.ExternalURL, item.DurationSeconds, item.Content).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create content item query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a content item by ID.
func (r *ContentItemRepository) GetByID(ctx context.Context, id int64) (*models.ContentItem, error) {
	sql, args, err := selectContentItemQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanContentItem(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves content items, optionally filtered by lesson.
func (r *ContentItemRepository) List(ctx context.Context, lessonID *int64) ([]*models.ContentItem, error) {
	builder := selectContentItemQuery().OrderBy("id ASC")
	if lessonID != nil {
		builder = builder.Where(squirrel.Eq{"lesson_id": *lessonID})
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

	items := make([]*models.ContentItem, 0)
	for rows.Next() {
		ci, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ci)
	}
	return items, rows.Err()
}

// Update updates an existing content item.
func (r *ContentItemRepository) Update(ctx context.Context, item *models.ContentItem) error {
	sql, args, err := squirrel.Update("content_items").
		Set("lesson_id", item.LessonID).
		Set("type", item.Type).
		Set("title", item.Title).
		Set("file_path", item.FilePath).
		Set("external_url", item.ExternalURL).
		Set("duration_seconds", item.DurationSeconds).
		Set("content", item.Content).
		Where(squirrel.Eq{"id": item.ID}).
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
		return apperrors.ErrContentItemNotFound
	}
	return nil
}

// Delete removes a content item.
func (r *ContentItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("content_items").
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
		return apperrors.ErrContentItemNotFound
	}
	return nil
}
