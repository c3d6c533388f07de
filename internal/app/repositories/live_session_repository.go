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

// LiveSessionRepository handles database operations for live sessions.
type LiveSessionRepository struct {
	DB *pgxpool.Pool
}

// NewLiveSessionRepository creates a new LiveSessionRepository.
func NewLiveSessionRepository(db *pgxpool.Pool) *LiveSessionRepository {
	return &LiveSessionRepository{DB: db}
}

func scanLiveSession(row pgx.Row) (*models.LiveSession, error) {
	var s models.LiveSession
	err := row.Scan(&s.ID, &s.ModuleID, &s.Title, &s.ScheduledTime, &s.DurationMinutes, &s.MeetingURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLiveSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func selectLiveSessionQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "module_id", "title", "scheduled_time", "duration_minutes", "meeting_url").
		From("live_sessions").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new live session and returns its ID.
func (r *LiveSessionRepository) Create(ctx context.Context, session *models.LiveSession) (int64, error) {
	sql, args, err := squirrel.Insert("live_sessions").
		Columns("module_id", "title", "scheduled_time", "duration_minutes", "meeting_url").
		Values(session.ModuleID, session.Title, session.ScheduledTime, session.DurationMinutes, session.MeetingURL).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create live session query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a live session by ID.
func (r *LiveSessionRepository) GetByID(ctx context.Context, id int64) (*models.LiveSession, error) {
	sql, args, err := selectLiveSessionQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanLiveSession(r.DB.QueryRow(ctx, sql, args...))
}

// List retrieves live sessions, optionally filtered by module, ordered by
// scheduled time.
func (r *LiveSessionRepository) List(ctx context.Context, moduleID *int64) ([]*models.LiveSession, error) {
	builder := selectLiveSessionQuery().OrderBy("scheduled_time ASC")
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

	sessions := make([]*models.LiveSession, 0)
	for rows.Next() {
		s, err := scanLiveSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Update updates an existing live session.
func (r *LiveSessionRepository) Update(ctx context.Context, session *models.LiveSession) error {
	sql, args, err := squirrel.Update("live_sessions").
		Set("module_id", session.ModuleID).
		Set("title", session.Title).
		Set("scheduled_time", session.ScheduledTime).
		Set("duration_minutes", session.DurationMinutes).
		Set("meeting_url", session.MeetingURL).
		Where(squirrel.Eq{"id": session.ID}).
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
		return apperrors.ErrLiveSessionNotFound
	}
	return nil
}

// Delete removes a live session.
func (r *LiveSessionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("live_sessions").
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
		return apperrors.ErrLiveSessionNotFound
	}
	return nil
}
