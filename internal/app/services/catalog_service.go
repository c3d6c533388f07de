package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/repositories"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
	"github.com/osmandemir/learnsphere/internal/pkg/filestorage"
)

// CatalogService defines the interface for course catalog operations:
// courses, modules, lessons, content items and live sessions. Reads are
// public; writes require the admin role.
type CatalogService interface {
	CreateCourse(ctx context.Context, actor auth.Actor, req *dto.CourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, actor auth.Actor, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, actor auth.Actor, filter *dto.ListFilterRequest) ([]*models.Course, dto.PaginationInfo, error)
	UpdateCourse(ctx context.Context, actor auth.Actor, id int64, req *dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error

	CreateModule(ctx context.Context, actor auth.Actor, req *dto.ModuleRequest) (*models.Module, error)
	GetModule(ctx context.Context, actor auth.Actor, id int64) (*models.Module, error)
	ListModules(ctx context.Context, actor auth.Actor, courseID *int64) ([]*models.Module, error)
	UpdateModule(ctx context.Context, actor auth.Actor, id int64, req *dto.ModuleRequest) (*models.Module, error)
	DeleteModule(ctx context.Context, actor auth.Actor, id int64) error

	CreateLesson(ctx context.Context, actor auth.Actor, req *dto.LessonRequest) (*models.Lesson, error)
	GetLesson(ctx context.Context, actor auth.Actor, id int64) (*models.Lesson, error)
	ListLessons(ctx context.Context, actor auth.Actor, moduleID *int64) ([]*models.Lesson, error)
	UpdateLesson(ctx context.Context, actor auth.Actor, id int64, req *dto.LessonRequest) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, actor auth.Actor, id int64) error

	CreateContentItem(ctx context.Context, actor auth.Actor, req *dto.ContentItemRequest, file *multipart.FileHeader) (*models.ContentItem, error)
	GetContentItem(ctx context.Context, actor auth.Actor, id int64) (*models.ContentItem, error)
	ListContentItems(ctx context.Context, actor auth.Actor, lessonID *int64) ([]*models.ContentItem, error)
	UpdateContentItem(ctx context.Context, actor auth.Actor, id int64, req *dto.ContentItemRequest) (*models.ContentItem, error)
	DeleteContentItem(ctx context.Context, actor auth.Actor, id int64) error

	CreateLiveSession(ctx context.Context, actor auth.Actor, req *dto.LiveSessionRequest) (*models.LiveSession, error)
	GetLiveSession(ctx context.Context, actor auth.Actor, id int64) (*models.LiveSession, error)
	ListLiveSessions(ctx context.Context, actor auth.Actor, moduleID *int64) ([]*models.LiveSession, error)
	UpdateLiveSession(ctx context.Context, actor auth.Actor, id int64, req *dto.LiveSessionRequest) (*models.LiveSession, error)
	DeleteLiveSession(ctx context.Context, actor auth.Actor, id int64) error
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	courseRepo      *repositories.CourseRepository
	moduleRepo      *repositories.ModuleRepository
	lessonRepo      *repositories.LessonRepository
	contentItemRepo *repositories.ContentItemRepository
	liveSessionRepo *repositories.LiveSessionRepository
	fileStorage     *filestorage.LocalStorage
	policy          *auth.Policy
	logger          zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	courseRepo *repositories.CourseRepository,
	moduleRepo *repositories.ModuleRepository,
	lessonRepo *repositories.LessonRepository,
	contentItemRepo *repositories.ContentItemRepository,
	liveSessionRepo *repositories.LiveSessionRepository,
	fileStorage *filestorage.LocalStorage,
	policy *auth.Policy,
	logger zerolog.Logger,
) CatalogService {
	return &catalogServiceImpl{
		courseRepo:      courseRepo,
		moduleRepo:      moduleRepo,
		lessonRepo:      lessonRepo,
		contentItemRepo: contentItemRepo,
		liveSessionRepo: liveSessionRepo,
		fileStorage:     fileStorage,
		policy:          policy,
		logger:          logger,
	}
}

// CreateCourse creates a new course. Admin only.
func (s *catalogServiceImpl) CreateCourse(ctx context.Context, actor auth.Actor, req *dto.CourseRequest) (*models.Course, error) {
	if err := s.policy.Authorize(actor, auth.ResourceCourse, auth.ActionCreate); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:         req.Title,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id

	s.logger.Info().Int64("courseId", id).Msg("Course created")
	return course, nil
}

// GetCourse retrieves a course by ID.
func (s *catalogServiceImpl) GetCourse(ctx context.Context, actor auth.Actor, id int64) (*models.Course, error) {
	if err := s.policy.Authorize(actor, auth.ResourceCourse, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves a paginated course list.
func (s *catalogServiceImpl) ListCourses(ctx context.Context, actor auth.Actor, filter *dto.ListFilterRequest) ([]*models.Course, dto.PaginationInfo, error) {
	if err := s.policy.Authorize(actor, auth.ResourceCourse, auth.ActionList); err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return s.courseRepo.List(ctx, filter.Page, filter.PageSize)
}

// UpdateCourse updates an existing course. Admin only.
func (s *catalogServiceImpl) UpdateCourse(ctx context.Context, actor auth.Actor, id int64, req *dto.CourseRequest) (*models.Course, error) {
	if err := s.policy.Authorize(actor, auth.ResourceCourse, auth.ActionUpdate); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course. Admin only.
func (s *catalogServiceImpl) DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceCourse, auth.ActionDelete); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}

// CreateModule creates a new module under a course. Admin only.
func (s *catalogServiceImpl) CreateModule(ctx context.Context, actor auth.Actor, req *dto.ModuleRequest) (*models.Module, error) {
	if err := s.policy.Authorize(actor, auth.ResourceModule, auth.ActionCreate); err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	module := &models.Module{
		CourseID:    req.CourseID,
		Title:       req.Title,
		WeekNumber:  req.WeekNumber,
		Description: req.Description,
	}
	id, err := s.moduleRepo.Create(ctx, module)
	if err != nil {
		return nil, err
	}
	module.ID = id

	s.logger.Info().Int64("moduleId", id).Int64("courseId", req.CourseID).Msg("Module created")
	return module, nil
}

// GetModule retrieves a module by ID.
func (s *catalogServiceImpl) GetModule(ctx context.Context, actor auth.Actor, id int64) (*models.Module, error) {
	if err := s.policy.Authorize(actor, auth.ResourceModule, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	return s.moduleRepo.GetByID(ctx, id)
}

// ListModules retrieves modules, optionally scoped to a course.
func (s *catalogServiceImpl) ListModules(ctx context.Context, actor auth.Actor, courseID *int64) ([]*models.Module, error) {
	if err := s.policy.Authorize(actor, auth.ResourceModule, auth.ActionList); err != nil {
		return nil, err
	}
	return s.moduleRepo.List(ctx, courseID)
}

// UpdateModule updates an existing module. Admin only.
func (s *catalogServiceImpl) UpdateModule(ctx context.Context, actor auth.Actor, id int64, req *dto.ModuleRequest) (*models.Module, error) {
	if err := s.policy.Authorize(actor, auth.ResourceModule, auth.ActionUpdate); err != nil {
		return nil, err
	}

	module := &models.Module{
		ID:          id,
		CourseID:    req.CourseID,
		Title:       req.Title,
		WeekNumber:  req.WeekNumber,
		Description: req.Description,
	}
	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// DeleteModule removes a module. Admin only.
func (s *catalogServiceImpl) DeleteModule(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceModule, auth.ActionDelete); err != nil {
		return err
	}
	return s.moduleRepo.Delete(ctx, id)
}

// CreateLesson creates a new lesson under a module. Admin only.
func (s *catalogServiceImpl) CreateLesson(ctx context.Context, actor auth.Actor, req *dto.LessonRequest) (*models.Lesson, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLesson, auth.ActionCreate); err != nil {
		return nil, err
	}

	if _, err := s.moduleRepo.GetByID(ctx, req.ModuleID); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		ModuleID: req.ModuleID,
		Title:    req.Title,
		Order:    req.Order,
	}
	id, err := s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}
	lesson.ID = id
	return lesson, nil
}

// GetLesson retrieves a lesson by ID.
func (s *catalogServiceImpl) GetLesson(ctx context.Context, actor auth.Actor, id int64) (*models.Lesson, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLesson, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	return s.lessonRepo.GetByID(ctx, id)
}

// ListLessons retrieves lessons, optionally scoped to a module.
func (s *catalogServiceImpl) ListLessons(ctx context.Context, actor auth.Actor, moduleID *int64) ([]*models.Lesson, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLesson, auth.ActionList); err != nil {
		return nil, err
	}
	return s.lessonRepo.List(ctx, moduleID)
}

// UpdateLesson updates an existing lesson. Admin only.
func (s *catalogServiceImpl) UpdateLesson(ctx context.Context, actor auth.Actor, id int64, req *dto.LessonRequest) (*models.Lesson, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLesson, auth.ActionUpdate); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		ID:       id,
		ModuleID: req.ModuleID,
		Title:    req.Title,
		Order:    req.Order,
	}
	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson removes a lesson. Admin only.
func (s *catalogServiceImpl) DeleteLesson(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceLesson, auth.ActionDelete); err != nil {
		return err
	}
	return s.lessonRepo.Delete(ctx, id)
}

// CreateContentItem creates a new content item. Admin only. For video
// and pdf items an uploaded file is stored and its path recorded; text
// items carry inline content instead.
func (s *catalogServiceImpl) CreateContentItem(ctx context.Context, actor auth.Actor, req *dto.ContentItemRequest, file *multipart.FileHeader) (*models.ContentItem, error) {
	if err := s.policy.Authorize(actor, auth.ResourceContentItem, auth.ActionCreate); err != nil {
		return nil, err
	}

	contentType := models.ContentType(req.Type)
	if !contentType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown content type: " + req.Type)
	}

	if _, err := s.lessonRepo.GetByID(ctx, req.LessonID); err != nil {
		return nil, err
	}

	item := &models.ContentItem{
		LessonID:        req.LessonID,
		Type:            contentType,
		Title:           req.Title,
		ExternalURL:     req.ExternalURL,
		DurationSeconds: req.DurationSeconds,
		Content:         req.Content,
	}

	if file != nil {
		storedPath, err := s.fileStorage.SaveFile(file, "content")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to store content file")
			return nil, err
		}
		item.FilePath = &storedPath
	}

	id, err := s.contentItemRepo.Create(ctx, item)
	if err != nil {
		if item.FilePath != nil {
			_ = s.fileStorage.DeleteFile(*item.FilePath)
		}
		return nil, err
	}
	item.ID = id
	return item, nil
}

// GetContentItem retrieves a content item by ID.
func (s *catalogServiceImpl) GetContentItem(ctx context.Context, actor auth.Actor, id int64) (*models.ContentItem, error) {
	if err := s.policy.Authorize(actor, auth.ResourceContentItem, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	return s.contentItemRepo.GetByID(ctx, id)
}

// ListContentItems retrieves content items, optionally scoped to a lesson.
func (s *catalogServiceImpl) ListContentItems(ctx context.Context, actor auth.Actor, lessonID *int64) ([]*models.ContentItem, error) {
	if err := s.policy.Authorize(actor, auth.ResourceContentItem, auth.ActionList); err != nil {
		return nil, err
	}
	return s.contentItemRepo.List(ctx, lessonID)
}

// UpdateContentItem updates an existing content item. Admin only. The
// stored file path is preserved; only metadata fields change here.
func (s *catalogServiceImpl) UpdateContentItem(ctx context.Context, actor auth.Actor, id int64, req *dto.ContentItemRequest) (*models.ContentItem, error) {
	if err := s.policy.Authorize(actor, auth.ResourceContentItem, auth.ActionUpdate); err != nil {
		return nil, err
	}

	contentType := models.ContentType(req.Type)
	if !contentType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown content type: " + req.Type)
	}

	existing, err := s.contentItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item := &models.ContentItem{
		ID:              id,
		LessonID:        req.LessonID,
		Type:            contentType,
		Title:           req.Title,
		FilePath:        existing.FilePath,
		ExternalURL:     req.ExternalURL,
		DurationSeconds: req.DurationSeconds,
		Content:         req.Content,
	}
	if err := s.contentItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteContentItem removes a content item and its stored file. Admin only.
func (s *catalogServiceImpl) DeleteContentItem(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceContentItem, auth.ActionDelete); err != nil {
		return err
	}

	item, err := s.contentItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	if item.FilePath != nil {
		if err := s.fileStorage.DeleteFile(*item.FilePath); err != nil {
			s.logger.Warn().Err(err).Int64("contentItemId", id).Msg("Failed to delete stored content file")
		}
	}
	return nil
}

// CreateLiveSession schedules a new live session. Admin only.
func (s *catalogServiceImpl) CreateLiveSession(ctx context.Context, actor auth.Actor, req *dto.LiveSessionRequest) (*models.LiveSession, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLiveSession, auth.ActionCreate); err != nil {
		return nil, err
	}

	if _, err := s.moduleRepo.GetByID(ctx, req.ModuleID); err != nil {
		return nil, err
	}

	session := &models.LiveSession{
		ModuleID:        req.ModuleID,
		Title:           req.Title,
		MeetingURL:      req.MeetingURL,
		ScheduledTime:   req.ScheduledTime,
		DurationMinutes: req.DurationMinutes,
	}
	id, err := s.liveSessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id

	s.logger.Info().Int64("liveSessionId", id).Time("scheduledTime", req.ScheduledTime).Msg("Live session scheduled")
	return session, nil
}

// GetLiveSession retrieves a live session by ID.
func (s *catalogServiceImpl) GetLiveSession(ctx context.Context, actor auth.Actor, id int64) (*models.LiveSession, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLiveSession, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	return s.liveSessionRepo.GetByID(ctx, id)
}

// ListLiveSessions retrieves live sessions, optionally scoped to a module.
func (s *catalogServiceImpl) ListLiveSessions(ctx context.Context, actor auth.Actor, moduleID *int64) ([]*models.LiveSession, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLiveSession, auth.ActionList); err != nil {
		return nil, err
	}
	return s.liveSessionRepo.List(ctx, moduleID)
}

// UpdateLiveSession updates an existing live session. Admin only.
func (s *catalogServiceImpl) UpdateLiveSession(ctx context.Context, actor auth.Actor, id int64, req *dto.LiveSessionRequest) (*models.LiveSession, error) {
	if err := s.policy.Authorize(actor, auth.ResourceLiveSession, auth.ActionUpdate); err != nil {
		return nil, err
	}

	session := &models.LiveSession{
		ID:              id,
		ModuleID:        req.ModuleID,
		Title:           req.Title,
		MeetingURL:      req.MeetingURL,
		ScheduledTime:   req.ScheduledTime,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.liveSessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteLiveSession removes a live session. Admin only.
func (s *catalogServiceImpl) DeleteLiveSession(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceLiveSession, auth.ActionDelete); err != nil {
		return err
	}
	return s.liveSessionRepo.Delete(ctx, id)
}
