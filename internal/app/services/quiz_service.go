package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/repositories"
	"github.com/osmandemir/learnsphere/internal/db"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

// QuizService defines the interface for quiz and question operations.
type QuizService interface {
	CreateQuiz(ctx context.Context, actor auth.Actor, req *dto.QuizRequest) (*models.Quiz, error)
	GetQuiz(ctx context.Context, actor auth.Actor, id int64) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, actor auth.Actor, lessonID, moduleID, courseID *int64) ([]*models.Quiz, error)
	UpdateQuiz(ctx context.Context, actor auth.Actor, id int64, req *dto.QuizRequest) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, actor auth.Actor, id int64) error

	CreateQuestion(ctx context.Context, actor auth.Actor, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, actor auth.Actor, id int64) (*dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, actor auth.Actor, quizID *int64) ([]*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, actor auth.Actor, id int64, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, actor auth.Actor, id int64) error
}

// quizServiceImpl implements QuizService
type quizServiceImpl struct {
	pool         *pgxpool.Pool
	quizRepo     *repositories.QuizRepository
	questionRepo *repositories.QuestionRepository
	policy       *auth.Policy
	guard        *auth.Guard
	logger       zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	pool *pgxpool.Pool,
	quizRepo *repositories.QuizRepository,
	questionRepo *repositories.QuestionRepository,
	policy *auth.Policy,
	guard *auth.Guard,
	logger zerolog.Logger,
) QuizService {
	return &quizServiceImpl{
		pool:         pool,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		policy:       policy,
		guard:        guard,
		logger:       logger,
	}
}

// CreateQuiz creates a new quiz attached to exactly one parent.
func (s *quizServiceImpl) CreateQuiz(ctx context.Context, actor auth.Actor, req *dto.QuizRequest) (*models.Quiz, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuiz, auth.ActionCreate); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		Title:    req.Title,
		LessonID: req.LessonID,
		ModuleID: req.ModuleID,
		CourseID: req.CourseID,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guard.CheckQuizParent(quiz); err != nil {
			return err
		}
		id, err := s.quizRepo.Create(ctx, tx, quiz)
		if err != nil {
			return err
		}
		quiz.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("quizId", quiz.ID).Msg("Quiz created")
	return quiz, nil
}

// GetQuiz retrieves a quiz by ID. Authenticated only; quizzes carry no
// owner field, so the instance check admits admins alone among
// non-owner roles.
func (s *quizServiceImpl) GetQuiz(ctx context.Context, actor auth.Actor, id int64) (*models.Quiz, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuiz, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, nil); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ListQuizzes retrieves quizzes, optionally scoped to a parent.
func (s *quizServiceImpl) ListQuizzes(ctx context.Context, actor auth.Actor, lessonID, moduleID, courseID *int64) ([]*models.Quiz, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuiz, auth.ActionList); err != nil {
		return nil, err
	}
	return s.quizRepo.List(ctx, lessonID, moduleID, courseID)
}

// UpdateQuiz updates an existing quiz. The parent-exclusivity invariant
// is re-checked on every update, not just creation.
func (s *quizServiceImpl) UpdateQuiz(ctx context.Context, actor auth.Actor, id int64, req *dto.QuizRequest) (*models.Quiz, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuiz, auth.ActionUpdate); err != nil {
		return nil, err
	}

	if _, err := s.quizRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, nil); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		ID:       id,
		Title:    req.Title,
		LessonID: req.LessonID,
		ModuleID: req.ModuleID,
		CourseID: req.CourseID,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guard.CheckQuizParent(quiz); err != nil {
			return err
		}
		return s.quizRepo.Update(ctx, tx, quiz)
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz removes a quiz.
func (s *quizServiceImpl) DeleteQuiz(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceQuiz, auth.ActionDelete); err != nil {
		return err
	}
	if _, err := s.quizRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.policy.AuthorizeInstance(actor, nil); err != nil {
		return err
	}
	return s.quizRepo.Delete(ctx, id)
}

// questionResponse serializes a question for the given reader. The
// correct answer is visible to admins only.
func questionResponse(actor auth.Actor, q *models.Question) *dto.QuestionResponse {
	resp := &dto.QuestionResponse{
		ID:      q.ID,
		QuizID:  q.QuizID,
		Text:    q.Text,
		Type:    string(q.Type),
		Options: q.Options,
	}
	if actor.IsAdmin() {
		resp.CorrectAnswer = q.CorrectAnswer
	}
	return resp
}

// CreateQuestion creates a new question under a quiz. Admin only.
func (s *quizServiceImpl) CreateQuestion(ctx context.Context, actor auth.Actor, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuestion, auth.ActionCreate); err != nil {
		return nil, err
	}

	questionType := models.QuestionType(req.Type)
	if !questionType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown question type: " + req.Type)
	}

	question := &models.Question{
		QuizID:        req.QuizID,
		Text:          req.Text,
		Type:          questionType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	id, err := s.questionRepo.Create(ctx, question)
	if err != nil {
		return nil, err
	}
	question.ID = id
	return questionResponse(actor, question), nil
}

// GetQuestion retrieves a question by ID.
func (s *quizServiceImpl) GetQuestion(ctx context.Context, actor auth.Actor, id int64) (*dto.QuestionResponse, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuestion, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return questionResponse(actor, question), nil
}

// ListQuestions retrieves questions, optionally scoped to a quiz.
func (s *quizServiceImpl) ListQuestions(ctx context.Context, actor auth.Actor, quizID *int64) ([]*dto.QuestionResponse, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuestion, auth.ActionList); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.List(ctx, quizID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, questionResponse(actor, q))
	}
	return responses, nil
}

// UpdateQuestion updates an existing question. Admin only.
func (s *quizServiceImpl) UpdateQuestion(ctx context.Context, actor auth.Actor, id int64, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.policy.Authorize(actor, auth.ResourceQuestion, auth.ActionUpdate); err != nil {
		return nil, err
	}

	questionType := models.QuestionType(req.Type)
	if !questionType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown question type: " + req.Type)
	}

	question := &models.Question{
		ID:            id,
		QuizID:        req.QuizID,
		Text:          req.Text,
		Type:          questionType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}
	return questionResponse(actor, question), nil
}

// DeleteQuestion removes a question. Admin only.
func (s *quizServiceImpl) DeleteQuestion(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceQuestion, auth.ActionDelete); err != nil {
		return err
	}
	return s.questionRepo.Delete(ctx, id)
}
