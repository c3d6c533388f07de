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
)

// SubmissionService defines the interface for quiz submission and
// answer operations. Ownership of a submission is fixed to the acting
// identity at creation; answers inherit it transitively.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, actor auth.Actor, req *dto.SubmissionRequest) (*models.QuizSubmission, error)
	GetSubmission(ctx context.Context, actor auth.Actor, id int64) (*models.QuizSubmission, error)
	ListSubmissions(ctx context.Context, actor auth.Actor, quizID *int64) ([]*models.QuizSubmission, error)
	UpdateSubmission(ctx context.Context, actor auth.Actor, id int64, req *dto.SubmissionRequest) (*models.QuizSubmission, error)
	DeleteSubmission(ctx context.Context, actor auth.Actor, id int64) error

	CreateAnswer(ctx context.Context, actor auth.Actor, req *dto.AnswerRequest) (*models.Answer, error)
	GetAnswer(ctx context.Context, actor auth.Actor, id int64) (*models.AnswerDetails, error)
	ListAnswers(ctx context.Context, actor auth.Actor, submissionID *int64) ([]*models.AnswerDetails, error)
	UpdateAnswer(ctx context.Context, actor auth.Actor, id int64, req *dto.AnswerRequest) (*models.AnswerDetails, error)
	DeleteAnswer(ctx context.Context, actor auth.Actor, id int64) error
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	pool           *pgxpool.Pool
	submissionRepo *repositories.SubmissionRepository
	answerRepo     *repositories.AnswerRepository
	policy         *auth.Policy
	guard          *auth.Guard
	logger         zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	pool *pgxpool.Pool,
	submissionRepo *repositories.SubmissionRepository,
	answerRepo *repositories.AnswerRepository,
	policy *auth.Policy,
	guard *auth.Guard,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		pool:           pool,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
		policy:         policy,
		guard:          guard,
		logger:         logger,
	}
}

// ownerFilter narrows list queries to the actor's own rows unless the
// actor is an admin.
func ownerFilter(actor auth.Actor) *int64 {
	if actor.IsAdmin() {
		return nil
	}
	id := actor.UserID
	return &id
}

// CreateSubmission records a quiz attempt for the acting student. Any
// client-supplied student id is discarded before the write.
func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, actor auth.Actor, req *dto.SubmissionRequest) (*models.QuizSubmission, error) {
	if err := s.policy.Authorize(actor, auth.ResourceSubmission, auth.ActionCreate); err != nil {
		return nil, err
	}

	submission := &models.QuizSubmission{
		QuizID: req.QuizID,
		Score:  req.Score,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guard.InjectOwner(actor, submission); err != nil {
			return err
		}
		id, err := s.submissionRepo.Create(ctx, tx, submission)
		if err != nil {
			return err
		}
		submission.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("submissionId", submission.ID).Int64("quizId", req.QuizID).Msg("Quiz submission created")
	return submission, nil
}

// GetSubmission retrieves a submission. Admin or owner only.
func (s *submissionServiceImpl) GetSubmission(ctx context.Context, actor auth.Actor, id int64) (*models.QuizSubmission, error) {
	if err := s.policy.Authorize(actor, auth.ResourceSubmission, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ListSubmissions retrieves submissions: all of them for admins, the
// actor's own for everyone else.
func (s *submissionServiceImpl) ListSubmissions(ctx context.Context, actor auth.Actor, quizID *int64) ([]*models.QuizSubmission, error) {
	if err := s.policy.Authorize(actor, auth.ResourceSubmission, auth.ActionList); err != nil {
		return nil, err
	}
	return s.submissionRepo.List(ctx, quizID, ownerFilter(actor))
}

// UpdateSubmission updates a submission's score. Admin or owner only;
// the student owner and quiz reference never change after creation.
func (s *submissionServiceImpl) UpdateSubmission(ctx context.Context, actor auth.Actor, id int64, req *dto.SubmissionRequest) (*models.QuizSubmission, error) {
	if err := s.policy.Authorize(actor, auth.ResourceSubmission, auth.ActionUpdate); err != nil {
		return nil, err
	}
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, submission); err != nil {
		return nil, err
	}

	if err := s.submissionRepo.UpdateScore(ctx, id, req.Score); err != nil {
		return nil, err
	}
	submission.Score = req.Score
	return submission, nil
}

// DeleteSubmission removes a submission and its answers. Admin or owner only.
func (s *submissionServiceImpl) DeleteSubmission(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceSubmission, auth.ActionDelete); err != nil {
		return err
	}
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.AuthorizeInstance(actor, submission); err != nil {
		return err
	}
	return s.submissionRepo.Delete(ctx, id)
}

// CreateAnswer records an answer on a submission. The submission must
// belong to the actor unless the actor is an admin; the ownership read
// and the insert share one transaction so a concurrent submission
// delete cannot slip between them.
func (s *submissionServiceImpl) CreateAnswer(ctx context.Context, actor auth.Actor, req *dto.AnswerRequest) (*models.Answer, error) {
	if err := s.policy.Authorize(actor, auth.ResourceAnswer, auth.ActionCreate); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		SubmissionID: req.SubmissionID,
		QuestionID:   req.QuestionID,
		AnswerText:   req.AnswerText,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		submission, err := s.submissionRepo.GetByIDForUpdate(ctx, tx, req.SubmissionID)
		if err != nil {
			return err
		}
		if err := s.policy.AuthorizeInstance(actor, submission); err != nil {
			return err
		}
		id, err := s.answerRepo.Create(ctx, tx, answer)
		if err != nil {
			return err
		}
		answer.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// GetAnswer retrieves an answer. Admin or the owner of the parent
// submission only.
func (s *submissionServiceImpl) GetAnswer(ctx context.Context, actor auth.Actor, id int64) (*models.AnswerDetails, error) {
	if err := s.policy.Authorize(actor, auth.ResourceAnswer, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// ListAnswers retrieves answers: all of them for admins, those on the
// actor's own submissions for everyone else.
func (s *submissionServiceImpl) ListAnswers(ctx context.Context, actor auth.Actor, submissionID *int64) ([]*models.AnswerDetails, error) {
	if err := s.policy.Authorize(actor, auth.ResourceAnswer, auth.ActionList); err != nil {
		return nil, err
	}
	return s.answerRepo.List(ctx, submissionID, ownerFilter(actor))
}

// UpdateAnswer updates an answer's text. Admin or the owner of the
// parent submission only; the submission and question references never
// change after creation.
func (s *submissionServiceImpl) UpdateAnswer(ctx context.Context, actor auth.Actor, id int64, req *dto.AnswerRequest) (*models.AnswerDetails, error) {
	if err := s.policy.Authorize(actor, auth.ResourceAnswer, auth.ActionUpdate); err != nil {
		return nil, err
	}
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, answer); err != nil {
		return nil, err
	}

	answer.AnswerText = req.AnswerText
	if err := s.answerRepo.Update(ctx, &answer.Answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// DeleteAnswer removes an answer. Admin or the owner of the parent
// submission only.
func (s *submissionServiceImpl) DeleteAnswer(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceAnswer, auth.ActionDelete); err != nil {
		return err
	}
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.AuthorizeInstance(actor, answer); err != nil {
		return err
	}
	return s.answerRepo.Delete(ctx, id)
}
