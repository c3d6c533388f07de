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

// EnrollmentService defines the interface for payment and enrollment
// operations. Both resources are owner-bound: ownership is fixed to the
// acting identity at creation.
type EnrollmentService interface {
	CreatePayment(ctx context.Context, actor auth.Actor, req *dto.PaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, actor auth.Actor, id int64) (*models.Payment, error)
	ListPayments(ctx context.Context, actor auth.Actor) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, actor auth.Actor, id int64, req *dto.PaymentUpdateRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, actor auth.Actor, id int64) error

	CreateEnrollment(ctx context.Context, actor auth.Actor, req *dto.EnrollmentRequest) (*models.Enrollment, error)
	GetEnrollment(ctx context.Context, actor auth.Actor, id int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, actor auth.Actor, courseID *int64) ([]*models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, actor auth.Actor, id int64, status string) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, actor auth.Actor, id int64) error
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	pool           *pgxpool.Pool
	paymentRepo    *repositories.PaymentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	policy         *auth.Policy
	guard          *auth.Guard
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	pool *pgxpool.Pool,
	paymentRepo *repositories.PaymentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	policy *auth.Policy,
	guard *auth.Guard,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		pool:           pool,
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		policy:         policy,
		guard:          guard,
		logger:         logger,
	}
}

// CreatePayment records a payment for the acting user. Any
// client-supplied user id is discarded before the write.
func (s *enrollmentServiceImpl) CreatePayment(ctx context.Context, actor auth.Actor, req *dto.PaymentRequest) (*models.Payment, error) {
	if err := s.policy.Authorize(actor, auth.ResourcePayment, auth.ActionCreate); err != nil {
		return nil, err
	}

	status := models.PaymentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("unknown payment status: " + req.Status)
	}

	payment := &models.Payment{
		Amount:        req.Amount,
		PaymentOption: req.PaymentOption,
		TransactionID: req.TransactionID,
		Status:        status,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guard.InjectOwner(actor, payment); err != nil {
			return err
		}
		id, err := s.paymentRepo.Create(ctx, tx, payment)
		if err != nil {
			return err
		}
		payment.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("paymentId", payment.ID).Str("transactionId", req.TransactionID).Msg("Payment recorded")
	return payment, nil
}

// GetPayment retrieves a payment. Admin or owner only.
func (s *enrollmentServiceImpl) GetPayment(ctx context.Context, actor auth.Actor, id int64) (*models.Payment, error) {
	if err := s.policy.Authorize(actor, auth.ResourcePayment, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments retrieves payments: all of them for admins, the actor's
// own for everyone else.
func (s *enrollmentServiceImpl) ListPayments(ctx context.Context, actor auth.Actor) ([]*models.Payment, error) {
	if err := s.policy.Authorize(actor, auth.ResourcePayment, auth.ActionList); err != nil {
		return nil, err
	}
	return s.paymentRepo.List(ctx, ownerFilter(actor))
}

// UpdatePayment changes a payment's amount, option or status. Admin or
// owner only; the paying user and the transaction id never change after
// creation.
func (s *enrollmentServiceImpl) UpdatePayment(ctx context.Context, actor auth.Actor, id int64, req *dto.PaymentUpdateRequest) (*models.Payment, error) {
	if err := s.policy.Authorize(actor, auth.ResourcePayment, auth.ActionUpdate); err != nil {
		return nil, err
	}

	status := models.PaymentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("unknown payment status: " + req.Status)
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, payment); err != nil {
		return nil, err
	}

	payment.Amount = req.Amount
	payment.PaymentOption = req.PaymentOption
	payment.Status = status

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a payment. Admin or owner only. Enrollments
// backed by the payment survive with the link nulled.
func (s *enrollmentServiceImpl) DeletePayment(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourcePayment, auth.ActionDelete); err != nil {
		return err
	}
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.AuthorizeInstance(actor, payment); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

// CreateEnrollment enrolls the acting user in a course. When a payment
// is referenced it must belong to the actor (admins excepted) and must
// not already back another enrollment; the payment is row-locked for
// the duration of the transaction so two concurrent enrollments cannot
// claim it.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, actor auth.Actor, req *dto.EnrollmentRequest) (*models.Enrollment, error) {
	if err := s.policy.Authorize(actor, auth.ResourceEnrollment, auth.ActionCreate); err != nil {
		return nil, err
	}

	status := models.EnrollmentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("unknown enrollment status: " + req.Status)
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		CourseID:  req.CourseID,
		PaymentID: req.PaymentID,
		Status:    status,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guard.InjectOwner(actor, enrollment); err != nil {
			return err
		}
		if req.PaymentID != nil {
			payment, err := s.paymentRepo.GetByIDForUpdate(ctx, tx, *req.PaymentID)
			if err != nil {
				return err
			}
			if err := s.policy.AuthorizeInstance(actor, payment); err != nil {
				return err
			}
		}
		id, err := s.enrollmentRepo.Create(ctx, tx, enrollment)
		if err != nil {
			return err
		}
		enrollment.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("enrollmentId", enrollment.ID).Int64("courseId", req.CourseID).Msg("Enrollment created")
	return enrollment, nil
}

// GetEnrollment retrieves an enrollment. Admin or owner only.
func (s *enrollmentServiceImpl) GetEnrollment(ctx context.Context, actor auth.Actor, id int64) (*models.Enrollment, error) {
	if err := s.policy.Authorize(actor, auth.ResourceEnrollment, auth.ActionRetrieve); err != nil {
		return nil, err
	}
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListEnrollments retrieves enrollments: all of them for admins, the
// actor's own for everyone else.
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, actor auth.Actor, courseID *int64) ([]*models.Enrollment, error) {
	if err := s.policy.Authorize(actor, auth.ResourceEnrollment, auth.ActionList); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.List(ctx, ownerFilter(actor), courseID)
}

// UpdateEnrollmentStatus changes the status of an enrollment. Admin or
// owner only; the user, course and payment links never change after
// creation.
func (s *enrollmentServiceImpl) UpdateEnrollmentStatus(ctx context.Context, actor auth.Actor, id int64, status string) (*models.Enrollment, error) {
	if err := s.policy.Authorize(actor, auth.ResourceEnrollment, auth.ActionUpdate); err != nil {
		return nil, err
	}

	newStatus := models.EnrollmentStatus(status)
	if !newStatus.Valid() {
		return nil, apperrors.NewBadRequestError("unknown enrollment status: " + status)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeInstance(actor, enrollment); err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	enrollment.Status = newStatus
	return enrollment, nil
}

// DeleteEnrollment removes an enrollment. Admin or owner only.
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, actor auth.Actor, id int64) error {
	if err := s.policy.Authorize(actor, auth.ResourceEnrollment, auth.ActionDelete); err != nil {
		return err
	}
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.AuthorizeInstance(actor, enrollment); err != nil {
		return err
	}
	return s.enrollmentRepo.Delete(ctx, id)
}
