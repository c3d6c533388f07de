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

// PaymentRepository handles database operations for payments.
type PaymentRepository struct {
	DB *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.Amount, &p.PaymentOption, &p.TransactionID, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func selectPaymentQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "user_id", "amount", "payment_option", "transaction_id", "status", "created_at").
		From("payments").
		PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new payment inside the given Querier and returns its ID.
func (r *PaymentRepository) Create(ctx context.Context, q Querier, payment *models.Payment) (int64, error) {
	sql, args, err := squirrel.Insert("payments").
		Columns("user_id", "amount", "payment_option", "transaction_id", "status").
		Values(payment.UserID, payment.Amount, payment.PaymentOption, payment.TransactionID, payment.Status).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id, &payment.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewInvariantError("a payment with this transaction id already exists")
		}
		logger.Error().Err(err).Msg("Error executing create payment query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	sql, args, err := selectPaymentQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPayment(r.DB.QueryRow(ctx, sql, args...))
}

// GetByIDForUpdate retrieves a payment inside the given Querier, locking the
// row so concurrent enrollment creates cannot claim the same payment.
func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, q Querier, id int64) (*models.Payment, error) {
	sql, args, err := selectPaymentQuery().
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanPayment(q.QueryRow(ctx, sql, args...))
}

// List retrieves payments. A nil userID returns all payments; otherwise
// only the given user's rows are returned.
func (r *PaymentRepository) List(ctx context.Context, userID *int64) ([]*models.Payment, error) {
	builder := selectPaymentQuery().OrderBy("created_at DESC")
	if userID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *userID})
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

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Update changes the mutable payment fields. The user and transaction
// id columns are excluded so ownership and the external reference stay
// fixed after creation.
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	sql, args, err := squirrel.Update("payments").
		Set("amount", payment.Amount).
		Set("payment_option", payment.PaymentOption).
		Set("status", payment.Status).
		Where(squirrel.Eq{"id": payment.ID}).
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
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// UpdateStatus sets the status of a payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	sql, args, err := squirrel.Update("payments").
		Set("status", status).
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
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// Delete removes a payment. Enrollments referencing it keep their row with
// the payment link nulled out.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("payments").
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
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
