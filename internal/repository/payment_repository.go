package repository

import (
	"context"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	ListByUser(ctx context.Context, userID int, page model.Page) ([]*model.Payment, error)
	CountByUser(ctx context.Context, userID int) (int64, error)
	ListByOrder(ctx context.Context, orderID int) ([]model.PaymentSummary, error)
	FindByID(ctx context.Context, id int) (*model.Payment, error)
	FindBySessionID(ctx context.Context, sessionID string) (*model.Payment, error)
	UpdateSession(ctx context.Context, id int, sessionID, sessionURL string) (*model.Payment, error)
	UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{pool: pool}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (order_id, status)
		VALUES ($1, $2)
		RETURNING id, order_id, status, date_payment, session_url, session_id
	`

	err := r.pool.QueryRow(ctx, query, payment.OrderID, model.PaymentStatusPending).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.DatePayment,
		&payment.SessionURL,
		&payment.SessionID,
	)

	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) ListByUser(ctx context.Context, userID int, page model.Page) ([]*model.Payment, error) {
	query := `
		SELECT p.id, p.order_id, p.status, p.date_payment, p.session_url, p.session_id
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE o.user_id = $1
		ORDER BY p.date_payment DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*model.Payment, 0)
	for rows.Next() {
		var payment model.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.OrderID,
			&payment.Status,
			&payment.DatePayment,
			&payment.SessionURL,
			&payment.SessionID,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}

func (r *PaymentRepositoryImpl) CountByUser(ctx context.Context, userID int) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE o.user_id = $1
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *PaymentRepositoryImpl) ListByOrder(ctx context.Context, orderID int) ([]model.PaymentSummary, error) {
	query := `
		SELECT status, date_payment
		FROM payments
		WHERE order_id = $1
		ORDER BY date_payment
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]model.PaymentSummary, 0)
	for rows.Next() {
		var summary model.PaymentSummary
		if err := rows.Scan(&summary.Status, &summary.DatePayment); err != nil {
			return nil, err
		}
		payments = append(payments, summary)
	}

	return payments, rows.Err()
}

func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	query := `
		SELECT id, order_id, status, date_payment, session_url, session_id
		FROM payments
		WHERE id = $1
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.DatePayment,
		&payment.SessionURL,
		&payment.SessionID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindBySessionID(ctx context.Context, sessionID string) (*model.Payment, error) {
	query := `
		SELECT id, order_id, status, date_payment, session_url, session_id
		FROM payments
		WHERE session_id = $1
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.DatePayment,
		&payment.SessionURL,
		&payment.SessionID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateSession(ctx context.Context, id int, sessionID, sessionURL string) (*model.Payment, error) {
	query := `
		UPDATE payments
		SET session_id = $1, session_url = $2
		WHERE id = $3
		RETURNING id, order_id, status, date_payment, session_url, session_id
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, sessionID, sessionURL, id).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.DatePayment,
		&payment.SessionURL,
		&payment.SessionID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1
		WHERE id = $2
		RETURNING id, order_id, status, date_payment, session_url, session_id
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.DatePayment,
		&payment.SessionURL,
		&payment.SessionID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}
