package service

import (
	"context"
	"fmt"
	"math"

	"airport-booking-api/internal/checkout"
	"airport-booking-api/internal/events"
	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	apperrors "airport-booking-api/pkg/app_errors"
	"airport-booking-api/pkg/logger"

	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, userID int, req *model.CreatePaymentRequest) (*model.Payment, error)
	ListPayments(ctx context.Context, userID int, page model.Page) (*model.Paginated, error)
	GetPayment(ctx context.Context, userID int, id int) (*model.Payment, error)
	CreateSession(ctx context.Context, userID int, paymentID int) (*model.Payment, error)
	HandleSuccess(ctx context.Context, sessionID string) (*model.Payment, error)
	HandleCancel(ctx context.Context, sessionID string) (*model.Payment, error)
}

type PaymentServiceImpl struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	checkout    checkout.Client
	producer    events.Producer
	baseURL     string
	log         *zap.Logger
}

// NewPaymentService builds the payment service. baseURL is the externally
// reachable address of this API, used to build the provider's redirect URLs.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	checkoutClient checkout.Client,
	producer events.Producer,
	baseURL string,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		checkout:    checkoutClient,
		producer:    producer,
		baseURL:     baseURL,
		log:         logger.WithComponent("payment_service"),
	}
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, userID int, req *model.CreatePaymentRequest) (*model.Payment, error) {
	order, err := s.ownedOrder(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{OrderID: order.ID}
	return s.paymentRepo.Create(ctx, payment)
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, userID int, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	payments, err := s.paymentRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	count, err := s.paymentRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: payments}, nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, userID int, id int) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedOrder(ctx, userID, payment.OrderID); err != nil {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}

// CreateSession opens a checkout session with the external provider for a
// pending payment and stores the session id and redirect URL. Paid and
// cancelled payments are rejected before the provider is contacted.
func (s *PaymentServiceImpl) CreateSession(ctx context.Context, userID int, paymentID int) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	order, err := s.ownedOrder(ctx, userID, payment.OrderID)
	if err != nil {
		return nil, apperrors.ErrPaymentNotFound
	}

	if payment.Status == model.PaymentStatusPaid {
		return nil, apperrors.ErrPaymentAlreadyPaid
	}
	if payment.Status != model.PaymentStatusPending {
		return nil, apperrors.ErrPaymentNotPending
	}

	session, err := s.checkout.CreateSession(ctx, checkout.SessionRequest{
		AmountMinor: int64(math.Round(order.TotalCost() * 100)),
		Currency:    "usd",
		Description: fmt.Sprintf("Payment for order #%d", order.ID),
		SuccessURL:  s.baseURL + "/api/v1/payments/success/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.baseURL + "/api/v1/payments/cancelled/?session_id={CHECKOUT_SESSION_ID}",
	})
	if err != nil {
		s.log.Error("checkout session creation failed",
			zap.Int("payment_id", paymentID),
			zap.Int("order_id", order.ID),
			zap.Error(err))
		return nil, err
	}

	return s.paymentRepo.UpdateSession(ctx, paymentID, session.ID, session.URL)
}

// HandleSuccess marks the payment behind the session as paid. Repeated
// callbacks for an already paid session are accepted without effect, so the
// provider may safely retry.
func (s *PaymentServiceImpl) HandleSuccess(ctx context.Context, sessionID string) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if payment.Status.IsTerminal() {
		return payment, nil
	}
	if !payment.Status.CanTransitionTo(model.PaymentStatusPaid) {
		return nil, apperrors.ErrPaymentNotPending
	}

	updated, err := s.paymentRepo.UpdateStatus(ctx, payment.ID, model.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventPaymentPaid,
		OrderID:   updated.OrderID,
		PaymentID: updated.ID,
	})

	return updated, nil
}

// HandleCancel marks the payment behind the session as cancelled. Terminal
// payments pass through untouched.
func (s *PaymentServiceImpl) HandleCancel(ctx context.Context, sessionID string) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if payment.Status.IsTerminal() {
		return payment, nil
	}
	if !payment.Status.CanTransitionTo(model.PaymentStatusCancelled) {
		return nil, apperrors.ErrPaymentNotPending
	}

	updated, err := s.paymentRepo.UpdateStatus(ctx, payment.ID, model.PaymentStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventPaymentCancelled,
		OrderID:   updated.OrderID,
		PaymentID: updated.ID,
	})

	return updated, nil
}

func (s *PaymentServiceImpl) ownedOrder(ctx context.Context, userID int, orderID int) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *PaymentServiceImpl) publish(ctx context.Context, event events.Event) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		s.log.Warn("event publish failed", zap.String("type", event.Type), zap.Error(err))
	}
}
