package service

import (
	"context"

	"airport-booking-api/internal/cache"
	"airport-booking-api/internal/events"
	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	apperrors "airport-booking-api/pkg/app_errors"
	"airport-booking-api/pkg/logger"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.OrderResponse, error)
	ListOrders(ctx context.Context, userID int, page model.Page) (*model.Paginated, error)
	GetOrder(ctx context.Context, userID int, orderID int) (*model.OrderResponse, error)
}

type OrderServiceImpl struct {
	orderRepo    repository.OrderRepository
	flightRepo   repository.FlightRepository
	airplaneRepo repository.AirplaneRepository
	paymentRepo  repository.PaymentRepository
	cache        cache.FlightCache
	producer     events.Producer
	log          *zap.Logger
}

// NewOrderService builds the order service. flightCache and producer may be
// nil when redis or kafka is disabled.
func NewOrderService(
	orderRepo repository.OrderRepository,
	flightRepo repository.FlightRepository,
	airplaneRepo repository.AirplaneRepository,
	paymentRepo repository.PaymentRepository,
	flightCache cache.FlightCache,
	producer events.Producer,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:    orderRepo,
		flightRepo:   flightRepo,
		airplaneRepo: airplaneRepo,
		paymentRepo:  paymentRepo,
		cache:        flightCache,
		producer:     producer,
		log:          logger.WithComponent("order_service"),
	}
}

// CreateOrder validates every requested seat against its airplane's grid and
// then writes the order and tickets atomically. Seats already sold surface
// as ErrSeatTaken from the unique index, so two concurrent orders for the
// same seat can never both succeed.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, apperrors.ErrEmptyTickets
	}

	airplanes := make(map[int]*model.Airplane)
	tickets := make([]model.Ticket, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		flight, err := s.flightRepo.FindByID(ctx, t.FlightID)
		if err != nil {
			return nil, err
		}

		airplane, ok := airplanes[flight.AirplaneID]
		if !ok {
			airplane, err = s.airplaneRepo.FindByID(ctx, flight.AirplaneID)
			if err != nil {
				return nil, err
			}
			airplanes[flight.AirplaneID] = airplane
		}

		if err := airplane.ValidateSeat(t.Row, t.Seat); err != nil {
			return nil, err
		}

		tickets = append(tickets, model.Ticket{
			FlightID: t.FlightID,
			Row:      t.Row,
			Seat:     t.Seat,
			Price:    t.Price,
		})
	}

	order := &model.Order{UserID: userID, Tickets: tickets}
	created, err := s.orderRepo.CreateWithTickets(ctx, order)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.Event{
		Type:    events.EventOrderCreated,
		OrderID: created.ID,
		UserID:  created.UserID,
	})

	return s.toResponse(ctx, created)
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, userID int, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	orders, err := s.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	count, err := s.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp, err := s.toResponse(ctx, order)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return &model.Paginated{Count: count, Results: responses}, nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, userID int, orderID int) (*model.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Orders are private. A foreign id reads as missing, not forbidden.
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}

	return s.toResponse(ctx, order)
}

func (s *OrderServiceImpl) toResponse(ctx context.Context, order *model.Order) (*model.OrderResponse, error) {
	payments, err := s.paymentRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &model.OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   order.Tickets,
		TotalCost: order.TotalCost(),
		Payments:  payments,
	}, nil
}

func (s *OrderServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("flight cache invalidation failed", zap.Error(err))
	}
}

func (s *OrderServiceImpl) publish(ctx context.Context, event events.Event) {
	if s.producer == nil {
		return
	}
	// Event delivery is best effort; the order is already committed.
	if err := s.producer.Publish(ctx, event); err != nil {
		s.log.Warn("event publish failed", zap.String("type", event.Type), zap.Error(err))
	}
}
