package repository

import (
	"context"
	"fmt"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// CreateWithTickets persists the order and all of its tickets in one
	// transaction. Either everything is committed or nothing is; a seat
	// collision surfaces as ErrSeatTaken and leaves no order behind.
	CreateWithTickets(ctx context.Context, order *model.Order) (*model.Order, error)
	ListByUser(ctx context.Context, userID int, page model.Page) ([]*model.Order, error)
	CountByUser(ctx context.Context, userID int) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Order, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{pool: pool}
}

func (r *OrderRepositoryImpl) CreateWithTickets(ctx context.Context, order *model.Order) (*model.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at
	`

	err = tx.QueryRow(ctx, query, order.UserID).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	ticketQuery := `
		INSERT INTO tickets (flight_id, order_id, row, seat, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range order.Tickets {
		ticket := &order.Tickets[i]
		ticket.OrderID = order.ID
		err := tx.QueryRow(ctx, ticketQuery,
			ticket.FlightID, ticket.OrderID, ticket.Row, ticket.Seat, ticket.Price,
		).Scan(&ticket.ID)
		if err != nil {
			if isUniqueViolation(err, "tickets_flight_row_seat_key") {
				return nil, apperrors.ErrSeatTaken
			}
			return nil, fmt.Errorf("failed to create ticket: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID int, page model.Page) ([]*model.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		tickets, err := r.ticketsByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Tickets = tickets
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) CountByUser(ctx context.Context, userID int) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	tickets, err := r.ticketsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Tickets = tickets

	return &order, nil
}

func (r *OrderRepositoryImpl) ticketsByOrder(ctx context.Context, orderID int) ([]model.Ticket, error) {
	query := `
		SELECT id, flight_id, order_id, row, seat, price
		FROM tickets
		WHERE order_id = $1
		ORDER BY row, seat
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.FlightID,
			&ticket.OrderID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.Price,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}
