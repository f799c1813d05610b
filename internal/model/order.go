package model

import "time"

// Order groups one or more tickets purchased by a user in a single
// transaction. Tickets never exist outside an order.
type Order struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Tickets   []Ticket  `json:"tickets" db:"-"`
}

// TotalCost is the sum of the order's ticket prices.
func (o *Order) TotalCost() float64 {
	var total float64
	for _, t := range o.Tickets {
		total += t.Price
	}
	return total
}

// Ticket reserves one seat on one flight. (flight_id, row, seat) is unique;
// the database index is the final authority on double-selling.
type Ticket struct {
	ID       int     `json:"id" db:"id"`
	FlightID int     `json:"flight" db:"flight_id"`
	OrderID  int     `json:"order" db:"order_id"`
	Row      int     `json:"row" db:"row"`
	Seat     int     `json:"seat" db:"seat"`
	Price    float64 `json:"price" db:"price"`
}

type CreateTicketRequest struct {
	FlightID int     `json:"flight" binding:"required"`
	Row      int     `json:"row" binding:"required,min=1"`
	Seat     int     `json:"seat" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
}

type CreateOrderRequest struct {
	Tickets []CreateTicketRequest `json:"tickets" binding:"required,min=1,dive"`
}

// OrderResponse is the order response shape with the derived total and
// payment summaries attached.
type OrderResponse struct {
	ID        int              `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []Ticket         `json:"tickets"`
	TotalCost float64          `json:"total_cost"`
	Payments  []PaymentSummary `json:"payments"`
}
