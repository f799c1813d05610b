package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions may leave the status.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCancelled
}

// CanTransitionTo checks the payment state machine: Pending may become Paid
// or Cancelled, both of which are terminal.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:   {PaymentStatusPaid, PaymentStatusCancelled},
		PaymentStatusPaid:      {},
		PaymentStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Payment is the billing record for one order's checkout. SessionID and
// SessionURL stay empty until a checkout session is created with the
// external provider.
type Payment struct {
	ID          int           `json:"id" db:"id"`
	OrderID     int           `json:"order" db:"order_id"`
	Status      PaymentStatus `json:"status_payment" db:"status"`
	DatePayment time.Time     `json:"date_payment" db:"date_payment"`
	SessionURL  string        `json:"session_url" db:"session_url"`
	SessionID   string        `json:"session_id" db:"session_id"`
}

type CreatePaymentRequest struct {
	OrderID int `json:"order" binding:"required"`
}

// PaymentSummary is the compact shape nested under orders.
type PaymentSummary struct {
	Status      PaymentStatus `json:"status_payment"`
	DatePayment time.Time     `json:"date_payment"`
}
