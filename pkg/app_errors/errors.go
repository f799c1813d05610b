package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrAirportNotFound      = errors.New("airport not found")
	ErrRouteNotFound        = errors.New("route not found")
	ErrAirplaneTypeNotFound = errors.New("airplane type not found")
	ErrAirplaneNotFound     = errors.New("airplane not found")
	ErrCrewNotFound         = errors.New("crew not found")
	ErrFlightNotFound       = errors.New("flight not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrSeatTaken          = errors.New("seat is already taken for this flight")
	ErrSeatOutOfRange     = errors.New("seat is out of the airplane seat grid")
	ErrDuplicateAirport   = errors.New("airport name already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrEmptyTickets       = errors.New("order must contain at least one ticket")
	ErrPaymentNotPending  = errors.New("payment is not pending")
	ErrPaymentAlreadyPaid = errors.New("payment has already been paid")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")

	ErrInternalServerError = errors.New("internal server error")
)

// SeatError reports a row or seat value outside the airplane grid. Field is
// "row" or "seat"; Max is the inclusive upper bound on that airplane.
type SeatError struct {
	Field string
	Value int
	Max   int
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("%s %d is out of range, must be in [1, %d]", e.Field, e.Value, e.Max)
}

func (e *SeatError) Unwrap() error {
	return ErrSeatOutOfRange
}
