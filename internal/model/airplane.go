package model

import (
	apperrors "airport-booking-api/pkg/app_errors"
)

type AirplaneType struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Airplane struct {
	ID             int     `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Rows           int     `json:"rows" db:"rows"`
	SeatsInRow     int     `json:"seats_in_row" db:"seats_in_row"`
	AirplaneTypeID int     `json:"airplane_type" db:"airplane_type_id"`
	ImageURL       *string `json:"image,omitempty" db:"image_url"`
}

// Capacity is the total number of seats on the airplane.
func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// ValidateSeat checks that (row, seat) falls inside the airplane's seat grid.
// It returns a *apperrors.SeatError naming the offending field, or nil.
func (a *Airplane) ValidateSeat(row, seat int) error {
	if row < 1 || row > a.Rows {
		return &apperrors.SeatError{Field: "row", Value: row, Max: a.Rows}
	}
	if seat < 1 || seat > a.SeatsInRow {
		return &apperrors.SeatError{Field: "seat", Value: seat, Max: a.SeatsInRow}
	}
	return nil
}

type CreateAirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateAirplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows" binding:"required,min=1"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required,min=1"`
	AirplaneTypeID int    `json:"airplane_type" binding:"required"`
}

type UpdateAirplaneParams struct {
	Name           *string `json:"name"`
	Rows           *int    `json:"rows" binding:"omitempty,min=1"`
	SeatsInRow     *int    `json:"seats_in_row" binding:"omitempty,min=1"`
	AirplaneTypeID *int    `json:"airplane_type"`
}

// AirplaneListItem is the list/detail response shape carrying the resolved
// type name and the derived capacity.
type AirplaneListItem struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	AirplaneTypeName string  `json:"airplane_type_name"`
	Image            *string `json:"image,omitempty"`
	Rows             int     `json:"rows"`
	SeatsInRow       int     `json:"seats_in_row"`
	Capacity         int     `json:"capacity"`
}

type AirplaneFilter struct {
	Name         string `form:"name"`
	AirplaneType string `form:"airplane_type"`
}
