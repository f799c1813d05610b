package model

import "time"

// Flight is a scheduled operation of one airplane over one route.
type Flight struct {
	ID            int        `json:"id" db:"id"`
	RouteID       int        `json:"route" db:"route_id"`
	AirplaneID    int        `json:"airplane" db:"airplane_id"`
	DepartureTime *time.Time `json:"departure_time,omitempty" db:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time,omitempty" db:"arrival_time"`
	CrewIDs       []int      `json:"crews,omitempty" db:"-"`
}

type CreateFlightRequest struct {
	RouteID       int        `json:"route" binding:"required"`
	AirplaneID    int        `json:"airplane" binding:"required"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	CrewIDs       []int      `json:"crews"`
}

type UpdateFlightParams struct {
	RouteID       *int       `json:"route"`
	AirplaneID    *int       `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	CrewIDs       []int      `json:"crews"`
}

// FlightSummary is the list response shape. TicketsAvailable is the airplane
// capacity minus the number of tickets already sold for the flight; it is
// computed by the flight query, never stored.
type FlightSummary struct {
	ID               int        `json:"id"`
	AirplaneName     string     `json:"airplane_name"`
	AirplaneType     string     `json:"airplane_type"`
	AirplaneImage    *string    `json:"airplane_image,omitempty"`
	Route            string     `json:"route"`
	DepartureTime    *time.Time `json:"departure_time,omitempty"`
	ArrivalTime      *time.Time `json:"arrival_time,omitempty"`
	AirplaneCapacity int        `json:"airplane_capacity"`
	TicketsAvailable int        `json:"tickets_available"`
}

// SeatRef identifies one seat on a flight's grid.
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// FlightDetail is the detail response shape with nested airplane, route and
// crew data plus the seats already sold.
type FlightDetail struct {
	ID            int              `json:"id"`
	Airplane      AirplaneListItem `json:"airplane"`
	Crews         []CrewListItem   `json:"crews"`
	Route         RouteListItem    `json:"route"`
	DepartureTime *time.Time       `json:"departure_time,omitempty"`
	ArrivalTime   *time.Time       `json:"arrival_time,omitempty"`
	TakenPlaces   []SeatRef        `json:"taken_places"`
}

type FlightFilter struct {
	Airplane         string `form:"airplane"`
	RouteSource      string `form:"route_source"`
	RouteDestination string `form:"route_destination"`
}
