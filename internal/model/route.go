package model

// Route is a directed source/destination airport pair with a distance in km.
type Route struct {
	ID            int `json:"id" db:"id"`
	SourceID      int `json:"source" db:"source_id"`
	DestinationID int `json:"destination" db:"destination_id"`
	Distance      int `json:"distance" db:"distance"`
}

type CreateRouteRequest struct {
	SourceID      int `json:"source" binding:"required"`
	DestinationID int `json:"destination" binding:"required"`
	Distance      int `json:"distance" binding:"required,min=1"`
}

// RouteListItem is the list response shape with nested airports, used by the
// list endpoint instead of the bare FK shape.
type RouteListItem struct {
	ID          int     `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

type RouteFilter struct {
	Source      string `form:"source"`
	Destination string `form:"destination"`
}
