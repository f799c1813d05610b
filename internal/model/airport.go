package model

type Airport struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	ClosestBigCity string `json:"closest_big_city" db:"closest_big_city"`
}

type CreateAirportRequest struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
}

// AirportFilter narrows airport listings. Name matches as a
// case-insensitive substring.
type AirportFilter struct {
	Name string `form:"name"`
}
