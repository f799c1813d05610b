package model

type CrewPosition string

const (
	PositionCaptain         CrewPosition = "Captain"
	PositionFirstOfficer    CrewPosition = "First Officer"
	PositionNavigator       CrewPosition = "Navigator"
	PositionFlightEngineer  CrewPosition = "Flight Engineer"
	PositionFlightAttendant CrewPosition = "Flight Attendant"
	PositionUnknown         CrewPosition = "unknown"
)

func (p CrewPosition) IsValid() bool {
	switch p {
	case PositionCaptain, PositionFirstOfficer, PositionNavigator,
		PositionFlightEngineer, PositionFlightAttendant, PositionUnknown:
		return true
	}
	return false
}

type Crew struct {
	ID        int          `json:"id" db:"id"`
	FirstName string       `json:"first_name" db:"first_name"`
	LastName  string       `json:"last_name" db:"last_name"`
	Position  CrewPosition `json:"position" db:"position"`
}

func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CreateCrewRequest struct {
	FirstName string       `json:"first_name" binding:"required"`
	LastName  string       `json:"last_name" binding:"required"`
	Position  CrewPosition `json:"position"`
}

type UpdateCrewParams struct {
	FirstName *string       `json:"first_name"`
	LastName  *string       `json:"last_name"`
	Position  *CrewPosition `json:"position"`
}

// CrewListItem is the compact list shape exposing the joined full name.
type CrewListItem struct {
	ID       int          `json:"id"`
	Position CrewPosition `json:"position"`
	FullName string       `json:"full_name"`
}

type CrewFilter struct {
	Position string `form:"position"`
}
