package domain

import "time"

// Itinerary is a travel plan owned by a user.
// Dates are nil when the plan has not been scheduled yet.
type Itinerary struct {
	ID           string
	UserID       *string
	Title        string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       string
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Destinations []ItineraryDestination
}

// ItineraryDestination places a destination on a given day of an itinerary.
// OrderIndex is the zero-based position within the itinerary.
type ItineraryDestination struct {
	ItineraryID   string
	DestinationID string
	DayNumber     int
	OrderIndex    int
	Notes         string
}
