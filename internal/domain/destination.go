package domain

import "time"

// Destination is a catalogue entry travellers can add to itineraries.
// Rating is nil when the destination has not been rated.
type Destination struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Location    string
	PriceRange  string
	Rating      *float64
	Tags        []string
	IsFeatured  bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
