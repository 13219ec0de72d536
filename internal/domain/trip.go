package domain

import "time"

// TripStatus represents the planning state of a trip.
type TripStatus string

const (
	TripStatusPlanning  TripStatus = "PLANNING"
	TripStatusActive    TripStatus = "ACTIVE"
	TripStatusCompleted TripStatus = "COMPLETED"
)

// Trip represents a group trip being planned.
type Trip struct {
	ID          string
	Name        string
	Destination string
	Status      TripStatus
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   string
	// FallbackOnEmpty controls cost attribution for items whose payer
	// list was recorded as explicitly empty: when true they are split
	// across the whole roster, when false they stay unattributed until
	// the category balancer spreads the difference.
	FallbackOnEmpty bool
	CreatedAt       time.Time
}
