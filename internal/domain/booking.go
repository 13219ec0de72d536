package domain

import "time"

// CostCategory identifies one of the four cost-bearing booking kinds.
type CostCategory string

const (
	CategoryFlights CostCategory = "flights"
	CategoryLodging CostCategory = "lodging"
	CategoryTours   CostCategory = "tours"
	CategoryRentals CostCategory = "rentals"
)

// Categories lists all cost categories in report order.
var Categories = []CostCategory{CategoryFlights, CategoryLodging, CategoryTours, CategoryRentals}

// PayerIDs on every booking follows one convention: a nil slice means
// payer information was never recorded, a non-nil empty slice means it
// was recorded as explicitly empty. The distinction survives the
// database round trip (NULL vs '{}').

// Flight represents a booked flight on a trip.
type Flight struct {
	ID            string
	TripID        string
	Airline       string
	FlightNumber  string
	DepartAirport string
	ArriveAirport string
	DepartAt      time.Time
	ArriveAt      time.Time
	Cost          float64
	PayerIDs      []string
	Confirmation  string
	CreatedAt     time.Time
}

// Lodging represents a lodging reservation on a trip.
type Lodging struct {
	ID        string
	TripID    string
	Name      string
	Address   string
	CheckIn   time.Time
	CheckOut  time.Time
	Cost      float64
	PayerIDs  []string
	CreatedAt time.Time
}

// Tour represents a booked tour or activity on a trip.
type Tour struct {
	ID          string
	TripID      string
	Name        string
	Location    string
	ScheduledAt time.Time
	Cost        float64
	PayerIDs    []string
	CreatedAt   time.Time
}

// Rental represents a rental car booking on a trip.
type Rental struct {
	ID        string
	TripID    string
	Company   string
	CarType   string
	PickupAt  time.Time
	DropoffAt time.Time
	Cost      float64
	PayerIDs  []string
	CreatedAt time.Time
}
