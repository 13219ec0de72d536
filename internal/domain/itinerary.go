package domain

import (
	"fmt"
	"net/url"
	"time"
)

// ItineraryEntry represents one planned stop on a trip day.
type ItineraryEntry struct {
	ID        string
	TripID    string
	Day       int // 1-based day of the trip
	Title     string
	Notes     string
	Lat       float64
	Lng       float64
	StartsAt  time.Time
	CreatedAt time.Time
}

// HasLocation reports whether the entry carries usable coordinates.
func (e *ItineraryEntry) HasLocation() bool {
	return e.Lat != 0 || e.Lng != 0
}

// MapLink returns a Google Maps search URL for the entry, preferring
// coordinates and falling back to the title. Empty when neither exists.
func (e *ItineraryEntry) MapLink() string {
	switch {
	case e.HasLocation():
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%.6f%%2C%.6f", e.Lat, e.Lng)
	case e.Title != "":
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(e.Title)
	default:
		return ""
	}
}
