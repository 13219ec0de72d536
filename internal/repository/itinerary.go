package repository

import (
	"context"

	"tripmate/internal/domain"
)

// ItineraryRepository defines the persistence operations for itinerary entries.
type ItineraryRepository interface {
	Create(ctx context.Context, entry *domain.ItineraryEntry) error
	GetByID(ctx context.Context, id string) (*domain.ItineraryEntry, error)

	// ListByTrip retrieves a trip's entries ordered by day then start time.
	ListByTrip(ctx context.Context, tripID string) ([]*domain.ItineraryEntry, error)

	Update(ctx context.Context, entry *domain.ItineraryEntry) error
	Delete(ctx context.Context, id string) error
}
