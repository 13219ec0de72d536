package repository

import (
	"context"

	"tripmate/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves recent trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error
}

// MemberRepository defines the persistence operations for trip rosters.
type MemberRepository interface {
	// Create persists a new member.
	Create(ctx context.Context, member *domain.Member) error

	// GetByID retrieves a member by ID.
	GetByID(ctx context.Context, id string) (*domain.Member, error)

	// ListByTrip retrieves a trip's roster ordered by join time.
	// The order is load-bearing: cost splitting assigns rounding
	// remainders to the first member.
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Member, error)

	// Delete removes a member from a trip.
	Delete(ctx context.Context, id string) error
}
