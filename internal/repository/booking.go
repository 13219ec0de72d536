package repository

import (
	"context"

	"tripmate/internal/domain"
)

// FlightRepository defines the persistence operations for flights.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Flight, error)
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id string) error
}

// LodgingRepository defines the persistence operations for lodging.
type LodgingRepository interface {
	Create(ctx context.Context, lodging *domain.Lodging) error
	GetByID(ctx context.Context, id string) (*domain.Lodging, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Lodging, error)
	Update(ctx context.Context, lodging *domain.Lodging) error
	Delete(ctx context.Context, id string) error
}

// TourRepository defines the persistence operations for tours.
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Tour, error)
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id string) error
}

// RentalRepository defines the persistence operations for rental cars.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id string) error
}
