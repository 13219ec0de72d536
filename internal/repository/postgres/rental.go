package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// RentalRepository is a PostgreSQL implementation of repository.RentalRepository.
type RentalRepository struct {
	q Querier
}

// NewRentalRepository creates a new PostgreSQL rental repository.
func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{q: db}
}

// Create persists a new rental booking.
func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (id, trip_id, company, car_type, pickup_at, dropoff_at, cost, payer_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		rental.ID,
		rental.TripID,
		rental.Company,
		rental.CarType,
		nullTime(rental.PickupAt),
		nullTime(rental.DropoffAt),
		rental.Cost,
		pq.Array(rental.PayerIDs),
		rental.CreatedAt,
	)

	return err
}

// GetByID retrieves a rental booking by ID.
func (r *RentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := selectRental + ` WHERE id = $1`

	rental, err := scanRental(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rental, nil
}

// ListByTrip retrieves a trip's rentals ordered by pickup.
func (r *RentalRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Rental, error) {
	query := selectRental + ` WHERE trip_id = $1 ORDER BY pickup_at ASC, created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// Update updates an existing rental booking.
func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `
		UPDATE rentals
		SET company = $1, car_type = $2, pickup_at = $3, dropoff_at = $4, cost = $5, payer_ids = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		rental.Company,
		rental.CarType,
		nullTime(rental.PickupAt),
		nullTime(rental.DropoffAt),
		rental.Cost,
		pq.Array(rental.PayerIDs),
		rental.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a rental booking.
func (r *RentalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

const selectRental = `
	SELECT id, trip_id, company, car_type, pickup_at, dropoff_at, cost, payer_ids, created_at
	FROM rentals`

func scanRental(s scanner) (*domain.Rental, error) {
	var rental domain.Rental
	var pickupAt, dropoffAt sql.NullTime
	var payers pq.StringArray

	if err := s.Scan(
		&rental.ID,
		&rental.TripID,
		&rental.Company,
		&rental.CarType,
		&pickupAt,
		&dropoffAt,
		&rental.Cost,
		&payers,
		&rental.CreatedAt,
	); err != nil {
		return nil, err
	}

	rental.PickupAt = timeOrZero(pickupAt)
	rental.DropoffAt = timeOrZero(dropoffAt)
	rental.PayerIDs = payers

	return &rental, nil
}

// Ensure RentalRepository implements repository.RentalRepository.
var _ repository.RentalRepository = (*RentalRepository)(nil)
