package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, name, destination, status, start_date, end_date, created_by, fallback_on_empty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.Name,
		trip.Destination,
		trip.Status,
		nullTime(trip.StartDate),
		nullTime(trip.EndDate),
		trip.CreatedBy,
		trip.FallbackOnEmpty,
		trip.CreatedAt,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, name, destination, status, start_date, end_date, created_by, fallback_on_empty, created_at
		FROM trips WHERE id = $1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves recent trips.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT id, name, destination, status, start_date, end_date, created_by, fallback_on_empty, created_at
		FROM trips ORDER BY created_at DESC LIMIT 100
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET name = $1, destination = $2, status = $3, start_date = $4, end_date = $5, fallback_on_empty = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.Name,
		trip.Destination,
		trip.Status,
		nullTime(trip.StartDate),
		nullTime(trip.EndDate),
		trip.FallbackOnEmpty,
		trip.ID,
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

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var trip domain.Trip
	var startDate, endDate sql.NullTime

	if err := s.Scan(
		&trip.ID,
		&trip.Name,
		&trip.Destination,
		&trip.Status,
		&startDate,
		&endDate,
		&trip.CreatedBy,
		&trip.FallbackOnEmpty,
		&trip.CreatedAt,
	); err != nil {
		return nil, err
	}

	trip.StartDate = timeOrZero(startDate)
	trip.EndDate = timeOrZero(endDate)

	return &trip, nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
