package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// TourRepository is a PostgreSQL implementation of repository.TourRepository.
type TourRepository struct {
	q Querier
}

// NewTourRepository creates a new PostgreSQL tour repository.
func NewTourRepository(db *sql.DB) *TourRepository {
	return &TourRepository{q: db}
}

// Create persists a new tour.
func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	query := `
		INSERT INTO tours (id, trip_id, name, location, scheduled_at, cost, payer_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		tour.ID,
		tour.TripID,
		tour.Name,
		tour.Location,
		nullTime(tour.ScheduledAt),
		tour.Cost,
		pq.Array(tour.PayerIDs),
		tour.CreatedAt,
	)

	return err
}

// GetByID retrieves a tour by ID.
func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := selectTour + ` WHERE id = $1`

	tour, err := scanTour(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return tour, nil
}

// ListByTrip retrieves a trip's tours ordered by schedule.
func (r *TourRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Tour, error) {
	query := selectTour + ` WHERE trip_id = $1 ORDER BY scheduled_at ASC, created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []*domain.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

// Update updates an existing tour.
func (r *TourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	query := `
		UPDATE tours
		SET name = $1, location = $2, scheduled_at = $3, cost = $4, payer_ids = $5
		WHERE id = $6
	`

	result, err := r.q.ExecContext(ctx, query,
		tour.Name,
		tour.Location,
		nullTime(tour.ScheduledAt),
		tour.Cost,
		pq.Array(tour.PayerIDs),
		tour.ID,
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

// Delete removes a tour.
func (r *TourRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
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

const selectTour = `
	SELECT id, trip_id, name, location, scheduled_at, cost, payer_ids, created_at
	FROM tours`

func scanTour(s scanner) (*domain.Tour, error) {
	var tour domain.Tour
	var scheduledAt sql.NullTime
	var payers pq.StringArray

	if err := s.Scan(
		&tour.ID,
		&tour.TripID,
		&tour.Name,
		&tour.Location,
		&scheduledAt,
		&tour.Cost,
		&payers,
		&tour.CreatedAt,
	); err != nil {
		return nil, err
	}

	tour.ScheduledAt = timeOrZero(scheduledAt)
	tour.PayerIDs = payers

	return &tour, nil
}

// Ensure TourRepository implements repository.TourRepository.
var _ repository.TourRepository = (*TourRepository)(nil)
