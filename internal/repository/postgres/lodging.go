package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// LodgingRepository is a PostgreSQL implementation of repository.LodgingRepository.
type LodgingRepository struct {
	q Querier
}

// NewLodgingRepository creates a new PostgreSQL lodging repository.
func NewLodgingRepository(db *sql.DB) *LodgingRepository {
	return &LodgingRepository{q: db}
}

// Create persists a new lodging reservation.
func (r *LodgingRepository) Create(ctx context.Context, lodging *domain.Lodging) error {
	query := `
		INSERT INTO lodgings (id, trip_id, name, address, check_in, check_out, cost, payer_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		lodging.ID,
		lodging.TripID,
		lodging.Name,
		lodging.Address,
		nullTime(lodging.CheckIn),
		nullTime(lodging.CheckOut),
		lodging.Cost,
		pq.Array(lodging.PayerIDs),
		lodging.CreatedAt,
	)

	return err
}

// GetByID retrieves a lodging reservation by ID.
func (r *LodgingRepository) GetByID(ctx context.Context, id string) (*domain.Lodging, error) {
	query := selectLodging + ` WHERE id = $1`

	lodging, err := scanLodging(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return lodging, nil
}

// ListByTrip retrieves a trip's lodging ordered by check-in.
func (r *LodgingRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Lodging, error) {
	query := selectLodging + ` WHERE trip_id = $1 ORDER BY check_in ASC, created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lodgings []*domain.Lodging
	for rows.Next() {
		lodging, err := scanLodging(rows)
		if err != nil {
			return nil, err
		}
		lodgings = append(lodgings, lodging)
	}

	return lodgings, rows.Err()
}

// Update updates an existing lodging reservation.
func (r *LodgingRepository) Update(ctx context.Context, lodging *domain.Lodging) error {
	query := `
		UPDATE lodgings
		SET name = $1, address = $2, check_in = $3, check_out = $4, cost = $5, payer_ids = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		lodging.Name,
		lodging.Address,
		nullTime(lodging.CheckIn),
		nullTime(lodging.CheckOut),
		lodging.Cost,
		pq.Array(lodging.PayerIDs),
		lodging.ID,
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

// Delete removes a lodging reservation.
func (r *LodgingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM lodgings WHERE id = $1`, id)
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

const selectLodging = `
	SELECT id, trip_id, name, address, check_in, check_out, cost, payer_ids, created_at
	FROM lodgings`

func scanLodging(s scanner) (*domain.Lodging, error) {
	var lodging domain.Lodging
	var checkIn, checkOut sql.NullTime
	var payers pq.StringArray

	if err := s.Scan(
		&lodging.ID,
		&lodging.TripID,
		&lodging.Name,
		&lodging.Address,
		&checkIn,
		&checkOut,
		&lodging.Cost,
		&payers,
		&lodging.CreatedAt,
	); err != nil {
		return nil, err
	}

	lodging.CheckIn = timeOrZero(checkIn)
	lodging.CheckOut = timeOrZero(checkOut)
	lodging.PayerIDs = payers

	return &lodging, nil
}

// Ensure LodgingRepository implements repository.LodgingRepository.
var _ repository.LodgingRepository = (*LodgingRepository)(nil)
