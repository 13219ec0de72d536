package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// ItineraryRepository is a PostgreSQL implementation of repository.ItineraryRepository.
type ItineraryRepository struct {
	q Querier
}

// NewItineraryRepository creates a new PostgreSQL itinerary repository.
func NewItineraryRepository(db *sql.DB) *ItineraryRepository {
	return &ItineraryRepository{q: db}
}

// Create persists a new itinerary entry.
func (r *ItineraryRepository) Create(ctx context.Context, entry *domain.ItineraryEntry) error {
	query := `
		INSERT INTO itinerary_entries (id, trip_id, day, title, notes, lat, lng, starts_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		entry.ID,
		entry.TripID,
		entry.Day,
		entry.Title,
		entry.Notes,
		entry.Lat,
		entry.Lng,
		nullTime(entry.StartsAt),
		entry.CreatedAt,
	)

	return err
}

// GetByID retrieves an itinerary entry by ID.
func (r *ItineraryRepository) GetByID(ctx context.Context, id string) (*domain.ItineraryEntry, error) {
	query := selectItinerary + ` WHERE id = $1`

	entry, err := scanItineraryEntry(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByTrip retrieves a trip's entries ordered by day then start time.
func (r *ItineraryRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.ItineraryEntry, error) {
	query := selectItinerary + ` WHERE trip_id = $1 ORDER BY day ASC, starts_at ASC, created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ItineraryEntry
	for rows.Next() {
		entry, err := scanItineraryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update updates an existing itinerary entry.
func (r *ItineraryRepository) Update(ctx context.Context, entry *domain.ItineraryEntry) error {
	query := `
		UPDATE itinerary_entries
		SET day = $1, title = $2, notes = $3, lat = $4, lng = $5, starts_at = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		entry.Day,
		entry.Title,
		entry.Notes,
		entry.Lat,
		entry.Lng,
		nullTime(entry.StartsAt),
		entry.ID,
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

// Delete removes an itinerary entry.
func (r *ItineraryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM itinerary_entries WHERE id = $1`, id)
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

const selectItinerary = `
	SELECT id, trip_id, day, title, notes, lat, lng, starts_at, created_at
	FROM itinerary_entries`

func scanItineraryEntry(s scanner) (*domain.ItineraryEntry, error) {
	var entry domain.ItineraryEntry
	var startsAt sql.NullTime

	if err := s.Scan(
		&entry.ID,
		&entry.TripID,
		&entry.Day,
		&entry.Title,
		&entry.Notes,
		&entry.Lat,
		&entry.Lng,
		&startsAt,
		&entry.CreatedAt,
	); err != nil {
		return nil, err
	}

	entry.StartsAt = timeOrZero(startsAt)

	return &entry, nil
}

// Ensure ItineraryRepository implements repository.ItineraryRepository.
var _ repository.ItineraryRepository = (*ItineraryRepository)(nil)
