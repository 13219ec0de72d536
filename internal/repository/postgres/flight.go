package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// FlightRepository is a PostgreSQL implementation of repository.FlightRepository.
type FlightRepository struct {
	q Querier
}

// NewFlightRepository creates a new PostgreSQL flight repository.
func NewFlightRepository(db *sql.DB) *FlightRepository {
	return &FlightRepository{q: db}
}

// Create persists a new flight.
func (r *FlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	query := `
		INSERT INTO flights (id, trip_id, airline, flight_number, depart_airport, arrive_airport,
			depart_at, arrive_at, cost, payer_ids, confirmation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	// payer_ids is a nullable text[]: nil persists as NULL ("never
	// recorded"), an empty slice as '{}' ("recorded empty").
	_, err := r.q.ExecContext(ctx, query,
		flight.ID,
		flight.TripID,
		flight.Airline,
		flight.FlightNumber,
		flight.DepartAirport,
		flight.ArriveAirport,
		nullTime(flight.DepartAt),
		nullTime(flight.ArriveAt),
		flight.Cost,
		pq.Array(flight.PayerIDs),
		flight.Confirmation,
		flight.CreatedAt,
	)

	return err
}

// GetByID retrieves a flight by ID.
func (r *FlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	query := selectFlight + ` WHERE id = $1`

	flight, err := scanFlight(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return flight, nil
}

// ListByTrip retrieves a trip's flights ordered by departure.
func (r *FlightRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Flight, error) {
	query := selectFlight + ` WHERE trip_id = $1 ORDER BY depart_at ASC, created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flights []*domain.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}

	return flights, rows.Err()
}

// Update updates an existing flight.
func (r *FlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	query := `
		UPDATE flights
		SET airline = $1, flight_number = $2, depart_airport = $3, arrive_airport = $4,
			depart_at = $5, arrive_at = $6, cost = $7, payer_ids = $8, confirmation = $9
		WHERE id = $10
	`

	result, err := r.q.ExecContext(ctx, query,
		flight.Airline,
		flight.FlightNumber,
		flight.DepartAirport,
		flight.ArriveAirport,
		nullTime(flight.DepartAt),
		nullTime(flight.ArriveAt),
		flight.Cost,
		pq.Array(flight.PayerIDs),
		flight.Confirmation,
		flight.ID,
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

// Delete removes a flight.
func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
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

const selectFlight = `
	SELECT id, trip_id, airline, flight_number, depart_airport, arrive_airport,
		depart_at, arrive_at, cost, payer_ids, confirmation, created_at
	FROM flights`

func scanFlight(s scanner) (*domain.Flight, error) {
	var flight domain.Flight
	var departAt, arriveAt sql.NullTime
	var payers pq.StringArray

	if err := s.Scan(
		&flight.ID,
		&flight.TripID,
		&flight.Airline,
		&flight.FlightNumber,
		&flight.DepartAirport,
		&flight.ArriveAirport,
		&departAt,
		&arriveAt,
		&flight.Cost,
		&payers,
		&flight.Confirmation,
		&flight.CreatedAt,
	); err != nil {
		return nil, err
	}

	flight.DepartAt = timeOrZero(departAt)
	flight.ArriveAt = timeOrZero(arriveAt)
	flight.PayerIDs = payers // nil for NULL, empty for '{}'

	return &flight, nil
}

// Ensure FlightRepository implements repository.FlightRepository.
var _ repository.FlightRepository = (*FlightRepository)(nil)
