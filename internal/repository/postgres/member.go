package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// MemberRepository is a PostgreSQL implementation of repository.MemberRepository.
type MemberRepository struct {
	q Querier
}

// NewMemberRepository creates a new PostgreSQL member repository.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{q: db}
}

// NewMemberRepositoryWithTx creates a member repository using a transaction.
func NewMemberRepositoryWithTx(tx *sql.Tx) *MemberRepository {
	return &MemberRepository{q: tx}
}

// Create persists a new member.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (id, trip_id, user_id, display_name, kind, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		member.ID,
		member.TripID,
		nullString(member.UserID),
		member.DisplayName,
		member.Kind,
		member.JoinedAt,
	)

	return err
}

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `
		SELECT id, trip_id, user_id, display_name, kind, joined_at
		FROM members WHERE id = $1
	`

	var member domain.Member
	var userID sql.NullString

	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.TripID,
		&userID,
		&member.DisplayName,
		&member.Kind,
		&member.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	member.UserID = userID.String

	return &member, nil
}

// ListByTrip retrieves a trip's roster ordered by join time.
// joined_at ties are broken by id so the order stays stable; the first
// member of the roster receives splitting remainders.
func (r *MemberRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Member, error) {
	query := `
		SELECT id, trip_id, user_id, display_name, kind, joined_at
		FROM members WHERE trip_id = $1 ORDER BY joined_at ASC, id ASC
	`

	rows, err := r.q.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var member domain.Member
		var userID sql.NullString

		if err := rows.Scan(
			&member.ID,
			&member.TripID,
			&userID,
			&member.DisplayName,
			&member.Kind,
			&member.JoinedAt,
		); err != nil {
			return nil, err
		}

		member.UserID = userID.String
		members = append(members, &member)
	}

	return members, rows.Err()
}

// Delete removes a member from a trip.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
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

// Ensure MemberRepository implements repository.MemberRepository.
var _ repository.MemberRepository = (*MemberRepository)(nil)
