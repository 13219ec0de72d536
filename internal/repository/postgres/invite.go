package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// InviteRepository is a PostgreSQL implementation of repository.InviteRepository.
type InviteRepository struct {
	q Querier
}

// NewInviteRepository creates a new PostgreSQL invite repository.
func NewInviteRepository(db *sql.DB) *InviteRepository {
	return &InviteRepository{q: db}
}

// Create persists a new invite. Code collisions surface as ErrAlreadyExists
// so the caller can regenerate.
func (r *InviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	query := `
		INSERT INTO invites (code, trip_id, created_by, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		invite.Code,
		invite.TripID,
		invite.CreatedBy,
		nullTime(invite.ExpiresAt),
		invite.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrAlreadyExists
		}
		return err
	}

	return nil
}

// GetByCode retrieves an invite by its code.
func (r *InviteRepository) GetByCode(ctx context.Context, code string) (*domain.Invite, error) {
	query := `
		SELECT code, trip_id, created_by, expires_at, redeemed_by, redeemed_at, created_at
		FROM invites WHERE code = $1
	`

	var invite domain.Invite
	var expiresAt, redeemedAt sql.NullTime
	var redeemedBy sql.NullString

	err := r.q.QueryRowContext(ctx, query, code).Scan(
		&invite.Code,
		&invite.TripID,
		&invite.CreatedBy,
		&expiresAt,
		&redeemedBy,
		&redeemedAt,
		&invite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	invite.ExpiresAt = timeOrZero(expiresAt)
	invite.RedeemedAt = timeOrZero(redeemedAt)
	invite.RedeemedBy = redeemedBy.String

	return &invite, nil
}

// MarkRedeemed records the redeeming member on an invite. The guard on
// redeemed_by keeps a code from being claimed twice even without the
// redis lock in front of it.
func (r *InviteRepository) MarkRedeemed(ctx context.Context, code, memberID string) error {
	query := `
		UPDATE invites
		SET redeemed_by = $1, redeemed_at = $2
		WHERE code = $3 AND redeemed_by IS NULL
	`

	result, err := r.q.ExecContext(ctx, query, memberID, time.Now(), code)
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

// Ensure InviteRepository implements repository.InviteRepository.
var _ repository.InviteRepository = (*InviteRepository)(nil)
