package repository

import (
	"context"

	"tripmate/internal/domain"
)

// InviteRepository defines the persistence operations for invite codes.
type InviteRepository interface {
	// Create persists a new invite. Returns ErrAlreadyExists when the
	// generated code collides with an existing one.
	Create(ctx context.Context, invite *domain.Invite) error

	// GetByCode retrieves an invite by its code.
	GetByCode(ctx context.Context, code string) (*domain.Invite, error)

	// MarkRedeemed records the redeeming member on an invite.
	MarkRedeemed(ctx context.Context, code, memberID string) error
}
