package domain

import "time"

// Invite represents a shareable code that lets someone join a trip.
type Invite struct {
	Code       string
	TripID     string
	CreatedBy  string
	ExpiresAt  time.Time
	RedeemedBy string // member id once redeemed
	RedeemedAt time.Time
	CreatedAt  time.Time
}

// Redeemed reports whether the invite has already been claimed.
func (i *Invite) Redeemed() bool {
	return i.RedeemedBy != ""
}

// Expired reports whether the invite can no longer be claimed.
func (i *Invite) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
