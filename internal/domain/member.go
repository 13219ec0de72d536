package domain

import "time"

// MemberKind distinguishes how a member is attached to a trip.
type MemberKind string

const (
	MemberKindAccount MemberKind = "ACCOUNT" // registered user account
	MemberKindInvitee MemberKind = "INVITEE" // joined through an invite code
	MemberKindGuest   MemberKind = "GUEST"   // profile added by another member
)

// Member represents one traveler on a trip's roster.
//
// Roster order (JoinedAt ascending) is the authoritative ordering used
// for cost splitting: the first member of the roster receives rounding
// remainders, so the order must be stable across reads.
type Member struct {
	ID          string
	TripID      string
	UserID      string // empty for guests
	DisplayName string
	Kind        MemberKind
	JoinedAt    time.Time
}
