package service

import "errors"

var (
	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidTripName is returned when trip name is empty.
	ErrInvalidTripName = errors.New("invalid trip name")

	// ErrInvalidMemberID is returned when member ID is empty.
	ErrInvalidMemberID = errors.New("invalid member id")

	// ErrInvalidDisplayName is returned when a member display name is empty.
	ErrInvalidDisplayName = errors.New("invalid display name")

	// ErrMemberNotOnTrip is returned when a member belongs to a different trip.
	ErrMemberNotOnTrip = errors.New("member not on this trip")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrBookingNotOnTrip is returned when a booking belongs to a different trip.
	ErrBookingNotOnTrip = errors.New("booking not on this trip")

	// ErrInvalidInviteCode is returned when an invite code is empty.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrInviteExpired is returned when redeeming an expired invite.
	ErrInviteExpired = errors.New("invite expired")

	// ErrInviteAlreadyRedeemed is returned when an invite was already claimed.
	ErrInviteAlreadyRedeemed = errors.New("invite already redeemed")

	// ErrInviteBusy is returned when another redemption of the same code
	// is in flight.
	ErrInviteBusy = errors.New("invite redemption in progress")

	// ErrInvalidEntryID is returned when an itinerary entry ID is empty.
	ErrInvalidEntryID = errors.New("invalid itinerary entry id")

	// ErrInvalidDay is returned when an itinerary day is not positive.
	ErrInvalidDay = errors.New("invalid itinerary day")

	// ErrEntryHasNoLocation is returned when a nearby lookup starts from
	// an entry without coordinates.
	ErrEntryHasNoLocation = errors.New("itinerary entry has no location")
)
