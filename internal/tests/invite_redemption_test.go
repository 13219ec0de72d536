package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// ──────────────────────────────────────────────
// 3. INVITE ISSUANCE & REDEMPTION
// ──────────────────────────────────────────────

func newInviteFixture() (*MockTripRepository, *MockMemberRepository, *MockInviteRepository, *MockLockStore, *MockReportCache, *service.InviteService) {
	tripRepo := NewMockTripRepository()
	memberRepo := NewMockMemberRepository()
	inviteRepo := NewMockInviteRepository()
	lockStore := NewMockLockStore()
	reportCache := NewMockReportCache()

	svc := service.NewInviteService(tripRepo, memberRepo, inviteRepo, lockStore, reportCache, service.NewNotificationService())
	return tripRepo, memberRepo, inviteRepo, lockStore, reportCache, svc
}

func TestInvite_CreateIssuesShortCode(t *testing.T) {
	t.Parallel()

	tripRepo, _, _, _, _, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	invite, err := svc.CreateInvite(context.Background(), "trip-1", "m-creator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(invite.Code) != 8 {
		t.Errorf("expected 8-character code, got %q", invite.Code)
	}
	if invite.TripID != "trip-1" {
		t.Errorf("expected trip-1, got %s", invite.TripID)
	}
	if !invite.ExpiresAt.After(time.Now()) {
		t.Error("expected invite to expire in the future")
	}
}

func TestInvite_CreateRetriesOnCodeCollision(t *testing.T) {
	t.Parallel()

	tripRepo, _, inviteRepo, _, _, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	inviteRepo.ForceCollisions = 2

	invite, err := svc.CreateInvite(context.Background(), "trip-1", "")
	if err != nil {
		t.Fatalf("expected creation to succeed after retries: %v", err)
	}
	if invite == nil || invite.Code == "" {
		t.Fatal("expected an invite with a code")
	}
	if inviteRepo.CreateCallCount != 3 {
		t.Errorf("expected 3 create attempts, got %d", inviteRepo.CreateCallCount)
	}
}

func TestInvite_RedeemAddsInviteeToRoster(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, inviteRepo, lockStore, reportCache, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	inviteRepo.AddInvite(&domain.Invite{
		Code:      "AB12CD34",
		TripID:    "trip-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	member, err := svc.RedeemInvite(context.Background(), service.RedeemInviteRequest{
		Code:        "ab12cd34", // lowercase input normalizes
		DisplayName: "Vicky",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if member.Kind != domain.MemberKindInvitee {
		t.Errorf("expected INVITEE kind, got %s", member.Kind)
	}
	if memberRepo.CountMembers("trip-1") != 1 {
		t.Error("expected redeemer on the roster")
	}

	stored := inviteRepo.GetInvite("AB12CD34")
	if stored.RedeemedBy != member.ID {
		t.Errorf("expected invite marked redeemed by %s, got %q", member.ID, stored.RedeemedBy)
	}
	if reportCache.HasReport("trip-1") {
		t.Error("expected cached report to be invalidated after redemption")
	}
	if lockStore.IsLocked("AB12CD34") {
		t.Error("expected lock released after redemption")
	}
}

func TestInvite_RedeemTwiceFails(t *testing.T) {
	t.Parallel()

	tripRepo, _, inviteRepo, _, _, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	inviteRepo.AddInvite(&domain.Invite{
		Code:       "AB12CD34",
		TripID:     "trip-1",
		ExpiresAt:  time.Now().Add(time.Hour),
		RedeemedBy: "m-someone",
	})

	_, err := svc.RedeemInvite(context.Background(), service.RedeemInviteRequest{
		Code:        "AB12CD34",
		DisplayName: "Vicky",
	})
	if !errors.Is(err, service.ErrInviteAlreadyRedeemed) {
		t.Errorf("expected ErrInviteAlreadyRedeemed, got %v", err)
	}
}

func TestInvite_RedeemExpiredFails(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, inviteRepo, _, _, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	inviteRepo.AddInvite(&domain.Invite{
		Code:      "AB12CD34",
		TripID:    "trip-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := svc.RedeemInvite(context.Background(), service.RedeemInviteRequest{
		Code:        "AB12CD34",
		DisplayName: "Vicky",
	})
	if !errors.Is(err, service.ErrInviteExpired) {
		t.Errorf("expected ErrInviteExpired, got %v", err)
	}
	if memberRepo.CountMembers("trip-1") != 0 {
		t.Error("expired invite must not add a member")
	}
}

func TestInvite_RedeemWhileLockedReturnsBusy(t *testing.T) {
	t.Parallel()

	tripRepo, _, inviteRepo, lockStore, _, svc := newInviteFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	inviteRepo.AddInvite(&domain.Invite{
		Code:      "AB12CD34",
		TripID:    "trip-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	lockStore.ForceAcquireFailure = true

	_, err := svc.RedeemInvite(context.Background(), service.RedeemInviteRequest{
		Code:        "AB12CD34",
		DisplayName: "Vicky",
	})
	if !errors.Is(err, service.ErrInviteBusy) {
		t.Errorf("expected ErrInviteBusy, got %v", err)
	}
}

func TestInvite_RedeemRequiresDisplayName(t *testing.T) {
	t.Parallel()

	_, _, _, _, _, svc := newInviteFixture()

	_, err := svc.RedeemInvite(context.Background(), service.RedeemInviteRequest{Code: "AB12CD34"})
	if !errors.Is(err, service.ErrInvalidDisplayName) {
		t.Errorf("expected ErrInvalidDisplayName, got %v", err)
	}
}
