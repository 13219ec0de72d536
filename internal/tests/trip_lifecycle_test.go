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
// 2. TRIP & ROSTER LIFECYCLE
// ──────────────────────────────────────────────

// CreateTrip opens a real *sql.DB transaction, so these tests cover the
// repo-backed paths: updates, roster changes, and their cache effects.

func newTripFixture() (*MockTripRepository, *MockMemberRepository, *MockReportCache, *service.TripService) {
	tripRepo := NewMockTripRepository()
	memberRepo := NewMockMemberRepository()
	reportCache := NewMockReportCache()

	svc := service.NewTripService(nil, tripRepo, memberRepo, reportCache, service.NewNotificationService())
	return tripRepo, memberRepo, reportCache, svc
}

func TestTrip_UpdateReplacesFieldsAndDropsCachedReport(t *testing.T) {
	t.Parallel()

	tripRepo, _, reportCache, svc := newTripFixture()

	tripRepo.AddTrip(&domain.Trip{
		ID:     "trip-1",
		Name:   "Draft",
		Status: domain.TripStatusPlanning,
	})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	updated, err := svc.UpdateTrip(context.Background(), service.UpdateTripRequest{
		TripID:          "trip-1",
		Name:            "Summer in Lisbon",
		Destination:     "Lisbon",
		Status:          domain.TripStatusActive,
		FallbackOnEmpty: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Summer in Lisbon" || updated.Status != domain.TripStatusActive {
		t.Errorf("updated trip = %+v", updated)
	}
	if !updated.FallbackOnEmpty {
		t.Error("expected fallback-on-empty to be enabled")
	}
	if reportCache.HasReport("trip-1") {
		t.Error("expected cached report to be invalidated after update")
	}
}

func TestTrip_UpdateRequiresName(t *testing.T) {
	t.Parallel()

	tripRepo, _, _, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Draft"})

	_, err := svc.UpdateTrip(context.Background(), service.UpdateTripRequest{TripID: "trip-1"})
	if !errors.Is(err, service.ErrInvalidTripName) {
		t.Errorf("expected ErrInvalidTripName, got %v", err)
	}
}

func TestTrip_AddMemberAppendsToRosterInJoinOrder(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, _, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	memberRepo.AddMember(&domain.Member{
		ID:       "m-first",
		TripID:   "trip-1",
		JoinedAt: time.Now().Add(-time.Hour),
	})

	added, err := svc.AddMember(context.Background(), service.AddMemberRequest{
		TripID:      "trip-1",
		DisplayName: "Vicky",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.Kind != domain.MemberKindGuest {
		t.Errorf("expected guest kind by default, got %s", added.Kind)
	}

	roster, err := svc.ListMembers(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 members, got %d", len(roster))
	}
	if roster[0].ID != "m-first" {
		t.Errorf("expected earliest joiner first, got %s", roster[0].ID)
	}
}

func TestTrip_AddMemberInvalidatesReport(t *testing.T) {
	t.Parallel()

	tripRepo, _, reportCache, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	_, err := svc.AddMember(context.Background(), service.AddMemberRequest{
		TripID:      "trip-1",
		DisplayName: "Bryan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reportCache.HasReport("trip-1") {
		t.Error("roster change should drop the cached report")
	}
}

func TestTrip_AddMemberRequiresDisplayName(t *testing.T) {
	t.Parallel()

	tripRepo, _, _, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	_, err := svc.AddMember(context.Background(), service.AddMemberRequest{TripID: "trip-1"})
	if !errors.Is(err, service.ErrInvalidDisplayName) {
		t.Errorf("expected ErrInvalidDisplayName, got %v", err)
	}
}

func TestTrip_RemoveMemberChecksTripOwnership(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, _, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	tripRepo.AddTrip(&domain.Trip{ID: "trip-2", Name: "Other"})
	memberRepo.AddMember(&domain.Member{ID: "m-1", TripID: "trip-2", JoinedAt: time.Now()})

	err := svc.RemoveMember(context.Background(), "trip-1", "m-1")
	if !errors.Is(err, service.ErrMemberNotOnTrip) {
		t.Errorf("expected ErrMemberNotOnTrip, got %v", err)
	}
	if memberRepo.CountMembers("trip-2") != 1 {
		t.Error("member on another trip must not be deleted")
	}
}

func TestTrip_RemoveMemberDeletesAndInvalidates(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, reportCache, svc := newTripFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	memberRepo.AddMember(&domain.Member{ID: "m-1", TripID: "trip-1", DisplayName: "Bryan", JoinedAt: time.Now()})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	if err := svc.RemoveMember(context.Background(), "trip-1", "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if memberRepo.CountMembers("trip-1") != 0 {
		t.Error("expected member to be removed")
	}
	if reportCache.HasReport("trip-1") {
		t.Error("expected cached report to be invalidated")
	}
}
