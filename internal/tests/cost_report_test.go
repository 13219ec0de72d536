package tests

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
	"tripmate/internal/service"
)

// ──────────────────────────────────────────────
// 1. COST REPORT AGGREGATION
// ──────────────────────────────────────────────

func newReportFixture() (*MockTripRepository, *MockMemberRepository, *MockFlightRepository, *MockLodgingRepository, *MockTourRepository, *MockRentalRepository, *MockReportCache, *service.CostReportService) {
	tripRepo := NewMockTripRepository()
	memberRepo := NewMockMemberRepository()
	flightRepo := NewMockFlightRepository()
	lodgingRepo := NewMockLodgingRepository()
	tourRepo := NewMockTourRepository()
	rentalRepo := NewMockRentalRepository()
	reportCache := NewMockReportCache()

	svc := service.NewCostReportService(tripRepo, memberRepo, flightRepo, lodgingRepo, tourRepo, rentalRepo, reportCache)
	return tripRepo, memberRepo, flightRepo, lodgingRepo, tourRepo, rentalRepo, reportCache, svc
}

func seedRoster(tripRepo *MockTripRepository, memberRepo *MockMemberRepository, tripID string, memberIDs ...string) {
	tripRepo.AddTrip(&domain.Trip{
		ID:     tripID,
		Name:   "Test Trip",
		Status: domain.TripStatusPlanning,
	})
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range memberIDs {
		memberRepo.AddMember(&domain.Member{
			ID:          id,
			TripID:      tripID,
			DisplayName: id,
			Kind:        domain.MemberKindGuest,
			JoinedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestCostReport_AggregatesAllCategories(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, flightRepo, lodgingRepo, _, rentalRepo, _, svc := newReportFixture()
	seedRoster(tripRepo, memberRepo, "trip-1", "bryan", "vicky")

	// Flight split by both, lodging paid by one, rental with no payer
	// info recorded (falls back to the roster).
	flightRepo.AddFlight(&domain.Flight{
		ID: "f-1", TripID: "trip-1", Airline: "United Airlines",
		Cost: 150, PayerIDs: []string{"bryan", "vicky"},
	})
	lodgingRepo.AddLodging(&domain.Lodging{
		ID: "l-1", TripID: "trip-1", Name: "Beach House",
		Cost: 80, PayerIDs: []string{"bryan"},
	})
	rentalRepo.AddRental(&domain.Rental{
		ID: "r-1", TripID: "trip-1", Company: "Hertz",
		Cost: 60, PayerIDs: nil,
	})

	report, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Total != 290 {
		t.Errorf("expected total 290, got %v", report.Total)
	}

	flights := report.Categories[domain.CategoryFlights]
	if flights.Total != 150 || flights.PerMember["bryan"] != 75 || flights.PerMember["vicky"] != 75 {
		t.Errorf("flights = %+v, want 150 split 75/75", flights)
	}

	lodging := report.Categories[domain.CategoryLodging]
	if lodging.PerMember["bryan"] != 80 || lodging.PerMember["vicky"] != 0 {
		t.Errorf("lodging = %+v, want bryan 80, vicky 0", lodging)
	}

	rentals := report.Categories[domain.CategoryRentals]
	if rentals.PerMember["bryan"] != 30 || rentals.PerMember["vicky"] != 30 {
		t.Errorf("rentals = %+v, want 30/30 fallback split", rentals)
	}

	tours := report.Categories[domain.CategoryTours]
	if tours.Total != 0 {
		t.Errorf("tours total = %v, want 0", tours.Total)
	}

	if report.Overall["bryan"] != 185 || report.Overall["vicky"] != 105 {
		t.Errorf("overall = %v, want bryan 185, vicky 105", report.Overall)
	}
}

func TestCostReport_ConservesTotalPerCategory(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, flightRepo, _, tourRepo, _, _, svc := newReportFixture()
	seedRoster(tripRepo, memberRepo, "trip-1", "a", "b", "c")

	flightRepo.AddFlight(&domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 100, PayerIDs: []string{"a"}})
	flightRepo.AddFlight(&domain.Flight{ID: "f-2", TripID: "trip-1", Cost: 33.34, PayerIDs: nil})
	tourRepo.AddTour(&domain.Tour{ID: "t-1", TripID: "trip-1", Cost: 10, PayerIDs: []string{"a", "b", "c"}})

	report, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, category := range domain.Categories {
		cr := report.Categories[category]
		sum := 0.0
		for _, v := range cr.PerMember {
			sum += v
		}
		if math.Abs(sum-cr.Total) > 1e-9 {
			t.Errorf("%s: per-member sum %v != total %v", category, sum, cr.Total)
		}
	}

	overall := 0.0
	for _, v := range report.Overall {
		overall += v
	}
	if math.Abs(overall-report.Total) > 1e-9 {
		t.Errorf("overall sum %v != total %v", overall, report.Total)
	}
}

func TestCostReport_RemovedMemberCostRedistributed(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, _, lodgingRepo, _, _, _, svc := newReportFixture()
	seedRoster(tripRepo, memberRepo, "trip-1", "a", "b")

	// Lodging paid by a member no longer on the roster.
	lodgingRepo.AddLodging(&domain.Lodging{
		ID: "l-1", TripID: "trip-1", Name: "Cabin",
		Cost: 60, PayerIDs: []string{"ghost"},
	})

	report, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lodging := report.Categories[domain.CategoryLodging]
	if _, ok := lodging.PerMember["ghost"]; ok {
		t.Error("departed member should not appear in the balanced report")
	}
	if lodging.PerMember["a"] != 30 || lodging.PerMember["b"] != 30 {
		t.Errorf("lodging = %v, want ghost's 60 spread 30/30", lodging.PerMember)
	}
}

func TestCostReport_ServedFromCacheUntilRefresh(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, flightRepo, _, _, _, reportCache, svc := newReportFixture()
	seedRoster(tripRepo, memberRepo, "trip-1", "a", "b")

	flightRepo.AddFlight(&domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 100, PayerIDs: []string{"a"}})

	first, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reportCache.HasReport("trip-1") {
		t.Fatal("expected report to be cached after first build")
	}

	// Mutate storage behind the cache's back.
	flightRepo.AddFlight(&domain.Flight{ID: "f-2", TripID: "trip-1", Cost: 50, PayerIDs: []string{"b"}})

	cached, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Total != first.Total {
		t.Errorf("expected stale cached total %v, got %v", first.Total, cached.Total)
	}

	refreshed, err := svc.BuildReport(context.Background(), "trip-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.Total != 150 {
		t.Errorf("expected refreshed total 150, got %v", refreshed.Total)
	}
}

func TestCostReport_FallbackOnEmptyFollowsTripSetting(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, _, _, tourRepo, _, _, svc := newReportFixture()
	tripRepo.AddTrip(&domain.Trip{
		ID:              "trip-1",
		Name:            "Test Trip",
		Status:          domain.TripStatusPlanning,
		FallbackOnEmpty: true,
	})
	memberRepo.AddMember(&domain.Member{ID: "a", TripID: "trip-1", JoinedAt: time.Now()})

	// Recorded-empty payers: with the trip-level flag set, the item
	// falls back to the roster instead of being skipped.
	tourRepo.AddTour(&domain.Tour{ID: "t-1", TripID: "trip-1", Cost: 40, PayerIDs: []string{}})

	report, err := svc.BuildReport(context.Background(), "trip-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tours := report.Categories[domain.CategoryTours]
	if tours.Total != 40 || tours.PerMember["a"] != 40 {
		t.Errorf("tours = %+v, want 40 assigned to the sole member", tours)
	}
}

func TestCostReport_InvalidTripID(t *testing.T) {
	t.Parallel()

	_, _, _, _, _, _, _, svc := newReportFixture()

	_, err := svc.BuildReport(context.Background(), "", false)
	if !errors.Is(err, service.ErrInvalidTripID) {
		t.Errorf("expected ErrInvalidTripID, got %v", err)
	}
}

func TestCostReport_TripNotFound(t *testing.T) {
	t.Parallel()

	_, _, _, _, _, _, _, svc := newReportFixture()

	_, err := svc.BuildReport(context.Background(), "nope", false)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCostReport_ListErrorPropagates(t *testing.T) {
	t.Parallel()

	tripRepo, memberRepo, flightRepo, _, _, _, _, svc := newReportFixture()
	seedRoster(tripRepo, memberRepo, "trip-1", "a")

	flightRepo.ListError = ErrMockTimeout

	_, err := svc.BuildReport(context.Background(), "trip-1", false)
	if !errors.Is(err, ErrMockTimeout) {
		t.Errorf("expected mock timeout to propagate, got %v", err)
	}
}
