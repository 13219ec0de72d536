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
// 4. BOOKING MUTATIONS & CACHE EFFECTS
// ──────────────────────────────────────────────

func newBookingFixture() (*MockTripRepository, *MockFlightRepository, *MockTourRepository, *MockReportCache, *service.BookingService) {
	tripRepo := NewMockTripRepository()
	flightRepo := NewMockFlightRepository()
	lodgingRepo := NewMockLodgingRepository()
	tourRepo := NewMockTourRepository()
	rentalRepo := NewMockRentalRepository()
	reportCache := NewMockReportCache()

	svc := service.NewBookingService(tripRepo, flightRepo, lodgingRepo, tourRepo, rentalRepo, reportCache, service.NewNotificationService())
	return tripRepo, flightRepo, tourRepo, reportCache, svc
}

func TestBooking_AddFlightStampsIDAndInvalidatesReport(t *testing.T) {
	t.Parallel()

	tripRepo, _, _, reportCache, svc := newBookingFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	flight := &domain.Flight{
		TripID:   "trip-1",
		Airline:  "United Airlines",
		Cost:     431.20,
		PayerIDs: []string{"m-1"},
	}
	if err := svc.AddFlight(context.Background(), flight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flight.ID == "" {
		t.Error("expected flight id to be assigned")
	}
	if flight.CreatedAt.IsZero() {
		t.Error("expected created_at to be stamped")
	}
	if reportCache.HasReport("trip-1") {
		t.Error("expected cached report to be invalidated")
	}
}

func TestBooking_AddToUnknownTripFails(t *testing.T) {
	t.Parallel()

	_, _, _, _, svc := newBookingFixture()

	err := svc.AddTour(context.Background(), &domain.Tour{TripID: "nope", Name: "Kayaking"})
	if err == nil {
		t.Error("expected error for unknown trip")
	}
}

func TestBooking_UpdateRejectsCrossTripBooking(t *testing.T) {
	t.Parallel()

	tripRepo, flightRepo, _, _, svc := newBookingFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	tripRepo.AddTrip(&domain.Trip{ID: "trip-2", Name: "Other"})
	flightRepo.AddFlight(&domain.Flight{ID: "f-1", TripID: "trip-2", Cost: 100})

	err := svc.UpdateFlight(context.Background(), &domain.Flight{
		ID:     "f-1",
		TripID: "trip-1",
		Cost:   50,
	})
	if !errors.Is(err, service.ErrBookingNotOnTrip) {
		t.Errorf("expected ErrBookingNotOnTrip, got %v", err)
	}
}

func TestBooking_UpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()

	tripRepo, flightRepo, _, _, svc := newBookingFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	created := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	flightRepo.AddFlight(&domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 100, CreatedAt: created})

	updated := &domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 120, PayerIDs: []string{"m-1"}}
	if err := svc.UpdateFlight(context.Background(), updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.CreatedAt.Equal(created) {
		t.Errorf("expected created_at preserved, got %v", updated.CreatedAt)
	}

	stored, err := flightRepo.GetByID(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Cost != 120 {
		t.Errorf("expected cost 120, got %v", stored.Cost)
	}
}

func TestBooking_UpdateCanRecordEmptyPayers(t *testing.T) {
	t.Parallel()

	tripRepo, flightRepo, _, _, svc := newBookingFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	flightRepo.AddFlight(&domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 100, PayerIDs: []string{"m-1"}})

	// Explicitly cleared payers stay a non-nil empty slice, distinct
	// from never-recorded.
	updated := &domain.Flight{ID: "f-1", TripID: "trip-1", Cost: 100, PayerIDs: []string{}}
	if err := svc.UpdateFlight(context.Background(), updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := flightRepo.GetByID(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.PayerIDs == nil || len(stored.PayerIDs) != 0 {
		t.Errorf("expected recorded-empty payers, got %#v", stored.PayerIDs)
	}
}

func TestBooking_DeleteChecksTripAndInvalidates(t *testing.T) {
	t.Parallel()

	tripRepo, _, tourRepo, reportCache, svc := newBookingFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	tourRepo.AddTour(&domain.Tour{ID: "t-1", TripID: "trip-1", Name: "Kayaking", Cost: 45})
	reportCache.Set(context.Background(), &domain.CostReport{TripID: "trip-1"})

	if err := svc.DeleteTour(context.Background(), "trip-2", "t-1"); !errors.Is(err, service.ErrBookingNotOnTrip) {
		t.Errorf("expected ErrBookingNotOnTrip for wrong trip, got %v", err)
	}

	if err := svc.DeleteTour(context.Background(), "trip-1", "t-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tourRepo.GetByID(context.Background(), "t-1"); err == nil {
		t.Error("expected tour to be deleted")
	}
	if reportCache.HasReport("trip-1") {
		t.Error("expected cached report to be invalidated")
	}
}
