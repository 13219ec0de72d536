package tests

import (
	"context"
	"errors"
	"testing"

	"tripmate/internal/domain"
	"tripmate/internal/service"
)

// ──────────────────────────────────────────────
// 5. ITINERARY & NEARBY STOPS
// ──────────────────────────────────────────────

func newItineraryFixture() (*MockTripRepository, *MockItineraryRepository, *MockPlaceStore, *service.ItineraryService) {
	tripRepo := NewMockTripRepository()
	itineraryRepo := NewMockItineraryRepository()
	placeStore := NewMockPlaceStore()

	svc := service.NewItineraryService(tripRepo, itineraryRepo, placeStore)
	return tripRepo, itineraryRepo, placeStore, svc
}

func TestItinerary_AddEntryIndexesLocation(t *testing.T) {
	t.Parallel()

	tripRepo, _, placeStore, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	entry := &domain.ItineraryEntry{
		TripID: "trip-1",
		Day:    1,
		Title:  "Alfama walk",
		Lat:    38.7139,
		Lng:    -9.1334,
	}
	if err := svc.AddEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.ID == "" {
		t.Error("expected entry id to be assigned")
	}
	if !placeStore.HasPlace("trip-1", entry.ID) {
		t.Error("expected entry indexed in the geo store")
	}
}

func TestItinerary_AddEntryWithoutLocationSkipsIndex(t *testing.T) {
	t.Parallel()

	tripRepo, _, placeStore, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	entry := &domain.ItineraryEntry{TripID: "trip-1", Day: 2, Title: "Pack bags"}
	if err := svc.AddEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placeStore.HasPlace("trip-1", entry.ID) {
		t.Error("entry without coordinates must not be geo indexed")
	}
}

func TestItinerary_AddEntryRejectsInvalidDay(t *testing.T) {
	t.Parallel()

	tripRepo, _, _, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	err := svc.AddEntry(context.Background(), &domain.ItineraryEntry{TripID: "trip-1", Day: 0, Title: "Bad"})
	if !errors.Is(err, service.ErrInvalidDay) {
		t.Errorf("expected ErrInvalidDay, got %v", err)
	}
}

func TestItinerary_UpdateClearingLocationRemovesIndex(t *testing.T) {
	t.Parallel()

	tripRepo, itineraryRepo, placeStore, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	itineraryRepo.AddEntry(&domain.ItineraryEntry{
		ID: "e-1", TripID: "trip-1", Day: 1, Title: "Museum", Lat: 38.7, Lng: -9.1,
	})
	placeStore.IndexPlace(context.Background(), "trip-1", "e-1", 38.7, -9.1)

	err := svc.UpdateEntry(context.Background(), &domain.ItineraryEntry{
		ID: "e-1", TripID: "trip-1", Day: 1, Title: "Museum (time TBD)",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placeStore.HasPlace("trip-1", "e-1") {
		t.Error("expected geo index removed when coordinates cleared")
	}
}

func TestItinerary_NearbyExcludesSelfAndStaleEntries(t *testing.T) {
	t.Parallel()

	tripRepo, itineraryRepo, placeStore, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})

	itineraryRepo.AddEntry(&domain.ItineraryEntry{ID: "e-1", TripID: "trip-1", Day: 1, Title: "Castle", Lat: 38.71, Lng: -9.13})
	itineraryRepo.AddEntry(&domain.ItineraryEntry{ID: "e-2", TripID: "trip-1", Day: 1, Title: "Viewpoint", Lat: 38.712, Lng: -9.131})

	placeStore.IndexPlace(context.Background(), "trip-1", "e-1", 38.71, -9.13)
	placeStore.IndexPlace(context.Background(), "trip-1", "e-2", 38.712, -9.131)
	// Geo record with no backing entry: stale, should be skipped.
	placeStore.IndexPlace(context.Background(), "trip-1", "e-deleted", 38.713, -9.132)

	stops, err := svc.NearbyStops(context.Background(), "trip-1", "e-1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stops) != 1 {
		t.Fatalf("expected 1 nearby stop, got %d", len(stops))
	}
	if stops[0].Entry.ID != "e-2" {
		t.Errorf("expected e-2, got %s", stops[0].Entry.ID)
	}
}

func TestItinerary_NearbyWithoutLocationFails(t *testing.T) {
	t.Parallel()

	tripRepo, itineraryRepo, _, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	itineraryRepo.AddEntry(&domain.ItineraryEntry{ID: "e-1", TripID: "trip-1", Day: 1, Title: "Pack bags"})

	_, err := svc.NearbyStops(context.Background(), "trip-1", "e-1", 2)
	if !errors.Is(err, service.ErrEntryHasNoLocation) {
		t.Errorf("expected ErrEntryHasNoLocation, got %v", err)
	}
}

func TestItinerary_DeleteRemovesGeoIndex(t *testing.T) {
	t.Parallel()

	tripRepo, itineraryRepo, placeStore, svc := newItineraryFixture()
	tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Name: "Trip"})
	itineraryRepo.AddEntry(&domain.ItineraryEntry{ID: "e-1", TripID: "trip-1", Day: 1, Title: "Castle", Lat: 38.71, Lng: -9.13})
	placeStore.IndexPlace(context.Background(), "trip-1", "e-1", 38.71, -9.13)

	if err := svc.DeleteEntry(context.Background(), "trip-1", "e-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placeStore.HasPlace("trip-1", "e-1") {
		t.Error("expected geo index entry removed with the itinerary entry")
	}
}
