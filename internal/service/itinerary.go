package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
)

// defaultNearbyRadiusKm is how far "nearby" reaches when the caller
// doesn't say.
const defaultNearbyRadiusKm = 2.0

// ItineraryService handles day-plan entries and their geo index.
type ItineraryService struct {
	tripRepo      repository.TripRepository
	itineraryRepo repository.ItineraryRepository
	placeStore    redis.PlaceStoreInterface
}

// NewItineraryService creates a new ItineraryService.
func NewItineraryService(
	tripRepo repository.TripRepository,
	itineraryRepo repository.ItineraryRepository,
	placeStore redis.PlaceStoreInterface,
) *ItineraryService {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
		placeStore:    placeStore,
	}
}

// AddEntry adds an itinerary entry and indexes its location.
func (s *ItineraryService) AddEntry(ctx context.Context, entry *domain.ItineraryEntry) error {
	if entry.TripID == "" {
		return ErrInvalidTripID
	}

	if entry.Day < 1 {
		return ErrInvalidDay
	}

	if _, err := s.tripRepo.GetByID(ctx, entry.TripID); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()

	if err := s.itineraryRepo.Create(ctx, entry); err != nil {
		return err
	}

	// Geo index is best effort; nearby lookups degrade, nothing else.
	if s.placeStore != nil && entry.HasLocation() {
		_ = s.placeStore.IndexPlace(ctx, entry.TripID, entry.ID, entry.Lat, entry.Lng)
	}

	return nil
}

// ListEntries retrieves a trip's itinerary in day order.
func (s *ItineraryService) ListEntries(ctx context.Context, tripID string) ([]*domain.ItineraryEntry, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	return s.itineraryRepo.ListByTrip(ctx, tripID)
}

// UpdateEntry replaces an entry's editable fields and refreshes the geo
// index.
func (s *ItineraryService) UpdateEntry(ctx context.Context, entry *domain.ItineraryEntry) error {
	if entry.ID == "" {
		return ErrInvalidEntryID
	}

	if entry.Day < 1 {
		return ErrInvalidDay
	}

	existing, err := s.itineraryRepo.GetByID(ctx, entry.ID)
	if err != nil {
		return err
	}

	if existing.TripID != entry.TripID {
		return ErrBookingNotOnTrip
	}

	entry.CreatedAt = existing.CreatedAt

	if err := s.itineraryRepo.Update(ctx, entry); err != nil {
		return err
	}

	if s.placeStore != nil {
		if entry.HasLocation() {
			_ = s.placeStore.IndexPlace(ctx, entry.TripID, entry.ID, entry.Lat, entry.Lng)
		} else {
			_ = s.placeStore.RemovePlace(ctx, entry.TripID, entry.ID)
		}
	}

	return nil
}

// DeleteEntry removes an entry and its geo index record.
func (s *ItineraryService) DeleteEntry(ctx context.Context, tripID, entryID string) error {
	if entryID == "" {
		return ErrInvalidEntryID
	}

	existing, err := s.itineraryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if existing.TripID != tripID {
		return ErrBookingNotOnTrip
	}

	if err := s.itineraryRepo.Delete(ctx, entryID); err != nil {
		return err
	}

	if s.placeStore != nil {
		_ = s.placeStore.RemovePlace(ctx, tripID, entryID)
	}

	return nil
}

// NearbyStop is an itinerary entry close to another one.
type NearbyStop struct {
	Entry *domain.ItineraryEntry
	Lat   float64
	Lng   float64
}

// NearbyStops returns the trip's other stops within radiusKm of the
// given entry, nearest first.
func (s *ItineraryService) NearbyStops(ctx context.Context, tripID, entryID string, radiusKm float64) ([]NearbyStop, error) {
	if entryID == "" {
		return nil, ErrInvalidEntryID
	}

	entry, err := s.itineraryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.TripID != tripID {
		return nil, ErrBookingNotOnTrip
	}

	if !entry.HasLocation() {
		return nil, ErrEntryHasNoLocation
	}

	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	places, err := s.placeStore.FindNearbyPlaces(ctx, tripID, entry.Lat, entry.Lng, radiusKm)
	if err != nil {
		return nil, err
	}

	// Hydrate titles in one roundtrip rather than per place.
	entries, err := s.itineraryRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.ItineraryEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	stops := make([]NearbyStop, 0, len(places))
	for _, p := range places {
		if p.EntryID == entryID {
			continue
		}
		e, ok := byID[p.EntryID]
		if !ok {
			// Stale geo index record; skip it.
			continue
		}
		stops = append(stops, NearbyStop{Entry: e, Lat: p.Lat, Lng: p.Lng})
	}

	return stops, nil
}
