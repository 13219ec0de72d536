package tests

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	m.trips[trip.ID] = trip
	return nil
}

// GetTrip returns trip for test assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trips[id]
}

// ──────────────────────────────────────────────
// MOCK MEMBER REPOSITORY
// ──────────────────────────────────────────────

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.Member

	// Counters
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	DeleteError error
}

// NewMockMemberRepository creates a new mock member repository.
func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{
		members: make(map[string]*domain.Member),
	}
}

// AddMember adds a member to the mock repository.
func (m *MockMemberRepository) AddMember(member *domain.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	member, ok := m.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *member
	return &copy, nil
}

// ListByTrip returns the roster in join order, matching the postgres
// implementation's ORDER BY joined_at, id.
func (m *MockMemberRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Member, 0)
	for _, member := range m.members {
		if member.TripID == tripID {
			copy := *member
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].JoinedAt.Equal(result[j].JoinedAt) {
			return result[i].JoinedAt.Before(result[j].JoinedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MockMemberRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.members[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.members, id)
	return nil
}

// CountMembers returns the roster size for a trip.
func (m *MockMemberRepository) CountMembers(tripID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, member := range m.members {
		if member.TripID == tripID {
			count++
		}
	}
	return count
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORIES
// ──────────────────────────────────────────────

// MockFlightRepository is a mock implementation of FlightRepository.
type MockFlightRepository struct {
	mu      sync.RWMutex
	flights map[string]*domain.Flight

	// Error injection
	ListError error
}

// NewMockFlightRepository creates a new mock flight repository.
func NewMockFlightRepository() *MockFlightRepository {
	return &MockFlightRepository{flights: make(map[string]*domain.Flight)}
}

// AddFlight adds a flight to the mock repository.
func (m *MockFlightRepository) AddFlight(flight *domain.Flight) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights[flight.ID] = flight
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights[flight.ID] = flight
	return nil
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	flight, ok := m.flights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *flight
	return &copy, nil
}

func (m *MockFlightRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Flight, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Flight, 0)
	for _, f := range m.flights {
		if f.TripID == tripID {
			copy := *f
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.flights[flight.ID]; !ok {
		return repository.ErrNotFound
	}
	m.flights[flight.ID] = flight
	return nil
}

func (m *MockFlightRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.flights[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.flights, id)
	return nil
}

// MockLodgingRepository is a mock implementation of LodgingRepository.
type MockLodgingRepository struct {
	mu       sync.RWMutex
	lodgings map[string]*domain.Lodging
}

// NewMockLodgingRepository creates a new mock lodging repository.
func NewMockLodgingRepository() *MockLodgingRepository {
	return &MockLodgingRepository{lodgings: make(map[string]*domain.Lodging)}
}

// AddLodging adds a lodging to the mock repository.
func (m *MockLodgingRepository) AddLodging(lodging *domain.Lodging) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lodgings[lodging.ID] = lodging
}

func (m *MockLodgingRepository) Create(ctx context.Context, lodging *domain.Lodging) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lodgings[lodging.ID] = lodging
	return nil
}

func (m *MockLodgingRepository) GetByID(ctx context.Context, id string) (*domain.Lodging, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lodging, ok := m.lodgings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *lodging
	return &copy, nil
}

func (m *MockLodgingRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Lodging, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Lodging, 0)
	for _, l := range m.lodgings {
		if l.TripID == tripID {
			copy := *l
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockLodgingRepository) Update(ctx context.Context, lodging *domain.Lodging) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lodgings[lodging.ID]; !ok {
		return repository.ErrNotFound
	}
	m.lodgings[lodging.ID] = lodging
	return nil
}

func (m *MockLodgingRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lodgings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.lodgings, id)
	return nil
}

// MockTourRepository is a mock implementation of TourRepository.
type MockTourRepository struct {
	mu    sync.RWMutex
	tours map[string]*domain.Tour
}

// NewMockTourRepository creates a new mock tour repository.
func NewMockTourRepository() *MockTourRepository {
	return &MockTourRepository{tours: make(map[string]*domain.Tour)}
}

// AddTour adds a tour to the mock repository.
func (m *MockTourRepository) AddTour(tour *domain.Tour) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tours[tour.ID] = tour
}

func (m *MockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tours[tour.ID] = tour
	return nil
}

func (m *MockTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tour, ok := m.tours[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *tour
	return &copy, nil
}

func (m *MockTourRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Tour, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Tour, 0)
	for _, t := range m.tours {
		if t.TripID == tripID {
			copy := *t
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tours[tour.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tours[tour.ID] = tour
	return nil
}

func (m *MockTourRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tours[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tours, id)
	return nil
}

// MockRentalRepository is a mock implementation of RentalRepository.
type MockRentalRepository struct {
	mu      sync.RWMutex
	rentals map[string]*domain.Rental
}

// NewMockRentalRepository creates a new mock rental repository.
func NewMockRentalRepository() *MockRentalRepository {
	return &MockRentalRepository{rentals: make(map[string]*domain.Rental)}
}

// AddRental adds a rental to the mock repository.
func (m *MockRentalRepository) AddRental(rental *domain.Rental) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rentals[rental.ID] = rental
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rentals[rental.ID] = rental
	return nil
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rental, ok := m.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *rental
	return &copy, nil
}

func (m *MockRentalRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Rental, 0)
	for _, r := range m.rentals {
		if r.TripID == tripID {
			copy := *r
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockRentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rentals[rental.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rentals[rental.ID] = rental
	return nil
}

func (m *MockRentalRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rentals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rentals, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK INVITE REPOSITORY
// ──────────────────────────────────────────────

// MockInviteRepository is a mock implementation of InviteRepository.
type MockInviteRepository struct {
	mu      sync.RWMutex
	invites map[string]*domain.Invite

	// Counters
	CreateCallCount int32

	// Error injection
	CreateError error

	// ForceCollisions makes the first N creates report a code collision.
	ForceCollisions int32
}

// NewMockInviteRepository creates a new mock invite repository.
func NewMockInviteRepository() *MockInviteRepository {
	return &MockInviteRepository{
		invites: make(map[string]*domain.Invite),
	}
}

// AddInvite adds an invite to the mock repository.
func (m *MockInviteRepository) AddInvite(invite *domain.Invite) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites[invite.Code] = invite
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	count := atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	if count <= atomic.LoadInt32(&m.ForceCollisions) {
		return repository.ErrAlreadyExists
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invites[invite.Code]; ok {
		return repository.ErrAlreadyExists
	}
	m.invites[invite.Code] = invite
	return nil
}

func (m *MockInviteRepository) GetByCode(ctx context.Context, code string) (*domain.Invite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	invite, ok := m.invites[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *invite
	return &copy, nil
}

func (m *MockInviteRepository) MarkRedeemed(ctx context.Context, code, memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	invite, ok := m.invites[code]
	if !ok {
		return repository.ErrNotFound
	}
	if invite.RedeemedBy != "" {
		return repository.ErrNotFound
	}
	invite.RedeemedBy = memberID
	invite.RedeemedAt = time.Now()
	return nil
}

// GetInvite returns invite for test assertions.
func (m *MockInviteRepository) GetInvite(code string) *domain.Invite {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.invites[code]
}

// ──────────────────────────────────────────────
// MOCK ITINERARY REPOSITORY
// ──────────────────────────────────────────────

// MockItineraryRepository is a mock implementation of ItineraryRepository.
type MockItineraryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.ItineraryEntry
}

// NewMockItineraryRepository creates a new mock itinerary repository.
func NewMockItineraryRepository() *MockItineraryRepository {
	return &MockItineraryRepository{
		entries: make(map[string]*domain.ItineraryEntry),
	}
}

// AddEntry adds an entry to the mock repository.
func (m *MockItineraryRepository) AddEntry(entry *domain.ItineraryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
}

func (m *MockItineraryRepository) Create(ctx context.Context, entry *domain.ItineraryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockItineraryRepository) GetByID(ctx context.Context, id string) (*domain.ItineraryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *entry
	return &copy, nil
}

func (m *MockItineraryRepository) ListByTrip(ctx context.Context, tripID string) ([]*domain.ItineraryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.ItineraryEntry, 0)
	for _, e := range m.entries {
		if e.TripID == tripID {
			copy := *e
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MockItineraryRepository) Update(ctx context.Context, entry *domain.ItineraryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return repository.ErrNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockItineraryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK REPORT CACHE
// ──────────────────────────────────────────────

// MockReportCache is a mock implementation of ReportCacheInterface.
type MockReportCache struct {
	mu      sync.RWMutex
	reports map[string]*domain.CostReport

	// Counters
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockReportCache creates a new mock report cache.
func NewMockReportCache() *MockReportCache {
	return &MockReportCache{
		reports: make(map[string]*domain.CostReport),
	}
}

func (m *MockReportCache) Get(ctx context.Context, tripID string) (*domain.CostReport, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[tripID]
	if !ok {
		return nil, nil // Cache miss.
	}
	return report, nil
}

func (m *MockReportCache) Set(ctx context.Context, report *domain.CostReport) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.TripID] = report
	return nil
}

func (m *MockReportCache) Invalidate(ctx context.Context, tripID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reports, tripID)
	return nil
}

// HasReport checks whether a report is cached (for test assertions).
func (m *MockReportCache) HasReport(tripID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.reports[tripID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]time.Time

	// Counters
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// Force lock failure
	ForceAcquireFailure bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]time.Time),
	}
}

func (m *MockLockStore) AcquireInviteLock(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := "lock:invite:" + code
	if expiry, exists := m.locks[key]; exists {
		if time.Now().Before(expiry) {
			return false, nil // Lock still held.
		}
	}

	m.locks[key] = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) ReleaseInviteLock(ctx context.Context, code string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, "lock:invite:"+code)
	return nil
}

// IsLocked checks if an invite code is locked (for test assertions).
func (m *MockLockStore) IsLocked(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, exists := m.locks["lock:invite:"+code]
	return exists && time.Now().Before(expiry)
}

// ──────────────────────────────────────────────
// MOCK PLACE STORE
// ──────────────────────────────────────────────

// MockPlaceStore is a mock implementation of PlaceStoreInterface.
type MockPlaceStore struct {
	mu     sync.RWMutex
	places map[string][]redis.Place // keyed by trip id

	// Counters
	IndexCallCount  int32
	RemoveCallCount int32

	// Error injection
	FindNearbyError error
}

// NewMockPlaceStore creates a new mock place store.
func NewMockPlaceStore() *MockPlaceStore {
	return &MockPlaceStore{
		places: make(map[string][]redis.Place),
	}
}

func (m *MockPlaceStore) IndexPlace(ctx context.Context, tripID, entryID string, lat, lng float64) error {
	atomic.AddInt32(&m.IndexCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.places[tripID] {
		if p.EntryID == entryID {
			m.places[tripID][i].Lat = lat
			m.places[tripID][i].Lng = lng
			return nil
		}
	}
	m.places[tripID] = append(m.places[tripID], redis.Place{EntryID: entryID, Lat: lat, Lng: lng})
	return nil
}

// FindNearbyPlaces returns every indexed place for the trip; the mock
// does no real geo filtering.
func (m *MockPlaceStore) FindNearbyPlaces(ctx context.Context, tripID string, lat, lng, radiusKm float64) ([]redis.Place, error) {
	if m.FindNearbyError != nil {
		return nil, m.FindNearbyError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]redis.Place, len(m.places[tripID]))
	copy(result, m.places[tripID])
	return result, nil
}

func (m *MockPlaceStore) RemovePlace(ctx context.Context, tripID, entryID string) error {
	atomic.AddInt32(&m.RemoveCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.places[tripID] {
		if p.EntryID == entryID {
			m.places[tripID] = append(m.places[tripID][:i], m.places[tripID][i+1:]...)
			return nil
		}
	}
	return nil
}

// HasPlace checks if an entry is indexed (for test assertions).
func (m *MockPlaceStore) HasPlace(tripID, entryID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.places[tripID] {
		if p.EntryID == entryID {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
