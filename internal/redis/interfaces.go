package redis

import (
	"context"
	"time"

	"tripmate/internal/domain"
)

// ReportCacheInterface defines the interface for cost report caching.
type ReportCacheInterface interface {
	Get(ctx context.Context, tripID string) (*domain.CostReport, error)
	Set(ctx context.Context, report *domain.CostReport) error
	Invalidate(ctx context.Context, tripID string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireInviteLock(ctx context.Context, code string, ttl time.Duration) (bool, error)
	ReleaseInviteLock(ctx context.Context, code string) error
}

// PlaceStoreInterface defines the interface for itinerary geo lookups.
type PlaceStoreInterface interface {
	IndexPlace(ctx context.Context, tripID, entryID string, lat, lng float64) error
	FindNearbyPlaces(ctx context.Context, tripID string, lat, lng, radiusKm float64) ([]Place, error)
	RemovePlace(ctx context.Context, tripID, entryID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ ReportCacheInterface = (*ReportCache)(nil)
	_ LockStoreInterface   = (*LockStore)(nil)
	_ PlaceStoreInterface  = (*PlaceStore)(nil)
)
