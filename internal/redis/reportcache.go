package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tripmate/internal/domain"
)

// ReportCacheTTL bounds staleness if an invalidation is ever missed.
const ReportCacheTTL = 5 * time.Minute

const reportCachePrefix = "cache:report:"

// ReportCache caches rendered cost reports per trip. Any booking or
// roster mutation invalidates the trip's entry.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get retrieves a cached report. Returns nil on cache miss.
func (s *ReportCache) Get(ctx context.Context, tripID string) (*domain.CostReport, error) {
	data, err := s.client.Get(ctx, reportCachePrefix+tripID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var report domain.CostReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Set stores a report.
func (s *ReportCache) Set(ctx context.Context, report *domain.CostReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, reportCachePrefix+report.TripID, data, ReportCacheTTL).Err()
}

// Invalidate removes a trip's cached report.
func (s *ReportCache) Invalidate(ctx context.Context, tripID string) error {
	return s.client.Del(ctx, reportCachePrefix+tripID).Err()
}
