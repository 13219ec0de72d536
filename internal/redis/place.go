package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Place represents an itinerary stop's indexed position.
type Place struct {
	EntryID string
	Lat     float64
	Lng     float64
}

// PlaceStore indexes itinerary stop coordinates per trip so nearby-stop
// lookups don't touch postgres.
type PlaceStore struct {
	client *redis.Client
}

// NewPlaceStore creates a new PlaceStore.
func NewPlaceStore(client *redis.Client) *PlaceStore {
	return &PlaceStore{client: client}
}

func placeKey(tripID string) string {
	return fmt.Sprintf("trips:%s:places", tripID)
}

// IndexPlace stores an itinerary stop's coordinates using GEOADD.
func (s *PlaceStore) IndexPlace(ctx context.Context, tripID, entryID string, lat, lng float64) error {
	return s.client.GeoAdd(ctx, placeKey(tripID), &redis.GeoLocation{
		Name:      entryID,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// FindNearbyPlaces returns the trip's stops within the given radius (in
// kilometers), nearest first.
func (s *PlaceStore) FindNearbyPlaces(ctx context.Context, tripID string, lat, lng, radiusKm float64) ([]Place, error) {
	results, err := s.client.GeoRadius(ctx, placeKey(tripID), lng, lat, &redis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		places = append(places, Place{
			EntryID: r.Name,
			Lat:     r.Latitude,
			Lng:     r.Longitude,
		})
	}

	return places, nil
}

// RemovePlace removes a stop from the trip's geo index.
func (s *PlaceStore) RemovePlace(ctx context.Context, tripID, entryID string) error {
	return s.client.ZRem(ctx, placeKey(tripID), entryID).Err()
}
