package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationTripCreated    NotificationType = "TRIP_CREATED"
	NotificationMemberJoined   NotificationType = "MEMBER_JOINED"
	NotificationMemberRemoved  NotificationType = "MEMBER_REMOVED"
	NotificationBookingAdded   NotificationType = "BOOKING_ADDED"
	NotificationBookingRemoved NotificationType = "BOOKING_REMOVED"
)

// Notification represents a notification to be sent to trip members.
type Notification struct {
	ID        string
	Type      NotificationType
	TripID    string
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real deployment this would hold push/email clients; member
	// devices poll in the meantime, so delivery is just a log line.
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyTripCreated announces a new trip to its creator.
func (s *NotificationService) NotifyTripCreated(ctx context.Context, trip *domain.Trip, creator *domain.Member) error {
	return s.send(ctx, Notification{
		Type:    NotificationTripCreated,
		TripID:  trip.ID,
		Title:   "Trip Created",
		Message: fmt.Sprintf("%s created trip %q", creator.DisplayName, trip.Name),
		Data: map[string]interface{}{
			"trip_id":     trip.ID,
			"destination": trip.Destination,
		},
	})
}

// NotifyMemberJoined announces a new roster member to the trip.
func (s *NotificationService) NotifyMemberJoined(ctx context.Context, tripID string, member *domain.Member) error {
	return s.send(ctx, Notification{
		Type:    NotificationMemberJoined,
		TripID:  tripID,
		Title:   "New Traveler",
		Message: fmt.Sprintf("%s joined the trip", member.DisplayName),
		Data: map[string]interface{}{
			"member_id": member.ID,
			"kind":      member.Kind,
		},
	})
}

// NotifyMemberRemoved announces a roster removal to the trip.
func (s *NotificationService) NotifyMemberRemoved(ctx context.Context, tripID string, member *domain.Member) error {
	return s.send(ctx, Notification{
		Type:    NotificationMemberRemoved,
		TripID:  tripID,
		Title:   "Traveler Removed",
		Message: fmt.Sprintf("%s left the trip", member.DisplayName),
		Data: map[string]interface{}{
			"member_id": member.ID,
		},
	})
}

// NotifyBookingAdded announces a new cost-bearing booking to the trip.
func (s *NotificationService) NotifyBookingAdded(ctx context.Context, tripID string, category domain.CostCategory, name string, cost float64) error {
	return s.send(ctx, Notification{
		Type:    NotificationBookingAdded,
		TripID:  tripID,
		Title:   "Booking Added",
		Message: fmt.Sprintf("%s added to %s ($%.2f)", name, category, cost),
		Data: map[string]interface{}{
			"category": category,
			"cost":     cost,
		},
	})
}

// NotifyBookingRemoved announces a booking removal to the trip.
func (s *NotificationService) NotifyBookingRemoved(ctx context.Context, tripID string, category domain.CostCategory, name string) error {
	return s.send(ctx, Notification{
		Type:    NotificationBookingRemoved,
		TripID:  tripID,
		Title:   "Booking Removed",
		Message: fmt.Sprintf("%s removed from %s", name, category),
		Data: map[string]interface{}{
			"category": category,
		},
	})
}

// send delivers a notification. Currently logs; the interface boundary
// is what matters to callers.
func (s *NotificationService) send(ctx context.Context, n Notification) error {
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now()
	log.Printf("[NOTIFICATION] trip=%s type=%s title=%q message=%q", n.TripID, n.Type, n.Title, n.Message)
	return nil
}
