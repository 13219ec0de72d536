package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
)

// BookingService handles the four cost-bearing booking categories.
// Every mutation drops the trip's cached cost report so the next report
// reflects the new splits.
type BookingService struct {
	tripRepo            repository.TripRepository
	flightRepo          repository.FlightRepository
	lodgingRepo         repository.LodgingRepository
	tourRepo            repository.TourRepository
	rentalRepo          repository.RentalRepository
	reportCache         redis.ReportCacheInterface
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	tripRepo repository.TripRepository,
	flightRepo repository.FlightRepository,
	lodgingRepo repository.LodgingRepository,
	tourRepo repository.TourRepository,
	rentalRepo repository.RentalRepository,
	reportCache redis.ReportCacheInterface,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		tripRepo:            tripRepo,
		flightRepo:          flightRepo,
		lodgingRepo:         lodgingRepo,
		tourRepo:            tourRepo,
		rentalRepo:          rentalRepo,
		reportCache:         reportCache,
		notificationService: notificationService,
	}
}

func (s *BookingService) afterMutation(ctx context.Context, tripID string) {
	if s.reportCache != nil {
		_ = s.reportCache.Invalidate(ctx, tripID)
	}
}

func (s *BookingService) tripExists(ctx context.Context, tripID string) error {
	if tripID == "" {
		return ErrInvalidTripID
	}
	_, err := s.tripRepo.GetByID(ctx, tripID)
	return err
}

// AddFlight adds a flight to a trip.
func (s *BookingService) AddFlight(ctx context.Context, flight *domain.Flight) error {
	if err := s.tripExists(ctx, flight.TripID); err != nil {
		return err
	}

	flight.ID = uuid.New().String()
	flight.CreatedAt = time.Now()

	if err := s.flightRepo.Create(ctx, flight); err != nil {
		return err
	}

	s.afterMutation(ctx, flight.TripID)

	if s.notificationService != nil {
		name := flight.Airline + " " + flight.FlightNumber
		_ = s.notificationService.NotifyBookingAdded(ctx, flight.TripID, domain.CategoryFlights, name, flight.Cost)
	}

	return nil
}

// ListFlights retrieves a trip's flights.
func (s *BookingService) ListFlights(ctx context.Context, tripID string) ([]*domain.Flight, error) {
	if err := s.tripExists(ctx, tripID); err != nil {
		return nil, err
	}
	return s.flightRepo.ListByTrip(ctx, tripID)
}

// UpdateFlight replaces a flight's editable fields.
func (s *BookingService) UpdateFlight(ctx context.Context, flight *domain.Flight) error {
	if flight.ID == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.flightRepo.GetByID(ctx, flight.ID)
	if err != nil {
		return err
	}

	if existing.TripID != flight.TripID {
		return ErrBookingNotOnTrip
	}

	flight.CreatedAt = existing.CreatedAt

	if err := s.flightRepo.Update(ctx, flight); err != nil {
		return err
	}

	s.afterMutation(ctx, flight.TripID)

	return nil
}

// DeleteFlight removes a flight from a trip.
func (s *BookingService) DeleteFlight(ctx context.Context, tripID, id string) error {
	if id == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.TripID != tripID {
		return ErrBookingNotOnTrip
	}

	if err := s.flightRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, tripID)

	if s.notificationService != nil {
		name := existing.Airline + " " + existing.FlightNumber
		_ = s.notificationService.NotifyBookingRemoved(ctx, tripID, domain.CategoryFlights, name)
	}

	return nil
}

// AddLodging adds a lodging reservation to a trip.
func (s *BookingService) AddLodging(ctx context.Context, lodging *domain.Lodging) error {
	if err := s.tripExists(ctx, lodging.TripID); err != nil {
		return err
	}

	lodging.ID = uuid.New().String()
	lodging.CreatedAt = time.Now()

	if err := s.lodgingRepo.Create(ctx, lodging); err != nil {
		return err
	}

	s.afterMutation(ctx, lodging.TripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingAdded(ctx, lodging.TripID, domain.CategoryLodging, lodging.Name, lodging.Cost)
	}

	return nil
}

// ListLodgings retrieves a trip's lodging reservations.
func (s *BookingService) ListLodgings(ctx context.Context, tripID string) ([]*domain.Lodging, error) {
	if err := s.tripExists(ctx, tripID); err != nil {
		return nil, err
	}
	return s.lodgingRepo.ListByTrip(ctx, tripID)
}

// UpdateLodging replaces a lodging reservation's editable fields.
func (s *BookingService) UpdateLodging(ctx context.Context, lodging *domain.Lodging) error {
	if lodging.ID == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.lodgingRepo.GetByID(ctx, lodging.ID)
	if err != nil {
		return err
	}

	if existing.TripID != lodging.TripID {
		return ErrBookingNotOnTrip
	}

	lodging.CreatedAt = existing.CreatedAt

	if err := s.lodgingRepo.Update(ctx, lodging); err != nil {
		return err
	}

	s.afterMutation(ctx, lodging.TripID)

	return nil
}

// DeleteLodging removes a lodging reservation from a trip.
func (s *BookingService) DeleteLodging(ctx context.Context, tripID, id string) error {
	if id == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.lodgingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.TripID != tripID {
		return ErrBookingNotOnTrip
	}

	if err := s.lodgingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, tripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingRemoved(ctx, tripID, domain.CategoryLodging, existing.Name)
	}

	return nil
}

// AddTour adds a tour to a trip.
func (s *BookingService) AddTour(ctx context.Context, tour *domain.Tour) error {
	if err := s.tripExists(ctx, tour.TripID); err != nil {
		return err
	}

	tour.ID = uuid.New().String()
	tour.CreatedAt = time.Now()

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return err
	}

	s.afterMutation(ctx, tour.TripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingAdded(ctx, tour.TripID, domain.CategoryTours, tour.Name, tour.Cost)
	}

	return nil
}

// ListTours retrieves a trip's tours.
func (s *BookingService) ListTours(ctx context.Context, tripID string) ([]*domain.Tour, error) {
	if err := s.tripExists(ctx, tripID); err != nil {
		return nil, err
	}
	return s.tourRepo.ListByTrip(ctx, tripID)
}

// UpdateTour replaces a tour's editable fields.
func (s *BookingService) UpdateTour(ctx context.Context, tour *domain.Tour) error {
	if tour.ID == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.tourRepo.GetByID(ctx, tour.ID)
	if err != nil {
		return err
	}

	if existing.TripID != tour.TripID {
		return ErrBookingNotOnTrip
	}

	tour.CreatedAt = existing.CreatedAt

	if err := s.tourRepo.Update(ctx, tour); err != nil {
		return err
	}

	s.afterMutation(ctx, tour.TripID)

	return nil
}

// DeleteTour removes a tour from a trip.
func (s *BookingService) DeleteTour(ctx context.Context, tripID, id string) error {
	if id == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.TripID != tripID {
		return ErrBookingNotOnTrip
	}

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, tripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingRemoved(ctx, tripID, domain.CategoryTours, existing.Name)
	}

	return nil
}

// AddRental adds a rental car booking to a trip.
func (s *BookingService) AddRental(ctx context.Context, rental *domain.Rental) error {
	if err := s.tripExists(ctx, rental.TripID); err != nil {
		return err
	}

	rental.ID = uuid.New().String()
	rental.CreatedAt = time.Now()

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return err
	}

	s.afterMutation(ctx, rental.TripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingAdded(ctx, rental.TripID, domain.CategoryRentals, rental.Company, rental.Cost)
	}

	return nil
}

// ListRentals retrieves a trip's rental bookings.
func (s *BookingService) ListRentals(ctx context.Context, tripID string) ([]*domain.Rental, error) {
	if err := s.tripExists(ctx, tripID); err != nil {
		return nil, err
	}
	return s.rentalRepo.ListByTrip(ctx, tripID)
}

// UpdateRental replaces a rental booking's editable fields.
func (s *BookingService) UpdateRental(ctx context.Context, rental *domain.Rental) error {
	if rental.ID == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.rentalRepo.GetByID(ctx, rental.ID)
	if err != nil {
		return err
	}

	if existing.TripID != rental.TripID {
		return ErrBookingNotOnTrip
	}

	rental.CreatedAt = existing.CreatedAt

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return err
	}

	s.afterMutation(ctx, rental.TripID)

	return nil
}

// DeleteRental removes a rental booking from a trip.
func (s *BookingService) DeleteRental(ctx context.Context, tripID, id string) error {
	if id == "" {
		return ErrInvalidBookingID
	}

	existing, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.TripID != tripID {
		return ErrBookingNotOnTrip
	}

	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, tripID)

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingRemoved(ctx, tripID, domain.CategoryRentals, existing.Company)
	}

	return nil
}
