package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
	"tripmate/internal/repository/postgres"
)

// TripService handles trip and roster operations.
type TripService struct {
	db                  *sql.DB
	tripRepo            repository.TripRepository
	memberRepo          repository.MemberRepository
	reportCache         redis.ReportCacheInterface
	notificationService *NotificationService
}

// NewTripService creates a new TripService.
func NewTripService(
	db *sql.DB,
	tripRepo repository.TripRepository,
	memberRepo repository.MemberRepository,
	reportCache redis.ReportCacheInterface,
	notificationService *NotificationService,
) *TripService {
	return &TripService{
		db:                  db,
		tripRepo:            tripRepo,
		memberRepo:          memberRepo,
		reportCache:         reportCache,
		notificationService: notificationService,
	}
}

// CreateTripRequest contains the parameters for creating a trip.
type CreateTripRequest struct {
	Name          string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	CreatorName   string
	CreatorUserID string
}

// CreateTripResponse contains the created trip and its first member.
type CreateTripResponse struct {
	Trip    *domain.Trip
	Creator *domain.Member
}

// CreateTrip creates a trip with its creator as the first roster member.
// Trip and member are written in one transaction so a trip can never
// exist with an empty roster.
func (s *TripService) CreateTrip(ctx context.Context, req CreateTripRequest) (*CreateTripResponse, error) {
	if req.Name == "" {
		return nil, ErrInvalidTripName
	}

	if req.CreatorName == "" {
		return nil, ErrInvalidDisplayName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txTripRepo := postgres.NewTripRepositoryWithTx(tx)
	txMemberRepo := postgres.NewMemberRepositoryWithTx(tx)

	now := time.Now()
	trip := &domain.Trip{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Destination: req.Destination,
		Status:      domain.TripStatusPlanning,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   req.CreatorUserID,
		CreatedAt:   now,
	}

	if err = txTripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	kind := domain.MemberKindGuest
	if req.CreatorUserID != "" {
		kind = domain.MemberKindAccount
	}

	creator := &domain.Member{
		ID:          uuid.New().String(),
		TripID:      trip.ID,
		UserID:      req.CreatorUserID,
		DisplayName: req.CreatorName,
		Kind:        kind,
		JoinedAt:    now,
	}

	if err = txMemberRepo.Create(ctx, creator); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyTripCreated(ctx, trip, creator)
	}

	return &CreateTripResponse{Trip: trip, Creator: creator}, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	return s.tripRepo.GetByID(ctx, tripID)
}

// GetAllTrips retrieves recent trips.
func (s *TripService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// UpdateTripRequest contains the parameters for updating a trip.
type UpdateTripRequest struct {
	TripID          string
	Name            string
	Destination     string
	Status          domain.TripStatus
	StartDate       time.Time
	EndDate         time.Time
	FallbackOnEmpty bool
}

// UpdateTrip replaces a trip's editable fields. Changing the fallback
// policy changes cost attribution, so the cached report is dropped.
func (s *TripService) UpdateTrip(ctx context.Context, req UpdateTripRequest) (*domain.Trip, error) {
	if req.TripID == "" {
		return nil, ErrInvalidTripID
	}

	if req.Name == "" {
		return nil, ErrInvalidTripName
	}

	trip, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}

	trip.Name = req.Name
	trip.Destination = req.Destination
	if req.Status != "" {
		trip.Status = req.Status
	}
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.FallbackOnEmpty = req.FallbackOnEmpty

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	if s.reportCache != nil {
		_ = s.reportCache.Invalidate(ctx, trip.ID)
	}

	return trip, nil
}

// ListMembers retrieves a trip's roster in join order.
func (s *TripService) ListMembers(ctx context.Context, tripID string) ([]*domain.Member, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	return s.memberRepo.ListByTrip(ctx, tripID)
}

// AddMemberRequest contains the parameters for adding a roster member.
type AddMemberRequest struct {
	TripID      string
	DisplayName string
	UserID      string
	Kind        domain.MemberKind
}

// AddMember adds a member to a trip's roster.
func (s *TripService) AddMember(ctx context.Context, req AddMemberRequest) (*domain.Member, error) {
	if req.TripID == "" {
		return nil, ErrInvalidTripID
	}

	if req.DisplayName == "" {
		return nil, ErrInvalidDisplayName
	}

	if _, err := s.tripRepo.GetByID(ctx, req.TripID); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.MemberKindGuest
	}

	member := &domain.Member{
		ID:          uuid.New().String(),
		TripID:      req.TripID,
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Kind:        kind,
		JoinedAt:    time.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	// Roster changes move split shares around.
	if s.reportCache != nil {
		_ = s.reportCache.Invalidate(ctx, req.TripID)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyMemberJoined(ctx, req.TripID, member)
	}

	return member, nil
}

// RemoveMember removes a member from a trip's roster. Bookings the
// member paid for keep referencing the member id; the category balancer
// redistributes that attribution across the remaining roster on the
// next report.
func (s *TripService) RemoveMember(ctx context.Context, tripID, memberID string) error {
	if tripID == "" {
		return ErrInvalidTripID
	}

	if memberID == "" {
		return ErrInvalidMemberID
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if member.TripID != tripID {
		return ErrMemberNotOnTrip
	}

	if err := s.memberRepo.Delete(ctx, memberID); err != nil {
		return err
	}

	if s.reportCache != nil {
		_ = s.reportCache.Invalidate(ctx, tripID)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyMemberRemoved(ctx, tripID, member)
	}

	return nil
}
