package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
)

const (
	// inviteLockTTL bounds how long a crashed redemption can hold a code.
	inviteLockTTL = 10 * time.Second

	// inviteCodeAttempts bounds regeneration on code collisions.
	inviteCodeAttempts = 5

	// defaultInviteTTL is how long a code stays redeemable.
	defaultInviteTTL = 7 * 24 * time.Hour
)

// InviteService handles invite code issuance and redemption.
type InviteService struct {
	tripRepo            repository.TripRepository
	memberRepo          repository.MemberRepository
	inviteRepo          repository.InviteRepository
	lockStore           redis.LockStoreInterface
	reportCache         redis.ReportCacheInterface
	notificationService *NotificationService
}

// NewInviteService creates a new InviteService.
func NewInviteService(
	tripRepo repository.TripRepository,
	memberRepo repository.MemberRepository,
	inviteRepo repository.InviteRepository,
	lockStore redis.LockStoreInterface,
	reportCache redis.ReportCacheInterface,
	notificationService *NotificationService,
) *InviteService {
	return &InviteService{
		tripRepo:            tripRepo,
		memberRepo:          memberRepo,
		inviteRepo:          inviteRepo,
		lockStore:           lockStore,
		reportCache:         reportCache,
		notificationService: notificationService,
	}
}

// CreateInvite issues a new invite code for a trip.
func (s *InviteService) CreateInvite(ctx context.Context, tripID, createdBy string) (*domain.Invite, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	invite := &domain.Invite{
		TripID:    tripID,
		CreatedBy: createdBy,
		ExpiresAt: time.Now().Add(defaultInviteTTL),
		CreatedAt: time.Now(),
	}

	// Codes are short, so collisions are possible; regenerate a few
	// times before giving up.
	var err error
	for i := 0; i < inviteCodeAttempts; i++ {
		invite.Code = newInviteCode()
		err = s.inviteRepo.Create(ctx, invite)
		if err == nil {
			return invite, nil
		}
		if !errors.Is(err, repository.ErrAlreadyExists) {
			return nil, err
		}
	}

	return nil, err
}

// LookupInvite retrieves an invite by code without redeeming it.
func (s *InviteService) LookupInvite(ctx context.Context, code string) (*domain.Invite, error) {
	if code == "" {
		return nil, ErrInvalidInviteCode
	}

	return s.inviteRepo.GetByCode(ctx, normalizeCode(code))
}

// RedeemInviteRequest contains the parameters for redeeming an invite.
type RedeemInviteRequest struct {
	Code        string
	DisplayName string
	UserID      string
}

// RedeemInvite claims an invite code and adds the redeemer to the
// trip's roster. A redis lock serializes concurrent redemptions of the
// same code; the repository's redeemed_by guard backs it up.
func (s *InviteService) RedeemInvite(ctx context.Context, req RedeemInviteRequest) (*domain.Member, error) {
	if req.Code == "" {
		return nil, ErrInvalidInviteCode
	}

	if req.DisplayName == "" {
		return nil, ErrInvalidDisplayName
	}

	code := normalizeCode(req.Code)

	if s.lockStore != nil {
		ok, err := s.lockStore.AcquireInviteLock(ctx, code, inviteLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInviteBusy
		}
		defer func() {
			_ = s.lockStore.ReleaseInviteLock(ctx, code)
		}()
	}

	invite, err := s.inviteRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if invite.Redeemed() {
		return nil, ErrInviteAlreadyRedeemed
	}

	if invite.Expired(time.Now()) {
		return nil, ErrInviteExpired
	}

	member := &domain.Member{
		ID:          uuid.New().String(),
		TripID:      invite.TripID,
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Kind:        domain.MemberKindInvitee,
		JoinedAt:    time.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	if err := s.inviteRepo.MarkRedeemed(ctx, code, member.ID); err != nil {
		return nil, err
	}

	if s.reportCache != nil {
		_ = s.reportCache.Invalidate(ctx, invite.TripID)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyMemberJoined(ctx, invite.TripID, member)
	}

	return member, nil
}

// newInviteCode returns a short, shareable uppercase code.
func newInviteCode() string {
	return normalizeCode(uuid.New().String()[:8])
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
