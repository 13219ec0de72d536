package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tripmate/internal/costsplit"
	"tripmate/internal/domain"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
)

// CostReportService builds the per-trip shared-cost breakdown.
//
// Per category it runs the payer-totals accumulator over the booking
// list, takes the sum of item costs as the authoritative category total,
// and balances the accumulated map against that total so every category
// conserves its cost exactly. The overall balance is the member-by-member
// sum across categories.
type CostReportService struct {
	tripRepo    repository.TripRepository
	memberRepo  repository.MemberRepository
	flightRepo  repository.FlightRepository
	lodgingRepo repository.LodgingRepository
	tourRepo    repository.TourRepository
	rentalRepo  repository.RentalRepository
	reportCache redis.ReportCacheInterface
}

// NewCostReportService creates a new CostReportService.
func NewCostReportService(
	tripRepo repository.TripRepository,
	memberRepo repository.MemberRepository,
	flightRepo repository.FlightRepository,
	lodgingRepo repository.LodgingRepository,
	tourRepo repository.TourRepository,
	rentalRepo repository.RentalRepository,
	reportCache redis.ReportCacheInterface,
) *CostReportService {
	return &CostReportService{
		tripRepo:    tripRepo,
		memberRepo:  memberRepo,
		flightRepo:  flightRepo,
		lodgingRepo: lodgingRepo,
		tourRepo:    tourRepo,
		rentalRepo:  rentalRepo,
		reportCache: reportCache,
	}
}

// BuildReport returns the trip's cost report, from cache unless refresh
// is set or the cache misses.
func (s *CostReportService) BuildReport(ctx context.Context, tripID string, refresh bool) (*domain.CostReport, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	if !refresh && s.reportCache != nil {
		if cached, err := s.reportCache.Get(ctx, tripID); err == nil && cached != nil {
			return cached, nil
		}
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	// Roster ids in join order: the authoritative fallback payer set and
	// the remainder recipient ordering.
	roster := make([]string, 0, len(members))
	for _, m := range members {
		roster = append(roster, m.ID)
	}

	var flights []*domain.Flight
	var lodgings []*domain.Lodging
	var tours []*domain.Tour
	var rentals []*domain.Rental

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		flights, err = s.flightRepo.ListByTrip(gctx, tripID)
		return err
	})
	g.Go(func() (err error) {
		lodgings, err = s.lodgingRepo.ListByTrip(gctx, tripID)
		return err
	})
	g.Go(func() (err error) {
		tours, err = s.tourRepo.ListByTrip(gctx, tripID)
		return err
	})
	g.Go(func() (err error) {
		rentals, err = s.rentalRepo.ListByTrip(gctx, tripID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := costsplit.Options{FallbackOnEmpty: trip.FallbackOnEmpty}

	report := &domain.CostReport{
		TripID: tripID,
		Categories: map[domain.CostCategory]domain.CategoryReport{
			domain.CategoryFlights: buildCategory(flights,
				func(f *domain.Flight) float64 { return f.Cost },
				func(f *domain.Flight) []string { return f.PayerIDs },
				roster, opts),
			domain.CategoryLodging: buildCategory(lodgings,
				func(l *domain.Lodging) float64 { return l.Cost },
				func(l *domain.Lodging) []string { return l.PayerIDs },
				roster, opts),
			domain.CategoryTours: buildCategory(tours,
				func(t *domain.Tour) float64 { return t.Cost },
				func(t *domain.Tour) []string { return t.PayerIDs },
				roster, opts),
			domain.CategoryRentals: buildCategory(rentals,
				func(r *domain.Rental) float64 { return r.Cost },
				func(r *domain.Rental) []string { return r.PayerIDs },
				roster, opts),
		},
		Overall: make(map[string]float64, len(roster)),
	}

	// Cross-category summation: plain addition, correct because each
	// category's map already conserves its own total.
	for _, id := range roster {
		report.Overall[id] = 0
	}
	for _, category := range domain.Categories {
		cr := report.Categories[category]
		report.Total += cr.Total
		for id, v := range cr.PerMember {
			report.Overall[id] += v
		}
	}

	if s.reportCache != nil {
		_ = s.reportCache.Set(ctx, report)
	}

	return report, nil
}

// InvalidateReport drops the trip's cached report. Booking handlers call
// this on every mutation.
func (s *CostReportService) InvalidateReport(ctx context.Context, tripID string) error {
	if s.reportCache == nil {
		return nil
	}
	return s.reportCache.Invalidate(ctx, tripID)
}

// buildCategory runs the accumulator and the balancer for one category.
func buildCategory[T any](
	items []T,
	cost func(T) float64,
	payers func(T) []string,
	roster []string,
	opts costsplit.Options,
) domain.CategoryReport {
	perMember := costsplit.ComputeTotals(items, cost, payers, roster, opts)

	total := 0.0
	for _, item := range items {
		total += cost(item)
	}

	return domain.CategoryReport{
		Total:     total,
		PerMember: costsplit.BalanceCategory(total, perMember, roster),
	}
}
