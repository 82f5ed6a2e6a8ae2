package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/sjperalta/stayledger-api/internal/occupancy"
	"github.com/sjperalta/stayledger-api/internal/repository"
	"github.com/sjperalta/stayledger-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService answers occupancy and revenue questions for one
// organisation and date range. It holds no state between calls: every
// operation reads the store and aggregates in memory.
type AnalyticsService struct {
	propertyRepo repository.PropertyRepository
	bookingRepo  repository.BookingRepository
	locale       string
}

func NewAnalyticsService(
	propertyRepo repository.PropertyRepository,
	bookingRepo repository.BookingRepository,
	locale string,
) *AnalyticsService {
	return &AnalyticsService{
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		locale:       locale,
	}
}

func (s *AnalyticsService) RevenueAnalytics(ctx context.Context, q models.QueryRange) (*models.RevenueAnalytics, error) {
	q, units, stays, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	result := occupancy.ComputeRevenueAnalytics(units, stays, q.Start, q.End)
	return &result, nil
}

func (s *AnalyticsService) OccupationByProperty(ctx context.Context, q models.QueryRange) ([]models.OccupationByProperty, error) {
	q, units, stays, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	return occupancy.ComputeOccupationByProperty(units, stays, q.Start, q.End), nil
}

func (s *AnalyticsService) OccupationByMonth(ctx context.Context, q models.QueryRange) ([]models.OccupationByMonth, error) {
	q, units, stays, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	return occupancy.ComputeOccupationByMonth(units, stays, q.Start, q.End, s.locale), nil
}

func (s *AnalyticsService) RevenueByPlatform(ctx context.Context, q models.QueryRange) ([]models.RevenueByPlatform, error) {
	_, _, stays, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	return occupancy.ComputeRevenueByPlatform(stays), nil
}

// Report runs the four aggregations concurrently. Either all of them
// succeed or the first error is returned.
func (s *AnalyticsService) Report(ctx context.Context, q models.QueryRange) (*models.AnalyticsReport, error) {
	q = normalizeRange(q)
	report := &models.AnalyticsReport{Range: q}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		revenue, err := s.RevenueAnalytics(gctx, q)
		if err != nil {
			return err
		}
		report.Revenue = *revenue
		return nil
	})
	g.Go(func() error {
		var err error
		report.Properties, err = s.OccupationByProperty(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		report.Months, err = s.OccupationByMonth(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		report.Platforms, err = s.RevenueByPlatform(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.InfoContext(logger.WithOrganisation(ctx, q.OrganisationID.String()), "[AnalyticsService] Report computed",
		"start", q.Start.Format("2006-01-02"),
		"end", q.End.Format("2006-01-02"),
		"bookings", report.Revenue.BookingCount,
	)
	return report, nil
}

// load fetches active properties and confirmed bookings in parallel and
// resolves them into aggregation inputs. An inverted range has no bookings,
// so the booking read is skipped.
func (s *AnalyticsService) load(ctx context.Context, q models.QueryRange) (models.QueryRange, []occupancy.Unit, []occupancy.Stay, error) {
	if q.OrganisationID == uuid.Nil {
		return q, nil, nil, ErrMissingOrganisation
	}
	q = normalizeRange(q)
	if _, ok := logger.OrganisationFrom(ctx); !ok {
		ctx = logger.WithOrganisation(ctx, q.OrganisationID.String())
	}
	inverted := occupancy.Inverted(q.Start, q.End)

	var properties []models.Property
	var bookings []models.Booking

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.propertyRepo.ListActive(gctx, q.OrganisationID)
		if err != nil {
			return fmt.Errorf("list active properties: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if inverted {
			return nil
		}
		var err error
		bookings, err = s.bookingRepo.ListConfirmed(gctx, q.OrganisationID, q.Start, q.End)
		if err != nil {
			return fmt.Errorf("list confirmed bookings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "[AnalyticsService] Failed to load analytics data", "error", err)
		return q, nil, nil, err
	}

	bookings = confirmedOnly(ctx, bookings)
	logger.DebugContext(ctx, "[AnalyticsService] Loaded analytics data",
		"properties", len(properties),
		"bookings", len(bookings),
		"inverted_range", inverted,
	)
	return q, occupancy.UnitsFromProperties(properties), occupancy.StaysFromBookings(bookings), nil
}

// confirmedOnly drops rows the store returned with any other status
func confirmedOnly(ctx context.Context, bookings []models.Booking) []models.Booking {
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if status := models.ParseBookingStatus(b.Status); status != models.BookingStatusConfirmed {
			logger.WarnContext(ctx, "[AnalyticsService] Skipping unconfirmed booking", "booking_id", b.ID, "status", status)
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

func normalizeRange(q models.QueryRange) models.QueryRange {
	q.Start = occupancy.Day(q.Start)
	q.End = occupancy.Day(q.End)
	return q
}
