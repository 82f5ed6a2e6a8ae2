package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/sjperalta/stayledger-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock PropertyRepository
type mockPropertyRepository struct {
	repository.PropertyRepository
	mockListActive func(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error)
}

func (m *mockPropertyRepository) ListActive(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
	if m.mockListActive != nil {
		return m.mockListActive(ctx, organisationID)
	}
	return nil, nil
}

// Mock BookingRepository
type mockBookingRepository struct {
	repository.BookingRepository
	mockListConfirmed func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error)
}

func (m *mockBookingRepository) ListConfirmed(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	if m.mockListConfirmed != nil {
		return m.mockListConfirmed(ctx, organisationID, start, end)
	}
	return nil, nil
}

var (
	testOrgID      = uuid.MustParse("5b0f4c1e-3a2d-4e8f-9c7b-6a5d4e3f2a1b")
	testPropertyID = uuid.MustParse("0c9e8d7f-6a5b-4c3d-2e1f-0a9b8c7d6e5f")
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func januaryRange() models.QueryRange {
	return models.QueryRange{OrganisationID: testOrgID, Start: day("2025-01-01"), End: day("2025-01-31")}
}

func newTestAnalyticsService(bookings []models.Booking) (*AnalyticsService, *mockPropertyRepository, *mockBookingRepository) {
	propertyRepo := &mockPropertyRepository{
		mockListActive: func(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
			return []models.Property{{ID: testPropertyID, OrganisationID: organisationID, Name: "Villa Azur", Status: "active"}}, nil
		},
	}
	bookingRepo := &mockBookingRepository{
		mockListConfirmed: func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
			return bookings, nil
		},
	}
	return NewAnalyticsService(propertyRepo, bookingRepo, "en"), propertyRepo, bookingRepo
}

func confirmedBooking(checkIn, checkOut string, amount string, platform *string) models.Booking {
	pid := testPropertyID
	return models.Booking{
		ID:             uuid.New(),
		OrganisationID: testOrgID,
		PropertyID:     &pid,
		CheckIn:        day(checkIn),
		CheckOut:       day(checkOut),
		Amount:         decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		Status:         string(models.BookingStatusConfirmed),
		Platform:       platform,
	}
}

func TestAnalyticsService_RevenueAnalytics(t *testing.T) {
	service, _, _ := newTestAnalyticsService([]models.Booking{
		confirmedBooking("2025-01-10", "2025-01-15", "500", nil),
	})

	result, err := service.RevenueAnalytics(context.Background(), januaryRange())
	require.NoError(t, err)

	assert.Equal(t, 16.13, result.RevPAR)
	assert.Equal(t, 100.0, result.ADR)
	assert.Equal(t, 5.0, result.AvgStayDuration)
	assert.Equal(t, 1, result.ActivePropertyCount)
}

func TestAnalyticsService_PassesTenantAndCalendarDays(t *testing.T) {
	service, propertyRepo, bookingRepo := newTestAnalyticsService(nil)

	var gotPropertyOrg, gotBookingOrg uuid.UUID
	var gotStart, gotEnd time.Time
	propertyRepo.mockListActive = func(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
		gotPropertyOrg = organisationID
		return nil, nil
	}
	bookingRepo.mockListConfirmed = func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
		gotBookingOrg, gotStart, gotEnd = organisationID, start, end
		return nil, nil
	}

	q := models.QueryRange{
		OrganisationID: testOrgID,
		Start:          time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		End:            time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
	}
	_, err := service.OccupationByProperty(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, testOrgID, gotPropertyOrg)
	assert.Equal(t, testOrgID, gotBookingOrg)
	assert.Equal(t, day("2025-03-01"), gotStart)
	assert.Equal(t, day("2025-03-31"), gotEnd)
}

func TestAnalyticsService_MissingOrganisation(t *testing.T) {
	service, _, _ := newTestAnalyticsService(nil)

	_, err := service.OccupationByMonth(context.Background(), models.QueryRange{Start: day("2025-01-01"), End: day("2025-01-31")})
	assert.ErrorIs(t, err, ErrMissingOrganisation)
}

func TestAnalyticsService_StoreFailureIsNotAnEmptyResult(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name          string
		failProperty  bool
		expectMessage string
	}{
		{name: "Properties query fails", failProperty: true, expectMessage: "list active properties"},
		{name: "Bookings query fails", failProperty: false, expectMessage: "list confirmed bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, propertyRepo, bookingRepo := newTestAnalyticsService(nil)
			if tt.failProperty {
				propertyRepo.mockListActive = func(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
					return nil, storeErr
				}
			} else {
				bookingRepo.mockListConfirmed = func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
					return nil, storeErr
				}
			}

			result, err := service.RevenueByPlatform(context.Background(), januaryRange())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, storeErr)
			assert.Contains(t, err.Error(), tt.expectMessage)
		})
	}
}

func TestAnalyticsService_RevenueByPlatform_DefaultsMissingPlatform(t *testing.T) {
	airbnb := "Airbnb"
	service, _, _ := newTestAnalyticsService([]models.Booking{
		confirmedBooking("2025-01-03", "2025-01-05", "300", &airbnb),
		confirmedBooking("2025-01-07", "2025-01-08", "100", nil),
	})

	rows, err := service.RevenueByPlatform(context.Background(), januaryRange())
	require.NoError(t, err)
	require.Len(t, rows, len(models.Platforms()))

	assert.Equal(t, models.PlatformAirbnb, rows[0].Platform)
	assert.Equal(t, 75, rows[0].Percentage)
	assert.Equal(t, models.PlatformOther, rows[1].Platform)
	assert.Equal(t, 100.0, rows[1].TotalAmount)
}

func TestAnalyticsService_OccupationByMonth(t *testing.T) {
	service, _, _ := newTestAnalyticsService([]models.Booking{
		confirmedBooking("2025-01-30", "2025-02-03", "400", nil),
	})

	q := januaryRange()
	q.End = day("2025-02-28")
	rows, err := service.OccupationByMonth(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Jan 2025", rows[0].Label)
	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, 200.0, rows[1].Revenue)
}

func TestAnalyticsService_Report(t *testing.T) {
	service, _, _ := newTestAnalyticsService([]models.Booking{
		confirmedBooking("2025-01-10", "2025-01-15", "500", nil),
	})

	report, err := service.Report(context.Background(), januaryRange())
	require.NoError(t, err)

	assert.Equal(t, januaryRange(), report.Range)
	assert.Equal(t, 500.0, report.Revenue.TotalRevenue)
	require.Len(t, report.Properties, 1)
	assert.Equal(t, 16, report.Properties[0].OccupationRate)
	require.Len(t, report.Months, 1)
	assert.Equal(t, 5, report.Months[0].OccupiedNights)
	assert.Len(t, report.Platforms, len(models.Platforms()))
}

func TestAnalyticsService_Report_FailsAsAWhole(t *testing.T) {
	service, _, bookingRepo := newTestAnalyticsService(nil)
	bookingRepo.mockListConfirmed = func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
		return nil, errors.New("statement timeout")
	}

	report, err := service.Report(context.Background(), januaryRange())
	assert.Nil(t, report)
	assert.Error(t, err)
}

func TestAnalyticsService_InvertedRangeSkipsBookingRead(t *testing.T) {
	service, _, bookingRepo := newTestAnalyticsService(nil)
	var bookingReads atomic.Int32
	bookingRepo.mockListConfirmed = func(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
		bookingReads.Add(1)
		return []models.Booking{confirmedBooking("2025-01-05", "2025-01-25", "2000", nil)}, nil
	}
	q := models.QueryRange{OrganisationID: testOrgID, Start: day("2025-01-20"), End: day("2025-01-10")}

	report, err := service.Report(context.Background(), q)
	require.NoError(t, err)

	assert.Zero(t, bookingReads.Load())
	assert.Equal(t, models.RevenueAnalytics{ActivePropertyCount: 1}, report.Revenue)
	require.Len(t, report.Properties, 1)
	assert.Zero(t, report.Properties[0].OccupationRate)
	assert.Empty(t, report.Months)
	require.Len(t, report.Platforms, len(models.Platforms()))
	for _, p := range report.Platforms {
		assert.Zero(t, p.TotalAmount)
		assert.Zero(t, p.Percentage)
	}
}

func TestAnalyticsService_SkipsUnconfirmedRows(t *testing.T) {
	draft := confirmedBooking("2025-01-03", "2025-01-05", "900", nil)
	draft.Status = string(models.BookingStatusDraft)
	cancelled := confirmedBooking("2025-01-06", "2025-01-08", "700", nil)
	cancelled.Status = "Canceled"

	service, _, _ := newTestAnalyticsService([]models.Booking{
		confirmedBooking("2025-01-10", "2025-01-15", "500", nil),
		draft,
		cancelled,
	})

	result, err := service.RevenueAnalytics(context.Background(), januaryRange())
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.TotalRevenue)
	assert.Equal(t, 1, result.BookingCount)
}
