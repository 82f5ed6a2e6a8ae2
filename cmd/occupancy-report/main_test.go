package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/sjperalta/stayledger-api/internal/repository"
	"github.com/sjperalta/stayledger-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPropertyRepo struct {
	repository.PropertyRepository
	properties []models.Property
}

func (s *stubPropertyRepo) ListActive(ctx context.Context, organisationID uuid.UUID) ([]models.Property, error) {
	return s.properties, nil
}

type stubBookingRepo struct {
	repository.BookingRepository
	bookings []models.Booking
	reads    int
}

func (s *stubBookingRepo) ListConfirmed(ctx context.Context, organisationID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	s.reads++
	return s.bookings, nil
}

func TestParseArgs(t *testing.T) {
	orgID := uuid.New()

	q, err := parseArgs(orgID.String(), "2025-01-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, orgID, q.OrganisationID)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), q.End)

	_, err = parseArgs("not-a-uuid", "2025-01-01", "2025-03-31")
	assert.Error(t, err)
	_, err = parseArgs(orgID.String(), "01/01/2025", "2025-03-31")
	assert.Error(t, err)
	_, err = parseArgs(orgID.String(), "2025-03-31", "2025-01-01")
	assert.ErrorIs(t, err, services.ErrInvalidRange)
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{services.FormatCSV, services.FormatXLSX, services.FormatPDF} {
		assert.NoError(t, validateFormat(format))
	}
	assert.ErrorIs(t, validateFormat("docx"), services.ErrUnsupportedFormat)
	assert.ErrorIs(t, validateFormat("CSV"), services.ErrUnsupportedFormat)
}

func TestRun_WritesExport(t *testing.T) {
	orgID := uuid.New()
	propertyID := uuid.New()
	platform := "vrbo"

	bookings := &stubBookingRepo{bookings: []models.Booking{{
		ID:             uuid.New(),
		OrganisationID: orgID,
		PropertyID:     &propertyID,
		CheckIn:        time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 2, 6, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewNullDecimal(decimal.NewFromInt(300)),
		Status:         string(models.BookingStatusConfirmed),
		Platform:       &platform,
	}}}
	svcs := &services.Services{
		Analytics: services.NewAnalyticsService(
			&stubPropertyRepo{properties: []models.Property{{ID: propertyID, OrganisationID: orgID, Name: "Chalet", Status: "active"}}},
			bookings,
			"en",
		),
		Export: services.NewExportService("EUR"),
	}

	q := models.QueryRange{
		OrganisationID: orgID,
		Start:          time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	dir := t.TempDir()

	path, err := run(context.Background(), svcs, q, services.FormatCSV, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "occupancy_report_2025-02-01_2025-02-28.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chalet")
	assert.Contains(t, string(data), "vrbo")

	reads := bookings.reads
	_, err = run(context.Background(), svcs, q, "docx", dir)
	assert.ErrorIs(t, err, services.ErrUnsupportedFormat)
	assert.Equal(t, reads, bookings.reads, "unknown format is rejected before any read")
}
