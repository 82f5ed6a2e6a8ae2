package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/middleware"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/sjperalta/stayledger-api/internal/services"
	"github.com/sjperalta/stayledger-api/pkg/logger"
)

type AnalyticsHandler struct {
	analyticsSvc *services.AnalyticsService
	exportSvc    *services.ExportService
}

func NewAnalyticsHandler(analyticsSvc *services.AnalyticsService, exportSvc *services.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		exportSvc:    exportSvc,
	}
}

// @Summary Get Revenue Analytics
// @Description Returns RevPAR, ADR, average stay duration and active property count for the range
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} models.RevenueAnalytics
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	q, ok := h.queryRange(c)
	if !ok {
		return
	}
	revenue, err := h.analyticsSvc.RevenueAnalytics(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

// @Summary Get Occupancy by Property
// @Description Returns occupied nights, occupancy rate and revenue for every active property, highest rate first
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} models.OccupationByProperty
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/occupancy/properties [get]
func (h *AnalyticsHandler) Properties(c *gin.Context) {
	q, ok := h.queryRange(c)
	if !ok {
		return
	}
	rows, err := h.analyticsSvc.OccupationByProperty(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get Occupancy by Month
// @Description Returns occupancy and pro-rated revenue per calendar month intersecting the range
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} models.OccupationByMonth
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/occupancy/months [get]
func (h *AnalyticsHandler) Months(c *gin.Context) {
	q, ok := h.queryRange(c)
	if !ok {
		return
	}
	rows, err := h.analyticsSvc.OccupationByMonth(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get Revenue by Platform
// @Description Returns booking count and revenue per booking channel. Amounts are not pro-rated: every booking touching the range counts in full, so totals can exceed the sum of monthly revenue.
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} models.RevenueByPlatform
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/revenue/platforms [get]
func (h *AnalyticsHandler) Platforms(c *gin.Context) {
	q, ok := h.queryRange(c)
	if !ok {
		return
	}
	rows, err := h.analyticsSvc.RevenueByPlatform(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get Analytics Report
// @Description Returns all four aggregates for the range in one response
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} models.AnalyticsReport
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/report [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	q, ok := h.queryRange(c)
	if !ok {
		return
	}
	report, err := h.analyticsSvc.Report(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Export Analytics Report
// @Description Generates and downloads the analytics report in various formats
// @Tags Analytics
// @Produce application/octet-stream
// @Param format query string true "Report format (csv, xlsx, pdf)"
// @Param start_date query string true "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /analytics/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	format := c.Query("format")
	switch format {
	case services.FormatCSV, services.FormatXLSX, services.FormatPDF:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrUnsupportedFormat.Error()})
		return
	}

	q, ok := h.queryRange(c)
	if !ok {
		return
	}

	report, err := h.analyticsSvc.Report(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	data, filename, contentType, err := h.exportSvc.Export(c.Request.Context(), format, report)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

// queryRange builds the query range from the tenant context and the date
// params, writing the error response itself when they are unusable
func (h *AnalyticsHandler) queryRange(c *gin.Context) (models.QueryRange, bool) {
	orgID := middleware.GetOrganisationID(c)
	if orgID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrMissingOrganisation.Error()})
		return models.QueryRange{}, false
	}

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("start_date: %v", err)})
		return models.QueryRange{}, false
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("end_date: %v", err)})
		return models.QueryRange{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidRange.Error()})
		return models.QueryRange{}, false
	}

	return models.QueryRange{OrganisationID: orgID, Start: start, End: end}, true
}

// parseDate accepts a calendar date or an RFC3339 timestamp. Timestamps keep
// their wall-clock date; the time of day is discarded.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, services.ErrInvalidDate
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, services.ErrInvalidDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingOrganisation):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrInvalidRange), errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.ErrorContext(c.Request.Context(), "[AnalyticsHandler] Request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
	}
}
