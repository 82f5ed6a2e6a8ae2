package occupancy

import (
	"time"

	"github.com/sjperalta/stayledger-api/internal/models"
)

// ComputeRevenueAnalytics derives RevPAR, ADR and average stay length for
// the inclusive range [start, end]. Occupied nights are clamped to the
// range while stay duration uses the whole booking. Rounding happens once,
// on the way out.
func ComputeRevenueAnalytics(units []Unit, stays []Stay, start, end time.Time) models.RevenueAnalytics {
	if Inverted(start, end) {
		return models.RevenueAnalytics{ActivePropertyCount: len(units)}
	}
	days := DaysInRange(start, end)

	var totalRevenue float64
	var occupied, stayNights int
	for _, s := range stays {
		totalRevenue += s.Amount
		occupied += ClampNights(s.CheckIn, s.CheckOut, start, end)
		stayNights += s.Nights()
	}

	result := models.RevenueAnalytics{
		ActivePropertyCount: len(units),
		TotalRevenue:        roundTo(totalRevenue, 2),
		OccupiedNights:      occupied,
		BookingCount:        len(stays),
		DaysInRange:         days,
	}
	if len(units) > 0 {
		result.RevPAR = roundTo(totalRevenue/float64(len(units)*days), 2)
	}
	if occupied > 0 {
		result.ADR = roundTo(totalRevenue/float64(occupied), 2)
	}
	if len(stays) > 0 {
		result.AvgStayDuration = roundTo(float64(stayNights)/float64(len(stays)), 1)
	}
	return result
}
