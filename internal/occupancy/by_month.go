package occupancy

import (
	"math"
	"time"

	"github.com/sjperalta/stayledger-api/internal/models"
)

// ComputeOccupationByMonth returns one row per calendar month intersecting
// [start, end], oldest first. A stay spanning several months contributes
// its amount to each month in proportion to the nights spent there, so the
// monthly revenues add back up to the stay amount.
func ComputeOccupationByMonth(units []Unit, stays []Stay, start, end time.Time, locale string) []models.OccupationByMonth {
	buckets := MonthBuckets(start, end)
	rows := make([]models.OccupationByMonth, 0, len(buckets))

	for _, b := range buckets {
		var occupied int
		var revenue float64
		for _, s := range stays {
			overlap := ClampNights(s.CheckIn, s.CheckOut, b.Start, b.End)
			if overlap <= 0 {
				continue
			}
			occupied += overlap

			full := s.Nights()
			if full < 1 {
				full = 1
			}
			revenue += s.Amount * float64(overlap) / float64(full)
		}

		totalNights := b.Days * len(units)
		rows = append(rows, models.OccupationByMonth{
			Month:          b.Key(),
			Label:          MonthLabel(b.Month, locale),
			OccupiedNights: occupied,
			TotalNights:    totalNights,
			OccupationRate: percent(float64(occupied), float64(totalNights)),
			Revenue:        math.Round(revenue),
		})
	}
	return rows
}
