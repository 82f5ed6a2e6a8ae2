package occupancy

import (
	"sort"

	"github.com/sjperalta/stayledger-api/internal/models"
)

// ComputeRevenueByPlatform attributes the full amount of every stay to its
// platform. Nothing is clamped or pro-rated: the question answered is how
// much revenue the bookings touching the range generated, not how much of
// it falls inside the range. Every known platform gets a row.
func ComputeRevenueByPlatform(stays []Stay) []models.RevenueByPlatform {
	platforms := models.Platforms()
	index := make(map[models.Platform]int, len(platforms))
	rows := make([]models.RevenueByPlatform, len(platforms))
	for i, p := range platforms {
		index[p] = i
		rows[i].Platform = p
	}

	var grandTotal float64
	for _, s := range stays {
		i, ok := index[s.Platform]
		if !ok {
			i = index[models.PlatformOther]
		}
		rows[i].Count++
		rows[i].TotalAmount += s.Amount
		grandTotal += s.Amount
	}

	for i := range rows {
		rows[i].Percentage = percent(rows[i].TotalAmount, grandTotal)
		rows[i].TotalAmount = roundTo(rows[i].TotalAmount, 2)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount > rows[j].TotalAmount
	})
	return rows
}
