package occupancy

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sjperalta/stayledger-api/internal/models"
)

// ComputeOccupationByProperty returns one row per active unit, including
// units without bookings, sorted by occupation rate descending. Stays for
// properties outside units are ignored. An inverted range yields zero rows
// for every unit.
func ComputeOccupationByProperty(units []Unit, stays []Stay, start, end time.Time) []models.OccupationByProperty {
	days := DaysInRange(start, end)
	if Inverted(start, end) {
		days, stays = 0, nil
	}

	type tally struct {
		nights  int
		revenue float64
	}
	byProperty := make(map[uuid.UUID]*tally, len(units))
	for _, u := range units {
		byProperty[u.ID] = &tally{}
	}

	for _, s := range stays {
		t, ok := byProperty[s.PropertyID]
		if !ok {
			continue
		}
		t.nights += ClampNights(s.CheckIn, s.CheckOut, start, end)
		t.revenue += s.Amount
	}

	rows := make([]models.OccupationByProperty, 0, len(units))
	for _, u := range units {
		t := byProperty[u.ID]
		rows = append(rows, models.OccupationByProperty{
			PropertyID:      u.ID,
			PropertyName:    u.Name,
			OccupiedNights:  t.nights,
			AvailableNights: days,
			OccupationRate:  percent(float64(t.nights), float64(days)),
			Revenue:         roundTo(t.revenue, 2),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OccupationRate > rows[j].OccupationRate
	})
	return rows
}
