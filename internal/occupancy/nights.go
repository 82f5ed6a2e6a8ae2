// Package occupancy turns date-ranged stays into occupancy and revenue
// aggregates. Every function here is pure: callers fetch the inputs and
// pass them in, nothing is cached between calls.
package occupancy

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Day truncates t to its calendar date. Dates are naive calendar days, so
// the wall-clock date in t's own location is kept and the result is UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ClampNights returns the nights of the stay [checkIn, checkOut) that fall
// inside the inclusive range [rangeStart, rangeEnd]. Never negative.
func ClampNights(checkIn, checkOut, rangeStart, rangeEnd time.Time) int {
	start := later(checkIn, rangeStart)
	end := earlier(checkOut, rangeEnd.AddDate(0, 0, 1))
	return nightsBetween(start, end)
}

// StayNights returns the full, unclamped length of a stay in nights
func StayNights(checkIn, checkOut time.Time) int {
	return nightsBetween(checkIn, checkOut)
}

// DaysInRange returns the number of calendar days in the inclusive range
// [start, end], floored at 1 so it is always safe as a denominator
func DaysInRange(start, end time.Time) int {
	days := nightsBetween(start, end.AddDate(0, 0, 1))
	if days < 1 {
		return 1
	}
	return days
}

// Inverted reports whether the range ends before it starts. Such a range
// holds no days and every aggregate over it is zero.
func Inverted(start, end time.Time) bool {
	return end.Before(start)
}

func nightsBetween(from, to time.Time) int {
	n := int(math.Ceil(float64(to.Sub(from)) / float64(day)))
	if n < 0 {
		return 0
	}
	return n
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
