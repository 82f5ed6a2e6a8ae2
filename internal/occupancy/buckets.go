package occupancy

import "time"

// MonthBucket is one calendar month of a query range, clamped to the range
// boundaries. End is inclusive.
type MonthBucket struct {
	Month time.Time
	Start time.Time
	End   time.Time
	Days  int
}

// Key returns the bucket's month in YYYY-MM form
func (b MonthBucket) Key() string {
	return b.Month.Format("2006-01")
}

// MonthBuckets partitions the inclusive range [start, end] into calendar
// months in chronological order. A range starting mid-month yields a first
// bucket covering only the remaining days of that month. An inverted range
// has no buckets.
func MonthBuckets(start, end time.Time) []MonthBucket {
	if Inverted(start, end) {
		return nil
	}
	var buckets []MonthBucket
	for cursor := firstOfMonth(start); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		lastDay := cursor.AddDate(0, 1, -1)
		b := MonthBucket{
			Month: cursor,
			Start: later(cursor, start),
			End:   earlier(lastDay, end),
		}
		b.Days = DaysInRange(b.Start, b.End)
		buckets = append(buckets, b)
	}
	return buckets
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
