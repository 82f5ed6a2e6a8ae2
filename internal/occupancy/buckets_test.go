package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBuckets_ClampsFirstAndLastMonth(t *testing.T) {
	buckets := MonthBuckets(date("2025-01-15"), date("2025-03-10"))
	require.Len(t, buckets, 3)

	assert.Equal(t, "2025-01", buckets[0].Key())
	assert.Equal(t, date("2025-01-15"), buckets[0].Start)
	assert.Equal(t, date("2025-01-31"), buckets[0].End)
	assert.Equal(t, 17, buckets[0].Days)

	assert.Equal(t, "2025-02", buckets[1].Key())
	assert.Equal(t, date("2025-02-01"), buckets[1].Start)
	assert.Equal(t, date("2025-02-28"), buckets[1].End)
	assert.Equal(t, 28, buckets[1].Days)

	assert.Equal(t, "2025-03", buckets[2].Key())
	assert.Equal(t, date("2025-03-01"), buckets[2].Start)
	assert.Equal(t, date("2025-03-10"), buckets[2].End)
	assert.Equal(t, 10, buckets[2].Days)
}

func TestMonthBuckets_LeapYearAndYearBoundary(t *testing.T) {
	buckets := MonthBuckets(date("2023-12-01"), date("2024-02-29"))
	require.Len(t, buckets, 3)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"},
		[]string{buckets[0].Key(), buckets[1].Key(), buckets[2].Key()})
	assert.Equal(t, 29, buckets[2].Days)
}

func TestMonthBuckets_DaysSumToRange(t *testing.T) {
	start, end := date("2025-01-01"), date("2025-12-31")
	buckets := MonthBuckets(start, end)
	require.Len(t, buckets, 12)

	total := 0
	for _, b := range buckets {
		total += b.Days
	}
	assert.Equal(t, DaysInRange(start, end), total)
}

func TestMonthBuckets_SingleDay(t *testing.T) {
	buckets := MonthBuckets(date("2025-05-20"), date("2025-05-20"))
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Days)
}

func TestMonthBuckets_InvertedRange(t *testing.T) {
	assert.Nil(t, MonthBuckets(date("2025-01-20"), date("2025-01-10")))
	assert.Nil(t, MonthBuckets(date("2025-03-01"), date("2025-02-28")))
	assert.True(t, Inverted(date("2025-01-02"), date("2025-01-01")))
	assert.False(t, Inverted(date("2025-01-01"), date("2025-01-01")))
}
