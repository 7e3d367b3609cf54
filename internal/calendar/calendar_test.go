package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWorkingDays(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single weekday", "2024-01-08", "2024-01-08", 1},
		{"single saturday", "2024-01-13", "2024-01-13", 0},
		{"monday to friday", "2024-01-08", "2024-01-12", 5},
		{"full calendar week", "2024-01-08", "2024-01-14", 5},
		{"weekend only", "2024-01-13", "2024-01-14", 0},
		{"friday to monday", "2024-01-12", "2024-01-15", 2},
		{"two weeks", "2024-01-08", "2024-01-21", 10},
		{"starting on sunday", "2024-01-07", "2024-01-19", 10},
		{"month of january 2024", "2024-01-01", "2024-01-31", 23},
		{"leap february 2024", "2024-02-01", "2024-02-29", 21},
		{"inverted window", "2024-01-12", "2024-01-08", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WorkingDays(date(tc.start), date(tc.end)))
		})
	}
}

func TestWorkingDaysNeverNegative(t *testing.T) {
	start := date("2024-01-01")
	for i := 0; i < 60; i++ {
		end := start.AddDate(0, 0, i)
		assert.GreaterOrEqual(t, WorkingDays(start, end), 0)
		if i > 0 {
			assert.Equal(t, 0, WorkingDays(end, start), "inverted window %s..%s", FormatDate(end), FormatDate(start))
		}
	}
}

func TestWorkingDaysMatchesDayWalk(t *testing.T) {
	start := date("2023-12-28")
	for i := 0; i < 45; i++ {
		end := start.AddDate(0, 0, i)
		walked := 0
		NewRange(start, end).Each(func(d time.Time) {
			if IsWorkingDay(d) {
				walked++
			}
		})
		assert.Equal(t, walked, WorkingDays(start, end))
	}
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(in))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("29/02/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, date("2024-02-29"), EndOfMonth(date("2024-02-10")))
	assert.Equal(t, date("2023-02-28"), EndOfMonth(date("2023-02-01")))
	assert.Equal(t, date("2024-12-31"), EndOfMonth(date("2024-12-31")))
}

func TestRange(t *testing.T) {
	r := NewRange(date("2024-01-08"), date("2024-01-19"))

	t.Run("contains", func(t *testing.T) {
		assert.True(t, r.Contains(date("2024-01-08")))
		assert.True(t, r.Contains(date("2024-01-19")))
		assert.False(t, r.Contains(date("2024-01-20")))
	})

	t.Run("overlap on shared endpoint", func(t *testing.T) {
		other := NewRange(date("2024-01-19"), date("2024-01-25"))
		assert.True(t, r.Overlaps(other))
		got, ok := r.Intersect(other)
		require.True(t, ok)
		assert.Equal(t, date("2024-01-19"), got.Start)
		assert.Equal(t, date("2024-01-19"), got.End)
	})

	t.Run("disjoint", func(t *testing.T) {
		other := NewRange(date("2024-01-22"), date("2024-01-25"))
		assert.False(t, r.Overlaps(other))
		assert.Equal(t, 0, OverlapWorkingDays(r, other))
	})

	t.Run("overlap working days", func(t *testing.T) {
		other := NewRange(date("2024-01-12"), date("2024-01-31"))
		assert.Equal(t, 6, OverlapWorkingDays(r, other))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, r.Valid())
		assert.False(t, NewRange(date("2024-01-19"), date("2024-01-08")).Valid())
		assert.Equal(t, 12, r.Days())
	})
}

func assertPartition(t *testing.T, r Range, buckets []Bucket) {
	t.Helper()
	require.NotEmpty(t, buckets)
	assert.Equal(t, r.Start, buckets[0].Start)
	assert.Equal(t, r.End, buckets[len(buckets)-1].End)
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].End.AddDate(0, 0, 1), buckets[i].Start, "gap or overlap before bucket %d", i)
	}
	total := 0
	for _, b := range buckets {
		assert.True(t, b.Valid())
		total += b.Days()
	}
	assert.Equal(t, r.Days(), total)
}

func TestWeekBuckets(t *testing.T) {
	t.Run("fourteen days give two buckets", func(t *testing.T) {
		r := NewRange(date("2024-01-08"), date("2024-01-21"))
		buckets := Buckets(r, BucketWeek)
		require.Len(t, buckets, 2)
		assertPartition(t, r, buckets)
		assert.Equal(t, "2024-W02", buckets[0].Label)
		assert.Equal(t, 5, buckets[0].WorkingDays())
		assert.Equal(t, 5, buckets[1].WorkingDays())
	})

	t.Run("trailing partial week is clipped", func(t *testing.T) {
		r := NewRange(date("2024-01-10"), date("2024-01-26"))
		buckets := Buckets(r, BucketWeek)
		require.Len(t, buckets, 3)
		assertPartition(t, r, buckets)
		assert.Equal(t, 3, buckets[2].Days())
	})
}

func TestMonthBuckets(t *testing.T) {
	r := NewRange(date("2024-01-15"), date("2024-03-10"))
	buckets := Buckets(r, BucketMonth)
	require.Len(t, buckets, 3)
	assertPartition(t, r, buckets)

	assert.Equal(t, "2024-01", buckets[0].Label)
	assert.Equal(t, date("2024-01-31"), buckets[0].End)
	assert.Equal(t, date("2024-02-01"), buckets[1].Start)
	assert.Equal(t, date("2024-02-29"), buckets[1].End)
	assert.Equal(t, "2024-03", buckets[2].Label)
}

func TestBucketsInvertedRange(t *testing.T) {
	assert.Nil(t, Buckets(NewRange(date("2024-02-01"), date("2024-01-01")), BucketWeek))
}

func TestBucketSizeIsValid(t *testing.T) {
	assert.True(t, BucketWeek.IsValid())
	assert.True(t, BucketMonth.IsValid())
	assert.False(t, BucketSize("quarter").IsValid())
}
