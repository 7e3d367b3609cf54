// Package calendar holds the date arithmetic used to spread hours across
// working days. All values are calendar dates: times are normalized to UTC
// midnight and the time-of-day component is ignored.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// BucketSize selects how a reporting window is partitioned.
type BucketSize string

const (
	BucketWeek  BucketSize = "week"
	BucketMonth BucketSize = "month"
)

// IsValid checks if the BucketSize is supported
func (b BucketSize) IsValid() bool {
	switch b {
	case BucketWeek, BucketMonth:
		return true
	}
	return false
}

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// DateOf strips the time-of-day from t and returns midnight UTC of the same
// calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// IsWorkingDay reports whether t falls on Monday through Friday.
func IsWorkingDay(t time.Time) bool {
	return isWeekday(t.Weekday())
}

func isWeekday(wd time.Weekday) bool {
	return wd != time.Saturday && wd != time.Sunday
}

// daysInclusive returns the number of calendar days in [start, end], or 0 when
// start is after end.
func daysInclusive(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start)/day) + 1
}

// WorkingDays counts weekdays between start and end, both inclusive.
// Weekends are always excluded; there is no holiday calendar. An inverted
// window yields 0.
func WorkingDays(start, end time.Time) int {
	days := daysInclusive(start, end)
	if days == 0 {
		return 0
	}

	count := (days / 7) * 5
	first := DateOf(start).Weekday()
	for i := 0; i < days%7; i++ {
		if isWeekday((first + time.Weekday(i)) % 7) {
			count++
		}
	}
	return count
}

// EndOfMonth returns the last calendar day of t's month, computed as day 0 of
// the following month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
}

// Range is an inclusive window of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a Range from two dates, normalizing both.
func NewRange(start, end time.Time) Range {
	return Range{Start: DateOf(start), End: DateOf(end)}
}

// ParseRange parses two YYYY-MM-DD strings into a Range.
func ParseRange(start, end string) (Range, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e), nil
}

// Valid reports whether the range is not inverted.
func (r Range) Valid() bool {
	return !DateOf(r.Start).After(DateOf(r.End))
}

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	return daysInclusive(r.Start, r.End)
}

// WorkingDays counts the weekdays in the range.
func (r Range) WorkingDays() int {
	return WorkingDays(r.Start, r.End)
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(r.Start)) && !d.After(DateOf(r.End))
}

// Overlaps uses the store's overlap rule: a.Start <= b.End AND a.End >= b.Start.
func (r Range) Overlaps(other Range) bool {
	return !DateOf(r.Start).After(DateOf(other.End)) && !DateOf(r.End).Before(DateOf(other.Start))
}

// Intersect returns the common part of two ranges. ok is false when they do
// not overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}
	start := DateOf(r.Start)
	if s := DateOf(other.Start); s.After(start) {
		start = s
	}
	end := DateOf(r.End)
	if e := DateOf(other.End); e.Before(end) {
		end = e
	}
	return Range{Start: start, End: end}, true
}

// Each calls fn for every calendar date in the range, in order.
func (r Range) Each(fn func(time.Time)) {
	for d := DateOf(r.Start); !d.After(DateOf(r.End)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// String renders the range as "start..end".
func (r Range) String() string {
	return FormatDate(r.Start) + ".." + FormatDate(r.End)
}

// OverlapWorkingDays counts the weekdays shared by two ranges.
func OverlapWorkingDays(a, b Range) int {
	overlap, ok := a.Intersect(b)
	if !ok {
		return 0
	}
	return overlap.WorkingDays()
}

// Bucket is one reporting period of a partitioned window.
type Bucket struct {
	Label string
	Range
}

// Buckets partitions r into consecutive, non-overlapping buckets that cover
// every date of r. Weekly buckets are 7 calendar days counted from r.Start;
// monthly buckets follow calendar-month boundaries. The first and last bucket
// are clipped to r.
func Buckets(r Range, size BucketSize) []Bucket {
	if !r.Valid() {
		return nil
	}
	start, end := DateOf(r.Start), DateOf(r.End)

	var buckets []Bucket
	for cur := start; !cur.After(end); {
		var last time.Time
		var label string
		switch size {
		case BucketMonth:
			last = EndOfMonth(cur)
			label = cur.Format("2006-01")
		default:
			last = cur.AddDate(0, 0, 6)
			y, w := cur.ISOWeek()
			label = fmt.Sprintf("%d-W%02d", y, w)
		}
		if last.After(end) {
			last = end
		}
		buckets = append(buckets, Bucket{Label: label, Range: Range{Start: cur, End: last}})
		cur = last.AddDate(0, 0, 1)
	}
	return buckets
}
