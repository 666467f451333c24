package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a half-open [Start, End) turn window. Times are naive: wall-clock
// fields carried in UTC so calendar arithmetic never crosses a DST change.
type Period struct {
	Start time.Time
	End   time.Time
}

// PeriodFor returns the n-th period of a rotation beginning at start.
func PeriodFor(start time.Time, lengthDays, n int) Period {
	return Period{
		Start: start.AddDate(0, 0, n*lengthDays),
		End:   start.AddDate(0, 0, (n+1)*lengthDays),
	}
}

// PeriodContaining returns the period of the grid laid from start that holds
// t, counting backwards for t before start.
func PeriodContaining(start time.Time, lengthDays int, t time.Time) Period {
	days := int(DateOf(t).Sub(DateOf(start)) / (24 * time.Hour))
	n := days / lengthDays
	if days < 0 && days%lengthDays != 0 {
		n--
	}
	return PeriodFor(DateOf(start), lengthDays, n)
}

// Contains reports whether t falls inside [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

func (p Period) String() string {
	return fmt.Sprintf("%s → %s", p.Start.Format(DateLayout), p.End.Format(DateLayout))
}

// Naive drops the location of t, keeping its wall-clock reading.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DateOf truncates t to naive midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts the handful of formats members tend to type.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, InvalidInput(fmt.Sprintf("unrecognised date %q, use YYYY-MM-DD", s))
}

// DaysUntil counts whole days from now to t, rounding up partial days.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
