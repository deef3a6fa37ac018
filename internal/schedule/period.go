// Package schedule enumerates the hourly training archives published for a
// calendar month.
package schedule

import (
	"fmt"
	"time"
)

// Period identifies a calendar month (proleptic Gregorian).
type Period struct {
	Year  int
	Month int
}

// NewPeriod validates year and month and returns the Period.
func NewPeriod(year, month int) (Period, error) {
	if year < 1 {
		return Period{}, fmt.Errorf("invalid year: %d (must be a positive year)", year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month: %d (must be between 1 and 12)", month)
	}
	return Period{Year: year, Month: month}, nil
}

// Days returns the number of days in the period's month, leap years included.
func (p Period) Days() int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayHour identifies one hour of one day within a Period.
type DayHour struct {
	Day  int
	Hour int
}

// Hours returns every (day, hour) pair of the period in chronological order:
// day ascending, hour ascending within each day. Consumers rely on this
// ordering.
func (p Period) Hours() []DayHour {
	days := p.Days()
	hours := make([]DayHour, 0, days*24)
	for day := 1; day <= days; day++ {
		for hour := 0; hour < 24; hour++ {
			hours = append(hours, DayHour{Day: day, Hour: hour})
		}
	}
	return hours
}

// String renders the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
