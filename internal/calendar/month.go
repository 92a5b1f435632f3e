package calendar

import (
	"fmt"
	"time"
)

// Month identifies one calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM month designator
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return MonthOf(t), nil
}

// Label returns the human-readable month header, e.g. "January 2026"
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Days returns the number of days in the month
func (m Month) Days() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st (Sunday-first, as rendered)
func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DateString returns the YYYY-MM-DD form of a day in the month
func (m Month) DateString(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// Contains reports whether the given timestamp falls inside the month
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Prev returns the previous month
func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0))
}

// Next returns the following month
func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0))
}

// Grid returns the month laid out in Sunday-first weeks. Cells before the
// first day and after the last are zero.
func (m Month) Grid() [][7]int {
	var weeks [][7]int

	week := [7]int{}
	col := int(m.FirstWeekday())
	for day := 1; day <= m.Days(); day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}
