package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, 2026, m.Year)
	assert.Equal(t, time.March, m.Month)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-02")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2026, Month: time.February}, m)

	_, err = ParseMonth("2026-13")
	assert.Error(t, err)

	_, err = ParseMonth("Feb 2026")
	assert.Error(t, err)

	_, err = ParseMonth("")
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}
	assert.Equal(t, "January 2026", m.Label())
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  int
	}{
		{"january", Month{2026, time.January}, 31},
		{"april", Month{2026, time.April}, 30},
		{"february non-leap", Month{2026, time.February}, 28},
		{"february leap", Month{2024, time.February}, 29},
		{"february century non-leap", Month{1900, time.February}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.month.Days())
		})
	}
}

func TestFirstWeekday(t *testing.T) {
	// 2026-02-01 is a Sunday, 2026-06-01 a Monday
	assert.Equal(t, time.Sunday, Month{2026, time.February}.FirstWeekday())
	assert.Equal(t, time.Monday, Month{2026, time.June}.FirstWeekday())
}

func TestDateString(t *testing.T) {
	m := Month{Year: 2026, Month: time.March}
	assert.Equal(t, "2026-03-05", m.DateString(5))
	assert.Equal(t, "2026-03-31", m.DateString(31))
}

func TestContains(t *testing.T) {
	m := Month{Year: 2026, Month: time.March}

	assert.True(t, m.Contains(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPrevNext(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}

	assert.Equal(t, Month{2025, time.December}, m.Prev())
	assert.Equal(t, Month{2026, time.February}, m.Next())

	dec := Month{Year: 2025, Month: time.December}
	assert.Equal(t, Month{2026, time.January}, dec.Next())
}

func TestGrid(t *testing.T) {
	// February 2026: starts on Sunday, exactly four full weeks
	feb := Month{2026, time.February}
	grid := feb.Grid()
	require.Len(t, grid, 4)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, grid[0])
	assert.Equal(t, [7]int{22, 23, 24, 25, 26, 27, 28}, grid[3])

	// June 2026: starts on Monday, first cell blank
	jun := Month{2026, time.June}
	grid = jun.Grid()
	require.Len(t, grid, 5)
	assert.Equal(t, [7]int{0, 1, 2, 3, 4, 5, 6}, grid[0])
	assert.Equal(t, [7]int{28, 29, 30, 0, 0, 0, 0}, grid[4])
}

func TestGrid_CoversEveryDayOnce(t *testing.T) {
	m := Month{2026, time.August}

	seen := make(map[int]int)
	for _, week := range m.Grid() {
		for _, day := range week {
			if day != 0 {
				seen[day]++
			}
		}
	}

	assert.Len(t, seen, m.Days())
	for day, count := range seen {
		assert.Equal(t, 1, count, "day %d", day)
	}
}
