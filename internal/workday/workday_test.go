package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDateSkipsWeekend(t *testing.T) {
	friday := date(2024, time.January, 5)
	got := DueDate(friday, 1)
	assert.Equal(t, date(2024, time.January, 8), got, "one working day after Friday is Monday")
}

func TestDueDateFullWorkWeek(t *testing.T) {
	monday := date(2024, time.January, 1)
	got := DueDate(monday, 5)
	assert.Equal(t, date(2024, time.January, 8), got)
}

func TestDueDateZeroDays(t *testing.T) {
	for _, ref := range []time.Time{
		date(2024, time.January, 1),  // Monday
		date(2024, time.January, 6),  // Saturday
		date(2024, time.January, 7),  // Sunday
		time.Date(2024, time.March, 15, 17, 42, 3, 0, time.UTC),
	} {
		got := DueDate(ref, 0)
		assert.Equal(t, ref.Year(), got.Year())
		assert.Equal(t, ref.Month(), got.Month())
		assert.Equal(t, ref.Day(), got.Day())
		assert.Equal(t, 0, got.Hour(), "result is date-only")
	}
}

func TestDueDateReferenceDayNeverCounts(t *testing.T) {
	// Counting starts strictly after the reference date, so starting on a
	// weekday still lands on the following weekday for 1 working day.
	monday := date(2024, time.January, 1)
	assert.Equal(t, date(2024, time.January, 2), DueDate(monday, 1))
}

func TestDueDateWeekendReference(t *testing.T) {
	saturday := date(2024, time.January, 6)
	assert.Equal(t, date(2024, time.January, 8), DueDate(saturday, 1))

	sunday := date(2024, time.January, 7)
	assert.Equal(t, date(2024, time.January, 12), DueDate(sunday, 5))
}

func TestDueDateNeverLandsOnWeekend(t *testing.T) {
	start := date(2023, time.December, 25)
	for offset := 0; offset < 21; offset++ {
		ref := start.AddDate(0, 0, offset)
		for days := 1; days <= 15; days++ {
			got := DueDate(ref, days)
			wd := got.Weekday()
			require.NotEqual(t, time.Saturday, wd, "ref=%s days=%d", ref, days)
			require.NotEqual(t, time.Sunday, wd, "ref=%s days=%d", ref, days)
		}
	}
}

func TestDueDateCrossesMonthBoundary(t *testing.T) {
	// Wed 2024-01-31 + 2 working days = Fri 2024-02-02.
	assert.Equal(t, date(2024, time.February, 2), DueDate(date(2024, time.January, 31), 2))
}
