// Package workday computes SLA due dates in working days. A working day is
// any calendar day that is not Saturday or Sunday; public holidays are not
// excluded.
package workday

import "time"

// DueDate returns the calendar date workingDays working days after
// reference. Counting starts strictly after the reference date: the
// reference day itself never counts, even when it is a weekday. With
// workingDays <= 0 the reference's own calendar date is returned.
func DueDate(reference time.Time, workingDays int) time.Time {
	date := truncateToDate(reference)
	added := 0
	for added < workingDays {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return date
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
