// Package duedate provides calendar arithmetic for monthly payment due
// dates. All functions operate on calendar days only; the time-of-day and
// location of the inputs are discarded before any comparison.
package duedate

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Clamp returns day limited to the last day of the given month, so a
// configured day of 31 resolves to 28 or 29 in February, 30 in April, etc.
func Clamp(year int, month time.Month, day int) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}

	return day
}

// DueDateFrom returns the next due date on or after ref. The candidate is
// the due day in ref's month, clamped; when that date has already passed the
// next month's due date is returned, clamped independently to that month's
// length.
func DueDateFrom(ref time.Time, day int) time.Time {
	y, m, _ := ref.Date()

	due := time.Date(y, m, Clamp(y, m, day), 0, 0, 0, 0, time.UTC)
	if due.Before(truncate(ref)) {
		next := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
		ny, nm, _ := next.Date()
		due = time.Date(ny, nm, Clamp(ny, nm, day), 0, 0, 0, 0, time.UTC)
	}

	return due
}

// LastDueDateFrom returns the most recent due date on or before ref. When
// ref falls before this month's due date the previous month's due date is
// returned, clamped independently to that month's length.
func LastDueDateFrom(ref time.Time, day int) time.Time {
	y, m, _ := ref.Date()

	due := time.Date(y, m, Clamp(y, m, day), 0, 0, 0, 0, time.UTC)
	if !truncate(ref).Before(due) {
		return due
	}

	prev := time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC)
	py, pm, _ := prev.Date()

	return time.Date(py, pm, Clamp(py, pm, day), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from ref to the next due
// date. The result is zero on the due date itself and never negative.
func DaysUntil(ref time.Time, day int) int {
	return diffDays(truncate(ref), DueDateFrom(ref, day))
}

// DaysSince returns the number of calendar days elapsed since the most
// recent due date on or before ref. The result is zero on the due date.
func DaysSince(ref time.Time, day int) int {
	return diffDays(LastDueDateFrom(ref, day), truncate(ref))
}

// PreviousYearMonth returns the month before ref formatted as "YYYY-MM".
func PreviousYearMonth(ref time.Time) string {
	y, m, _ := ref.Date()
	prev := time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC)

	return fmt.Sprintf("%04d-%02d", prev.Year(), int(prev.Month()))
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func diffDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
