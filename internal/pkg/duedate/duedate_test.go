package duedate

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClamp(t *testing.T) {

	t.Run("WithinMonth", func(t *testing.T) {

		// Act
		got := Clamp(2026, time.January, 15)

		// Assert
		if got != 15 {
			t.Fatalf("expected 15, got %d", got)
		}
	})

	t.Run("BeyondFebruary", func(t *testing.T) {

		// Act
		got := Clamp(2026, time.February, 31)

		// Assert
		if got != 28 {
			t.Fatalf("expected 28, got %d", got)
		}
	})

	t.Run("BeyondLeapFebruary", func(t *testing.T) {

		// Act
		got := Clamp(2028, time.February, 31)

		// Assert
		if got != 29 {
			t.Fatalf("expected 29, got %d", got)
		}
	})
}

func TestDaysUntil(t *testing.T) {

	t.Run("BeforeDueDate", func(t *testing.T) {

		// Arrange
		ref := date(2026, time.March, 2)

		// Act
		got := DaysUntil(ref, 5)

		// Assert
		if got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("OnDueDate", func(t *testing.T) {

		// Arrange
		ref := date(2026, time.March, 5)

		// Act
		got := DaysUntil(ref, 5)

		// Assert
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("AfterDueDateRollsToNextMonth", func(t *testing.T) {

		// Arrange: March 5 has passed, next due date is April 5.
		ref := date(2026, time.March, 8)

		// Act
		got := DaysUntil(ref, 5)

		// Assert
		if got != 28 {
			t.Fatalf("expected 28, got %d", got)
		}
	})

	t.Run("RollsAcrossYearBoundary", func(t *testing.T) {

		// Arrange: December 15 has passed, next due date is January 15.
		ref := date(2025, time.December, 20)

		// Act
		got := DaysUntil(ref, 15)

		// Assert
		if got != 26 {
			t.Fatalf("expected 26, got %d", got)
		}
	})

	t.Run("ClampedShortMonth", func(t *testing.T) {

		// Arrange: due day 31 in April resolves to April 30.
		ref := date(2026, time.April, 28)

		// Act
		got := DaysUntil(ref, 31)

		// Assert
		if got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})
}

func TestDaysSince(t *testing.T) {

	t.Run("AfterThisMonthsDueDate", func(t *testing.T) {

		// Arrange
		ref := date(2026, time.March, 8)

		// Act
		got := DaysSince(ref, 5)

		// Assert
		if got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("BeforeThisMonthsDueDate", func(t *testing.T) {

		// Arrange: last due date is February 25, March has not reached the 25th.
		ref := date(2026, time.March, 2)

		// Act
		got := DaysSince(ref, 25)

		// Assert
		if got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})

	t.Run("PreviousMonthClamped", func(t *testing.T) {

		// Arrange: due day 31, last due date is February 28.
		ref := date(2026, time.March, 3)

		// Act
		got := DaysSince(ref, 31)

		// Assert
		if got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("OnDueDate", func(t *testing.T) {

		// Arrange
		ref := date(2026, time.March, 5)

		// Act
		got := DaysSince(ref, 5)

		// Assert
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestLastDueDateFrom(t *testing.T) {

	t.Run("SameMonth", func(t *testing.T) {

		// Act
		got := LastDueDateFrom(date(2026, time.March, 10), 5)

		// Assert
		if !got.Equal(date(2026, time.March, 5)) {
			t.Fatalf("expected 2026-03-05, got %v", got)
		}
	})

	t.Run("PreviousMonth", func(t *testing.T) {

		// Act
		got := LastDueDateFrom(date(2026, time.March, 2), 5)

		// Assert
		if !got.Equal(date(2026, time.February, 5)) {
			t.Fatalf("expected 2026-02-05, got %v", got)
		}
	})

	t.Run("AcrossYearBoundary", func(t *testing.T) {

		// Act
		got := LastDueDateFrom(date(2026, time.January, 3), 15)

		// Assert
		if !got.Equal(date(2025, time.December, 15)) {
			t.Fatalf("expected 2025-12-15, got %v", got)
		}
	})
}

func TestPreviousYearMonth(t *testing.T) {

	t.Run("MidYear", func(t *testing.T) {

		// Act
		got := PreviousYearMonth(date(2026, time.August, 28))

		// Assert
		if got != "2026-07" {
			t.Fatalf("expected 2026-07, got %s", got)
		}
	})

	t.Run("January", func(t *testing.T) {

		// Act
		got := PreviousYearMonth(date(2026, time.January, 1))

		// Assert
		if got != "2025-12" {
			t.Fatalf("expected 2025-12, got %s", got)
		}
	})
}
