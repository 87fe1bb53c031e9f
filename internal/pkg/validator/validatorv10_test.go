package validator

import "testing"

func TestV10ValidatorYearMonth(t *testing.T) {

	type payload struct {
		Period string `validate:"required,yearmonth"`
	}

	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator returned error: %v", err)
	}

	t.Run("AcceptsCalendarMonths", func(t *testing.T) {

		// Arrange
		valid := []string{"2026-01", "2026-09", "2026-12", "1999-07"}

		for _, p := range valid {
			// Act
			err := v.Validate(payload{Period: p})

			// Assert
			if err != nil {
				t.Fatalf("Validate(%q) = %v, want nil", p, err)
			}
		}
	})

	t.Run("RejectsMalformedPeriods", func(t *testing.T) {

		// Arrange
		invalid := []string{"2026-13", "2026-00", "2026-1", "202607", "2026-07-01", "july 2026"}

		for _, p := range invalid {
			// Act
			err := v.Validate(payload{Period: p})

			// Assert
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want error", p)
			}
		}
	})

	t.Run("TranslatesFieldError", func(t *testing.T) {

		// Act
		err := v.Validate(payload{Period: "bogus"})

		// Assert
		verr, ok := err.(V10ValidationError)
		if !ok {
			t.Fatalf("expected V10ValidationError, got %T", err)
		}
		if verr["period"] != "Period must be a month in YYYY-MM format" {
			t.Fatalf("unexpected message %q", verr["period"])
		}
	})
}
