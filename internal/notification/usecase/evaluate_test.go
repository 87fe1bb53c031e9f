package usecase

import (
	"testing"
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
)

func TestPaymentReminderDue(t *testing.T) {

	t.Run("FiresExactlyOnLeadDay", func(t *testing.T) {

		// Arrange
		cfg := entity.Config{PaymentReminderEnabled: true, PaymentReminderLeadDays: 3}
		paymentDay := 10

		// Act & Assert
		for day := 1; day <= 10; day++ {
			today := time.Date(2026, time.March, day, 9, 0, 0, 0, time.UTC)
			got := paymentReminderDue(cfg, paymentDay, today)
			want := day == 7
			if got != want {
				t.Fatalf("day %d: paymentReminderDue = %v, want %v", day, got, want)
			}
		}
	})

	t.Run("DisabledNeverFires", func(t *testing.T) {

		// Arrange
		cfg := entity.Config{PaymentReminderEnabled: false, PaymentReminderLeadDays: 3}
		today := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)

		// Act
		got := paymentReminderDue(cfg, 10, today)

		// Assert
		if got {
			t.Fatalf("expected disabled rule not to fire")
		}
	})
}

func TestOverdueReminderDue(t *testing.T) {

	t.Run("FiresWithinSevenDayWindow", func(t *testing.T) {

		// Arrange
		cfg := entity.Config{OverdueReminderEnabled: true}
		paymentDay := 10

		// Act & Assert
		for day := 10; day <= 20; day++ {
			today := time.Date(2026, time.March, day, 9, 0, 0, 0, time.UTC)
			got := overdueReminderDue(cfg, paymentDay, today)
			want := day >= 11 && day <= 17
			if got != want {
				t.Fatalf("day %d: overdueReminderDue = %v, want %v", day, got, want)
			}
		}
	})

	t.Run("DisabledNeverFires", func(t *testing.T) {

		// Arrange
		cfg := entity.Config{OverdueReminderEnabled: false}
		today := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

		// Act
		got := overdueReminderDue(cfg, 10, today)

		// Assert
		if got {
			t.Fatalf("expected disabled rule not to fire")
		}
	})
}
