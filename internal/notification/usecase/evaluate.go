package usecase

import (
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/duedate"
)

// overdueWindowDays bounds how long after the due date the overdue reminder
// keeps firing. Past the window the occurrence is considered stale.
const overdueWindowDays = 7

// paymentReminderDue reports whether the payment reminder fires today: the
// rule is enabled and today is exactly the configured lead days before the
// next due date.
func paymentReminderDue(cfg entity.Config, paymentDay int, today time.Time) bool {
	if !cfg.PaymentReminderEnabled {
		return false
	}

	return duedate.DaysUntil(today, paymentDay) == cfg.PaymentReminderLeadDays
}

// overdueReminderDue reports whether the overdue reminder fires today: the
// rule is enabled and the most recent due date is between one and seven days
// in the past.
func overdueReminderDue(cfg entity.Config, paymentDay int, today time.Time) bool {
	if !cfg.OverdueReminderEnabled {
		return false
	}

	since := duedate.DaysSince(today, paymentDay)
	return since >= 1 && since <= overdueWindowDays
}
