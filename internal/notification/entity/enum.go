package entity

import (
	"strings"
)

// Kind identifies the category of a notification email.
type Kind int16

const (
	KindUnknown            Kind = 0
	KindPaymentReminder    Kind = 1
	KindOverdueReminder    Kind = 2
	KindMonthlyBill        Kind = 3
	KindSystemNotification Kind = 4
	KindTestMessage        Kind = 5
)

func KindFromString(raw string) Kind {
	switch strings.TrimSpace(raw) {
	case "payment_reminder":
		return KindPaymentReminder
	case "overdue_reminder":
		return KindOverdueReminder
	case "monthly_bill":
		return KindMonthlyBill
	case "system_notification":
		return KindSystemNotification
	case "test_message":
		return KindTestMessage
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindPaymentReminder:
		return "payment_reminder"
	case KindOverdueReminder:
		return "overdue_reminder"
	case KindMonthlyBill:
		return "monthly_bill"
	case KindSystemNotification:
		return "system_notification"
	case KindTestMessage:
		return "test_message"
	default:
		return "unknown"
	}
}

// Outcome is the delivery state of a record. A record starts Pending and
// moves to exactly one terminal state per attempt. OutcomeRetrying exists in
// the state set but is never produced by the current delivery path.
type Outcome int16

const (
	OutcomeUnknown  Outcome = 0
	OutcomePending  Outcome = 1
	OutcomeSent     Outcome = 2
	OutcomeFailed   Outcome = 3
	OutcomeRetrying Outcome = 4
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	case OutcomeRetrying:
		return "retrying"
	default:
		return "unknown"
	}
}
