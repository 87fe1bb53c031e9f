package entity

import (
	"time"
)

// DeliveryRecord is one row of the append-only delivery ledger. Records are
// created Pending before the transport is contacted and updated in place to
// a terminal outcome; they are never deleted.
type DeliveryRecord struct {
	ID          int64
	Recipient   string
	Subject     string
	Kind        Kind
	Outcome     Outcome
	ErrorDetail string
	AttemptedAt time.Time
}

type CreateDeliveryRecord struct {
	ID        int64
	Recipient string
	Subject   string
	Kind      Kind
}

type UpdateDeliveryRecord struct {
	ID          int64
	Outcome     Outcome
	ErrorDetail string
}

// TransportConfig holds the SMTP connection settings, stored as a singleton
// row and absent until configured.
type TransportConfig struct {
	Host          string
	Port          int
	UseTLS        bool
	Username      string
	Secret        string
	SenderName    string
	SenderAddress string
}

// Configured reports whether the transport has the minimum fields needed to
// attempt a delivery.
func (c TransportConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.SenderAddress != ""
}

// Config holds the notification rule toggles, stored as a singleton row.
type Config struct {
	PaymentReminderEnabled    bool
	PaymentReminderLeadDays   int
	OverdueReminderEnabled    bool
	MonthlyBillEnabled        bool
	SystemNotificationEnabled bool
}

// DefaultConfig is used when the singleton row has not been written yet.
func DefaultConfig() Config {
	return Config{
		PaymentReminderEnabled:    true,
		PaymentReminderLeadDays:   3,
		OverdueReminderEnabled:    true,
		MonthlyBillEnabled:        true,
		SystemNotificationEnabled: true,
	}
}
