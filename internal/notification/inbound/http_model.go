package inbound

import (
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/notification/usecase"
)

type DailyRunResponse struct {
	Skipped          bool     `json:"skipped"`
	Reason           string   `json:"reason,omitempty"`
	PaymentReminders int      `json:"payment_reminders"`
	OverdueReminders int      `json:"overdue_reminders"`
	Errors           []string `json:"errors"`
}

type MonthlyRunResponse struct {
	Skipped      bool     `json:"skipped"`
	Reason       string   `json:"reason,omitempty"`
	YearMonth    string   `json:"year_month"`
	MonthlyBills int      `json:"monthly_bills"`
	Errors       []string `json:"errors"`
}

type DeliveryRecordResponse struct {
	ID          int64     `json:"id"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Kind        string    `json:"kind"`
	Outcome     string    `json:"outcome"`
	ErrorDetail string    `json:"error_detail,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}

type HistoryResponse struct {
	Page       int32                    `json:"page"`
	PageSize   int32                    `json:"page_size"`
	Total      int64                    `json:"total"`
	TotalPages int64                    `json:"total_pages"`
	Records    []DeliveryRecordResponse `json:"records"`
}

type TransportRequest struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	UseTLS        bool   `json:"use_tls"`
	Username      string `json:"username"`
	Secret        string `json:"secret"`
	SenderName    string `json:"sender_name"`
	SenderAddress string `json:"sender_address"`
}

// TransportResponse deliberately has no secret field.
type TransportResponse struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	UseTLS        bool   `json:"use_tls"`
	Username      string `json:"username"`
	SenderName    string `json:"sender_name"`
	SenderAddress string `json:"sender_address"`
}

type NotificationSettingsRequest struct {
	PaymentReminderEnabled    bool `json:"payment_reminder_enabled"`
	PaymentReminderLeadDays   int  `json:"payment_reminder_lead_days"`
	OverdueReminderEnabled    bool `json:"overdue_reminder_enabled"`
	MonthlyBillEnabled        bool `json:"monthly_bill_enabled"`
	SystemNotificationEnabled bool `json:"system_notification_enabled"`
}

type NotificationSettingsResponse struct {
	PaymentReminderEnabled    bool `json:"payment_reminder_enabled"`
	PaymentReminderLeadDays   int  `json:"payment_reminder_lead_days"`
	OverdueReminderEnabled    bool `json:"overdue_reminder_enabled"`
	MonthlyBillEnabled        bool `json:"monthly_bill_enabled"`
	SystemNotificationEnabled bool `json:"system_notification_enabled"`
}

type RecipientRequest struct {
	Address string `json:"address"`
}

type RecipientResponse struct {
	Address string `json:"address"`
}

type SystemNotificationRequest struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

type SendResponse struct {
	Message string `json:"message"`
}

func deliveryRecordResponseFrom(rec entity.DeliveryRecord) DeliveryRecordResponse {
	return DeliveryRecordResponse{
		ID:          rec.ID,
		Recipient:   rec.Recipient,
		Subject:     rec.Subject,
		Kind:        rec.Kind.String(),
		Outcome:     rec.Outcome.String(),
		ErrorDetail: rec.ErrorDetail,
		AttemptedAt: rec.AttemptedAt,
	}
}

func transportRequestToTest(req TransportRequest) usecase.TestTransportInput {
	return usecase.TestTransportInput{
		Host:          req.Host,
		Port:          req.Port,
		UseTLS:        req.UseTLS,
		Username:      req.Username,
		Secret:        req.Secret,
		SenderName:    req.SenderName,
		SenderAddress: req.SenderAddress,
	}
}
