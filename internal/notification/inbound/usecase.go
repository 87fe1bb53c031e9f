package inbound

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/notification/usecase"
)

type uc interface {
	RunDaily(ctx context.Context) (*usecase.DailyRunOutput, error)
	RunMonthly(ctx context.Context) (*usecase.MonthlyRunOutput, error)

	ListHistory(ctx context.Context, in usecase.ListHistoryInput) (*usecase.ListHistoryOutput, error)

	GetTransport(ctx context.Context) (*usecase.TransportOutput, error)
	UpdateTransport(ctx context.Context, in usecase.UpdateTransportInput) error
	TestTransport(ctx context.Context, in usecase.TestTransportInput) (*usecase.SendOutput, error)

	GetSettings(ctx context.Context) (*entity.Config, error)
	UpdateSettings(ctx context.Context, in usecase.UpdateSettingsInput) error

	GetRecipient(ctx context.Context) (*usecase.RecipientOutput, error)
	UpdateRecipient(ctx context.Context, in usecase.UpdateRecipientInput) error

	SendPaymentReminderNow(ctx context.Context) (*usecase.SendOutput, error)
	SendTestMessage(ctx context.Context) (*usecase.SendOutput, error)
	SendSystemNotification(ctx context.Context, in usecase.SendSystemNotificationInput) (*usecase.SendOutput, error)
}
