package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

// GetSettings returns the rule toggles, defaulted until first write.
func (s *Usecase) GetSettings(ctx context.Context) (*entity.Config, error) {
	ctx, span := s.startSpan(ctx, "GetSettings")
	defer span.End()

	cfg, err := s.notificationConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

type UpdateSettingsInput struct {
	PaymentReminderEnabled    bool
	PaymentReminderLeadDays   int `validate:"required,min=1,max=30"`
	OverdueReminderEnabled    bool
	MonthlyBillEnabled        bool
	SystemNotificationEnabled bool
}

func (s *Usecase) UpdateSettings(ctx context.Context, in UpdateSettingsInput) error {
	ctx, span := s.startSpan(ctx, "UpdateSettings")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpsertConfig(ctx, entity.Config{
		PaymentReminderEnabled:    in.PaymentReminderEnabled,
		PaymentReminderLeadDays:   in.PaymentReminderLeadDays,
		OverdueReminderEnabled:    in.OverdueReminderEnabled,
		MonthlyBillEnabled:        in.MonthlyBillEnabled,
		SystemNotificationEnabled: in.SystemNotificationEnabled,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert notification config", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
