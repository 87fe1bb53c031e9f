package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type UpdateSettingsInput struct {
	MonthlyRent     float64 `validate:"required,gt=0"`
	PaymentDay      int     `validate:"required,min=1,max=31"`
	ElectricityRate float64 `validate:"min=0"`
	ColdWaterRate   float64 `validate:"min=0"`
	HotWaterRate    float64 `validate:"min=0"`
}

// GetSettings returns the billing settings singleton.
func (s *Usecase) GetSettings(ctx context.Context) (*entity.Settings, error) {
	ctx, span := s.startSpan(ctx, "GetSettings")
	defer span.End()

	settings, err := s.repoDB.GetSettings(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("billing settings are not configured", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get billing settings", "error", err)
		return nil, goerror.NewServer(err)
	}

	return settings, nil
}

// UpdateSettings validates and writes the billing settings singleton.
func (s *Usecase) UpdateSettings(ctx context.Context, in UpdateSettingsInput) error {
	ctx, span := s.startSpan(ctx, "UpdateSettings")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.UpsertSettings(ctx, entity.Settings{
		MonthlyRent:     in.MonthlyRent,
		PaymentDay:      in.PaymentDay,
		ElectricityRate: in.ElectricityRate,
		ColdWaterRate:   in.ColdWaterRate,
		HotWaterRate:    in.HotWaterRate,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert billing settings", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
