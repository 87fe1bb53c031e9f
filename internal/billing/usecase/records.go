package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type UpsertRecordInput struct {
	YearMonth        string  `validate:"required,yearmonth"`
	ElectricityUsage float64 `validate:"min=0"`
	ColdWaterUsage   float64 `validate:"min=0"`
	HotWaterUsage    float64 `validate:"min=0"`
}

type MarkRecordPaidInput struct {
	YearMonth string `validate:"required,yearmonth"`
	IsPaid    bool
}

// UpsertRecord validates usage input, derives costs from the current billing
// settings, and writes the record for the month. Settings must exist first,
// otherwise there are no rates to price the usage with.
func (s *Usecase) UpsertRecord(ctx context.Context, in UpsertRecordInput) (*entity.Record, error) {
	ctx, span := s.startSpan(ctx, "UpsertRecord")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	settings, err := s.repoDB.GetSettings(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("billing settings are not configured", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get billing settings", "error", err)
		return nil, goerror.NewServer(err)
	}

	costs := calculateCosts(usageInput{
		ElectricityUsage: in.ElectricityUsage,
		ColdWaterUsage:   in.ColdWaterUsage,
		HotWaterUsage:    in.HotWaterUsage,
	}, *settings)

	if err := s.repoDB.UpsertRecord(ctx, entity.UpsertRecord{
		ID:               s.uid.Generate(),
		YearMonth:        in.YearMonth,
		ElectricityUsage: in.ElectricityUsage,
		ColdWaterUsage:   in.ColdWaterUsage,
		HotWaterUsage:    in.HotWaterUsage,
		ElectricityCost:  costs.ElectricityCost,
		ColdWaterCost:    costs.ColdWaterCost,
		HotWaterCost:     costs.HotWaterCost,
		UtilitiesCost:    costs.UtilitiesCost,
		TotalAmount:      costs.TotalAmount,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert billing record", "year_month", in.YearMonth, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.GetRecord(ctx, in.YearMonth)
}

// GetRecord returns the billing record for the given "YYYY-MM" month.
func (s *Usecase) GetRecord(ctx context.Context, yearMonth string) (*entity.Record, error) {
	ctx, span := s.startSpan(ctx, "GetRecord")
	defer span.End()

	rec, err := s.repoDB.GetRecordByYearMonth(ctx, yearMonth)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("billing record not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get billing record", "year_month", yearMonth, "error", err)
		return nil, goerror.NewServer(err)
	}

	return rec, nil
}

// ListRecords returns all billing records, newest month first.
func (s *Usecase) ListRecords(ctx context.Context) ([]entity.Record, error) {
	ctx, span := s.startSpan(ctx, "ListRecords")
	defer span.End()

	items, err := s.repoDB.ListRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list billing records", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

// MarkRecordPaid flips the paid flag on an existing record.
func (s *Usecase) MarkRecordPaid(ctx context.Context, in MarkRecordPaidInput) error {
	ctx, span := s.startSpan(ctx, "MarkRecordPaid")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.MarkRecordPaid(ctx, in.YearMonth, in.IsPaid)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("billing record not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark billing record paid", "year_month", in.YearMonth, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
