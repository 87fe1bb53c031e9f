package inbound

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/billing/usecase"
)

type uc interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, in usecase.UpdateSettingsInput) error
	UpsertRecord(ctx context.Context, in usecase.UpsertRecordInput) (*entity.Record, error)
	GetRecord(ctx context.Context, yearMonth string) (*entity.Record, error)
	ListRecords(ctx context.Context) ([]entity.Record, error)
	MarkRecordPaid(ctx context.Context, in usecase.MarkRecordPaidInput) error
}
