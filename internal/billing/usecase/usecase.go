package usecase

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpsertSettings(ctx context.Context, settings entity.Settings) error

	GetRecordByYearMonth(ctx context.Context, yearMonth string) (*entity.Record, error)
	ListRecords(ctx context.Context) ([]entity.Record, error)
	UpsertRecord(ctx context.Context, data entity.UpsertRecord) error
	MarkRecordPaid(ctx context.Context, yearMonth string, isPaid bool) error
}

type Usecase struct {
	repoDB    repoDB
	uid       uid.NumberID
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	UID        uid.NumberID
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		uid:       dep.UID,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("billing.usecase").Start(ctx, name)
}
