package usecase

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"time"

	billingentity "github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/clock"
	"github.com/shandysiswandi/renttrack/internal/pkg/config"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
	"github.com/shandysiswandi/renttrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/mail"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetTransportConfig(ctx context.Context) (*entity.TransportConfig, error)
	UpsertTransportConfig(ctx context.Context, cfg entity.TransportConfig) error
	GetConfig(ctx context.Context) (*entity.Config, error)
	UpsertConfig(ctx context.Context, cfg entity.Config) error
	GetRecipient(ctx context.Context) (string, error)
	UpsertRecipient(ctx context.Context, address string) error

	CreateDeliveryRecord(ctx context.Context, data entity.CreateDeliveryRecord, attemptedAt time.Time) error
	UpdateDeliveryRecordOutcome(ctx context.Context, data entity.UpdateDeliveryRecord) error
	ListDeliveryRecords(ctx context.Context, limit, offset int32) ([]entity.DeliveryRecord, error)
	CountDeliveryRecords(ctx context.Context) (int64, error)
}

type transport interface {
	Send(ctx context.Context, cfg entity.TransportConfig, msg mail.Message) error
	Verify(ctx context.Context, cfg entity.TransportConfig) error
	Invalidate()
}

// billingReader is the read surface the billing module exposes for rule
// evaluation and bill rendering.
type billingReader interface {
	GetSettings(ctx context.Context) (*billingentity.Settings, error)
	GetRecord(ctx context.Context, yearMonth string) (*billingentity.Record, error)
}

type Usecase struct {
	repoDB    repoDB
	transport transport
	billing   billingReader
	idemp     idempotency.Idempotency
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Transport   transport
	Billing     billingReader
	Idempotency idempotency.Idempotency
	Config      config.Config
	UID         uid.NumberID
	Clock       clock.Clocker
	Validator   validator.Validator
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		transport: dep.Transport,
		billing:   dep.Billing,
		idemp:     dep.Idempotency,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) renderTemplate(name, tpl string, data map[string]any) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// notificationConfig loads the rule toggles, falling back to defaults until
// the singleton row has been written.
func (s *Usecase) notificationConfig(ctx context.Context) (entity.Config, error) {
	cfg, err := s.repoDB.GetConfig(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return entity.DefaultConfig(), nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get notification config", "error", err)
		return entity.Config{}, goerror.NewServer(err)
	}

	return *cfg, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, goerror.ErrNotFound) {
		return true
	}

	var ge *goerror.Error
	return errors.As(err, &ge) && ge.Code() == goerror.CodeNotFound
}
