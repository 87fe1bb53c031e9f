// Package notification evaluates the reminder rules, renders the emails, and
// delivers them over SMTP with an append-only outcome ledger.
package notification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	billingusecase "github.com/shandysiswandi/renttrack/internal/billing/usecase"
	"github.com/shandysiswandi/renttrack/internal/notification/inbound"
	"github.com/shandysiswandi/renttrack/internal/notification/outbound/db"
	"github.com/shandysiswandi/renttrack/internal/notification/outbound/email"
	"github.com/shandysiswandi/renttrack/internal/notification/usecase"
	"github.com/shandysiswandi/renttrack/internal/pkg/clock"
	"github.com/shandysiswandi/renttrack/internal/pkg/config"
	"github.com/shandysiswandi/renttrack/internal/pkg/goroutine"
	"github.com/shandysiswandi/renttrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/messaging"
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Billing     *billingusecase.Usecase    `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbNotification := db.NewDB(dep.DBConn, dep.Instrument)
	emailTransport := email.New(dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      dbNotification,
		Transport:   emailTransport,
		Billing:     dep.Billing,
		Idempotency: dep.Idempotency,
		Config:      dep.Config,
		UID:         dep.UID,
		Clock:       dep.Clock,
		Validator:   dep.Validator,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetString("app.cron_secret"))
	inbound.RegisterMQConsumer(ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
