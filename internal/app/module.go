package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/renttrack/internal/billing"
	"github.com/shandysiswandi/renttrack/internal/notification"
)

func (a *App) initModules() {
	billingUC, err := billing.New(billing.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Instrument: a.ins,
		UID:        a.uid,
		Validator:  a.validator,
	})
	if err != nil {
		slog.Error("failed to init module billing", "error", err)
		os.Exit(1)
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(a.ctx, notification.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Goroutine:   a.goroutine,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Billing:     billingUC,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
