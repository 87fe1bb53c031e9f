// Package billing tracks the rent settings and the monthly utility
// billing records that the notification module reports on.
package billing

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/renttrack/internal/billing/inbound"
	"github.com/shandysiswandi/renttrack/internal/billing/outbound/db"
	"github.com/shandysiswandi/renttrack/internal/billing/usecase"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New wires the billing module and returns its usecase so other
// modules can read billing data without going through HTTP.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	dbBilling := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbBilling,
		UID:        dep.UID,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
