package usecase

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/duedate"
)

type MonthlyRunOutput struct {
	Skipped      bool
	Reason       string
	YearMonth    string
	MonthlyBills int
	Errors       []string
}

// RunMonthly delivers the bill for the previous calendar month. An absent
// billing record is a normal skip, not an error: the bill simply has nothing
// to report yet.
func (s *Usecase) RunMonthly(ctx context.Context) (*MonthlyRunOutput, error) {
	ctx, span := s.startSpan(ctx, "RunMonthly")
	defer span.End()

	today := s.clock.Now()
	yearMonth := duedate.PreviousYearMonth(today)
	out := &MonthlyRunOutput{YearMonth: yearMonth, Errors: []string{}}

	cfg, settings, target, recipient, skip, err := s.tickPreconditions(ctx)
	if err != nil {
		return nil, err
	}
	if skip != "" {
		out.Skipped = true
		out.Reason = skip
		return out, nil
	}

	if !cfg.MonthlyBillEnabled {
		out.Skipped = true
		out.Reason = "monthly bill notifications are disabled"
		return out, nil
	}

	rec, err := s.billing.GetRecord(ctx, yearMonth)
	if isNotFound(err) {
		out.Skipped = true
		out.Reason = "no billing record for " + yearMonth
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	key := tickKey(entity.KindMonthlyBill, yearMonth)
	s.guardedTick(ctx, key, func(ctx context.Context) error {
		subject, body, err := s.renderMonthlyBill(*settings, *rec)
		if err != nil {
			return err
		}
		return s.deliver(ctx, deliverInput{
			Transport: *target,
			Recipient: recipient,
			Kind:      entity.KindMonthlyBill,
			Subject:   subject,
			HTMLBody:  body,
		})
	}, func(err error) {
		if err != nil {
			out.Errors = append(out.Errors, "monthly_bill: "+err.Error())
			return
		}
		out.MonthlyBills++
	})

	return out, nil
}
