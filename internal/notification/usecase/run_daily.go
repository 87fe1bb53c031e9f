package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	billingentity "github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
	"github.com/shandysiswandi/renttrack/internal/pkg/idempotency"
)

const (
	tickLockDuration = 5 * time.Minute
	tickStateTTL     = 48 * time.Hour
)

type DailyRunOutput struct {
	Skipped          bool
	Reason           string
	PaymentReminders int
	OverdueReminders int
	Errors           []string
}

// RunDaily evaluates and delivers the date-driven reminders for today. The
// trigger is expected to be invoked once per day by an external scheduler;
// re-invocations are absorbed by per-kind idempotency keys. Missing
// configuration yields a skipped payload, never an error.
func (s *Usecase) RunDaily(ctx context.Context) (*DailyRunOutput, error) {
	ctx, span := s.startSpan(ctx, "RunDaily")
	defer span.End()

	today := s.clock.Now()
	out := &DailyRunOutput{Errors: []string{}}

	cfg, settings, target, recipient, skip, err := s.tickPreconditions(ctx)
	if err != nil {
		return nil, err
	}
	if skip != "" {
		out.Skipped = true
		out.Reason = skip
		return out, nil
	}

	if paymentReminderDue(cfg, settings.PaymentDay, today) {
		key := tickKey(entity.KindPaymentReminder, today.Format("2006-01-02"))
		s.guardedTick(ctx, key, func(ctx context.Context) error {
			subject, body, err := s.renderPaymentReminder(*settings, today)
			if err != nil {
				return err
			}
			return s.deliver(ctx, deliverInput{
				Transport: *target,
				Recipient: recipient,
				Kind:      entity.KindPaymentReminder,
				Subject:   subject,
				HTMLBody:  body,
			})
		}, func(err error) {
			if err != nil {
				out.Errors = append(out.Errors, "payment_reminder: "+err.Error())
				return
			}
			out.PaymentReminders++
		})
	}

	if overdueReminderDue(cfg, settings.PaymentDay, today) {
		key := tickKey(entity.KindOverdueReminder, today.Format("2006-01-02"))
		s.guardedTick(ctx, key, func(ctx context.Context) error {
			subject, body, err := s.renderOverdueReminder(*settings, today)
			if err != nil {
				return err
			}
			return s.deliver(ctx, deliverInput{
				Transport: *target,
				Recipient: recipient,
				Kind:      entity.KindOverdueReminder,
				Subject:   subject,
				HTMLBody:  body,
			})
		}, func(err error) {
			if err != nil {
				out.Errors = append(out.Errors, "overdue_reminder: "+err.Error())
				return
			}
			out.OverdueReminders++
		})
	}

	return out, nil
}

// tickPreconditions loads everything both ticks need. A non-empty skip reason
// means the tick should report itself as skipped with zero actions.
func (s *Usecase) tickPreconditions(ctx context.Context) (
	entity.Config, *billingentity.Settings, *entity.TransportConfig, string, string, error,
) {
	cfg, err := s.notificationConfig(ctx)
	if err != nil {
		return entity.Config{}, nil, nil, "", "", err
	}

	settings, err := s.billing.GetSettings(ctx)
	if isNotFound(err) {
		return cfg, nil, nil, "", "billing settings are not configured", nil
	}
	if err != nil {
		return entity.Config{}, nil, nil, "", "", err
	}

	target, recipient, err := s.deliveryTarget(ctx)
	if err != nil {
		var ge *goerror.Error
		if errors.As(err, &ge) && ge.Type() == goerror.TypeBusiness {
			return cfg, settings, nil, "", ge.Msg(), nil
		}
		return entity.Config{}, nil, nil, "", "", err
	}

	if err := s.transport.Verify(ctx, *target); err != nil {
		return cfg, settings, nil, "", "email transport verification failed: " + categorizeSendError(err), nil
	}

	return cfg, settings, target, recipient, "", nil
}

func tickKey(kind entity.Kind, cycle string) string {
	return "notification:" + kind.String() + ":" + cycle
}

// guardedTick runs fn under a per-(kind, cycle) idempotency key and reports
// the result through done. A key already claimed by an earlier invocation is
// a benign no-op: done is never called, so counters stay at zero.
func (s *Usecase) guardedTick(ctx context.Context, key string, fn func(context.Context) error, done func(error)) {
	var fnErr error
	called := false

	err := s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		called = true
		fnErr = fn(ctx)
		return fnErr
	}, idempotency.WithLockDuration(tickLockDuration), idempotency.WithStateTTL(tickStateTTL))

	switch {
	case called:
		done(fnErr)
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted),
		errors.Is(err, idempotency.ErrAlreadyFailed):
		slog.WarnContext(ctx, "notification tick already handled", "key", key)
	case err != nil:
		slog.ErrorContext(ctx, "failed to guard notification tick", "key", key, "error", err)
		done(goerror.NewServer(err))
	}
}
