package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
)

func TestRunDaily(t *testing.T) {

	t.Run("DeliversPaymentReminderOnLeadDay", func(t *testing.T) {

		// Arrange: payment day 10, lead 3 days, today the 7th.
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if out.Skipped {
			t.Fatalf("expected tick not skipped, reason %q", out.Reason)
		}
		if out.PaymentReminders != 1 || out.OverdueReminders != 0 || len(out.Errors) != 0 {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 1 {
			t.Fatalf("expected 1 delivery record, got %d", len(fx.repo.records))
		}
		rec := fx.repo.records[0]
		if rec.Kind != entity.KindPaymentReminder || rec.Outcome != entity.OutcomeSent {
			t.Fatalf("unexpected record: kind %s outcome %s", rec.Kind, rec.Outcome)
		}
		if rec.Recipient != "tenant@example.com" {
			t.Fatalf("unexpected recipient %q", rec.Recipient)
		}
		if len(fx.transport.sent) != 1 {
			t.Fatalf("expected 1 sent message, got %d", len(fx.transport.sent))
		}
		if !strings.Contains(fx.transport.sent[0].Subject, "10 March 2026") {
			t.Fatalf("subject should carry the due date, got %q", fx.transport.sent[0].Subject)
		}
	})

	t.Run("QuietDayDoesNothing", func(t *testing.T) {

		// Arrange: the 2nd is neither lead day nor inside the overdue window.
		today := time.Date(2026, time.March, 2, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if out.Skipped || out.PaymentReminders != 0 || out.OverdueReminders != 0 {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("DeliversOverdueReminderInsideWindow", func(t *testing.T) {

		// Arrange: three days past the due date.
		today := time.Date(2026, time.March, 13, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if out.OverdueReminders != 1 || out.PaymentReminders != 0 {
			t.Fatalf("unexpected output: %+v", out)
		}
		if fx.repo.records[0].Kind != entity.KindOverdueReminder {
			t.Fatalf("unexpected kind %s", fx.repo.records[0].Kind)
		}
	})

	t.Run("SkipsWithoutTransportAndWritesNoRecord", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		fx.repo.transportCfg = nil

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if !out.Skipped || out.Reason != "email transport is not configured" {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("SkipsWithoutBillingSettings", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		fx.billing.settings = nil

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if !out.Skipped || out.Reason != "billing settings are not configured" {
			t.Fatalf("unexpected output: %+v", out)
		}
	})

	t.Run("SkipsWhenVerificationFails", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		fx.transport.verifyErr = errors.New("dial tcp: connection refused")

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if !out.Skipped || !strings.HasPrefix(out.Reason, "email transport verification failed") {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("SecondInvocationIsAbsorbedByIdempotencyKey", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)

		// Act
		first, err := fx.uc.RunDaily(context.Background())
		if err != nil {
			t.Fatalf("first RunDaily returned error: %v", err)
		}
		second, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("second RunDaily returned error: %v", err)
		}
		if first.PaymentReminders != 1 {
			t.Fatalf("first run should deliver, got %+v", first)
		}
		if second.PaymentReminders != 0 || len(second.Errors) != 0 {
			t.Fatalf("second run should deliver nothing, got %+v", second)
		}
		if len(fx.repo.records) != 1 {
			t.Fatalf("expected 1 delivery record after both runs, got %d", len(fx.repo.records))
		}
	})

	t.Run("FailedSendIsRecordedAndReported", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		fx.transport.sendErr = errors.New("535 authentication credentials invalid")

		// Act
		out, err := fx.uc.RunDaily(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunDaily returned error: %v", err)
		}
		if out.PaymentReminders != 0 || len(out.Errors) != 1 {
			t.Fatalf("unexpected output: %+v", out)
		}
		rec := fx.repo.records[0]
		if rec.Outcome != entity.OutcomeFailed {
			t.Fatalf("expected Failed outcome, got %s", rec.Outcome)
		}
		if !strings.HasPrefix(rec.ErrorDetail, "auth:") {
			t.Fatalf("expected auth category, got %q", rec.ErrorDetail)
		}
	})
}

func TestRunMonthly(t *testing.T) {

	t.Run("DeliversBillForPreviousMonth", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.August, 1, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		fx.billing.records["2026-07"] = billingRecordForTest()

		// Act
		out, err := fx.uc.RunMonthly(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunMonthly returned error: %v", err)
		}
		if out.Skipped || out.MonthlyBills != 1 || out.YearMonth != "2026-07" {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 1 || fx.repo.records[0].Kind != entity.KindMonthlyBill {
			t.Fatalf("expected one monthly bill record, got %+v", fx.repo.records)
		}
		if !strings.Contains(fx.transport.sent[0].Subject, "July 2026") {
			t.Fatalf("subject should carry the period, got %q", fx.transport.sent[0].Subject)
		}
	})

	t.Run("SkipsWhenNoBillingRecordExists", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.August, 1, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)

		// Act
		out, err := fx.uc.RunMonthly(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunMonthly returned error: %v", err)
		}
		if !out.Skipped || out.Reason != "no billing record for 2026-07" {
			t.Fatalf("unexpected output: %+v", out)
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("SkipsWhenMonthlyBillDisabled", func(t *testing.T) {

		// Arrange
		today := time.Date(2026, time.August, 1, 6, 0, 0, 0, time.UTC)
		fx := newFixture(today)
		cfg := entity.DefaultConfig()
		cfg.MonthlyBillEnabled = false
		fx.repo.notifCfg = &cfg
		fx.billing.records["2026-07"] = billingRecordForTest()

		// Act
		out, err := fx.uc.RunMonthly(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunMonthly returned error: %v", err)
		}
		if !out.Skipped || out.Reason != "monthly bill notifications are disabled" {
			t.Fatalf("unexpected output: %+v", out)
		}
	})
}
