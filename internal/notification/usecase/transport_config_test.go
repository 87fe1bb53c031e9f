package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

func TestGetTransport(t *testing.T) {

	t.Run("NeverEchoesTheSecret", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		out, err := fx.uc.GetTransport(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetTransport returned error: %v", err)
		}
		if out.Host != "smtp.example.com" || out.Port != 587 {
			t.Fatalf("unexpected output: %+v", out)
		}
	})

	t.Run("NotFoundWhenUnconfigured", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		fx.repo.transportCfg = nil

		// Act
		_, err := fx.uc.GetTransport(context.Background())

		// Assert
		var ge *goerror.Error
		if !errors.As(err, &ge) || ge.Code() != goerror.CodeNotFound {
			t.Fatalf("expected not-found business error, got %v", err)
		}
	})
}

func TestUpdateTransport(t *testing.T) {

	t.Run("EmptySecretKeepsStoredOne", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		err := fx.uc.UpdateTransport(context.Background(), UpdateTransportInput{
			Host:          "smtp.other.com",
			Port:          465,
			UseTLS:        true,
			Username:      "mailer",
			SenderAddress: "noreply@example.com",
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateTransport returned error: %v", err)
		}
		if fx.repo.transportCfg.Secret != "secret" {
			t.Fatalf("expected stored secret kept, got %q", fx.repo.transportCfg.Secret)
		}
		if fx.repo.transportCfg.Host != "smtp.other.com" || !fx.repo.transportCfg.UseTLS {
			t.Fatalf("unexpected stored config: %+v", fx.repo.transportCfg)
		}
	})

	t.Run("InvalidatesCachedClient", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		err := fx.uc.UpdateTransport(context.Background(), UpdateTransportInput{
			Host:          "smtp.example.com",
			Port:          587,
			Secret:        "rotated",
			SenderAddress: "noreply@example.com",
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateTransport returned error: %v", err)
		}
		if fx.transport.invalidated != 1 {
			t.Fatalf("expected cached client invalidated once, got %d", fx.transport.invalidated)
		}
	})

	t.Run("RejectsInvalidSenderAddress", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		err := fx.uc.UpdateTransport(context.Background(), UpdateTransportInput{
			Host:          "smtp.example.com",
			Port:          587,
			SenderAddress: "not-an-address",
		})

		// Assert
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestTestTransport(t *testing.T) {

	t.Run("UsesStoredConfigWhenHostEmpty", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		out, err := fx.uc.TestTransport(context.Background(), TestTransportInput{})

		// Assert
		if err != nil {
			t.Fatalf("TestTransport returned error: %v", err)
		}
		if out.Message != "transport verified against smtp.example.com" {
			t.Fatalf("unexpected message %q", out.Message)
		}
	})

	t.Run("ReportsVerificationFailure", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		fx.transport.verifyErr = errors.New("dial tcp: connection refused")

		// Act
		_, err := fx.uc.TestTransport(context.Background(), TestTransportInput{})

		// Assert
		if err == nil {
			t.Fatalf("expected verification error")
		}
	})
}

func TestSendTestMessage(t *testing.T) {

	t.Run("RefusesWithoutRecipientAndWritesNoRecord", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		fx.repo.recipient = ""

		// Act
		_, err := fx.uc.SendTestMessage(context.Background())

		// Assert
		if err == nil {
			t.Fatalf("expected precondition error")
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("DeliversToConfiguredRecipient", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		out, err := fx.uc.SendTestMessage(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("SendTestMessage returned error: %v", err)
		}
		if out.Message != "test message sent to tenant@example.com" {
			t.Fatalf("unexpected message %q", out.Message)
		}
	})
}

func TestSendSystemNotification(t *testing.T) {

	t.Run("RejectedWhenDisabled", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		cfg := entity.DefaultConfig()
		cfg.SystemNotificationEnabled = false
		fx.repo.notifCfg = &cfg

		// Act
		_, err := fx.uc.SendSystemNotification(context.Background(), SendSystemNotificationInput{
			Message: "disk almost full",
		})

		// Assert
		if err == nil {
			t.Fatalf("expected business error when disabled")
		}
		if len(fx.repo.records) != 0 {
			t.Fatalf("expected no delivery records, got %d", len(fx.repo.records))
		}
	})

	t.Run("DeliversWhenEnabled", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))

		// Act
		out, err := fx.uc.SendSystemNotification(context.Background(), SendSystemNotificationInput{
			Message: "disk almost full",
			Details: "volume /data at 92%",
		})

		// Assert
		if err != nil {
			t.Fatalf("SendSystemNotification returned error: %v", err)
		}
		if out.Message != "system notification sent to tenant@example.com" {
			t.Fatalf("unexpected message %q", out.Message)
		}
	})
}
