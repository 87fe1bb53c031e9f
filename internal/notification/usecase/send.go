package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net"
	netmail "net/mail"
	"strings"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
	"github.com/shandysiswandi/renttrack/internal/pkg/mail"
)

type deliverInput struct {
	Transport entity.TransportConfig
	Recipient string
	Kind      entity.Kind
	Subject   string
	HTMLBody  string
}

// deliveryTarget loads and gates the transport config and recipient. Both
// checks happen before any delivery record exists, so an unconfigured system
// never writes Failed rows.
func (s *Usecase) deliveryTarget(ctx context.Context) (*entity.TransportConfig, string, error) {
	cfg, err := s.repoDB.GetTransportConfig(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, "", goerror.NewBusiness("email transport is not configured", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get transport config", "error", err)
		return nil, "", goerror.NewServer(err)
	}
	if !cfg.Configured() {
		return nil, "", goerror.NewBusiness("email transport is not configured", goerror.CodeInvalidInput)
	}

	address, err := s.repoDB.GetRecipient(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, "", goerror.NewBusiness("notification recipient is not configured", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get recipient", "error", err)
		return nil, "", goerror.NewServer(err)
	}
	if _, perr := netmail.ParseAddress(address); perr != nil {
		return nil, "", goerror.NewBusiness("notification recipient is not a valid email address", goerror.CodeInvalidInput)
	}

	return cfg, address, nil
}

// deliver writes a Pending delivery record, attempts the send, then moves the
// record to Sent or Failed in place. There is no retry; a failed attempt stays
// Failed with its categorized detail.
func (s *Usecase) deliver(ctx context.Context, in deliverInput) error {
	rec := entity.CreateDeliveryRecord{
		ID:        s.uid.Generate(),
		Recipient: in.Recipient,
		Subject:   in.Subject,
		Kind:      in.Kind,
	}
	if err := s.repoDB.CreateDeliveryRecord(ctx, rec, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to repo create delivery record", "kind", in.Kind.String(), "error", err)
		return goerror.NewServer(err)
	}

	sendErr := s.transport.Send(ctx, in.Transport, mail.Message{
		To:       []string{in.Recipient},
		Subject:  in.Subject,
		HTMLBody: in.HTMLBody,
	})
	if sendErr == nil {
		if err := s.repoDB.UpdateDeliveryRecordOutcome(ctx, entity.UpdateDeliveryRecord{
			ID:      rec.ID,
			Outcome: entity.OutcomeSent,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo mark delivery record sent", "record_id", rec.ID, "error", err)
		}
		return nil
	}

	detail := categorizeSendError(sendErr)
	if err := s.repoDB.UpdateDeliveryRecordOutcome(ctx, entity.UpdateDeliveryRecord{
		ID:          rec.ID,
		Outcome:     entity.OutcomeFailed,
		ErrorDetail: detail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark delivery record failed", "record_id", rec.ID, "error", err)
	}

	slog.ErrorContext(ctx, "failed to send notification email",
		"record_id", rec.ID, "kind", in.Kind.String(), "error", sendErr)
	return goerror.NewBusiness(detail, goerror.CodeInvalidInput)
}

// categorizeSendError normalizes transport failures into a closed category
// set so the persisted detail stays scannable: timeout, connection, auth,
// recipient, protocol.
func categorizeSendError(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)

	var nerr net.Error
	switch {
	case errors.As(err, &nerr) && nerr.Timeout(),
		strings.Contains(lower, "timeout"),
		errors.Is(err, context.DeadlineExceeded):
		return "timeout: " + msg
	case strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "connection reset"),
		strings.Contains(lower, "no such host"),
		strings.Contains(lower, "dial tcp"):
		return "connection: " + msg
	case strings.Contains(lower, "auth"),
		strings.Contains(lower, "username"),
		strings.Contains(lower, "password"),
		strings.Contains(lower, "535"):
		return "auth: " + msg
	case strings.Contains(lower, "recipient"),
		strings.Contains(lower, "mailbox"),
		strings.Contains(lower, "550"),
		strings.Contains(lower, "553"):
		return "recipient: " + msg
	default:
		return "protocol: " + msg
	}
}
