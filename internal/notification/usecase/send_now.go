package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type SendOutput struct {
	Message string
}

// SendPaymentReminderNow delivers a payment reminder immediately, regardless
// of the lead-day rule. It still requires billing settings for the due date
// and amount.
func (s *Usecase) SendPaymentReminderNow(ctx context.Context) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "SendPaymentReminderNow")
	defer span.End()

	settings, err := s.billing.GetSettings(ctx)
	if isNotFound(err) {
		return nil, goerror.NewBusiness("billing settings are not configured", goerror.CodeInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	target, recipient, err := s.deliveryTarget(ctx)
	if err != nil {
		return nil, err
	}

	subject, body, err := s.renderPaymentReminder(*settings, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to render payment reminder", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.deliver(ctx, deliverInput{
		Transport: *target,
		Recipient: recipient,
		Kind:      entity.KindPaymentReminder,
		Subject:   subject,
		HTMLBody:  body,
	}); err != nil {
		return nil, err
	}

	return &SendOutput{Message: "payment reminder sent to " + recipient}, nil
}

// SendTestMessage delivers a short probe email through the stored transport.
func (s *Usecase) SendTestMessage(ctx context.Context) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "SendTestMessage")
	defer span.End()

	target, recipient, err := s.deliveryTarget(ctx)
	if err != nil {
		return nil, err
	}

	subject, body, err := s.renderTestMessage()
	if err != nil {
		slog.ErrorContext(ctx, "failed to render test message", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.deliver(ctx, deliverInput{
		Transport: *target,
		Recipient: recipient,
		Kind:      entity.KindTestMessage,
		Subject:   subject,
		HTMLBody:  body,
	}); err != nil {
		return nil, err
	}

	return &SendOutput{Message: "test message sent to " + recipient}, nil
}

type SendSystemNotificationInput struct {
	Message string `validate:"required,max=500"`
	Details string `validate:"max=2000"`
}

// SendSystemNotification delivers an operational notice. It is reachable both
// from HTTP and from the message broker intake.
func (s *Usecase) SendSystemNotification(ctx context.Context, in SendSystemNotificationInput) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "SendSystemNotification")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cfg, err := s.notificationConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.SystemNotificationEnabled {
		return nil, goerror.NewBusiness("system notifications are disabled", goerror.CodeInvalidInput)
	}

	target, recipient, err := s.deliveryTarget(ctx)
	if err != nil {
		return nil, err
	}

	subject, body, err := s.renderSystemNotification(in.Message, in.Details)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render system notification", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.deliver(ctx, deliverInput{
		Transport: *target,
		Recipient: recipient,
		Kind:      entity.KindSystemNotification,
		Subject:   subject,
		HTMLBody:  body,
	}); err != nil {
		return nil, err
	}

	return &SendOutput{Message: "system notification sent to " + recipient}, nil
}
