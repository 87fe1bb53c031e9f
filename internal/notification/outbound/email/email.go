package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Transport owns the SMTP client built from the stored transport config. The
// client is built lazily on first use and reused until Invalidate is called,
// so a config update never leaves a stale session behind.
type Transport struct {
	ins instrument.Instrumentation

	mu     sync.Mutex
	client mail.Mail
	cfg    entity.TransportConfig
}

func New(ins instrument.Instrumentation) *Transport {
	return &Transport{ins: ins}
}

// Invalidate drops the cached client. The next Send or Verify rebuilds it
// from the config it is given.
func (t *Transport) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client != nil {
		_ = t.client.Close()
	}
	t.client = nil
	t.cfg = entity.TransportConfig{}
}

func (t *Transport) clientFor(cfg entity.TransportConfig) (mail.Mail, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client != nil && t.cfg == cfg {
		return t.client, nil
	}

	client, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		UseTLS:   cfg.UseTLS,
		Username: cfg.Username,
		Password: cfg.Secret,
		From:     SenderHeader(cfg),
	})
	if err != nil {
		return nil, err
	}

	if t.client != nil {
		_ = t.client.Close()
	}
	t.client = client
	t.cfg = cfg

	return client, nil
}

// Send delivers msg using a client built from cfg.
func (t *Transport) Send(ctx context.Context, cfg entity.TransportConfig, msg mail.Message) error {
	ctx, span := t.ins.Tracer("notification.outbound.email").Start(ctx, "Send")
	defer span.End()

	client, err := t.clientFor(cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Verify opens and authenticates a session with cfg without sending. It does
// not touch the cached client, so probing a candidate config is side-effect
// free.
func (t *Transport) Verify(ctx context.Context, cfg entity.TransportConfig) error {
	ctx, span := t.ins.Tracer("notification.outbound.email").Start(ctx, "Verify")
	defer span.End()

	client, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		UseTLS:   cfg.UseTLS,
		Username: cfg.Username,
		Password: cfg.Secret,
		From:     SenderHeader(cfg),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Verify(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// SenderHeader formats the From header value from the configured sender.
func SenderHeader(cfg entity.TransportConfig) string {
	if cfg.SenderName == "" {
		return cfg.SenderAddress
	}
	return fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
}
