package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type TransportOutput struct {
	Host          string
	Port          int
	UseTLS        bool
	Username      string
	SenderName    string
	SenderAddress string
}

// GetTransport returns the stored transport config. The secret is never part
// of the output.
func (s *Usecase) GetTransport(ctx context.Context) (*TransportOutput, error) {
	ctx, span := s.startSpan(ctx, "GetTransport")
	defer span.End()

	cfg, err := s.repoDB.GetTransportConfig(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("email transport is not configured", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get transport config", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TransportOutput{
		Host:          cfg.Host,
		Port:          cfg.Port,
		UseTLS:        cfg.UseTLS,
		Username:      cfg.Username,
		SenderName:    cfg.SenderName,
		SenderAddress: cfg.SenderAddress,
	}, nil
}

type UpdateTransportInput struct {
	Host          string `validate:"required,hostname_rfc1123"`
	Port          int    `validate:"required,min=1,max=65535"`
	UseTLS        bool
	Username      string `validate:"max=255"`
	Secret        string `validate:"max=255"`
	SenderName    string `validate:"max=100"`
	SenderAddress string `validate:"required,email"`
}

// UpdateTransport upserts the transport config. An empty secret keeps the
// stored one, so clients can edit settings without re-entering it. The cached
// SMTP client is invalidated so the next send picks up the new config.
func (s *Usecase) UpdateTransport(ctx context.Context, in UpdateTransportInput) error {
	ctx, span := s.startSpan(ctx, "UpdateTransport")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Secret == "" {
		stored, err := s.repoDB.GetTransportConfig(ctx)
		if err != nil && !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to repo get transport config", "error", err)
			return goerror.NewServer(err)
		}
		if stored != nil {
			in.Secret = stored.Secret
		}
	}

	if err := s.repoDB.UpsertTransportConfig(ctx, entity.TransportConfig{
		Host:          in.Host,
		Port:          in.Port,
		UseTLS:        in.UseTLS,
		Username:      in.Username,
		Secret:        in.Secret,
		SenderName:    in.SenderName,
		SenderAddress: in.SenderAddress,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert transport config", "error", err)
		return goerror.NewServer(err)
	}

	s.transport.Invalidate()

	return nil
}

type TestTransportInput struct {
	Host          string `validate:"omitempty,hostname_rfc1123"`
	Port          int    `validate:"omitempty,min=1,max=65535"`
	UseTLS        bool
	Username      string `validate:"max=255"`
	Secret        string `validate:"max=255"`
	SenderName    string `validate:"max=100"`
	SenderAddress string `validate:"omitempty,email"`
}

// TestTransport verifies an SMTP session without sending a message. With an
// empty host the stored config is probed; otherwise the candidate from the
// request is, which lets clients test before saving.
func (s *Usecase) TestTransport(ctx context.Context, in TestTransportInput) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "TestTransport")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cfg := entity.TransportConfig{
		Host:          in.Host,
		Port:          in.Port,
		UseTLS:        in.UseTLS,
		Username:      in.Username,
		Secret:        in.Secret,
		SenderName:    in.SenderName,
		SenderAddress: in.SenderAddress,
	}
	if cfg.Host == "" {
		stored, err := s.repoDB.GetTransportConfig(ctx)
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("email transport is not configured", goerror.CodeInvalidInput)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get transport config", "error", err)
			return nil, goerror.NewServer(err)
		}
		cfg = *stored
	}
	if !cfg.Configured() {
		return nil, goerror.NewBusiness("email transport is not configured", goerror.CodeInvalidInput)
	}

	if err := s.transport.Verify(ctx, cfg); err != nil {
		return nil, goerror.NewBusiness("transport verification failed: "+categorizeSendError(err), goerror.CodeInvalidInput)
	}

	return &SendOutput{Message: "transport verified against " + cfg.Host}, nil
}
