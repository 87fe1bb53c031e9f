package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type RecipientOutput struct {
	Address string
}

func (s *Usecase) GetRecipient(ctx context.Context) (*RecipientOutput, error) {
	ctx, span := s.startSpan(ctx, "GetRecipient")
	defer span.End()

	address, err := s.repoDB.GetRecipient(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("notification recipient is not configured", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get recipient", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RecipientOutput{Address: address}, nil
}

type UpdateRecipientInput struct {
	Address string `validate:"required,email"`
}

func (s *Usecase) UpdateRecipient(ctx context.Context, in UpdateRecipientInput) error {
	ctx, span := s.startSpan(ctx, "UpdateRecipient")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpsertRecipient(ctx, in.Address); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert recipient", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
