package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

type ListHistoryInput struct {
	Page     int32
	PageSize int32
}

type ListHistoryOutput struct {
	Page       int32
	PageSize   int32
	Total      int64
	TotalPages int64
	Records    []entity.DeliveryRecord
}

// ListHistory pages through the delivery ledger, newest first. A page beyond
// the end returns empty records with accurate totals.
func (s *Usecase) ListHistory(ctx context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	ctx, span := s.startSpan(ctx, "ListHistory")
	defer span.End()

	if in.Page <= 0 {
		in.Page = 1
	}
	if in.PageSize <= 0 || in.PageSize > 100 {
		in.PageSize = 10
	}

	records, err := s.repoDB.ListDeliveryRecords(ctx, in.PageSize, (in.Page-1)*in.PageSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list delivery records", "error", err)
		return nil, goerror.NewServer(err)
	}

	total, err := s.repoDB.CountDeliveryRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count delivery records", "error", err)
		return nil, goerror.NewServer(err)
	}

	totalPages := (total + int64(in.PageSize) - 1) / int64(in.PageSize)

	return &ListHistoryOutput{
		Page:       in.Page,
		PageSize:   in.PageSize,
		Total:      total,
		TotalPages: totalPages,
		Records:    records,
	}, nil
}
