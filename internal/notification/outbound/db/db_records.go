package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

func (s *DB) CreateDeliveryRecord(ctx context.Context, data entity.CreateDeliveryRecord, attemptedAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDeliveryRecord")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO notification_delivery_records
			(id, recipient, subject, kind, outcome, error_detail, attempted_at)
		VALUES ($1, $2, $3, $4, $5, '', $6)`

	_, err = s.conn.Exec(ctx, query,
		data.ID, data.Recipient, data.Subject, int16(data.Kind), int16(entity.OutcomePending), attemptedAt)
	return s.mapError(err)
}

func (s *DB) UpdateDeliveryRecordOutcome(ctx context.Context, data entity.UpdateDeliveryRecord) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateDeliveryRecordOutcome")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE notification_delivery_records
		SET outcome = $2, error_detail = $3
		WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, data.ID, int16(data.Outcome), data.ErrorDetail)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) ListDeliveryRecords(ctx context.Context, limit, offset int32) (_ []entity.DeliveryRecord, err error) {
	ctx, span := s.startSpan(ctx, "ListDeliveryRecords")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, recipient, subject, kind, outcome, error_detail, attempted_at
		FROM notification_delivery_records
		ORDER BY attempted_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.DeliveryRecord, 0, limit)
	for rows.Next() {
		var item entity.DeliveryRecord
		var kind, outcome int16
		if err = rows.Scan(
			&item.ID,
			&item.Recipient,
			&item.Subject,
			&kind,
			&outcome,
			&item.ErrorDetail,
			&item.AttemptedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		item.Kind = entity.Kind(kind)
		item.Outcome = entity.Outcome(outcome)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

func (s *DB) CountDeliveryRecords(ctx context.Context) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CountDeliveryRecords")
	defer func() { s.endSpan(span, err) }()

	var count int64
	err = s.conn.QueryRow(ctx, `SELECT count(*) FROM notification_delivery_records`).Scan(&count)
	return count, s.mapError(err)
}
