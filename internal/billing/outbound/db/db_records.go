package db

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
)

func (s *DB) GetRecordByYearMonth(ctx context.Context, yearMonth string) (_ *entity.Record, err error) {
	ctx, span := s.startSpan(ctx, "GetRecordByYearMonth")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, year_month, electricity_usage, cold_water_usage, hot_water_usage,
			electricity_cost, cold_water_cost, hot_water_cost,
			utilities_cost, total_amount, is_paid, updated_at
		FROM billing_records
		WHERE year_month = $1`

	var rec entity.Record
	err = s.conn.QueryRow(ctx, query, yearMonth).Scan(
		&rec.ID,
		&rec.YearMonth,
		&rec.ElectricityUsage,
		&rec.ColdWaterUsage,
		&rec.HotWaterUsage,
		&rec.ElectricityCost,
		&rec.ColdWaterCost,
		&rec.HotWaterCost,
		&rec.UtilitiesCost,
		&rec.TotalAmount,
		&rec.IsPaid,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &rec, nil
}

func (s *DB) ListRecords(ctx context.Context) (_ []entity.Record, err error) {
	ctx, span := s.startSpan(ctx, "ListRecords")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, year_month, electricity_usage, cold_water_usage, hot_water_usage,
			electricity_cost, cold_water_cost, hot_water_cost,
			utilities_cost, total_amount, is_paid, updated_at
		FROM billing_records
		ORDER BY year_month DESC`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var items []entity.Record
	for rows.Next() {
		var rec entity.Record
		if err = rows.Scan(
			&rec.ID,
			&rec.YearMonth,
			&rec.ElectricityUsage,
			&rec.ColdWaterUsage,
			&rec.HotWaterUsage,
			&rec.ElectricityCost,
			&rec.ColdWaterCost,
			&rec.HotWaterCost,
			&rec.UtilitiesCost,
			&rec.TotalAmount,
			&rec.IsPaid,
			&rec.UpdatedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		items = append(items, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

func (s *DB) UpsertRecord(ctx context.Context, data entity.UpsertRecord) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertRecord")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO billing_records
			(id, year_month, electricity_usage, cold_water_usage, hot_water_usage,
			electricity_cost, cold_water_cost, hot_water_cost,
			utilities_cost, total_amount, is_paid, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false, now())
		ON CONFLICT (year_month) DO UPDATE SET
			electricity_usage = EXCLUDED.electricity_usage,
			cold_water_usage = EXCLUDED.cold_water_usage,
			hot_water_usage = EXCLUDED.hot_water_usage,
			electricity_cost = EXCLUDED.electricity_cost,
			cold_water_cost = EXCLUDED.cold_water_cost,
			hot_water_cost = EXCLUDED.hot_water_cost,
			utilities_cost = EXCLUDED.utilities_cost,
			total_amount = EXCLUDED.total_amount,
			updated_at = now()`

	_, err = s.conn.Exec(ctx, query,
		data.ID, data.YearMonth,
		data.ElectricityUsage, data.ColdWaterUsage, data.HotWaterUsage,
		data.ElectricityCost, data.ColdWaterCost, data.HotWaterCost,
		data.UtilitiesCost, data.TotalAmount)
	return s.mapError(err)
}

func (s *DB) MarkRecordPaid(ctx context.Context, yearMonth string, isPaid bool) (err error) {
	ctx, span := s.startSpan(ctx, "MarkRecordPaid")
	defer func() { s.endSpan(span, err) }()

	const query = `UPDATE billing_records SET is_paid = $2, updated_at = now() WHERE year_month = $1`

	tag, err := s.conn.Exec(ctx, query, yearMonth, isPaid)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
