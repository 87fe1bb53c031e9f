package db

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
)

const singletonID = 1

func (s *DB) GetSettings(ctx context.Context) (_ *entity.Settings, err error) {
	ctx, span := s.startSpan(ctx, "GetSettings")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT monthly_rent, payment_day, electricity_rate, cold_water_rate, hot_water_rate
		FROM billing_settings
		WHERE id = $1`

	var settings entity.Settings
	err = s.conn.QueryRow(ctx, query, singletonID).Scan(
		&settings.MonthlyRent,
		&settings.PaymentDay,
		&settings.ElectricityRate,
		&settings.ColdWaterRate,
		&settings.HotWaterRate,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &settings, nil
}

func (s *DB) UpsertSettings(ctx context.Context, settings entity.Settings) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertSettings")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO billing_settings
			(id, monthly_rent, payment_day, electricity_rate, cold_water_rate, hot_water_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			monthly_rent = EXCLUDED.monthly_rent,
			payment_day = EXCLUDED.payment_day,
			electricity_rate = EXCLUDED.electricity_rate,
			cold_water_rate = EXCLUDED.cold_water_rate,
			hot_water_rate = EXCLUDED.hot_water_rate,
			updated_at = now()`

	_, err = s.conn.Exec(ctx, query, singletonID,
		settings.MonthlyRent, settings.PaymentDay,
		settings.ElectricityRate, settings.ColdWaterRate, settings.HotWaterRate)
	return s.mapError(err)
}
