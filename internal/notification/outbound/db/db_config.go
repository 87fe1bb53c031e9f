package db

import (
	"context"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
)

// Config-ish tables are singletons keyed by a fixed id; upserts use
// ON CONFLICT on that id so the row is created on first write.
const singletonID = 1

func (s *DB) GetTransportConfig(ctx context.Context) (_ *entity.TransportConfig, err error) {
	ctx, span := s.startSpan(ctx, "GetTransportConfig")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT host, port, use_tls, username, secret, sender_name, sender_address
		FROM notification_transport_config
		WHERE id = $1`

	var cfg entity.TransportConfig
	err = s.conn.QueryRow(ctx, query, singletonID).Scan(
		&cfg.Host,
		&cfg.Port,
		&cfg.UseTLS,
		&cfg.Username,
		&cfg.Secret,
		&cfg.SenderName,
		&cfg.SenderAddress,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &cfg, nil
}

func (s *DB) UpsertTransportConfig(ctx context.Context, cfg entity.TransportConfig) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertTransportConfig")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO notification_transport_config
			(id, host, port, use_tls, username, secret, sender_name, sender_address, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id) DO UPDATE SET
			host = EXCLUDED.host,
			port = EXCLUDED.port,
			use_tls = EXCLUDED.use_tls,
			username = EXCLUDED.username,
			secret = EXCLUDED.secret,
			sender_name = EXCLUDED.sender_name,
			sender_address = EXCLUDED.sender_address,
			updated_at = now()`

	_, err = s.conn.Exec(ctx, query, singletonID,
		cfg.Host, cfg.Port, cfg.UseTLS, cfg.Username, cfg.Secret, cfg.SenderName, cfg.SenderAddress)
	return s.mapError(err)
}

func (s *DB) GetConfig(ctx context.Context) (_ *entity.Config, err error) {
	ctx, span := s.startSpan(ctx, "GetConfig")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT payment_reminder_enabled, payment_reminder_lead_days,
			overdue_reminder_enabled, monthly_bill_enabled, system_notification_enabled
		FROM notification_config
		WHERE id = $1`

	var cfg entity.Config
	err = s.conn.QueryRow(ctx, query, singletonID).Scan(
		&cfg.PaymentReminderEnabled,
		&cfg.PaymentReminderLeadDays,
		&cfg.OverdueReminderEnabled,
		&cfg.MonthlyBillEnabled,
		&cfg.SystemNotificationEnabled,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &cfg, nil
}

func (s *DB) UpsertConfig(ctx context.Context, cfg entity.Config) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertConfig")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO notification_config
			(id, payment_reminder_enabled, payment_reminder_lead_days,
			overdue_reminder_enabled, monthly_bill_enabled, system_notification_enabled, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			payment_reminder_enabled = EXCLUDED.payment_reminder_enabled,
			payment_reminder_lead_days = EXCLUDED.payment_reminder_lead_days,
			overdue_reminder_enabled = EXCLUDED.overdue_reminder_enabled,
			monthly_bill_enabled = EXCLUDED.monthly_bill_enabled,
			system_notification_enabled = EXCLUDED.system_notification_enabled,
			updated_at = now()`

	_, err = s.conn.Exec(ctx, query, singletonID,
		cfg.PaymentReminderEnabled, cfg.PaymentReminderLeadDays,
		cfg.OverdueReminderEnabled, cfg.MonthlyBillEnabled, cfg.SystemNotificationEnabled)
	return s.mapError(err)
}

func (s *DB) GetRecipient(ctx context.Context) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "GetRecipient")
	defer func() { s.endSpan(span, err) }()

	const query = `SELECT address FROM notification_recipient WHERE id = $1`

	var address string
	if err = s.conn.QueryRow(ctx, query, singletonID).Scan(&address); err != nil {
		return "", s.mapError(err)
	}

	return address, nil
}

func (s *DB) UpsertRecipient(ctx context.Context, address string) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertRecipient")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO notification_recipient (id, address, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			address = EXCLUDED.address,
			updated_at = now()`

	_, err = s.conn.Exec(ctx, query, singletonID, address)
	return s.mapError(err)
}
