package usecase

import (
	"context"
	"time"

	billingentity "github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/notification/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/config"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
	"github.com/shandysiswandi/renttrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/mail"
	"github.com/shandysiswandi/renttrack/internal/pkg/validator"
)

type fakeRepoDB struct {
	transportCfg *entity.TransportConfig
	notifCfg     *entity.Config
	recipient    string

	records []entity.DeliveryRecord
}

func (f *fakeRepoDB) GetTransportConfig(context.Context) (*entity.TransportConfig, error) {
	if f.transportCfg == nil {
		return nil, goerror.ErrNotFound
	}
	cfg := *f.transportCfg
	return &cfg, nil
}

func (f *fakeRepoDB) UpsertTransportConfig(_ context.Context, cfg entity.TransportConfig) error {
	f.transportCfg = &cfg
	return nil
}

func (f *fakeRepoDB) GetConfig(context.Context) (*entity.Config, error) {
	if f.notifCfg == nil {
		return nil, goerror.ErrNotFound
	}
	cfg := *f.notifCfg
	return &cfg, nil
}

func (f *fakeRepoDB) UpsertConfig(_ context.Context, cfg entity.Config) error {
	f.notifCfg = &cfg
	return nil
}

func (f *fakeRepoDB) GetRecipient(context.Context) (string, error) {
	if f.recipient == "" {
		return "", goerror.ErrNotFound
	}
	return f.recipient, nil
}

func (f *fakeRepoDB) UpsertRecipient(_ context.Context, address string) error {
	f.recipient = address
	return nil
}

func (f *fakeRepoDB) CreateDeliveryRecord(_ context.Context, data entity.CreateDeliveryRecord, attemptedAt time.Time) error {
	f.records = append(f.records, entity.DeliveryRecord{
		ID:          data.ID,
		Recipient:   data.Recipient,
		Subject:     data.Subject,
		Kind:        data.Kind,
		Outcome:     entity.OutcomePending,
		AttemptedAt: attemptedAt,
	})
	return nil
}

func (f *fakeRepoDB) UpdateDeliveryRecordOutcome(_ context.Context, data entity.UpdateDeliveryRecord) error {
	for i := range f.records {
		if f.records[i].ID == data.ID {
			f.records[i].Outcome = data.Outcome
			f.records[i].ErrorDetail = data.ErrorDetail
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeRepoDB) ListDeliveryRecords(_ context.Context, limit, offset int32) ([]entity.DeliveryRecord, error) {
	if int(offset) >= len(f.records) {
		return nil, nil
	}
	end := int(offset + limit)
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeRepoDB) CountDeliveryRecords(context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeTransport struct {
	sent        []mail.Message
	sendErr     error
	verifyErr   error
	invalidated int
}

func (f *fakeTransport) Send(_ context.Context, _ entity.TransportConfig, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Verify(context.Context, entity.TransportConfig) error {
	return f.verifyErr
}

func (f *fakeTransport) Invalidate() {
	f.invalidated++
}

type fakeBilling struct {
	settings *billingentity.Settings
	records  map[string]billingentity.Record
}

func (f *fakeBilling) GetSettings(context.Context) (*billingentity.Settings, error) {
	if f.settings == nil {
		return nil, goerror.NewBusiness("billing settings are not configured", goerror.CodeNotFound)
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeBilling) GetRecord(_ context.Context, yearMonth string) (*billingentity.Record, error) {
	rec, ok := f.records[yearMonth]
	if !ok {
		return nil, goerror.NewBusiness("billing record not found", goerror.CodeNotFound)
	}
	return &rec, nil
}

// fakeIdempotency tracks claimed keys in memory; a claimed key reports
// completed on the next Exec.
type fakeIdempotency struct {
	states map[string]idempotency.State
}

func newFakeIdempotency() *fakeIdempotency {
	return &fakeIdempotency{states: make(map[string]idempotency.State)}
}

func (f *fakeIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if state, ok := f.states[key]; ok {
		return state, nil
	}
	f.states[key] = idempotency.StateInProgress
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateCompleted
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateFailed
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	state, _ := f.Acquire(ctx, key, 0)
	switch state {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		_ = f.MarkFailed(ctx, key, 0)
		return err
	}
	return f.MarkCompleted(ctx, key, 0)
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

type seqID struct {
	next int64
}

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

// stubConfig serves only the string keys the usecase reads; everything else
// falls through to the nil embedded interface.
type stubConfig struct {
	config.Config
}

func (stubConfig) GetString(string) string {
	return "RentTrack"
}

type usecaseFixture struct {
	repo      *fakeRepoDB
	transport *fakeTransport
	billing   *fakeBilling
	idemp     *fakeIdempotency
	uc        *Usecase
}

func newFixture(now time.Time) *usecaseFixture {
	repo := &fakeRepoDB{
		transportCfg: &entity.TransportConfig{
			Host:          "smtp.example.com",
			Port:          587,
			Username:      "mailer",
			Secret:        "secret",
			SenderName:    "RentTrack",
			SenderAddress: "noreply@example.com",
		},
		recipient: "tenant@example.com",
	}
	transport := &fakeTransport{}
	billing := &fakeBilling{
		settings: &billingentity.Settings{
			MonthlyRent:     1200,
			PaymentDay:      10,
			ElectricityRate: 0.5,
			ColdWaterRate:   2,
			HotWaterRate:    8,
		},
		records: map[string]billingentity.Record{},
	}
	idemp := newFakeIdempotency()

	v10, err := validator.NewV10Validator()
	if err != nil {
		panic(err)
	}

	uc := New(Dependency{
		RepoDB:      repo,
		Transport:   transport,
		Billing:     billing,
		Idempotency: idemp,
		Config:      stubConfig{},
		UID:         &seqID{},
		Clock:       stubClock{now: now},
		Validator:   v10,
		Instrument:  instrument.NewNoop(),
	})

	return &usecaseFixture{repo: repo, transport: transport, billing: billing, idemp: idemp, uc: uc}
}

func billingRecordForTest() billingentity.Record {
	return billingentity.Record{
		ID:               99,
		YearMonth:        "2026-07",
		ElectricityUsage: 120,
		ColdWaterUsage:   4,
		HotWaterUsage:    2,
		ElectricityCost:  60,
		ColdWaterCost:    8,
		HotWaterCost:     16,
		UtilitiesCost:    84,
		TotalAmount:      1284,
	}
}
