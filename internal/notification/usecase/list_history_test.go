package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shandysiswandi/renttrack/internal/notification/entity"
)

func TestListHistory(t *testing.T) {

	seed := func(fx *usecaseFixture, n int) {
		for i := 0; i < n; i++ {
			fx.repo.records = append(fx.repo.records, entity.DeliveryRecord{
				ID:        int64(i + 1),
				Recipient: "tenant@example.com",
				Subject:   fmt.Sprintf("message %d", i+1),
				Kind:      entity.KindPaymentReminder,
				Outcome:   entity.OutcomeSent,
			})
		}
	}

	t.Run("SecondPageHoldsTheRemainder", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		seed(fx, 15)

		// Act
		out, err := fx.uc.ListHistory(context.Background(), ListHistoryInput{Page: 2, PageSize: 10})

		// Assert
		if err != nil {
			t.Fatalf("ListHistory returned error: %v", err)
		}
		if len(out.Records) != 5 {
			t.Fatalf("expected 5 records on page 2, got %d", len(out.Records))
		}
		if out.Total != 15 || out.TotalPages != 2 {
			t.Fatalf("expected total 15 over 2 pages, got %d over %d", out.Total, out.TotalPages)
		}
	})

	t.Run("DefaultsApplyForZeroValues", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		seed(fx, 15)

		// Act
		out, err := fx.uc.ListHistory(context.Background(), ListHistoryInput{})

		// Assert
		if err != nil {
			t.Fatalf("ListHistory returned error: %v", err)
		}
		if out.Page != 1 || out.PageSize != 10 || len(out.Records) != 10 {
			t.Fatalf("unexpected defaults: page %d size %d records %d", out.Page, out.PageSize, len(out.Records))
		}
	})

	t.Run("PageBeyondEndIsEmptyWithAccurateTotals", func(t *testing.T) {

		// Arrange
		fx := newFixture(time.Date(2026, time.March, 7, 6, 0, 0, 0, time.UTC))
		seed(fx, 15)

		// Act
		out, err := fx.uc.ListHistory(context.Background(), ListHistoryInput{Page: 5, PageSize: 10})

		// Assert
		if err != nil {
			t.Fatalf("ListHistory returned error: %v", err)
		}
		if len(out.Records) != 0 {
			t.Fatalf("expected empty page, got %d records", len(out.Records))
		}
		if out.Total != 15 || out.TotalPages != 2 {
			t.Fatalf("expected total 15 over 2 pages, got %d over %d", out.Total, out.TotalPages)
		}
	})
}
