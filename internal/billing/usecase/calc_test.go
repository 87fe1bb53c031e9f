package usecase

import (
	"testing"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
)

func TestRound2(t *testing.T) {

	t.Run("RoundsToTwoDecimals", func(t *testing.T) {

		// Arrange
		cases := map[float64]float64{
			1.004:   1.0,
			0.999:   1.0,
			-3.333:  -3.33,
			0:       0,
			12.3456: 12.35,
		}

		for in, want := range cases {
			// Act
			got := round2(in)

			// Assert
			if got != want {
				t.Fatalf("round2(%v) = %v, want %v", in, got, want)
			}
		}
	})
}

func TestCalculateCosts(t *testing.T) {

	settings := entity.Settings{
		MonthlyRent:     1200,
		ElectricityRate: 0.5,
		ColdWaterRate:   2,
		HotWaterRate:    8,
	}

	t.Run("DerivesPerUtilityCostsAndTotals", func(t *testing.T) {

		// Arrange
		usage := usageInput{
			ElectricityUsage: 120,
			ColdWaterUsage:   4,
			HotWaterUsage:    2,
		}

		// Act
		got := calculateCosts(usage, settings)

		// Assert
		if got.ElectricityCost != 60 {
			t.Fatalf("electricity cost = %v, want 60", got.ElectricityCost)
		}
		if got.ColdWaterCost != 8 {
			t.Fatalf("cold water cost = %v, want 8", got.ColdWaterCost)
		}
		if got.HotWaterCost != 16 {
			t.Fatalf("hot water cost = %v, want 16", got.HotWaterCost)
		}
		if got.UtilitiesCost != 84 {
			t.Fatalf("utilities cost = %v, want 84", got.UtilitiesCost)
		}
		if got.TotalAmount != 1284 {
			t.Fatalf("total amount = %v, want 1284", got.TotalAmount)
		}
	})

	t.Run("ZeroUsageChargesRentOnly", func(t *testing.T) {

		// Arrange
		usage := usageInput{}

		// Act
		got := calculateCosts(usage, settings)

		// Assert
		if got.UtilitiesCost != 0 {
			t.Fatalf("utilities cost = %v, want 0", got.UtilitiesCost)
		}
		if got.TotalAmount != settings.MonthlyRent {
			t.Fatalf("total amount = %v, want %v", got.TotalAmount, settings.MonthlyRent)
		}
	})

	t.Run("RoundsFractionalUsage", func(t *testing.T) {

		// Arrange
		usage := usageInput{
			ElectricityUsage: 33.34,
			ColdWaterUsage:   1.111,
			HotWaterUsage:    0.777,
		}

		// Act
		got := calculateCosts(usage, settings)

		// Assert
		if got.ElectricityCost != 16.67 {
			t.Fatalf("electricity cost = %v, want 16.67", got.ElectricityCost)
		}
		if got.ColdWaterCost != 2.22 {
			t.Fatalf("cold water cost = %v, want 2.22", got.ColdWaterCost)
		}
		if got.HotWaterCost != 6.22 {
			t.Fatalf("hot water cost = %v, want 6.22", got.HotWaterCost)
		}
		if got.UtilitiesCost != 25.11 {
			t.Fatalf("utilities cost = %v, want 25.11", got.UtilitiesCost)
		}
	})
}
