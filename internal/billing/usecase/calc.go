package usecase

import (
	"math"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
)

// round2 rounds money values to two decimals. All derived costs are stored
// rounded so reads never recompute.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type usageInput struct {
	ElectricityUsage float64
	ColdWaterUsage   float64
	HotWaterUsage    float64
}

type costBreakdown struct {
	ElectricityCost float64
	ColdWaterCost   float64
	HotWaterCost    float64
	UtilitiesCost   float64
	TotalAmount     float64
}

// calculateCosts derives per-utility costs (usage x rate), the utilities
// subtotal, and the grand total including rent.
func calculateCosts(usage usageInput, settings entity.Settings) costBreakdown {
	electricity := round2(usage.ElectricityUsage * settings.ElectricityRate)
	coldWater := round2(usage.ColdWaterUsage * settings.ColdWaterRate)
	hotWater := round2(usage.HotWaterUsage * settings.HotWaterRate)
	utilities := round2(electricity + coldWater + hotWater)

	return costBreakdown{
		ElectricityCost: electricity,
		ColdWaterCost:   coldWater,
		HotWaterCost:    hotWater,
		UtilitiesCost:   utilities,
		TotalAmount:     round2(settings.MonthlyRent + utilities),
	}
}
