package inbound

import (
	"time"

	"github.com/shandysiswandi/renttrack/internal/billing/entity"
)

type BillingSettingsRequest struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	PaymentDay      int     `json:"payment_day"`
	ElectricityRate float64 `json:"electricity_rate"`
	ColdWaterRate   float64 `json:"cold_water_rate"`
	HotWaterRate    float64 `json:"hot_water_rate"`
}

type BillingSettingsResponse struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	PaymentDay      int     `json:"payment_day"`
	ElectricityRate float64 `json:"electricity_rate"`
	ColdWaterRate   float64 `json:"cold_water_rate"`
	HotWaterRate    float64 `json:"hot_water_rate"`
}

type BillingRecordRequest struct {
	YearMonth        string  `json:"year_month"`
	ElectricityUsage float64 `json:"electricity_usage"`
	ColdWaterUsage   float64 `json:"cold_water_usage"`
	HotWaterUsage    float64 `json:"hot_water_usage"`
}

type MarkRecordPaidRequest struct {
	IsPaid bool `json:"is_paid"`
}

type BillingRecordResponse struct {
	YearMonth        string    `json:"year_month"`
	ElectricityUsage float64   `json:"electricity_usage"`
	ColdWaterUsage   float64   `json:"cold_water_usage"`
	HotWaterUsage    float64   `json:"hot_water_usage"`
	ElectricityCost  float64   `json:"electricity_cost"`
	ColdWaterCost    float64   `json:"cold_water_cost"`
	HotWaterCost     float64   `json:"hot_water_cost"`
	UtilitiesCost    float64   `json:"utilities_cost"`
	TotalAmount      float64   `json:"total_amount"`
	IsPaid           bool      `json:"is_paid"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BillingRecordsResponse struct {
	Records []BillingRecordResponse `json:"records"`
}

func billingRecordResponseFrom(rec entity.Record) BillingRecordResponse {
	return BillingRecordResponse{
		YearMonth:        rec.YearMonth,
		ElectricityUsage: rec.ElectricityUsage,
		ColdWaterUsage:   rec.ColdWaterUsage,
		HotWaterUsage:    rec.HotWaterUsage,
		ElectricityCost:  rec.ElectricityCost,
		ColdWaterCost:    rec.ColdWaterCost,
		HotWaterCost:     rec.HotWaterCost,
		UtilitiesCost:    rec.UtilitiesCost,
		TotalAmount:      rec.TotalAmount,
		IsPaid:           rec.IsPaid,
		UpdatedAt:        rec.UpdatedAt,
	}
}
