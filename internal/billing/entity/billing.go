package entity

import "time"

// Settings holds the monthly rent and utility rates, stored as a singleton
// row. PaymentDay is the day of month rent is due (clamped to the month's
// last day in short months by the schedule logic).
type Settings struct {
	MonthlyRent     float64
	PaymentDay      int
	ElectricityRate float64
	ColdWaterRate   float64
	HotWaterRate    float64
}

// Record is one month of utility usage and the derived costs. YearMonth is
// the "YYYY-MM" key; there is at most one record per month.
type Record struct {
	ID               int64
	YearMonth        string
	ElectricityUsage float64
	ColdWaterUsage   float64
	HotWaterUsage    float64
	ElectricityCost  float64
	ColdWaterCost    float64
	HotWaterCost     float64
	UtilitiesCost    float64
	TotalAmount      float64
	IsPaid           bool
	UpdatedAt        time.Time
}

type UpsertRecord struct {
	ID               int64
	YearMonth        string
	ElectricityUsage float64
	ColdWaterUsage   float64
	HotWaterUsage    float64
	ElectricityCost  float64
	ColdWaterCost    float64
	HotWaterCost     float64
	UtilitiesCost    float64
	TotalAmount      float64
}
