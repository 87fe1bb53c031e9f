package inbound

import (
	"github.com/shandysiswandi/renttrack/internal/billing/usecase"
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// GetSettings returns the billing settings.
// @Summary Get billing settings
// @Description Returns the monthly rent, payment day, and utility rates.
// @Tags Billing
// @Produce json
// @Success 200 {object} router.successResponse{data=BillingSettingsResponse} "Billing settings"
// @Failure 404 {object} router.errorResponse "Settings not configured"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/settings [get]
func (h *HTTPEndpoint) GetSettings(r *router.Request) (any, error) {
	settings, err := h.uc.GetSettings(r.Context())
	if err != nil {
		return nil, err
	}

	return BillingSettingsResponse{
		MonthlyRent:     settings.MonthlyRent,
		PaymentDay:      settings.PaymentDay,
		ElectricityRate: settings.ElectricityRate,
		ColdWaterRate:   settings.ColdWaterRate,
		HotWaterRate:    settings.HotWaterRate,
	}, nil
}

// UpdateSettings writes the billing settings.
// @Summary Update billing settings
// @Description Updates the monthly rent, payment day, and utility rates.
// @Tags Billing
// @Accept json
// @Param request body BillingSettingsRequest true "Billing settings payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/settings [put]
func (h *HTTPEndpoint) UpdateSettings(r *router.Request) (any, error) {
	var req BillingSettingsRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.UpdateSettings(r.Context(), usecase.UpdateSettingsInput{
		MonthlyRent:     req.MonthlyRent,
		PaymentDay:      req.PaymentDay,
		ElectricityRate: req.ElectricityRate,
		ColdWaterRate:   req.ColdWaterRate,
		HotWaterRate:    req.HotWaterRate,
	})
}

// ListRecords returns all billing records.
// @Summary List billing records
// @Description Returns all monthly billing records, newest first.
// @Tags Billing
// @Produce json
// @Success 200 {object} router.successResponse{data=BillingRecordsResponse} "Record list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/records [get]
func (h *HTTPEndpoint) ListRecords(r *router.Request) (any, error) {
	items, err := h.uc.ListRecords(r.Context())
	if err != nil {
		return nil, err
	}

	resp := make([]BillingRecordResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, billingRecordResponseFrom(item))
	}

	return BillingRecordsResponse{Records: resp}, nil
}

// UpsertRecord creates or replaces the billing record for a month.
// @Summary Upsert billing record
// @Description Writes utility usage for a month; costs are derived from the current rates.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body BillingRecordRequest true "Billing record payload"
// @Success 200 {object} router.successResponse{data=BillingRecordResponse} "Stored record"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/records [put]
func (h *HTTPEndpoint) UpsertRecord(r *router.Request) (any, error) {
	var req BillingRecordRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	rec, err := h.uc.UpsertRecord(r.Context(), usecase.UpsertRecordInput{
		YearMonth:        req.YearMonth,
		ElectricityUsage: req.ElectricityUsage,
		ColdWaterUsage:   req.ColdWaterUsage,
		HotWaterUsage:    req.HotWaterUsage,
	})
	if err != nil {
		return nil, err
	}

	return billingRecordResponseFrom(*rec), nil
}

// GetRecord returns the billing record for a month.
// @Summary Get billing record
// @Description Returns the billing record for the given "YYYY-MM" month.
// @Tags Billing
// @Produce json
// @Param yearMonth path string true "Month key (YYYY-MM)"
// @Success 200 {object} router.successResponse{data=BillingRecordResponse} "Billing record"
// @Failure 404 {object} router.errorResponse "Record not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/records/{yearMonth} [get]
func (h *HTTPEndpoint) GetRecord(r *router.Request) (any, error) {
	rec, err := h.uc.GetRecord(r.Context(), r.GetParam("yearMonth"))
	if err != nil {
		return nil, err
	}

	return billingRecordResponseFrom(*rec), nil
}

// MarkRecordPaid flips the paid flag on a billing record.
// @Summary Mark billing record paid
// @Description Marks the billing record for a month as paid or unpaid.
// @Tags Billing
// @Accept json
// @Param yearMonth path string true "Month key (YYYY-MM)"
// @Param request body MarkRecordPaidRequest true "Paid flag payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Record not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/billing/records/{yearMonth}/paid [patch]
func (h *HTTPEndpoint) MarkRecordPaid(r *router.Request) (any, error) {
	var req MarkRecordPaidRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.MarkRecordPaid(r.Context(), usecase.MarkRecordPaidInput{
		YearMonth: r.GetParam("yearMonth"),
		IsPaid:    req.IsPaid,
	})
}
