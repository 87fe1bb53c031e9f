package inbound

import (
	"github.com/shandysiswandi/renttrack/internal/notification/usecase"
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// RunDaily fires the daily notification tick.
// @Summary Run daily tick
// @Description Evaluates and delivers payment and overdue reminders for today.
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=DailyRunResponse} "Tick result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/cron/daily [get]
func (h *HTTPEndpoint) RunDaily(r *router.Request) (any, error) {
	out, err := h.uc.RunDaily(r.Context())
	if err != nil {
		return nil, err
	}

	return DailyRunResponse{
		Skipped:          out.Skipped,
		Reason:           out.Reason,
		PaymentReminders: out.PaymentReminders,
		OverdueReminders: out.OverdueReminders,
		Errors:           out.Errors,
	}, nil
}

// RunMonthly fires the monthly bill tick.
// @Summary Run monthly tick
// @Description Delivers the bill for the previous calendar month when a billing record exists.
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=MonthlyRunResponse} "Tick result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/cron/monthly [get]
func (h *HTTPEndpoint) RunMonthly(r *router.Request) (any, error) {
	out, err := h.uc.RunMonthly(r.Context())
	if err != nil {
		return nil, err
	}

	return MonthlyRunResponse{
		Skipped:      out.Skipped,
		Reason:       out.Reason,
		YearMonth:    out.YearMonth,
		MonthlyBills: out.MonthlyBills,
		Errors:       out.Errors,
	}, nil
}

// ListHistory pages through the delivery ledger.
// @Summary List delivery history
// @Description Returns delivery records, newest first.
// @Tags Notification
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} router.successResponse{data=HistoryResponse} "Delivery history"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/history [get]
func (h *HTTPEndpoint) ListHistory(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	pageSize, err := r.GetQueryInt32("page_size")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.ListHistory(r.Context(), usecase.ListHistoryInput{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, err
	}

	records := make([]DeliveryRecordResponse, 0, len(out.Records))
	for _, rec := range out.Records {
		records = append(records, deliveryRecordResponseFrom(rec))
	}

	return HistoryResponse{
		Page:       out.Page,
		PageSize:   out.PageSize,
		Total:      out.Total,
		TotalPages: out.TotalPages,
		Records:    records,
	}, nil
}

// GetTransport returns the stored SMTP transport config without its secret.
// @Summary Get email transport
// @Description Returns the SMTP transport config; the secret is never echoed.
// @Tags Notification
// @Produce json
// @Success 200 {object} router.successResponse{data=TransportResponse} "Transport config"
// @Failure 404 {object} router.errorResponse "Transport not configured"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/transport [get]
func (h *HTTPEndpoint) GetTransport(r *router.Request) (any, error) {
	out, err := h.uc.GetTransport(r.Context())
	if err != nil {
		return nil, err
	}

	return TransportResponse{
		Host:          out.Host,
		Port:          out.Port,
		UseTLS:        out.UseTLS,
		Username:      out.Username,
		SenderName:    out.SenderName,
		SenderAddress: out.SenderAddress,
	}, nil
}

// UpdateTransport writes the SMTP transport config.
// @Summary Update email transport
// @Description Upserts the SMTP transport config. An empty secret keeps the stored one.
// @Tags Notification
// @Accept json
// @Param request body TransportRequest true "Transport payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/transport [put]
func (h *HTTPEndpoint) UpdateTransport(r *router.Request) (any, error) {
	var req TransportRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.UpdateTransport(r.Context(), usecase.UpdateTransportInput{
		Host:          req.Host,
		Port:          req.Port,
		UseTLS:        req.UseTLS,
		Username:      req.Username,
		Secret:        req.Secret,
		SenderName:    req.SenderName,
		SenderAddress: req.SenderAddress,
	})
}

// TestTransport verifies an SMTP session without sending.
// @Summary Test email transport
// @Description Verifies the candidate config from the body, or the stored one when no host is given.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body TransportRequest false "Candidate transport payload"
// @Success 200 {object} router.successResponse{data=SendResponse} "Verification result"
// @Failure 422 {object} router.errorResponse "Verification failed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/transport/test [post]
func (h *HTTPEndpoint) TestTransport(r *router.Request) (any, error) {
	var req TransportRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.TestTransport(r.Context(), transportRequestToTest(req))
	if err != nil {
		return nil, err
	}

	return SendResponse{Message: out.Message}, nil
}

// GetSettings returns the notification rule toggles.
// @Summary Get notification settings
// @Description Returns the rule toggles; defaults apply until first write.
// @Tags Notification
// @Produce json
// @Success 200 {object} router.successResponse{data=NotificationSettingsResponse} "Notification settings"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/settings [get]
func (h *HTTPEndpoint) GetSettings(r *router.Request) (any, error) {
	cfg, err := h.uc.GetSettings(r.Context())
	if err != nil {
		return nil, err
	}

	return NotificationSettingsResponse{
		PaymentReminderEnabled:    cfg.PaymentReminderEnabled,
		PaymentReminderLeadDays:   cfg.PaymentReminderLeadDays,
		OverdueReminderEnabled:    cfg.OverdueReminderEnabled,
		MonthlyBillEnabled:        cfg.MonthlyBillEnabled,
		SystemNotificationEnabled: cfg.SystemNotificationEnabled,
	}, nil
}

// UpdateSettings writes the notification rule toggles.
// @Summary Update notification settings
// @Description Upserts the rule toggles and reminder lead days.
// @Tags Notification
// @Accept json
// @Param request body NotificationSettingsRequest true "Settings payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/settings [put]
func (h *HTTPEndpoint) UpdateSettings(r *router.Request) (any, error) {
	var req NotificationSettingsRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.UpdateSettings(r.Context(), usecase.UpdateSettingsInput{
		PaymentReminderEnabled:    req.PaymentReminderEnabled,
		PaymentReminderLeadDays:   req.PaymentReminderLeadDays,
		OverdueReminderEnabled:    req.OverdueReminderEnabled,
		MonthlyBillEnabled:        req.MonthlyBillEnabled,
		SystemNotificationEnabled: req.SystemNotificationEnabled,
	})
}

// GetRecipient returns the notification recipient address.
// @Summary Get recipient
// @Description Returns the configured notification recipient.
// @Tags Notification
// @Produce json
// @Success 200 {object} router.successResponse{data=RecipientResponse} "Recipient"
// @Failure 404 {object} router.errorResponse "Recipient not configured"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/recipient [get]
func (h *HTTPEndpoint) GetRecipient(r *router.Request) (any, error) {
	out, err := h.uc.GetRecipient(r.Context())
	if err != nil {
		return nil, err
	}

	return RecipientResponse{Address: out.Address}, nil
}

// UpdateRecipient writes the notification recipient address.
// @Summary Update recipient
// @Description Upserts the notification recipient email address.
// @Tags Notification
// @Accept json
// @Param request body RecipientRequest true "Recipient payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/recipient [put]
func (h *HTTPEndpoint) UpdateRecipient(r *router.Request) (any, error) {
	var req RecipientRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.UpdateRecipient(r.Context(), usecase.UpdateRecipientInput{Address: req.Address})
}

// SendPaymentReminder delivers a payment reminder immediately.
// @Summary Send payment reminder now
// @Description Delivers a payment reminder regardless of the lead-day rule.
// @Tags Notification
// @Produce json
// @Success 200 {object} router.successResponse{data=SendResponse} "Send result"
// @Failure 422 {object} router.errorResponse "Preconditions not met"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/send/payment-reminder [post]
func (h *HTTPEndpoint) SendPaymentReminder(r *router.Request) (any, error) {
	out, err := h.uc.SendPaymentReminderNow(r.Context())
	if err != nil {
		return nil, err
	}

	return SendResponse{Message: out.Message}, nil
}

// SendTestMessage delivers a probe email through the stored transport.
// @Summary Send test message
// @Description Delivers a short test email to the configured recipient.
// @Tags Notification
// @Produce json
// @Success 200 {object} router.successResponse{data=SendResponse} "Send result"
// @Failure 422 {object} router.errorResponse "Preconditions not met"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/send/test [post]
func (h *HTTPEndpoint) SendTestMessage(r *router.Request) (any, error) {
	out, err := h.uc.SendTestMessage(r.Context())
	if err != nil {
		return nil, err
	}

	return SendResponse{Message: out.Message}, nil
}

// SendSystemNotification delivers an operational notice.
// @Summary Send system notification
// @Description Delivers an operational notice to the configured recipient.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body SystemNotificationRequest true "Notice payload"
// @Success 200 {object} router.successResponse{data=SendResponse} "Send result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notification/send/system [post]
func (h *HTTPEndpoint) SendSystemNotification(r *router.Request) (any, error) {
	var req SystemNotificationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.SendSystemNotification(r.Context(), usecase.SendSystemNotificationInput{
		Message: req.Message,
		Details: req.Details,
	})
	if err != nil {
		return nil, err
	}

	return SendResponse{Message: out.Message}, nil
}
