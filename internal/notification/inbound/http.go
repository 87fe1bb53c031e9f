package inbound

import (
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
)

// RegisterHTTPEndpoint mounts the notification endpoints. The cron trigger
// routes are guarded by a shared secret so only the external scheduler can
// fire them.
func RegisterHTTPEndpoint(r *router.Router, uc uc, cronSecret string) {
	end := &HTTPEndpoint{uc: uc}

	guard := router.MiddlewareSharedSecret(cronSecret)
	r.GET("/api/v1/cron/daily", end.RunDaily, guard)
	r.GET("/api/v1/cron/monthly", end.RunMonthly, guard)

	r.GET("/api/v1/notification/history", end.ListHistory)

	r.GET("/api/v1/notification/transport", end.GetTransport)
	r.PUT("/api/v1/notification/transport", end.UpdateTransport)
	r.POST("/api/v1/notification/transport/test", end.TestTransport)

	r.GET("/api/v1/notification/settings", end.GetSettings)
	r.PUT("/api/v1/notification/settings", end.UpdateSettings)

	r.GET("/api/v1/notification/recipient", end.GetRecipient)
	r.PUT("/api/v1/notification/recipient", end.UpdateRecipient)

	r.POST("/api/v1/notification/send/payment-reminder", end.SendPaymentReminder)
	r.POST("/api/v1/notification/send/test", end.SendTestMessage)
	r.POST("/api/v1/notification/send/system", end.SendSystemNotification)
}
