package inbound

import (
	"github.com/shandysiswandi/renttrack/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/billing/settings", end.GetSettings)
	r.PUT("/api/v1/billing/settings", end.UpdateSettings)

	r.GET("/api/v1/billing/records", end.ListRecords)
	r.PUT("/api/v1/billing/records", end.UpsertRecord)
	r.GET("/api/v1/billing/records/:yearMonth", end.GetRecord)
	r.PATCH("/api/v1/billing/records/:yearMonth/paid", end.MarkRecordPaid)
}
