package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/pkg/httpx"
	"github.com/aussiebroadwan/scheduler/pkg/schedsdk"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe returning uptime, version and the database status.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	schedsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	schedsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &schedsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness: database ping failed", "error", err)
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, schedsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
