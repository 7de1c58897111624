package http

import (
	"net/http"
	"time"

	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Reports that the process is up, along with uptime and build version.
//	@Description	Always answers 200 while the service is running; dependency health lives in /readyz.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shopsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, shopsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
