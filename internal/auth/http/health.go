package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pitwall/pkg/authsdk"
	"github.com/aussiebroadwan/pitwall/pkg/httpx"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	Version string
	Started time.Time

	// Probes run on every readiness request.
	PingStore   func(context.Context) error
	SignerReady func() bool
}

// HandleLivez godoc
//
//	@Summary		Liveness probe
//	@Description	200 OK while the process is serving
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", nil))
}

// HandleReadyz godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the credential store and the session signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"all checks ok"
//	@Failure		503	{object}	authsdk.HealthResponse	"at least one check failed"
//	@Router			/readyz [get].
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	checks := &authsdk.HealthChecks{
		Database: checkStatus(h.PingStore(r.Context())),
		Signer:   "ok",
	}
	if !h.SignerReady() {
		checks.Signer = checkStatus(errors.New("no signing key loaded"))
	}

	if checks.Database != "ok" || checks.Signer != "ok" {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, h.response("degraded", checks))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", checks))
}

func (h *HealthHandler) response(status string, checks *authsdk.HealthChecks) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.Started).Round(time.Second).String(),
		Version: h.Version,
		Checks:  checks,
	}
}

func checkStatus(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
