package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"readshelf-share/pkg/response"
)

const (
	ServiceName    = "readshelf-share"
	ServiceVersion = "1.0.0"

	readyTimeout = 3 * time.Second
)

type probeResp struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// healthCheck reports that the process is up.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeResp{Status: "healthy", Service: ServiceName, Version: ServiceVersion})
}

// liveCheck reports that the router still answers.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeResp{Status: "alive", Service: ServiceName, Version: ServiceVersion})
}

// readyCheck probes the notes backend. The gateway cannot resolve anything without it.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	resp := probeResp{
		Status:  "ready",
		Service: ServiceName,
		Version: ServiceVersion,
		Checks:  map[string]string{"backend": "ok"},
	}
	if err := srv.backend.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: backend unreachable: %v", err)
		resp.Status = "not_ready"
		resp.Checks["backend"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Backend unavailable",
			Data:      resp,
		})
		return
	}
	response.OK(c, resp)
}
