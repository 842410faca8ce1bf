package httpserver

import (
	"github.com/gin-gonic/gin"

	"fms-dashboard/pkg/response"
)

const (
	HealthMessage = "FMS dashboard API"
	HealthVersion = "1.0.0"
	ServiceName   = "fms-dashboard"
)

// healthStatus is the body shared by the probe routes.
type healthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	Store     string `json:"store,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	Assistant bool   `json:"assistant"`
}

func (srv HTTPServer) status(s string) healthStatus {
	return healthStatus{
		Status:    s,
		Message:   HealthMessage,
		Version:   HealthVersion,
		Service:   ServiceName,
		Store:     srv.storeDriver,
		Timezone:  srv.timezone,
		Assistant: srv.assistantUC != nil,
	}
}

// healthCheck reports the configured store and whether the assistant routes are mounted.
// @Summary Health Check
// @Description Service identity, task store driver, calendar timezone and assistant availability
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.status("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
