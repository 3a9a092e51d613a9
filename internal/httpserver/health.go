package httpserver

import (
	"net/http"

	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Dashboard API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "dashboard-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the loaded snapshot and checks the optional backends.
// @Summary Readiness Check
// @Description Report the loaded source tables and ping Redis, MinIO and Kafka when configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A backend is unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	backends := gin.H{}
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			notReady(c, "Redis connection failed", err)
			return
		}
		backends["redis"] = "connected"
	}
	if srv.minioClient != nil {
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			notReady(c, "MinIO connection failed", err)
			return
		}
		backends["minio"] = "connected"
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			notReady(c, "Kafka producer failed", err)
			return
		}
		backends["kafka"] = "connected"
	}

	response.OK(c, gin.H{
		"status":      "ready",
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"loaded_at":   util.DateTimeToStr(srv.snapshot.LoadedAt()),
		"fingerprint": srv.snapshot.Fingerprint(),
		"log_rows":    len(srv.snapshot.Logs()),
		"config_rows": len(srv.snapshot.Configs()),
		"team_rows":   len(srv.snapshot.Team()),
		"backends":    backends,
	})
}

func notReady(c *gin.Context, message string, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": message,
		"error":   err.Error(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
