package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"hr-agent-system/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "HR Assistant API"
	HealthVersion = "1.0.0"
	ServiceName   = "hr-agent-system"

	pingTimeout = 2 * time.Second
)

// Component states reported by /ready and /api/system/status.
const (
	componentUp       = "up"
	componentDown     = "down"
	componentDisabled = "disabled"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the record store and, when configured, Redis.
// @Summary Readiness Check
// @Description Check if the API and its storage are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	components := srv.pingComponents(c.Request.Context())

	for _, state := range components {
		if state == componentDown {
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "Service not ready",
				Data: gin.H{
					"status":     "not_ready",
					"components": components,
				},
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":     "ready",
		"service":    ServiceName,
		"components": components,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// pingComponents checks storage dependencies concurrently.
func (srv HTTPServer) pingComponents(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	database, redis := componentUp, componentDisabled
	var g errgroup.Group
	g.Go(func() error {
		if err := srv.db.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.pingComponents database: %v", err)
			database = componentDown
		}
		return nil
	})
	if srv.redis != nil {
		g.Go(func() error {
			redis = componentUp
			if err := srv.redis.Ping(ctx).Err(); err != nil {
				srv.l.Warnf(ctx, "httpserver.pingComponents redis: %v", err)
				redis = componentDown
			}
			return nil
		})
	}
	_ = g.Wait()

	return map[string]string{
		"database": database,
		"redis":    redis,
	}
}
