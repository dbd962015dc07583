package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
type HealthHandler struct {
	dbPing func() error // checks database connectivity, typically db.Ping
}

// NewHealthHandler constructs a HealthHandler with the provided dbPing function.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the health and readiness endpoints into the provided router.
//
// Routes:
//   - GET /healthz: always returns 200 OK.
//   - GET /readyz: 200 OK if dbPing succeeds, 503 if the database is unreachable.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
