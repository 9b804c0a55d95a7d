package handler

import (
	"crypto/subtle"
	"net/http"

	"team-pulse/internal/logger"
	"team-pulse/internal/service"

	"github.com/gin-gonic/gin"
)

// JobsHandler exposes the cron-triggered batch endpoints. An external
// scheduler hits them with a shared secret; there is no in-process timer.
type JobsHandler struct {
	risk      *service.RiskService
	retention *service.RetentionService
	secret    string
}

func NewJobsHandler(risk *service.RiskService, retention *service.RetentionService, secret string) *JobsHandler {
	return &JobsHandler{risk: risk, retention: retention, secret: secret}
}

func (h *JobsHandler) verify(c *gin.Context) bool {
	if h.secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cron secret not configured"})
		return false
	}
	if subtle.ConstantTimeCompare([]byte(c.Query("secret")), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid cron secret"})
		return false
	}
	return true
}

// POST /jobs/daily-risk?secret=...
func (h *JobsHandler) DailyRisk(c *gin.Context) {
	if !h.verify(c) {
		return
	}
	scored, failed, err := h.risk.RescoreAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("jobs.daily_risk", "scored", scored, "failed", failed)
	c.JSON(http.StatusOK, gin.H{"teams_scored": scored, "teams_failed": failed})
}

// POST /jobs/retention?secret=...
func (h *JobsHandler) Retention(c *gin.Context) {
	if !h.verify(c) {
		return
	}
	removed, err := h.retention.PurgeExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkins_removed": removed})
}
