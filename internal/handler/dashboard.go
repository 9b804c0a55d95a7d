package handler

import (
	"net/http"
	"strconv"

	"team-pulse/internal/model"
	"team-pulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db        *gorm.DB
	analytics *service.AnalyticsService
}

func NewDashboardHandler(db *gorm.DB, analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{db: db, analytics: analytics}
}

// resolveTeam enforces tenancy: org admins see any team in their org,
// team leads only their own.
func (h *DashboardHandler) resolveTeam(c *gin.Context) (*model.Team, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return nil, false
	}

	var team model.Team
	if err := h.db.Where("id = ? AND org_id = ?", id, c.GetInt("org_id")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return nil, false
	}

	role := c.GetString("user_role")
	if role != "org_admin" && c.GetInt("team_id") != team.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access other teams"})
		return nil, false
	}
	return &team, true
}

// GET /api/teams/:id/metrics
func (h *DashboardHandler) Metrics(c *gin.Context) {
	team, ok := h.resolveTeam(c)
	if !ok {
		return
	}
	view, err := h.analytics.TeamMetrics(c.Request.Context(), team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/teams/:id/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	team, ok := h.resolveTeam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	view, err := h.analytics.TeamMetrics(ctx, team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !view.Available {
		// Not enough respondents: expose nothing but the gate itself.
		c.JSON(http.StatusOK, gin.H{
			"available":        false,
			"respondent_count": view.RespondentCount,
		})
		return
	}

	series, err := h.analytics.DashboardSeries(ctx, team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": view, "series": series})
}
