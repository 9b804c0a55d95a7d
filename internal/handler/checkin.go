package handler

import (
	"errors"
	"net/http"

	"team-pulse/internal/logger"
	"team-pulse/internal/model"
	"team-pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckinHandler struct{ svc *service.CheckinService }

func NewCheckinHandler(svc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

// GET /checkin/:token
// Lets the form page validate a token before showing anything.
func (h *CheckinHandler) Validate(c *gin.Context) {
	_, team, err := h.svc.ResolveToken(c.Request.Context(), c.Param("token"))
	if errors.Is(err, service.ErrInvalidToken) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team.Name})
}

// POST /checkin/:token  body: {"mood":1-5,"stress":1-5,"comment":"..."}
func (h *CheckinHandler) Submit(c *gin.Context) {
	var req model.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	team, err := h.svc.Submit(c.Request.Context(), c.Param("token"), req)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid token"})
		return
	case errors.Is(err, service.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logger.Error("checkin failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "team": team.Name})
}
