package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService      *services.StatsService
	membershipService *services.MembershipService
}

func NewStatsHandler(statsService *services.StatsService, membershipService *services.MembershipService) *StatsHandler {
	return &StatsHandler{
		statsService:      statsService,
		membershipService: membershipService,
	}
}

// GetClubStats retrieves the club dashboard counters
// @Summary Get club statistics
// @Description Get club-level counters for the dashboard; requires membership
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} models.ClubStats
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /clubs/{id}/stats [get]
func (h *StatsHandler) GetClubStats(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.statsService.GetClubStats(clubID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
