package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService      *services.MatchService
	teamService       *services.TeamService
	membershipService *services.MembershipService
}

func NewMatchHandler(matchService *services.MatchService, teamService *services.TeamService, membershipService *services.MembershipService) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		teamService:       teamService,
		membershipService: membershipService,
	}
}

func (h *MatchHandler) authorizeMatch(c *gin.Context, role string) (*models.Match, bool) {
	userID, _ := authMiddleware.GetUserID(c)
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	match, err := h.matchService.GetMatchByID(matchID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if _, err := h.membershipService.Authorize(userID, match.ClubID, role); err != nil {
		respondError(c, err)
		return nil, false
	}

	return match, true
}

// CreateMatch schedules a match between two club teams
// @Summary Create a match
// @Description Schedule a match between two teams of the club; requires admin
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id}/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	match, err := h.matchService.CreateMatch(clubID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatchesByClub lists club matches
// @Summary List club matches
// @Description List the matches of a club, optionally filtered by status
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Param status query string false "Filter by match status"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedMatchResponse
// @Failure 403 {object} map[string]string
// @Router /clubs/{id}/matches [get]
func (h *MatchHandler) GetMatchesByClub(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	page, pageSize := parsePagination(c)

	result, err := h.matchService.GetMatchesByClub(clubID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatchesByTeam lists matches for one team
// @Summary List team matches
// @Description List matches where the team played home or away
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedMatchResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/matches [get]
func (h *MatchHandler) GetMatchesByTeam(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.membershipService.Authorize(userID, team.ClubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	page, pageSize := parsePagination(c)

	result, err := h.matchService.GetMatchesByTeam(team.ID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatch returns one match
// @Summary Get match by ID
// @Description Get match information; requires club membership
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, ok := h.authorizeMatch(c, models.ClubRoleMember)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateMatchStatus moves a match along its lifecycle
// @Summary Update match status
// @Description Transition a match between lifecycle statuses; requires admin
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param status body models.UpdateMatchStatusRequest true "New status"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/status [patch]
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	match, ok := h.authorizeMatch(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	updated, err := h.matchService.UpdateStatus(match.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RecordResult stores the final score
// @Summary Record match result
// @Description Record the final score of a match and mark it finished; requires admin
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param result body models.RecordResultRequest true "Final score"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/result [put]
func (h *MatchHandler) RecordResult(c *gin.Context) {
	match, ok := h.authorizeMatch(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	updated, err := h.matchService.RecordResult(match.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMatch deletes a match
// @Summary Delete match
// @Description Delete a match; requires admin
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	match, ok := h.authorizeMatch(c, models.ClubRoleAdmin)
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(match.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}
