package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService       *services.ClubService
	membershipService *services.MembershipService
	invitationService *services.InvitationService
}

func NewClubHandler(clubService *services.ClubService, membershipService *services.MembershipService, invitationService *services.InvitationService) *ClubHandler {
	return &ClubHandler{
		clubService:       clubService,
		membershipService: membershipService,
		invitationService: invitationService,
	}
}

// CreateClub creates a new club owned by the caller
// @Summary Create a club
// @Description Create a club; the caller becomes its owner
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param club body models.CreateClubRequest true "Club data"
// @Success 201 {object} models.Club
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	club, err := h.clubService.CreateClub(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// JoinClub joins a club via invite code
// @Summary Join a club
// @Description Become a member of the club matching the invite code
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.JoinClubRequest true "Invite code"
// @Success 200 {object} models.Club
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clubs/join [post]
func (h *ClubHandler) JoinClub(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.JoinClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	club, err := h.clubService.JoinClub(userID, req.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetMyClubs lists the caller's clubs
// @Summary List my clubs
// @Description List the clubs the caller is a member of
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedClubsResponse
// @Failure 401 {object} map[string]string
// @Router /clubs [get]
func (h *ClubHandler) GetMyClubs(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, pageSize := parsePagination(c)

	result, err := h.clubService.GetClubsForUser(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetClub returns one club
// @Summary Get club by ID
// @Description Get club information; requires membership
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} models.Club
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleMember); err != nil {
		respondError(c, err)
		return
	}

	club, err := h.clubService.GetClubByID(clubID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// UpdateClub updates club metadata
// @Summary Update club
// @Description Update club name/city; requires the admin role
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param club body models.UpdateClubRequest true "Club update data"
// @Success 200 {object} models.Club
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req models.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	club, err := h.clubService.UpdateClub(clubID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// DeleteClub deletes a club
// @Summary Delete club
// @Description Delete a club; only the owner may do this
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleOwner); err != nil {
		respondError(c, err)
		return
	}

	if err := h.clubService.DeleteClub(clubID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Club deleted successfully"})
}

// InviteMember emails the club invite code
// @Summary Invite a member
// @Description Send the club's invite code to an email address; requires admin
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param request body models.InviteMemberRequest true "Invitee email"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /clubs/{id}/invitations [post]
func (h *ClubHandler) InviteMember(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(userID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	if _, err := h.invitationService.InviteMember(clubID, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
