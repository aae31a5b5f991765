package handlers

import (
	"net/http"

	authMiddleware "clubmanager-api/packages/auth/middleware"
	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

type updateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member admin"`
}

// GetMembers lists club members
// @Summary List club members
// @Description List the memberships of a club; requires membership
// @Tags memberships
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedMembershipsResponse
// @Failure 403 {object} map[string]string
// @Router /clubs/{id}/members [get]
func (h *MembershipHandler) GetMembers(c *gin.Context) {
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

	result, err := h.membershipService.GetMembers(clubID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateMemberRole changes a member's club role
// @Summary Update member role
// @Description Promote or demote a member; requires admin
// @Tags memberships
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param userId path int true "User ID"
// @Param request body updateMemberRoleRequest true "New role"
// @Success 200 {object} models.Membership
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id}/members/{userId} [patch]
func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	callerID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberUserID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(callerID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	var req updateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument(err.Error()))
		return
	}

	membership, err := h.membershipService.UpdateMemberRole(clubID, memberUserID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveMember removes a member from the club
// @Summary Remove member
// @Description Remove a member from the club; requires admin
// @Tags memberships
// @Security BearerAuth
// @Produce json
// @Param id path int true "Club ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id}/members/{userId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	callerID, _ := authMiddleware.GetUserID(c)
	clubID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberUserID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if _, err := h.membershipService.Authorize(callerID, clubID, models.ClubRoleAdmin); err != nil {
		respondError(c, err)
		return
	}

	if err := h.membershipService.RemoveMember(clubID, memberUserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
