package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fashioncollab/fashioncollab/internal/models"
	"github.com/fashioncollab/fashioncollab/internal/services"
	"github.com/fashioncollab/fashioncollab/internal/utils"
)

type InviteRequest struct {
	Email string `json:"email" binding:"required"`
}

type MembershipResponse struct {
	ID         uint       `json:"id"`
	ProjectID  uint       `json:"project_id"`
	UserID     uint       `json:"user_id"`
	InvitedAt  time.Time  `json:"invited_at"`
	AcceptedAt *time.Time `json:"accepted_at"`
}

func toMembershipResponse(m *models.ProjectMembership) MembershipResponse {
	return MembershipResponse{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		UserID:     m.UserID,
		InvitedAt:  m.InvitedAt,
		AcceptedAt: m.AcceptedAt,
	}
}

type MembershipHandler struct {
	memberships *services.MembershipService
}

func NewMembershipHandler(memberships *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

func (h *MembershipHandler) Invite(ctx *gin.Context) {
	projectID, ok := projectIDParam(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body InviteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	membership, err := h.memberships.Invite(projectID, userID, body.Email)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Invitation sent",
		"membership": toMembershipResponse(membership),
	})
}

func (h *MembershipHandler) Accept(ctx *gin.Context) {
	projectID, ok := projectIDParam(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	membership, err := h.memberships.Accept(projectID, userID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Invitation accepted",
		"membership": toMembershipResponse(membership),
	})
}
