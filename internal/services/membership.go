package services

import (
	"errors"
	"strings"
	"time"

	"github.com/fashioncollab/fashioncollab/internal/apperr"
	"github.com/fashioncollab/fashioncollab/internal/models"
	"github.com/fashioncollab/fashioncollab/internal/store"
)

// MembershipService owns the invite/accept state machine. Per
// (project, user) pair a membership goes NO_RECORD -> PENDING -> ACCEPTED
// and never back; both race-sensitive transitions are decided by the
// storage layer (unique index for the insert, conditional update for the
// accept), not by the checks done here first.
type MembershipService struct {
	projects    ProjectStore
	memberships MembershipStore
	identity    IdentityGateway
}

func NewMembershipService(projects ProjectStore, memberships MembershipStore, identity IdentityGateway) *MembershipService {
	return &MembershipService{
		projects:    projects,
		memberships: memberships,
		identity:    identity,
	}
}

// Invite creates a pending membership for the user behind email. Only the
// project owner may invite; a miss on the ownership lookup reads the same
// whether the project is absent or belongs to someone else.
func (s *MembershipService) Invite(projectID, ownerID uint, email string) (*models.ProjectMembership, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return nil, apperr.Validation("Email is required")
	}

	if _, err := s.projects.FindOwned(projectID, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Upstream("failed to check project ownership", err)
	}

	invitee, err := s.identity.FindByEmail(email)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("No user with that email")
		}
		return nil, apperr.Upstream("failed to resolve invitee", err)
	}

	// Fast path only; the unique index below is the real guard.
	_, err = s.memberships.Find(projectID, invitee.ID)

	if err == nil {
		return nil, apperr.Conflict("User is already invited or a member")
	}

	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Upstream("failed to check existing membership", err)
	}

	membership := &models.ProjectMembership{
		ProjectID: projectID,
		UserID:    invitee.ID,
		InvitedAt: time.Now(),
	}

	if err := s.memberships.Create(membership); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("User is already invited or a member")
		}
		return nil, apperr.Upstream("failed to create membership", err)
	}

	return membership, nil
}

// Accept transitions the caller's pending invite to accepted. The
// conditional update is the sole authority: when two accepts race on one
// pending row, exactly one sees an affected count of 1 and the loser gets
// a conflict even though its lookup succeeded.
func (s *MembershipService) Accept(projectID, userID uint) (*models.ProjectMembership, error) {
	membership, err := s.memberships.Find(projectID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("No pending invite for this project")
		}
		return nil, apperr.Upstream("failed to look up invite", err)
	}

	if membership.Accepted() {
		return nil, apperr.Conflict("Invite already accepted")
	}

	now := time.Now()

	affected, err := s.memberships.Accept(membership.ID, now)

	if err != nil {
		return nil, apperr.Upstream("failed to accept invite", err)
	}

	if affected == 0 {
		return nil, apperr.Conflict("Invite already accepted or unavailable")
	}

	membership.AcceptedAt = &now

	return membership, nil
}
