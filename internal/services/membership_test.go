package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashioncollab/fashioncollab/internal/apperr"
	"github.com/fashioncollab/fashioncollab/internal/models"
)

func TestInvite_CreatesPendingMembership(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	membership, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	assert.Equal(t, project.ID, membership.ProjectID)
	assert.Equal(t, invitee.ID, membership.UserID)
	assert.False(t, membership.Accepted())
	assert.False(t, membership.InvitedAt.IsZero())
}

func TestInvite_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	membership, err := env.memberships.Invite(project.ID, owner.ID, "  Model@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, invitee.ID, membership.UserID)
}

func TestInvite_EmptyEmail(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "   ")
	requireKind(t, err, apperr.KindValidation)
}

func TestInvite_NotOwner(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	// A non-owner gets the same answer as for a project that does not
	// exist at all.
	_, err := env.memberships.Invite(project.ID, stranger.ID, "model@example.com")
	requireKind(t, err, apperr.KindNotFound)

	_, err = env.memberships.Invite(9999, owner.ID, "model@example.com")
	requireKind(t, err, apperr.KindNotFound)
}

func TestInvite_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "nobody@example.com")
	requireKind(t, err, apperr.KindNotFound)
}

func TestInvite_DuplicateIsConflict(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	_, err = env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	requireKind(t, err, apperr.KindConflict)

	var count int64
	require.NoError(t, env.conn.Model(&models.ProjectMembership{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestInvite_AcceptedMemberStillConflicts(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	_, err = env.memberships.Accept(project.ID, invitee.ID)
	require.NoError(t, err)

	_, err = env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	requireKind(t, err, apperr.KindConflict)
}

func TestAccept_SetsAcceptedAt(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	membership, err := env.memberships.Accept(project.ID, invitee.ID)
	require.NoError(t, err)
	require.NotNil(t, membership.AcceptedAt)

	// The write is visible, not just reflected on the returned struct.
	var stored models.ProjectMembership
	require.NoError(t, env.conn.Where("project_id = ? AND user_id = ?", project.ID, invitee.ID).
		First(&stored).Error)
	assert.NotNil(t, stored.AcceptedAt)
}

func TestAccept_NoInvite(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "model@example.com")

	_, err := env.memberships.Accept(1234, user.ID)
	requireKind(t, err, apperr.KindNotFound)
}

func TestAccept_TwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	first, err := env.memberships.Accept(project.ID, invitee.ID)
	require.NoError(t, err)

	_, err = env.memberships.Accept(project.ID, invitee.ID)
	requireKind(t, err, apperr.KindConflict)

	// Row unchanged by the losing call.
	var stored models.ProjectMembership
	require.NoError(t, env.conn.First(&stored, first.ID).Error)
	require.NotNil(t, stored.AcceptedAt)
	assert.WithinDuration(t, *first.AcceptedAt, *stored.AcceptedAt, time.Second)
}

func TestAccept_ConcurrentRaceHasOneWinner(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	errs := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(2)

	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.memberships.Accept(project.ID, invitee.ID)
		}(i)
	}

	wg.Wait()

	var wins, conflicts int

	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		conflicts++
	}

	assert.Equal(t, 1, wins, "exactly one accept must win")
	assert.Equal(t, 1, conflicts, "the loser must see a conflict")

	var count int64
	require.NoError(t, env.conn.Model(&models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ? AND accepted_at IS NOT NULL", project.ID, invitee.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Walks the full lifecycle: invite, accept, visibility in the invitee's
// project list, and the terminal state of the membership row.
func TestMembership_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	invitee := env.createUser(t, "model@example.com")
	project := env.createProject(t, owner.ID, "Spring Shoot")

	_, err := env.memberships.Invite(project.ID, owner.ID, "model@example.com")
	require.NoError(t, err)

	before, err := env.projects.ListForUser(invitee.ID)
	require.NoError(t, err)
	assert.Empty(t, before, "a pending invite must not grant access")

	_, err = env.memberships.Accept(project.ID, invitee.ID)
	require.NoError(t, err)

	after, err := env.projects.ListForUser(invitee.ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, project.ID, after[0].ID)

	_, err = env.memberships.Accept(project.ID, invitee.ID)
	requireKind(t, err, apperr.KindConflict)
}
