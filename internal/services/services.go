// Package services holds the membership engine and the project access
// service. Both take their dependencies as interfaces so tests can swap in
// fakes or a throwaway database; the gorm stores in internal/store are the
// production implementations.
package services

import (
	"time"

	"github.com/fashioncollab/fashioncollab/internal/models"
)

type ProjectStore interface {
	Create(project *models.Project) error
	FindOwned(projectID, ownerID uint) (*models.Project, error)
	ListOwned(ownerID uint) ([]models.Project, error)
	ListByIDs(ids []uint) ([]models.Project, error)
	UpdateFields(project *models.Project, fields map[string]interface{}) error
	Delete(project *models.Project) error
}

type MembershipStore interface {
	Find(projectID, userID uint) (*models.ProjectMembership, error)
	Create(membership *models.ProjectMembership) error
	Accept(membershipID uint, at time.Time) (int64, error)
	ListAccepted(userID uint) ([]models.ProjectMembership, error)
}

// IdentityGateway resolves an invitee's email to a user. In production this
// is the user store; the engine only ever needs the lookup.
type IdentityGateway interface {
	FindByEmail(email string) (*models.User, error)
}
