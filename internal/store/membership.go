package store

import (
	"time"

	"github.com/fashioncollab/fashioncollab/internal/models"
	"gorm.io/gorm"
)

type MembershipStore struct {
	db *gorm.DB
}

func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func (s *MembershipStore) Find(projectID, userID uint) (*models.ProjectMembership, error) {
	var membership models.ProjectMembership

	err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&membership).Error

	if err != nil {
		return nil, translate(err)
	}

	return &membership, nil
}

// Create inserts the membership row. The composite unique index on
// (project_id, user_id) rejects duplicates regardless of any check the
// caller did first; the violation comes back as ErrDuplicate.
func (s *MembershipStore) Create(membership *models.ProjectMembership) error {
	return translate(s.db.Create(membership).Error)
}

// Accept performs the conditional update that decides the accept race:
// only a row still pending at execution time is written, and the affected
// count tells the caller whether it won.
func (s *MembershipStore) Accept(membershipID uint, at time.Time) (int64, error) {
	result := s.db.Model(&models.ProjectMembership{}).
		Where("id = ? AND accepted_at IS NULL", membershipID).
		Update("accepted_at", at)

	if result.Error != nil {
		return 0, translate(result.Error)
	}

	return result.RowsAffected, nil
}

func (s *MembershipStore) ListAccepted(userID uint) ([]models.ProjectMembership, error) {
	var memberships []models.ProjectMembership

	err := s.db.Where("user_id = ? AND accepted_at IS NOT NULL", userID).Find(&memberships).Error

	if err != nil {
		return nil, translate(err)
	}

	return memberships, nil
}
