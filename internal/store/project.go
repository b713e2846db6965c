package store

import (
	"github.com/fashioncollab/fashioncollab/internal/models"
	"gorm.io/gorm"
)

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(project *models.Project) error {
	return translate(s.db.Create(project).Error)
}

// FindOwned looks a project up by id and owner in one query, so a miss is
// indistinguishable between "absent" and "not yours".
func (s *ProjectStore) FindOwned(projectID, ownerID uint) (*models.Project, error) {
	var project models.Project

	err := s.db.Where("id = ? AND owner_id = ?", projectID, ownerID).First(&project).Error

	if err != nil {
		return nil, translate(err)
	}

	return &project, nil
}

func (s *ProjectStore) ListOwned(ownerID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error

	if err != nil {
		return nil, translate(err)
	}

	return projects, nil
}

func (s *ProjectStore) ListByIDs(ids []uint) ([]models.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var projects []models.Project

	err := s.db.Where("id IN ?", ids).Order("created_at DESC").Find(&projects).Error

	if err != nil {
		return nil, translate(err)
	}

	return projects, nil
}

// UpdateFields applies a partial update and refreshes the struct in place.
func (s *ProjectStore) UpdateFields(project *models.Project, fields map[string]interface{}) error {
	return translate(s.db.Model(project).Updates(fields).Error)
}

func (s *ProjectStore) Delete(project *models.Project) error {
	return translate(s.db.Delete(project).Error)
}
