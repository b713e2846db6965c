package services

import (
	"errors"
	"sort"

	"github.com/fashioncollab/fashioncollab/internal/apperr"
	"github.com/fashioncollab/fashioncollab/internal/models"
	"github.com/fashioncollab/fashioncollab/internal/store"
)

// ProjectService is the ownership-gated CRUD surface around projects.
// Field validation happens in the transport layer before these are called.
type ProjectService struct {
	projects    ProjectStore
	memberships MembershipStore
}

func NewProjectService(projects ProjectStore, memberships MembershipStore) *ProjectService {
	return &ProjectService{
		projects:    projects,
		memberships: memberships,
	}
}

func (s *ProjectService) Create(ownerID uint, project *models.Project) (*models.Project, error) {
	project.OwnerID = ownerID

	if project.Status == "" {
		project.Status = models.StatusDraft
	}

	if err := s.projects.Create(project); err != nil {
		return nil, apperr.Upstream("failed to create project", err)
	}

	return project, nil
}

// ListForUser returns the union of projects the user owns and projects
// they joined through an accepted invite, deduplicated by project id and
// re-sorted by creation time, newest first.
func (s *ProjectService) ListForUser(userID uint) ([]models.Project, error) {
	owned, err := s.projects.ListOwned(userID)

	if err != nil {
		return nil, apperr.Upstream("failed to list owned projects", err)
	}

	memberships, err := s.memberships.ListAccepted(userID)

	if err != nil {
		return nil, apperr.Upstream("failed to list memberships", err)
	}

	ids := make([]uint, 0, len(memberships))

	for _, m := range memberships {
		ids = append(ids, m.ProjectID)
	}

	joined, err := s.projects.ListByIDs(ids)

	if err != nil {
		return nil, apperr.Upstream("failed to list joined projects", err)
	}

	seen := make(map[uint]bool, len(owned)+len(joined))
	merged := make([]models.Project, 0, len(owned)+len(joined))

	for _, p := range append(owned, joined...) {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}

func (s *ProjectService) Update(projectID, userID uint, fields map[string]interface{}) (*models.Project, error) {
	if len(fields) == 0 {
		return nil, apperr.Validation("At least one field must be provided")
	}

	project, err := s.projects.FindOwned(projectID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Upstream("failed to look up project", err)
	}

	if err := s.projects.UpdateFields(project, fields); err != nil {
		return nil, apperr.Upstream("failed to update project", err)
	}

	return project, nil
}

func (s *ProjectService) Delete(projectID, userID uint) error {
	project, err := s.projects.FindOwned(projectID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Project not found")
		}
		return apperr.Upstream("failed to look up project", err)
	}

	if err := s.projects.Delete(project); err != nil {
		return apperr.Upstream("failed to delete project", err)
	}

	return nil
}
