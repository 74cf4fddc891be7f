package services

import (
	"time"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/store"
	"worklog/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	store     store.Store
	validator *validation.ProjectValidator
	now       func() time.Time
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(st store.Store) ProjectService {
	return &projectServiceImpl{
		store:     st,
		validator: validation.NewProjectValidator(),
		now:       time.Now,
	}
}

func (s *projectServiceImpl) load() []*domain.Project {
	return loadCollection[domain.Project](s.store, store.KeyProjects)
}

func (s *projectServiceImpl) save(projects []*domain.Project) error {
	return saveCollection(s.store, store.KeyProjects, projects)
}

func findProject(projects []*domain.Project, id string) (*domain.Project, int) {
	for i, p := range projects {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// Create validates and persists a new project.
func (s *projectServiceImpl) Create(input NewProject) (*domain.Project, error) {
	now := s.now()
	project := &domain.Project{
		ID:          domain.NewID(),
		Name:        input.Name,
		Client:      input.Client,
		Description: input.Description,
		Color:       input.Color,
		HourlyRate:  input.HourlyRate,
		Tags:        input.Tags,
		IsActive:    true,
		ParentID:    input.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.validator.ValidateForCreation(project); err != nil {
		return nil, err
	}

	projects := s.load()
	if project.ParentID != "" {
		parent, _ := findProject(projects, project.ParentID)
		if err := s.validator.ValidateParent(parent); err != nil {
			return nil, err
		}
	}

	projects = append(projects, project)
	if err := s.save(projects); err != nil {
		return nil, err
	}
	return project, nil
}

// Get retrieves a project by ID.
func (s *projectServiceImpl) Get(id string) (*domain.Project, error) {
	project, _ := findProject(s.load(), id)
	if project == nil {
		return nil, errors.NewNotFoundError("project", id)
	}
	return project, nil
}

// List returns all projects in insertion order.
func (s *projectServiceImpl) List() ([]*domain.Project, error) {
	return s.load(), nil
}

// Subprojects returns the sub-projects of the given parent.
func (s *projectServiceImpl) Subprojects(parentID string) ([]*domain.Project, error) {
	subs := make([]*domain.Project, 0)
	for _, p := range s.load() {
		if p.ParentID == parentID {
			subs = append(subs, p)
		}
	}
	return subs, nil
}

// Update applies a partial update and refreshes the updated timestamp.
func (s *projectServiceImpl) Update(id string, patch ProjectPatch) (*domain.Project, error) {
	projects := s.load()
	project, idx := findProject(projects, id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("project", id)
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Client != nil {
		project.Client = *patch.Client
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Color != nil {
		project.Color = *patch.Color
	}
	if patch.HourlyRate != nil {
		project.HourlyRate = patch.HourlyRate
	}
	if patch.Tags != nil {
		project.Tags = patch.Tags
	}
	if patch.IsActive != nil {
		project.IsActive = *patch.IsActive
	}
	if patch.ParentID != nil {
		if err := s.validateReparent(projects, project, *patch.ParentID); err != nil {
			return nil, err
		}
		project.ParentID = *patch.ParentID
	}

	if err := s.validator.ValidateForCreation(project); err != nil {
		return nil, err
	}

	project.UpdatedAt = s.now()
	if err := s.save(projects); err != nil {
		return nil, err
	}
	return project, nil
}

// validateReparent enforces the single-level hierarchy on parent changes: the
// new parent must exist and be a top-level project, and a project that has
// sub-projects of its own may not become a sub-project.
func (s *projectServiceImpl) validateReparent(projects []*domain.Project, project *domain.Project, parentID string) error {
	if parentID == "" {
		return nil
	}
	parent, _ := findProject(projects, parentID)
	if err := s.validator.ValidateParent(parent); err != nil {
		return err
	}
	for _, p := range projects {
		if p.ParentID == project.ID {
			return errors.NewInvalidStateError("update project",
				"a project with sub-projects cannot become a sub-project")
		}
	}
	return nil
}

// Delete removes a project. Historical time entries referencing it are kept
// untouched; they simply reference an unknown project from then on.
func (s *projectServiceImpl) Delete(id string) error {
	projects := s.load()
	_, idx := findProject(projects, id)
	if idx < 0 {
		return errors.NewNotFoundError("project", id)
	}
	projects = append(projects[:idx], projects[idx+1:]...)
	return s.save(projects)
}

// Merge unions imported projects into the ledger by id. Existing records win
// on collision; imported duplicates are dropped. Returns the number added.
func (s *projectServiceImpl) Merge(records []*domain.Project) (int, error) {
	projects := s.load()
	existing := make(map[string]bool, len(projects))
	for _, p := range projects {
		existing[p.ID] = true
	}

	added := 0
	for _, rec := range records {
		if existing[rec.ID] {
			continue
		}
		projects = append(projects, rec)
		existing[rec.ID] = true
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := s.save(projects); err != nil {
		return 0, err
	}
	return added, nil
}
