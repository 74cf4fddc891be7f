package validation

import (
	"strings"

	"worklog/internal/domain"
)

const (
	projectNameMaxLength        = 255
	projectDescriptionMaxLength = 1000
)

// ProjectValidator validates project input
type ProjectValidator struct{}

// NewProjectValidator creates a new ProjectValidator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{}
}

// ValidateForCreation validates the fields of a project about to be created.
func (v *ProjectValidator) ValidateForCreation(p *domain.Project) error {
	ve := NewValidationError()

	if strings.TrimSpace(p.Name) == "" {
		ve.AddRequiredError("name")
	} else if len(p.Name) > projectNameMaxLength {
		ve.AddInvalidLengthError("name", p.Name, 1, projectNameMaxLength)
	}

	if strings.TrimSpace(p.Client) == "" {
		ve.AddRequiredError("client")
	}

	if len(p.Description) > projectDescriptionMaxLength {
		ve.AddInvalidLengthError("description", p.Description, 0, projectDescriptionMaxLength)
	}

	if p.HourlyRate != nil && *p.HourlyRate < 0 {
		ve.AddInvalidRangeError("hourlyRate", *p.HourlyRate, "must not be negative")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidateParent checks that parent may be used as a parent project.
// Sub-projects form a single-level hierarchy: a project that itself has a
// parent may not be a parent.
func (v *ProjectValidator) ValidateParent(parent *domain.Project) error {
	ve := NewValidationError()

	if parent == nil {
		ve.AddInvalidValueError("parentId", nil, "parent project does not exist")
	} else if parent.IsSubproject() {
		ve.AddInvalidValueError("parentId", parent.ID, "a sub-project cannot be used as a parent")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
