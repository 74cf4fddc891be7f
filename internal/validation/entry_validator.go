package validation

import (
	"strings"
)

const entryDescriptionMaxLength = 500

// TimeEntryValidator validates time entry input
type TimeEntryValidator struct{}

// NewTimeEntryValidator creates a new TimeEntryValidator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{}
}

// ValidateForStart validates the input to a start-tracking operation.
func (v *TimeEntryValidator) ValidateForStart(projectID, description string) error {
	ve := NewValidationError()

	if strings.TrimSpace(projectID) == "" {
		ve.AddRequiredError("projectId")
	}

	if len(description) > entryDescriptionMaxLength {
		ve.AddInvalidLengthError("description", description, 0, entryDescriptionMaxLength)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
