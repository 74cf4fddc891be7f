package validation

import (
	"strings"

	"worklog/internal/domain"
)

// BreakValidator validates break entry input
type BreakValidator struct{}

// NewBreakValidator creates a new BreakValidator
func NewBreakValidator() *BreakValidator {
	return &BreakValidator{}
}

// ValidateForOpen validates the input to an open-break operation.
func (v *BreakValidator) ValidateForOpen(timeEntryID string, breakType domain.BreakType) error {
	ve := NewValidationError()

	if strings.TrimSpace(timeEntryID) == "" {
		ve.AddRequiredError("timeEntryId")
	}

	if !breakType.Valid() {
		ve.AddInvalidValueError("type", string(breakType), "must be one of lunch, coffee, meeting, personal, other")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
