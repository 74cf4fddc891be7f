package validation

import (
	"strings"
	"testing"

	"worklog/internal/domain"
)

func TestProjectValidator_ValidateForCreation(t *testing.T) {
	validRate := 50.0
	negativeRate := -10.0

	tests := []struct {
		name          string
		project       *domain.Project
		expectError   bool
		expectedField string
	}{
		{
			name:    "valid project",
			project: &domain.Project{ID: "1", Name: "Website", Client: "ACME", HourlyRate: &validRate},
		},
		{
			name:    "rate is optional",
			project: &domain.Project{ID: "1", Name: "Website", Client: "ACME"},
		},
		{
			name:          "empty name",
			project:       &domain.Project{ID: "1", Name: "", Client: "ACME"},
			expectError:   true,
			expectedField: "name",
		},
		{
			name:          "whitespace-only name",
			project:       &domain.Project{ID: "1", Name: "   ", Client: "ACME"},
			expectError:   true,
			expectedField: "name",
		},
		{
			name:          "empty client",
			project:       &domain.Project{ID: "1", Name: "Website", Client: ""},
			expectError:   true,
			expectedField: "client",
		},
		{
			name:          "negative hourly rate",
			project:       &domain.Project{ID: "1", Name: "Website", Client: "ACME", HourlyRate: &negativeRate},
			expectError:   true,
			expectedField: "hourlyRate",
		},
	}

	validator := NewProjectValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateForCreation(tt.project)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateForCreation() unexpected error: %v", err)
				}
				return
			}

			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateForCreation() error = %T, want *ValidationError", err)
			}
			if len(ve.GetFieldErrors(tt.expectedField)) == 0 {
				t.Errorf("ValidateForCreation() expected error on field %q, got %v", tt.expectedField, ve.Errors)
			}
		})
	}
}

func TestProjectValidator_ValidateParent(t *testing.T) {
	validator := NewProjectValidator()

	if err := validator.ValidateParent(&domain.Project{ID: "p", Name: "P", Client: "C"}); err != nil {
		t.Errorf("ValidateParent() unexpected error for top-level parent: %v", err)
	}

	if err := validator.ValidateParent(nil); err == nil {
		t.Errorf("ValidateParent() should reject a missing parent")
	}

	sub := &domain.Project{ID: "s", Name: "S", Client: "C", ParentID: "p"}
	if err := validator.ValidateParent(sub); err == nil {
		t.Errorf("ValidateParent() should reject a sub-project as parent")
	}
}

func TestTimeEntryValidator_ValidateForStart(t *testing.T) {
	tests := []struct {
		name        string
		projectID   string
		description string
		expectError bool
	}{
		{"valid input", "p1", "working on feature", false},
		{"empty description is fine", "p1", "", false},
		{"empty project id", "", "work", true},
		{"whitespace project id", "   ", "work", true},
		{"description at limit", "p1", strings.Repeat("a", 500), false},
		{"description too long", "p1", strings.Repeat("a", 501), true},
	}

	validator := NewTimeEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateForStart(tt.projectID, tt.description)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateForStart() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestBreakValidator_ValidateForOpen(t *testing.T) {
	tests := []struct {
		name        string
		timeEntryID string
		breakType   domain.BreakType
		expectError bool
	}{
		{"valid lunch break", "e1", domain.BreakLunch, false},
		{"valid coffee break", "e1", domain.BreakCoffee, false},
		{"empty entry id", "", domain.BreakCoffee, true},
		{"unknown break type", "e1", domain.BreakType("nap"), true},
		{"empty break type", "e1", domain.BreakType(""), true},
	}

	validator := NewBreakValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateForOpen(tt.timeEntryID, tt.breakType)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateForOpen() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if got := ve.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("GetUserFriendlyMessage() = %v", got)
	}

	ve.AddRequiredError("name")
	if got := ve.GetUserFriendlyMessage(); got != "name is required" {
		t.Errorf("GetUserFriendlyMessage() = %v", got)
	}

	ve.AddRequiredError("client")
	got := ve.GetUserFriendlyMessage()
	if !strings.Contains(got, "Multiple validation errors") {
		t.Errorf("GetUserFriendlyMessage() = %v, expected multi-error prefix", got)
	}
}
