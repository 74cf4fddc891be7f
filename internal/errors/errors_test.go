package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("start entry", "an entry is already active")

	if err.Type != ErrorTypeInvalidState {
		t.Errorf("NewInvalidStateError type = %v, want %v", err.Type, ErrorTypeInvalidState)
	}
	if err.Message != "cannot start entry: an entry is already active" {
		t.Errorf("NewInvalidStateError message = %v", err.Message)
	}
	if err.Code != "INVALID_STATE" {
		t.Errorf("NewInvalidStateError code = %v, want INVALID_STATE", err.Code)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "start entry" {
		t.Errorf("NewInvalidStateError should set operation context")
	}
	reason, ok := err.GetContext("reason")
	if !ok || reason != "an entry is already active" {
		t.Errorf("NewInvalidStateError should set reason context")
	}
}

func TestNewNoActiveEntryError(t *testing.T) {
	err := NewNoActiveEntryError("stop tracking")

	if err.Type != ErrorTypeNoActiveEntry {
		t.Errorf("NewNoActiveEntryError type = %v, want %v", err.Type, ErrorTypeNoActiveEntry)
	}
	if err.Message != "cannot stop tracking: no active time entry" {
		t.Errorf("NewNoActiveEntryError message = %v", err.Message)
	}
	if err.Code != "NO_ACTIVE_ENTRY" {
		t.Errorf("NewNoActiveEntryError code = %v, want NO_ACTIVE_ENTRY", err.Code)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("project", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "project not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "project not found: 123")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "project" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write key timetracker_entries", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want STORAGE_ERROR", err.Code)
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewStorageError("read", cause)

	wrapped := fmt.Errorf("outer: %w", err)

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatalf("errors.As should find the AppError through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("errors.Is should reach the root cause through Unwrap")
	}
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{"matching type", NewNotFoundError("project", "1"), ErrorTypeNotFound, true},
		{"mismatched type", NewNotFoundError("project", "1"), ErrorTypeStorage, false},
		{"wrapped AppError", fmt.Errorf("outer: %w", NewNoActiveEntryError("stop")), ErrorTypeNoActiveEntry, true},
		{"plain error", errors.New("plain"), ErrorTypeValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorType(tt.err, tt.errorType); got != tt.expected {
				t.Errorf("IsErrorType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"user-facing message passes through", NewNoActiveEntryError("stop tracking"), "cannot stop tracking: no active time entry"},
		{"storage details are hidden", NewStorageError("write", errors.New("io fail")), "A storage error occurred. Your data may not have been saved."},
		{"plain error uses its own text", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewValidationError("bad input", nil)) {
		t.Errorf("validation errors are user errors and should not be logged")
	}
	if ShouldLogError(NewNoActiveEntryError("stop")) {
		t.Errorf("no-active-entry errors should not be logged")
	}
	if !ShouldLogError(NewStorageError("write", errors.New("io"))) {
		t.Errorf("storage errors should be logged")
	}
	if !ShouldLogError(errors.New("unknown")) {
		t.Errorf("unknown errors should be logged")
	}
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad", nil).WithContext("field", "name")

	value, ok := err.GetContext("field")
	if !ok || value != "name" {
		t.Errorf("WithContext should store the value, got %v, %v", value, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report missing keys")
	}
}
