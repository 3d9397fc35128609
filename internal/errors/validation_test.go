package errors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address", "not-an-email")

	if err.Field != "email" {
		t.Errorf("Expected field to be 'email', got '%s'", err.Field)
	}

	if err.Message != "must be a valid email address" {
		t.Errorf("Expected message to be 'must be a valid email address', got '%s'", err.Message)
	}

	if err.Value != "not-an-email" {
		t.Errorf("Expected value to be 'not-an-email', got '%v'", err.Value)
	}

	expected := "validation error on field 'email': must be a valid email address"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	// Empty collection still reads as a failure
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("rating", "must be a rating between 1 and 5", 7))
	expected := "validation failed: rating must be a rating between 1 and 5"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("comments", "must be at most 500", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}
