package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissing(t *testing.T) {
	if err := Missing("title", "x", "date", "y"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	err := Missing("title", "", "date", "2024-09-01", "time", "  ")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Fields) != 2 || ve.Fields[0] != "title" || ve.Fields[1] != "time" {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
	if ve.Error() != "missing required fields: title, time" {
		t.Fatalf("unexpected message: %q", ve.Error())
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("load: %w", ErrEventNotFound)) {
		t.Fatalf("wrapped ErrEventNotFound should be not found")
	}
	if IsNotFound(ErrForbidden) {
		t.Fatalf("ErrForbidden is not a not-found error")
	}
}
