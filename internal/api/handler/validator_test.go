package handler

import (
	"errors"
	"testing"

	"github.com/uniportal/event-portal/internal/core/domain"
)

func TestValidator_ReportsEveryMissingField(t *testing.T) {
	err := NewValidator().Validate(&createEventRequest{Title: "Orientation"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"date", "time", "location", "description", "category"}
	if len(ve.Fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, ve.Fields)
	}
	for i := range want {
		if ve.Fields[i] != want[i] {
			t.Fatalf("field %d: expected %s, got %s", i, want[i], ve.Fields[i])
		}
	}
}

func TestValidator_Passes(t *testing.T) {
	if err := NewValidator().Validate(&createInquiryRequest{Subject: "s", Message: "m"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
