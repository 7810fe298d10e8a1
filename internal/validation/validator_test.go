// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package validation

import (
	"strings"
	"testing"
)

type addFavoriteRequest struct {
	Museum     string `validate:"required,museum"`
	ExternalID string `validate:"required,min=1,max=256"`
}

type tagRequest struct {
	Tag string `validate:"required,tagname"`
}

type explorePath struct {
	Kind string `validate:"required,categorykind"`
	Key  string `validate:"required,min=1,max=64"`
}

type pageParams struct {
	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1,lte=100"`
}

func TestValidateStructPasses(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
	}{
		{"favorite", &addFavoriteRequest{Museum: "aic", ExternalID: "27992"}},
		{"favorite museum case-insensitive", &addFavoriteRequest{Museum: "SMK", ExternalID: "KMS1"}},
		{"tag", &tagRequest{Tag: "serene"}},
		{"explore era", &explorePath{Kind: "era", Key: "baroque"}},
		{"explore mood", &explorePath{Kind: "mood", Key: "peaceful"}},
		{"pagination", &pageParams{Page: 3, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.in); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestMuseumValidator(t *testing.T) {
	err := ValidateStruct(&addFavoriteRequest{Museum: "louvre", ExternalID: "123"})
	if err == nil {
		t.Fatal("unknown museum should fail validation")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(err.Errors()))
	}
	fe := err.Errors()[0]
	if fe.Field() != "Museum" || fe.Tag() != "museum" {
		t.Errorf("unexpected failure: field=%s tag=%s", fe.Field(), fe.Tag())
	}
	if !strings.Contains(fe.Error(), "known museum") {
		t.Errorf("message %q should name the constraint", fe.Error())
	}
}

func TestCategoryKindValidator(t *testing.T) {
	for _, kind := range []string{"era", "theme", "mood"} {
		if err := ValidateStruct(&explorePath{Kind: kind, Key: "x"}); err != nil {
			t.Errorf("kind %q should validate, got %v", kind, err)
		}
	}
	if err := ValidateStruct(&explorePath{Kind: "genre", Key: "x"}); err == nil {
		t.Error("kind \"genre\" should fail validation")
	}
}

func TestTagNameValidator(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"serene", true},
		{"  padded  ", true},
		{"two words", true},
		{"a,b", false},
		{"   ", false},
	}
	for _, tt := range tests {
		err := ValidateStruct(&tagRequest{Tag: tt.tag})
		if (err == nil) != tt.want {
			t.Errorf("tag %q: valid=%v, want %v", tt.tag, err == nil, tt.want)
		}
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	verr := ValidateStruct(&pageParams{Page: 0, Limit: 10})
	if verr == nil {
		t.Fatal("page 0 should fail validation")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Page" {
		t.Errorf("Details.field = %v, want Page", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	verr := ValidateStruct(&pageParams{Page: 0, Limit: 500})
	if verr == nil {
		t.Fatal("expected two validation failures")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details.fields has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("got %d field entries, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("combined message should join failures: %q", apiErr.Message)
	}
}

func TestTranslatedMessages(t *testing.T) {
	verr := ValidateStruct(&addFavoriteRequest{Museum: "aic", ExternalID: ""})
	if verr == nil {
		t.Fatal("empty external id should fail")
	}
	if got := verr.Errors()[0].Error(); got != "ExternalID is required" {
		t.Errorf("message = %q", got)
	}

	verr = ValidateStruct(&pageParams{Page: 1, Limit: 500})
	if verr == nil {
		t.Fatal("limit 500 should fail")
	}
	if got := verr.Errors()[0].Error(); got != "Limit must be less than or equal to 100" {
		t.Errorf("message = %q", got)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
