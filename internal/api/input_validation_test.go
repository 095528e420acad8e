package api

import (
	"errors"
	"testing"
	"time"

	"github.com/ritmofit/ritmo/internal/services"
)

func TestParseDateAcceptsISODates(t *testing.T) {
	value, err := parseDate("2026-08-02", "data", time.UTC)
	if err != nil {
		t.Fatalf("parse valid date: %v", err)
	}
	if value.Year() != 2026 || value.Month() != time.August || value.Day() != 2 {
		t.Fatalf("unexpected parsed date: %v", value)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{"02/08/2026", "2026-8-2", "amanhã", ""} {
		_, err := parseDate(raw, "data", time.UTC)
		var fieldErr *services.FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("expected field error for %q, got %v", raw, err)
		}
		if fieldErr.Field != "data" {
			t.Fatalf("expected error keyed by the parameter name, got %q", fieldErr.Field)
		}
	}
}

func TestParseDateTimeAcceptsCommonForms(t *testing.T) {
	for _, raw := range []string{
		"2026-08-02T08:00:00Z",
		"2026-08-02T08:00:00-03:00",
		"2026-08-02T08:00:00",
		"2026-08-02",
	} {
		if _, err := parseDateTime(raw, "inicio_em", time.UTC); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}

	if _, err := parseDateTime("ontem", "inicio_em", time.UTC); err == nil {
		t.Fatal("expected garbage timestamps to be rejected")
	}
}

func TestActiveFilterOnlyExplicitFalse(t *testing.T) {
	for raw, expected := range map[string]bool{
		"":      true,
		"true":  true,
		"1":     true,
		"sim":   true,
		"false": false,
		"False": false,
		"0":     false,
	} {
		if activeFilter(raw) != expected {
			t.Fatalf("activeFilter(%q) expected %v", raw, expected)
		}
	}
}

func TestBearerTokenParsing(t *testing.T) {
	cases := []struct {
		header  string
		token   string
		present bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"BEARER abc", "abc", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer ", "", false},
		{"", "", false},
		{"abc.def.ghi", "", false},
	}
	for _, testCase := range cases {
		token, present := bearerToken(testCase.header)
		if token != testCase.token || present != testCase.present {
			t.Fatalf("bearerToken(%q) = (%q, %v), expected (%q, %v)",
				testCase.header, token, present, testCase.token, testCase.present)
		}
	}
}
