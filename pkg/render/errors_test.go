package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("widgets: process: %w", NewConfigError("confirm", ErrMissingCollaborator, "password widget"))

	if !errors.Is(err, ErrMissingCollaborator) {
		t.Fatalf("expected errors.Is to match sentinel, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected errors.As to find ConfigError")
	}
	if cfgErr.Component != "confirm" {
		t.Fatalf("expected component confirm, got %q", cfgErr.Component)
	}
	if !IsConfigError(err) {
		t.Fatalf("expected IsConfigError true")
	}
	if IsConfigError(errors.New("boom")) {
		t.Fatalf("expected plain errors not to be config errors")
	}
	for _, part := range []string{"confirm", "not configured", "password widget"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("expected %q in message %q", part, err.Error())
		}
	}
}

func TestMapMessagePayload(t *testing.T) {
	ids := []string{"email", "password", "confirm"}
	payload := map[string][]string{
		"email":                  {" Invalid email ", "Invalid email"},
		"/body/account/password": {"Too short"},
		"items[0].confirm":       {"Mismatch"},
		"__all__":                {"Try again"},
		"unknown.path":           {"Lost field"},
		"blank":                  {"  "},
	}

	mapping := MapMessagePayload(ids, payload)

	wantWidgets := map[string][]string{
		"email":    {"Invalid email"},
		"password": {"Too short"},
		"confirm":  {"Mismatch"},
	}
	if diff := cmp.Diff(wantWidgets, mapping.Widgets); diff != "" {
		t.Fatalf("widget messages mismatch (-want +got):\n%s", diff)
	}

	form := append([]string(nil), mapping.Form...)
	if len(form) != 2 {
		t.Fatalf("expected 2 form level messages, got %v", form)
	}
	for _, want := range []string{"Try again", "Lost field"} {
		found := false
		for _, got := range form {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected form message %q in %v", want, form)
		}
	}
}

func TestMapMessagePayloadEmpty(t *testing.T) {
	mapping := MapMessagePayload([]string{"a"}, nil)
	if mapping.Widgets != nil || mapping.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapping)
	}
}
