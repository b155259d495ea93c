package dates_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/forestscape/soldmis/pkg/dates"
)

func TestParseRange(t *testing.T) {
	values := url.Values{}
	values.Set("from", "2026-01-01")
	values.Set("to", "2026-03-31")

	rng, err := dates.ParseRange(values)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := rng.FromString(); got != "2026-01-01" {
		t.Errorf("from: got %q, want 2026-01-01", got)
	}
	if got := rng.ToString(); got != "2026-03-31" {
		t.Errorf("to: got %q, want 2026-03-31", got)
	}
}

func TestParseRangeSameDay(t *testing.T) {
	values := url.Values{}
	values.Set("from", "2026-02-15")
	values.Set("to", "2026-02-15")

	if _, err := dates.ParseRange(values); err != nil {
		t.Errorf("same-day range should be valid: %v", err)
	}
}

func TestParseRangeErrors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		missing bool
	}{
		{"missing both", "", "", true},
		{"missing from", "", "2026-03-31", true},
		{"missing to", "2026-01-01", "", true},
		{"malformed from", "01-01-2026", "2026-03-31", false},
		{"malformed to", "2026-01-01", "March 31", false},
		{"inverted range", "2026-03-31", "2026-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.from != "" {
				values.Set("from", tt.from)
			}
			if tt.to != "" {
				values.Set("to", tt.to)
			}

			_, err := dates.ParseRange(values)
			if err == nil {
				t.Fatal("expected error")
			}

			if tt.missing != errors.Is(err, dates.ErrMissingRange) {
				t.Errorf("ErrMissingRange mismatch: got %v", err)
			}
		})
	}
}
