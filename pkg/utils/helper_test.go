package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		value        string
		defaultValue int
		want         int
	}{
		{"", 5, 5},
		{"10", 5, 10},
		{"abc", 5, 5},
		{"0", 5, 5},
		{"-3", 5, 5},
	}

	for _, tc := range cases {
		if got := ParseInt(tc.value, tc.defaultValue); got != tc.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tc.value, tc.defaultValue, got, tc.want)
		}
	}
}

func TestGenerateOrderLineID(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 30, 45, 0, time.UTC)

	id := GenerateOrderLineID("T01", now)
	if !strings.HasPrefix(id, "T01-20250301183045-") {
		t.Errorf("id = %q, want T01-20250301183045- prefix", id)
	}

	parts := strings.Split(id, "-")
	if len(parts) != 3 || len(parts[2]) != 8 {
		t.Errorf("id = %q, want three segments with an 8-char suffix", id)
	}

	// Same table, same instant: the uuid fragment must still separate
	// the ids.
	if other := GenerateOrderLineID("T01", now); other == id {
		t.Errorf("two ids for the same instant collided: %q", id)
	}
}

func TestVenueTableIDs(t *testing.T) {
	venue := VenueConfig{TableCount: 10}

	ids := venue.TableIDs()
	if len(ids) != 10 {
		t.Fatalf("table id count = %d, want 10", len(ids))
	}
	if ids[0] != "T01" || ids[9] != "T10" {
		t.Errorf("ids = %v, want T01..T10", ids)
	}
}
