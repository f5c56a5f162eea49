package entity

import (
	"testing"
	"time"
)

func TestTableExpired(t *testing.T) {
	end := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status TableStatus
		now    time.Time
		want   bool
	}{
		{"active inside window", TableStatusActive, end.Add(-time.Minute), false},
		{"active at the boundary", TableStatusActive, end, false},
		{"active past window", TableStatusActive, end.Add(time.Minute), true},
		{"already expired stays put", TableStatusExpired, end.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := &Table{Status: tc.status, EndTime: end}
			if got := table.Expired(tc.now); got != tc.want {
				t.Errorf("Expired(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
