package core

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base, base.Add(8 * time.Hour), true},
		{"just before midnight vs just after", time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local), time.Date(2026, 3, 15, 0, 1, 0, 0, time.Local), false},
		{"different days", base, base.AddDate(0, 0, 1), false},
		{"zero a", time.Time{}, base, false},
		{"zero b", base, time.Time{}, false},
		{"both zero", time.Time{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsYesterday(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		prev time.Time
		want bool
	}{
		{"previous calendar day", time.Date(2026, 3, 14, 23, 50, 0, 0, time.Local), true},
		{"same day", now.Add(-time.Hour), false},
		{"two days back", now.AddDate(0, 0, -2), false},
		{"zero prev", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsYesterday(tt.prev, now); got != tt.want {
				t.Fatalf("IsYesterday(%v, %v) = %v, want %v", tt.prev, now, got, tt.want)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local))
	if got != "2026-03-05" {
		t.Fatalf("expected 2026-03-05, got %q", got)
	}
}
