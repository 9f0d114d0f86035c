package progress

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0.00 second(s)"},
		{"under a minute", 59.9, "59.90 second(s)"},
		{"exactly a minute", 60, "60.00 second(s)"},
		{"just over a minute", 61, "1.02 minute(s)"},
		{"exactly an hour stays in minutes", 3600.0, "60.00 minute(s)"},
		{"just over an hour", 3601, "1.00 hour(s)"},
		{"two hours", 7200, "2.00 hour(s)"},
		{"exactly a day stays in hours", 86400, "24.00 hour(s)"},
		{"day and a half", 129600, "1.50 day(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(90 * time.Second); got != "1.50 minute(s)" {
		t.Errorf("Format(90s) = %q", got)
	}
}

func TestETA(t *testing.T) {
	tests := []struct {
		done, total int
		last        time.Duration
		want        time.Duration
	}{
		{1, 10, 2 * time.Second, 18 * time.Second},
		{10, 10, 2 * time.Second, 0},
		{12, 10, time.Second, 0},
		{0, 3, 500 * time.Millisecond, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := ETA(tt.done, tt.total, tt.last); got != tt.want {
			t.Errorf("ETA(%d, %d, %v) = %v, want %v", tt.done, tt.total, tt.last, got, tt.want)
		}
	}
}

func TestETA_UsesLastStepOnly(t *testing.T) {
	// A slow step right before the estimate dominates it completely.
	fast := ETA(5, 10, 10*time.Millisecond)
	slow := ETA(6, 10, 10*time.Second)
	if slow != 40*time.Second {
		t.Errorf("expected 40s, got %v", slow)
	}
	if fast >= slow {
		t.Errorf("expected jitter to show through: fast=%v slow=%v", fast, slow)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.6},
		{3, 3, 100},
		{1, 2000, 0},
		{3, 2000, 0.1},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Percent(tt.done, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestReport_String(t *testing.T) {
	got := FormatProgress(1, 4, 2*time.Second)
	want := "1/4 (25.0%) 2.00 second(s) | ETA: 6.00 second(s)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = Report{Done: 4, Total: 4, Last: 90 * time.Second}.String()
	want = "4/4 (100.0%) 1.50 minute(s) | ETA: 0.00 second(s)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
