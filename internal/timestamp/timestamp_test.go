package timestamp

import (
	"testing"

	"pgregory.net/rapid"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00"},
		{"under a minute", 45, "00:45"},
		{"minutes and seconds", 125, "02:05"},
		{"truncates fraction", 59.9, "00:59"},
		{"last second before an hour", 3599, "59:59"},
		{"exactly one hour", 3600, "01:00:00"},
		{"hours minutes seconds", 3725, "01:02:05"},
		{"more than 99 hours", 360000, "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
	}{
		{"minutes and seconds", "02:05", 125},
		{"hours minutes seconds", "01:02:05", 3725},
		{"zero", "00:00", 0},
		{"single field", "42", 0},
		{"four fields", "1:2:3:4", 0},
		{"non-numeric", "ab:cd", 0},
		{"empty", "", 0},
		{"trailing garbage", "01:xx", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.display); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.display, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seconds := rapid.Float64Range(0, 500000).Draw(t, "seconds")
		got := Parse(Format(seconds))
		want := float64(int(seconds))
		if got != want {
			t.Fatalf("Parse(Format(%v)) = %v, want %v", seconds, got, want)
		}
	})
}
