package insight

import "testing"

func TestMatchBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Strong"},
		{80, "Strong"},
		{79, "Good"},
		{60, "Good"},
		{59, "Partial"},
		{0, "Partial"},
	}
	for _, tt := range tests {
		if got := MatchBand(tt.score); got != tt.want {
			t.Errorf("MatchBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestReadinessBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "High fit"},
		{70, "High fit"},
		{69, "Moderate"},
		{40, "Moderate"},
		{39, "Low fit"},
		{0, "Low fit"},
	}
	for _, tt := range tests {
		if got := ReadinessBand(tt.score); got != tt.want {
			t.Errorf("ReadinessBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeConfidence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"High", "High"},
		{"  low ", "Low"},
		{"medium", "Medium"},
		{"very sure", "Medium"},
		{"", "Medium"},
	}
	for _, tt := range tests {
		if got := normalizeConfidence(tt.in); got != tt.want {
			t.Errorf("normalizeConfidence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
