package picker

import "testing"

func TestFilterMatches(t *testing.T) {
	companies := []string{"Acme Ltd", "Globex", "Grameenphone", "Initech"}

	tests := []struct {
		query string
		want  []string
	}{
		{"", companies},
		{"g", []string{"Globex", "Grameenphone"}},
		{"GRAMEEN", []string{"Grameenphone"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got := filterMatches(companies, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("filterMatches(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("filterMatches(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
			}
		}
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		cursor, n  int
		start, end int
	}{
		{0, 5, 0, 5},
		{0, 30, 0, maxVisible},
		{15, 30, 9, 21},
		{29, 30, 18, 30},
	}
	for _, tt := range tests {
		start, end := window(tt.cursor, tt.n)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d) = %d..%d, want %d..%d", tt.cursor, tt.n, start, end, tt.start, tt.end)
		}
	}
}
