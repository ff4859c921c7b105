package insight

import "strings"

// MatchBand labels a 0-100 recommendation match score.
func MatchBand(score int) string {
	switch {
	case score >= 80:
		return "Strong"
	case score >= 60:
		return "Good"
	default:
		return "Partial"
	}
}

// ReadinessBand labels a 0-100 skill-gap readiness score.
func ReadinessBand(score int) string {
	switch {
	case score >= 70:
		return "High fit"
	case score >= 40:
		return "Moderate"
	default:
		return "Low fit"
	}
}

// clampScore forces a model-reported score into [0,100].
func clampScore(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

// normalizeConfidence maps free-form confidence text onto the three
// documented levels, defaulting to Medium.
func normalizeConfidence(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return "High"
	case "low":
		return "Low"
	default:
		return "Medium"
	}
}
