package model

// ExperienceLevel is the seniority bucket parsed from the free-text
// experience field. Unparsable values land in Unspecified rather than
// erroring.
type ExperienceLevel string

const (
	ExpEntry       ExperienceLevel = "entry"
	ExpMid         ExperienceLevel = "mid"
	ExpSenior      ExperienceLevel = "senior"
	ExpUnspecified ExperienceLevel = "unspecified"
)

// Label returns the display form used by the CLI and report export.
func (l ExperienceLevel) Label() string {
	switch l {
	case ExpEntry:
		return "Entry Level (0-2 yrs)"
	case ExpMid:
		return "Mid Level (3-5 yrs)"
	case ExpSenior:
		return "Senior Level (6+ yrs)"
	default:
		return "Unspecified"
	}
}

// ExperienceLevels is the fixed bucket order for stable output shapes.
var ExperienceLevels = []ExperienceLevel{ExpEntry, ExpMid, ExpSenior, ExpUnspecified}

// FreshnessStatus classifies the age of the newest scraped row.
type FreshnessStatus string

const (
	FreshnessFresh   FreshnessStatus = "fresh"   // < 12h
	FreshnessStale   FreshnessStatus = "stale"   // 12h-36h inclusive
	FreshnessOld     FreshnessStatus = "old"     // > 36h
	FreshnessUnknown FreshnessStatus = "unknown" // no date column or no rows
)

// Trend is the week-over-week posting direction for a company.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown" // no date column
)
