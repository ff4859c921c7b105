package metrics

import (
	"regexp"
	"strconv"

	"github.com/jobseekai/jobseek/internal/model"
)

var leadingNumber = regexp.MustCompile(`\d+`)

// ParseExperience classifies a free-text experience requirement by its
// leading number: 0-2 entry, 3-5 mid, 6+ senior. Anything without a
// number ("contract basis", "fresh graduates welcome") is unspecified.
func ParseExperience(raw string) model.ExperienceLevel {
	m := leadingNumber.FindString(raw)
	if m == "" {
		return model.ExpUnspecified
	}
	years, err := strconv.Atoi(m)
	if err != nil {
		return model.ExpUnspecified
	}
	switch {
	case years <= 2:
		return model.ExpEntry
	case years <= 5:
		return model.ExpMid
	default:
		return model.ExpSenior
	}
}

// LevelCount is one experience bucket with its share of the total.
type LevelCount struct {
	Level   model.ExperienceLevel
	Count   int
	Percent float64 // of all rows, 0 when the table is empty
}

// ExperienceLevels buckets every row by seniority. All four buckets
// are always present, in fixed order, so the output shape is stable.
// Without an experience column every row is unspecified.
func ExperienceLevels(table model.Table) []LevelCount {
	counts := map[model.ExperienceLevel]int{}
	for _, p := range table.Postings {
		if !table.Schema.HasExperience {
			counts[model.ExpUnspecified]++
			continue
		}
		counts[ParseExperience(p.Experience)]++
	}

	total := table.Len()
	out := make([]LevelCount, 0, len(model.ExperienceLevels))
	for _, level := range model.ExperienceLevels {
		lc := LevelCount{Level: level, Count: counts[level]}
		if total > 0 {
			lc.Percent = float64(lc.Count) / float64(total) * 100
		}
		out = append(out, lc)
	}
	return out
}
