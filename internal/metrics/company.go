package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/jobseekai/jobseek/internal/model"
)

// CompanyIntel is the hiring profile of a single company within the
// current view. Found is false when the company matched zero rows:
// a valid empty result for well-formed input, not an error.
type CompanyIntel struct {
	Found   bool
	Company string

	Openings     int
	TopRole      string
	TopLocation  string
	Industries   []string // distinct, sorted
	Roles        []Count  // role breakdown, count desc
	Locations    []Count  // location breakdown, count desc
	Experience   []LevelCount
	Trend        model.Trend
	RecentCount  int // postings in the last 7 days
	PrevCount    int // postings in the 7 days before that
	TrendDelta   int // abs(recent - prev)
	SampleTitles []string
}

// ComputeCompanyIntel profiles one company in the view. The company
// name is matched case-insensitively. The caller passes the selected
// company on every call; no state is kept between calls.
func ComputeCompanyIntel(table model.Table, company string, now time.Time) CompanyIntel {
	want := strings.ToLower(strings.TrimSpace(company))
	sub := model.Table{Schema: table.Schema}
	for _, p := range table.Postings {
		if strings.ToLower(p.Company) == want {
			sub.Postings = append(sub.Postings, p)
		}
	}
	if sub.Empty() {
		return CompanyIntel{Company: company}
	}

	intel := CompanyIntel{
		Found:       true,
		Company:     sub.Postings[0].Company,
		Openings:    sub.Len(),
		TopRole:     Mode(sub, FieldTitle),
		TopLocation: Mode(sub, FieldLocation),
		Roles:       Distribution(sub, FieldTitle),
		Locations:   Distribution(sub, FieldLocation),
		Experience:  ExperienceLevels(sub),
	}
	for _, c := range Distribution(sub, FieldIndustry) {
		intel.Industries = append(intel.Industries, c.Value)
	}
	sort.Strings(intel.Industries)

	for i, p := range sub.Postings {
		if i >= 5 {
			break
		}
		intel.SampleTitles = append(intel.SampleTitles, p.Title)
	}

	intel.Trend, intel.RecentCount, intel.PrevCount = weeklyTrend(sub, now)
	intel.TrendDelta = intel.RecentCount - intel.PrevCount
	if intel.TrendDelta < 0 {
		intel.TrendDelta = -intel.TrendDelta
	}
	return intel
}

// weeklyTrend compares this 7-day window's posting count against the
// prior 7-day window: up if strictly greater, down if strictly less,
// stable if equal. Unknown without a date column.
func weeklyTrend(table model.Table, now time.Time) (model.Trend, int, int) {
	if !table.Schema.HasScraped {
		return model.TrendUnknown, 0, 0
	}
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	recent, prev := 0, 0
	for _, p := range table.Postings {
		if p.Scraped == nil {
			continue
		}
		switch {
		case p.Scraped.After(weekAgo) && !p.Scraped.After(now):
			recent++
		case p.Scraped.After(twoWeeksAgo) && !p.Scraped.After(weekAgo):
			prev++
		}
	}

	switch {
	case recent > prev:
		return model.TrendUp, recent, prev
	case recent < prev:
		return model.TrendDown, recent, prev
	default:
		return model.TrendStable, recent, prev
	}
}
