package metrics

import (
	"sort"
	"time"

	"github.com/jobseekai/jobseek/internal/model"
)

const (
	freshCutoff = 12 * time.Hour
	oldCutoff   = 36 * time.Hour
)

// Freshness holds the classification of the newest scraped row.
type Freshness struct {
	Status      model.FreshnessStatus
	LastUpdated time.Time // zero when Status is unknown
	Age         time.Duration
}

// ComputeFreshness classifies the age of the newest date_scraped value
// relative to now. Boundaries are inclusive on the lower status:
// exactly 12h old is stale, exactly 36h old is still stale.
// A table without the date column, or with no dated rows, is unknown.
func ComputeFreshness(table model.Table, now time.Time) Freshness {
	if !table.Schema.HasScraped {
		return Freshness{Status: model.FreshnessUnknown}
	}
	var latest time.Time
	for _, p := range table.Postings {
		if p.Scraped != nil && p.Scraped.After(latest) {
			latest = *p.Scraped
		}
	}
	if latest.IsZero() {
		return Freshness{Status: model.FreshnessUnknown}
	}

	age := now.Sub(latest)
	status := model.FreshnessOld
	switch {
	case age < freshCutoff:
		status = model.FreshnessFresh
	case age <= oldCutoff:
		status = model.FreshnessStale
	}
	return Freshness{Status: status, LastUpdated: latest, Age: age}
}

// DeltaJobs returns the posting count on the latest observed calendar
// date minus the count on the immediately preceding distinct date.
// Zero when fewer than two distinct dates exist.
func DeltaJobs(table model.Table) int {
	if !table.Schema.HasScraped {
		return 0
	}
	counts := map[string]int{}
	for _, p := range table.Postings {
		if p.Scraped == nil {
			continue
		}
		counts[p.Scraped.Format("2006-01-02")]++
	}
	if len(counts) < 2 {
		return 0
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	latest := days[len(days)-1]
	prev := days[len(days)-2]
	return counts[latest] - counts[prev]
}

// JobsOnLatestDay counts the postings scraped on the most recent
// observed calendar date. Zero when no rows carry a scrape date.
func JobsOnLatestDay(table model.Table) int {
	if !table.Schema.HasScraped {
		return 0
	}
	counts := map[string]int{}
	for _, p := range table.Postings {
		if p.Scraped == nil {
			continue
		}
		counts[p.Scraped.Format("2006-01-02")]++
	}
	latest := ""
	for d := range counts {
		if d > latest {
			latest = d
		}
	}
	return counts[latest]
}

// NewCompaniesOnLatestDay counts the companies whose first posting
// appeared on the most recent observed calendar date.
func NewCompaniesOnLatestDay(table model.Table) int {
	if !table.Schema.HasScraped {
		return 0
	}
	firstSeen := map[string]string{}
	latest := ""
	for _, p := range table.Postings {
		if p.Scraped == nil || p.Company == "" {
			continue
		}
		day := p.Scraped.Format("2006-01-02")
		if day > latest {
			latest = day
		}
		if prev, ok := firstSeen[p.Company]; !ok || day < prev {
			firstSeen[p.Company] = day
		}
	}
	if latest == "" {
		return 0
	}
	n := 0
	for _, day := range firstSeen {
		if day == latest {
			n++
		}
	}
	return n
}

// PostingTrend is the daily posting volume, oldest date first.
func PostingTrend(table model.Table) []Count {
	if !table.Schema.HasScraped {
		return nil
	}
	counts := map[string]int{}
	for _, p := range table.Postings {
		if p.Scraped == nil {
			continue
		}
		counts[p.Scraped.Format("2006-01-02")]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]Count, 0, len(days))
	for _, d := range days {
		out = append(out, Count{Value: d, Count: counts[d]})
	}
	return out
}
