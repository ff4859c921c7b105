package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jobseekai/jobseek/internal/model"
)

// RecordStore loads a point-in-time snapshot of the scraped postings
// table. Implementations are read-only: the core never writes back
// through this interface.
type RecordStore interface {
	Load(ctx context.Context) (model.Table, error)
}

// Canonical column names after normalization.
const (
	colTitle      = "job_title"
	colCompany    = "company"
	colIndustry   = "industry"
	colLocation   = "location"
	colSkills     = "skills"
	colExperience = "experience"
	colEducation  = "education"
	colSalaryMin  = "salary_min"
	colSalaryMax  = "salary_max"
	colScraped    = "date_scraped"
)

// normalizeHeader canonicalizes a source column name: trim, lowercase,
// spaces to underscores.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// parseSalary coerces a raw salary cell to a number. Invalid or empty
// values become null rather than errors. Thousands separators are
// tolerated since scraped figures often carry them.
func parseSalary(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

var scrapedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// parseScraped parses a date_scraped cell against the layouts the
// scraper has emitted over time. Unparsable values become null.
func parseScraped(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range scrapedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

var skillSplitter = func(r rune) bool {
	return r == ',' || r == ';' || r == '|'
}

// splitSkills tokenizes a delimiter-separated skills field: split,
// trim, case-fold, drop empties, dedupe within the row preserving
// first-seen order.
func splitSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, tok := range strings.FieldsFunc(raw, skillSplitter) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// finalizePosting applies the cleaning rules shared by every store:
// trims text fields and swaps inverted salary bounds.
func finalizePosting(p model.Posting) model.Posting {
	p.Title = strings.TrimSpace(p.Title)
	p.Company = strings.TrimSpace(p.Company)
	p.Industry = strings.TrimSpace(p.Industry)
	p.Location = strings.TrimSpace(p.Location)
	p.Experience = strings.TrimSpace(p.Experience)
	p.Education = strings.TrimSpace(p.Education)
	if p.HasSalary() && *p.SalaryMin > *p.SalaryMax {
		p.SalaryMin, p.SalaryMax = p.SalaryMax, p.SalaryMin
	}
	return p
}
