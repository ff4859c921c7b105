package model

import "time"

// Posting is one row of the scraped job-postings table.
// Optional columns are pointers so "absent" is distinguishable from zero.
type Posting struct {
	Title      string     // job title, may be empty
	Company    string     // company name, not unique across postings
	Industry   string     // filter dimension
	Location   string     // filter dimension
	Skills     []string   // normalized at load: split, trimmed, lowercased, deduped per row
	SkillsRaw  string     // original delimiter-separated field, kept for export
	Experience string     // free text, e.g. "3-5 years"
	Education  string     // education/description text, source for degree matching
	SalaryMin  *float64   // nullable
	SalaryMax  *float64   // nullable
	Scraped    *time.Time // nullable, drives freshness and trend windows
}

// HasSalary reports whether both salary bounds are present.
func (p Posting) HasSalary() bool {
	return p.SalaryMin != nil && p.SalaryMax != nil
}

// AvgSalary is the midpoint of the salary range. Only meaningful when
// HasSalary is true.
func (p Posting) AvgSalary() float64 {
	if !p.HasSalary() {
		return 0
	}
	return (*p.SalaryMin + *p.SalaryMax) / 2
}

// Table is a point-in-time snapshot of postings plus the column
// capabilities probed at load. It is immutable once loaded; filtered
// views are new Tables sharing the same Schema.
type Table struct {
	Postings []Posting
	Schema   Schema
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Postings) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Postings) == 0 }
