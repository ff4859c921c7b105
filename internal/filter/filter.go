package filter

import (
	"sort"
	"strings"

	"github.com/jobseekai/jobseek/internal/model"
)

// Selection is one interaction's filter choice: industries, roles
// (job titles) and locations. An empty set means "no restriction on
// this dimension". A Selection carries no identity beyond the request
// that built it.
type Selection struct {
	Industries []string
	Roles      []string
	Locations  []string
}

// Empty reports whether no dimension restricts anything.
func (s Selection) Empty() bool {
	return len(s.Industries) == 0 && len(s.Roles) == 0 && len(s.Locations) == 0
}

// Apply returns the rows of table matching the selection. Membership
// within a dimension is OR, combination across dimensions is AND, and
// matching is case-insensitive on the full field value. The source
// table is never mutated; unknown filter values simply match nothing.
func Apply(table model.Table, sel Selection) model.Table {
	if sel.Empty() {
		return table
	}

	industries := toSet(sel.Industries)
	roles := toSet(sel.Roles)
	locations := toSet(sel.Locations)

	out := model.Table{Schema: table.Schema}
	for _, p := range table.Postings {
		if len(industries) > 0 && !industries[strings.ToLower(p.Industry)] {
			continue
		}
		if len(roles) > 0 && !roles[strings.ToLower(p.Title)] {
			continue
		}
		if len(locations) > 0 && !locations[strings.ToLower(p.Location)] {
			continue
		}
		out.Postings = append(out.Postings, p)
	}
	return out
}

// Options lists the unique non-empty values of each filterable
// dimension, sorted ascending. Feeds flag help and the company picker.
type Options struct {
	Industries []string
	Roles      []string
	Locations  []string
}

// OptionsFor extracts filter options from a table.
func OptionsFor(table model.Table) Options {
	industries := map[string]bool{}
	roles := map[string]bool{}
	locations := map[string]bool{}
	for _, p := range table.Postings {
		if p.Industry != "" {
			industries[p.Industry] = true
		}
		if p.Title != "" {
			roles[p.Title] = true
		}
		if p.Location != "" {
			locations[p.Location] = true
		}
	}
	return Options{
		Industries: sortedKeys(industries),
		Roles:      sortedKeys(roles),
		Locations:  sortedKeys(locations),
	}
}

// Companies lists the unique non-empty company names in the table,
// sorted ascending. Feeds the interactive company picker.
func Companies(table model.Table) []string {
	set := map[string]bool{}
	for _, p := range table.Postings {
		if p.Company != "" {
			set[p.Company] = true
		}
	}
	return sortedKeys(set)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			set[strings.ToLower(v)] = true
		}
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
