// Package metrics derives counts, distributions and intelligence
// profiles from a postings table. Every function is pure and total:
// it tolerates empty tables, single rows, all-null columns and absent
// optional columns, and its output depends only on the input rows
// (never on their order, beyond the documented tie-breaks).
package metrics

import (
	"sort"

	"github.com/jobseekai/jobseek/internal/model"
)

// Field names a categorical dimension of the postings table.
type Field string

const (
	FieldTitle    Field = "job_title"
	FieldCompany  Field = "company"
	FieldIndustry Field = "industry"
	FieldLocation Field = "location"
)

// Count is one bucket of a categorical distribution.
type Count struct {
	Value string
	Count int
}

// Distribution counts rows grouped by the given field, sorted by count
// descending with ties broken by value ascending. Rows with an empty
// field value are excluded from the buckets.
func Distribution(table model.Table, field Field) []Count {
	counts := map[string]int{}
	for _, p := range table.Postings {
		v := fieldValue(p, field)
		if v == "" {
			continue
		}
		counts[v]++
	}
	return sortCounts(counts)
}

// TopCompanies is the company distribution limited to the top n.
func TopCompanies(table model.Table, n int) []Count {
	dist := Distribution(table, FieldCompany)
	if n >= 0 && len(dist) > n {
		dist = dist[:n]
	}
	return dist
}

// Mode returns the most frequent non-empty value of a field, or "N/A"
// when the table has none. Ties resolve to the lexicographically
// smallest value.
func Mode(table model.Table, field Field) string {
	dist := Distribution(table, field)
	if len(dist) == 0 {
		return "N/A"
	}
	return dist[0].Value
}

// DistinctCount returns the number of distinct non-empty values of a
// field.
func DistinctCount(table model.Table, field Field) int {
	return len(Distribution(table, field))
}

func fieldValue(p model.Posting, field Field) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldCompany:
		return p.Company
	case FieldIndustry:
		return p.Industry
	case FieldLocation:
		return p.Location
	}
	return ""
}

// sortCounts orders buckets by count desc, value asc on ties.
func sortCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for v, c := range counts {
		out = append(out, Count{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
