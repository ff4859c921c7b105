package metrics

import (
	"sort"
	"strings"

	"github.com/jobseekai/jobseek/internal/model"
)

// DegreeVocab is an ordered list of degree labels with the substrings
// that signal each one. The vocabulary is configuration data, not a
// fixed constant: deployments can extend or reorder it, and the order
// fixes the column order of the industry-education matrix.
type DegreeVocab []DegreeKeyword

// DegreeKeyword maps one degree label to its case-insensitive match
// patterns.
type DegreeKeyword struct {
	Label    string
	Patterns []string
}

// DefaultDegreeVocab covers the degree mentions common in BDJobs
// postings. Matching is non-exclusive: a posting asking for "MSc or
// BSc" counts toward both labels, but each label at most once per row.
func DefaultDegreeVocab() DegreeVocab {
	return DegreeVocab{
		{Label: "PhD", Patterns: []string{"phd", "doctorate"}},
		{Label: "MBA", Patterns: []string{"mba"}},
		{Label: "MSc", Patterns: []string{"msc", "m.sc", "master"}},
		{Label: "BSc", Patterns: []string{"bsc", "b.sc", "bachelor", "bba", "b.eng"}},
		{Label: "Diploma", Patterns: []string{"diploma"}},
		{Label: "HSC", Patterns: []string{"hsc", "a-level"}},
		{Label: "SSC", Patterns: []string{"ssc", "o-level"}},
	}
}

// Labels returns the vocabulary's labels in order.
func (v DegreeVocab) Labels() []string {
	out := make([]string, len(v))
	for i, kw := range v {
		out[i] = kw.Label
	}
	return out
}

func (v DegreeVocab) matches(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var hits []string
	for _, kw := range v {
		for _, pat := range kw.Patterns {
			if strings.Contains(lower, pat) {
				hits = append(hits, kw.Label)
				break
			}
		}
	}
	return hits
}

// DegreeCounts scans each row's education text against the vocabulary
// and counts rows per degree label. Labels with zero matches are
// retained so the output shape is stable across filter changes.
func DegreeCounts(table model.Table, vocab DegreeVocab) []Count {
	counts := make(map[string]int, len(vocab))
	if table.Schema.HasEducation {
		for _, p := range table.Postings {
			for _, label := range vocab.matches(p.Education) {
				counts[label]++
			}
		}
	}
	out := make([]Count, 0, len(vocab))
	for _, kw := range vocab {
		out = append(out, Count{Value: kw.Label, Count: counts[kw.Label]})
	}
	// Present most-demanded first, vocabulary order on ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// EducationMatrix is the industry-by-degree cross-tabulation. The
// shape is stable: rows cover every industry present in the view and
// columns cover the full vocabulary, zero totals included.
type EducationMatrix struct {
	Industries []string // row labels, sorted ascending
	Degrees    []string // column labels, vocabulary order
	Cells      [][]int  // Cells[i][d] = rows in industry i matching degree d
}

// IndustryEducationMatrix cross-tabulates degree demand per industry.
func IndustryEducationMatrix(table model.Table, vocab DegreeVocab) EducationMatrix {
	industrySet := map[string]bool{}
	for _, p := range table.Postings {
		if p.Industry != "" {
			industrySet[p.Industry] = true
		}
	}
	industries := make([]string, 0, len(industrySet))
	for ind := range industrySet {
		industries = append(industries, ind)
	}
	sort.Strings(industries)

	degrees := vocab.Labels()
	degreeIdx := make(map[string]int, len(degrees))
	for i, d := range degrees {
		degreeIdx[d] = i
	}
	rowIdx := make(map[string]int, len(industries))
	for i, ind := range industries {
		rowIdx[ind] = i
	}

	cells := make([][]int, len(industries))
	for i := range cells {
		cells[i] = make([]int, len(degrees))
	}
	if table.Schema.HasEducation {
		for _, p := range table.Postings {
			r, ok := rowIdx[p.Industry]
			if !ok {
				continue
			}
			for _, label := range vocab.matches(p.Education) {
				cells[r][degreeIdx[label]]++
			}
		}
	}

	return EducationMatrix{Industries: industries, Degrees: degrees, Cells: cells}
}
