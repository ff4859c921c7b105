package insight

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/jobseekai/jobseek/internal/metrics"
	"github.com/jobseekai/jobseek/internal/model"
)

const (
	minSampleSize     = 30
	maxSampleSize     = 50
	defaultSampleSize = 40

	// Sampling is seeded so the same view always yields the same
	// catalogue, which keeps fingerprints cache-stable.
	sampleSeed = 42
)

var allowedResultCounts = map[int]bool{3: true, 5: true, 7: true}

// Builder assembles insight requests from a filtered view. The zero
// value uses the default sample bound.
type Builder struct {
	// SampleSize bounds the recommendation catalogue; values outside
	// [30,50] are clamped, zero means the default.
	SampleSize int
}

func (b Builder) sampleBound() int {
	n := b.SampleSize
	if n == 0 {
		n = defaultSampleSize
	}
	if n < minSampleSize {
		n = minSampleSize
	}
	if n > maxSampleSize {
		n = maxSampleSize
	}
	return n
}

// MarketSummary derives the summary context from the view's own
// aggregates. An empty view still produces a valid request.
func (b Builder) MarketSummary(view model.Table) Request {
	ctx := &MarketSummaryContext{
		TopSkills:   metrics.TopSkills(view, 10),
		TopRole:     metrics.Mode(view, metrics.FieldTitle),
		TopIndustry: metrics.Mode(view, metrics.FieldIndustry),
		Salary:      metrics.ComputeSalaryStats(view),
	}
	return Request{Kind: KindMarketSummary, MarketSummary: ctx}
}

// Recommendation samples the view into a catalogue and pairs it with
// the candidate profile. Profile must be non-empty and resultCount one
// of 3, 5 or 7.
func (b Builder) Recommendation(view model.Table, profile string, resultCount int) (Request, error) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return Request{}, &ValidationError{Missing: []string{"profile"}}
	}
	if !allowedResultCounts[resultCount] {
		return Request{}, failf("result count must be 3, 5 or 7, got %d", resultCount)
	}
	if view.Empty() {
		return Request{}, failf("no postings match the current filters")
	}
	ctx := &RecommendationContext{
		Profile:     profile,
		Catalogue:   b.catalogue(view),
		ResultCount: resultCount,
	}
	return Request{Kind: KindRecommendation, Recommendation: ctx}, nil
}

// catalogue draws a bounded sample of postings, preserving view order.
// IDs index into the returned slice, so the parser can map model
// replies back to concrete postings.
func (b Builder) catalogue(view model.Table) []CatalogueEntry {
	idx := make([]int, len(view.Postings))
	for i := range idx {
		idx[i] = i
	}
	if bound := b.sampleBound(); len(idx) > bound {
		rng := rand.New(rand.NewSource(sampleSeed))
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		idx = idx[:bound]
		sort.Ints(idx)
	}
	entries := make([]CatalogueEntry, 0, len(idx))
	for n, i := range idx {
		p := view.Postings[i]
		entries = append(entries, CatalogueEntry{
			ID:       n,
			Title:    p.Title,
			Company:  p.Company,
			Location: p.Location,
			Industry: p.Industry,
			Skills:   p.SkillsRaw,
		})
	}
	return entries
}

// SkillGap pairs the candidate profile with the view's skill demand.
func (b Builder) SkillGap(view model.Table, profile string) (Request, error) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return Request{}, &ValidationError{Missing: []string{"profile"}}
	}
	ctx := &SkillGapContext{
		Profile:     profile,
		SkillDemand: metrics.SkillFrequency(view),
	}
	return Request{Kind: KindSkillGap, SkillGap: ctx}, nil
}

// SalaryForm is the raw user input for a salary estimate.
type SalaryForm struct {
	Role           string
	Industry       string
	Location       string
	ExperienceTier string
	YearsOfExp     int
	Education      string
}

// SalaryEstimate validates the form and attaches the view's salary
// aggregates. Every missing required field is reported by name in one
// ValidationError.
func (b Builder) SalaryEstimate(view model.Table, form SalaryForm) (Request, error) {
	var missing []string
	check := func(name, v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}
	role := check("role", form.Role)
	industry := check("industry", form.Industry)
	location := check("location", form.Location)
	tier := check("experience level", form.ExperienceTier)
	education := check("education", form.Education)
	if len(missing) > 0 {
		return Request{}, &ValidationError{Missing: missing}
	}
	years := form.YearsOfExp
	if years < 0 {
		years = 0
	}
	if years > 20 {
		years = 20
	}
	ctx := &SalaryEstimateContext{
		Role:           role,
		Industry:       industry,
		Location:       location,
		ExperienceTier: tier,
		YearsOfExp:     years,
		Education:      education,
		Market:         metrics.ComputeSalaryStats(view),
	}
	return Request{Kind: KindSalaryEstimate, SalaryEstimate: ctx}, nil
}
