// Package insight builds structured requests from the analytics layer
// and exchanges them with an external generative-text service. The
// builder is a pure transform; the client is the only component in the
// core that performs external I/O.
package insight

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobseekai/jobseek/internal/metrics"
)

// Kind tags the four insight categories.
type Kind string

const (
	KindMarketSummary  Kind = "market_summary"
	KindRecommendation Kind = "job_recommendation"
	KindSkillGap       Kind = "skill_gap"
	KindSalaryEstimate Kind = "salary_estimate"
)

// Request is a tagged variant over the four insight kinds. Exactly one
// payload field is set, matching Kind.
type Request struct {
	Kind           Kind                   `json:"kind"`
	MarketSummary  *MarketSummaryContext  `json:"market_summary,omitempty"`
	Recommendation *RecommendationContext `json:"recommendation,omitempty"`
	SkillGap       *SkillGapContext       `json:"skill_gap,omitempty"`
	SalaryEstimate *SalaryEstimateContext `json:"salary_estimate,omitempty"`
}

// Fingerprint is a stable digest of the request, suitable as a cache
// key: identical (view-derived context, kind, user text) means an
// identical fingerprint.
func (r Request) Fingerprint() string {
	blob, err := json.Marshal(r)
	if err != nil {
		// Contexts are plain data; marshaling cannot realistically fail.
		return fmt.Sprintf("unfingerprintable:%v", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// MarketSummaryContext grounds the executive brief in the filtered
// view's aggregates.
type MarketSummaryContext struct {
	TopSkills   []metrics.Count     `json:"top_skills"`
	TopRole     string              `json:"top_role"`
	TopIndustry string              `json:"top_industry"`
	Salary      metrics.SalaryStats `json:"salary"`
}

// SkillsLine formats the top skills as "skill (count)" bullets.
func (c MarketSummaryContext) SkillsLine() string {
	parts := make([]string, 0, len(c.TopSkills))
	for _, s := range c.TopSkills {
		parts = append(parts, fmt.Sprintf("%s (%d)", s.Value, s.Count))
	}
	return strings.Join(parts, ", ")
}

// SalaryLine renders the salary bullet, falling back to the
// negotiable note when no posting carried figures.
func (c MarketSummaryContext) SalaryLine() string {
	if c.Salary.Count == 0 {
		return "Salary data: most employers list salary as negotiable"
	}
	return fmt.Sprintf("Offered salary (BDT/month): min %.0f, median %.0f, max %.0f across %d postings",
		c.Salary.Min, c.Salary.Median, c.Salary.Max, c.Salary.Count)
}

// CatalogueEntry is one sampled posting in a recommendation request.
// ID is the model's handle back into the sample.
type CatalogueEntry struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Industry string `json:"industry"`
	Skills   string `json:"skills"`
}

// RecommendationContext carries the candidate profile and a bounded
// sample of live postings.
type RecommendationContext struct {
	Profile     string           `json:"profile"`
	Catalogue   []CatalogueEntry `json:"catalogue"`
	ResultCount int              `json:"result_count"`
}

// CatalogueLines renders the job catalogue in the compact one-line
// format the prompt documents.
func (c RecommendationContext) CatalogueLines() string {
	var sb strings.Builder
	for _, e := range c.Catalogue {
		skills := e.Skills
		if len(skills) > 120 {
			skills = skills[:120]
		}
		fmt.Fprintf(&sb, "ID:%d | %s @ %s | Loc:%s | Industry:%s | Skills:%s\n",
			e.ID, orNA(e.Title), orNA(e.Company), orNA(e.Location), orNA(e.Industry), orNA(skills))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// SkillGapContext carries the candidate profile and the view's full
// skill-frequency distribution.
type SkillGapContext struct {
	Profile     string          `json:"profile"`
	SkillDemand []metrics.Count `json:"skill_demand"`
}

// DemandLines formats the market's skill demand as "skill (count)".
func (c SkillGapContext) DemandLines() string {
	parts := make([]string, 0, len(c.SkillDemand))
	for _, s := range c.SkillDemand {
		parts = append(parts, fmt.Sprintf("%s (%d)", s.Value, s.Count))
	}
	return strings.Join(parts, ", ")
}

// SalaryEstimateContext carries the five required form fields plus the
// view's salary aggregates for grounding.
type SalaryEstimateContext struct {
	Role           string              `json:"role"`
	Industry       string              `json:"industry"`
	Location       string              `json:"location"`
	ExperienceTier string              `json:"experience_tier"`
	YearsOfExp     int                 `json:"years_of_experience"`
	Education      string              `json:"education"`
	Market         metrics.SalaryStats `json:"market"`
}

// MarketLine renders the grounding bullet for observed salaries.
func (c SalaryEstimateContext) MarketLine() string {
	if c.Market.Count == 0 {
		return "No salary figures observed in the current listings; most postings say negotiable"
	}
	return fmt.Sprintf("Observed midpoint salaries (BDT/month): min %.0f, median %.0f, max %.0f over %d postings",
		c.Market.Min, c.Market.Median, c.Market.Max, c.Market.Count)
}

// Response is the parsed result of one insight request. The field
// matching Kind is populated.
type Response struct {
	Kind            Kind
	Summary         string
	Recommendations []Recommendation
	SkillGap        *SkillGapResult
	Salary          *SalaryEstimateResult
}

// Recommendation is one matched posting, enriched from the catalogue.
type Recommendation struct {
	Rank     int
	Title    string
	Company  string
	Location string
	Industry string
	Skills   string
	Score    int    // 0-100
	Band     string // Strong / Good / Partial
	Reason   string
}

// SkillGapItem is one critical gap with its learning guidance.
type SkillGapItem struct {
	Skill      string
	Reason     string
	HowToLearn string
}

// SkillGapResult is the parsed skill-gap analysis.
type SkillGapResult struct {
	Score     int    // readiness 0-100
	Band      string // High fit / Moderate / Low fit
	Summary   string
	Matched   []string
	Strengths []string
	Gaps      []SkillGapItem
	Roadmap   []string
}

// SalaryEstimateResult is the parsed salary estimate. Figures are
// advisory LLM output, not computed statistics.
type SalaryEstimateResult struct {
	Min         int
	Median      int
	Max         int
	Confidence  string // High / Medium / Low
	Reasoning   string
	Tips        []string
	FactorsUp   []string
	FactorsDown []string
}

// ServiceError is the uniform failure value for every insight-service
// problem: transport errors, rate limits, timeouts and malformed
// replies all normalize to it so callers can render one consistent
// retry affordance.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func failf(format string, args ...any) *ServiceError {
	return &ServiceError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports exactly which required fields were missing
// from user input, by name.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
