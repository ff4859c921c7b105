package insight

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"strings"
	"text/template"
)

const systemPrompt = "You are a careful job market assistant for Bangladesh. " +
	"Follow the output format in the user message exactly."

// Generator produces a response for an insight request. Service is the
// real implementation; Memo wraps any Generator with caching.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Service renders prompts, calls the provider and parses replies. Every
// failure, from transport to malformed JSON, is returned as a
// *ServiceError; Service never panics and never retries.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a Service backed by provider.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Generate dispatches on the request kind.
func (s *Service) Generate(ctx context.Context, req Request) (*Response, error) {
	s.logger.Debug("insight request", "kind", req.Kind, "fingerprint", req.Fingerprint())
	switch req.Kind {
	case KindMarketSummary:
		return s.marketSummary(ctx, req)
	case KindRecommendation:
		return s.recommendation(ctx, req)
	case KindSkillGap:
		return s.skillGap(ctx, req)
	case KindSalaryEstimate:
		return s.salaryEstimate(ctx, req)
	default:
		return nil, failf("unknown insight kind %q", req.Kind)
	}
}

func (s *Service) marketSummary(ctx context.Context, req Request) (*Response, error) {
	if req.MarketSummary == nil {
		return nil, failf("market summary request has no context")
	}
	user, err := render(marketSummaryTemplate, req.MarketSummary)
	if err != nil {
		return nil, failf("render prompt: %v", err)
	}
	reply, err := s.provider.Complete(ctx, Prompt{System: systemPrompt, User: user, MaxTokens: 640})
	if err != nil {
		s.logger.Warn("market summary failed", "err", err)
		return nil, failf("market summary: %v", err)
	}
	text := strings.TrimSpace(stripFences(reply))
	if text == "" {
		return nil, failf("market summary: empty reply")
	}
	return &Response{Kind: KindMarketSummary, Summary: text}, nil
}

// recommendationReply mirrors the JSON shape the prompt demands.
type recommendationReply struct {
	Matches []struct {
		JobID  int     `json:"job_id"`
		Score  float64 `json:"match_score"`
		Reason string  `json:"reason"`
	} `json:"matches"`
}

func (s *Service) recommendation(ctx context.Context, req Request) (*Response, error) {
	rc := req.Recommendation
	if rc == nil {
		return nil, failf("recommendation request has no context")
	}
	user, err := render(recommendationTemplate, rc)
	if err != nil {
		return nil, failf("render prompt: %v", err)
	}
	reply, err := s.provider.Complete(ctx, Prompt{System: systemPrompt, User: user, MaxTokens: 1024, JSONMode: true})
	if err != nil {
		s.logger.Warn("recommendation failed", "err", err)
		return nil, failf("job recommendation: %v", err)
	}

	var parsed recommendationReply
	if err := decodeReply(reply, recommendationSchema, &parsed); err != nil {
		return nil, failf("job recommendation: %v", err)
	}

	// Best match first; the model usually orders them but is not
	// trusted to.
	sort.SliceStable(parsed.Matches, func(i, j int) bool {
		return parsed.Matches[i].Score > parsed.Matches[j].Score
	})

	recs := make([]Recommendation, 0, rc.ResultCount)
	seen := make(map[int]bool)
	for _, m := range parsed.Matches {
		if m.JobID < 0 || m.JobID >= len(rc.Catalogue) || seen[m.JobID] {
			// Hallucinated or duplicated ID; skip rather than fail.
			s.logger.Debug("dropping unmappable match", "job_id", m.JobID)
			continue
		}
		seen[m.JobID] = true
		entry := rc.Catalogue[m.JobID]
		score := clampScore(m.Score)
		recs = append(recs, Recommendation{
			Rank:     len(recs) + 1,
			Title:    entry.Title,
			Company:  entry.Company,
			Location: entry.Location,
			Industry: entry.Industry,
			Skills:   entry.Skills,
			Score:    score,
			Band:     MatchBand(score),
			Reason:   strings.TrimSpace(m.Reason),
		})
		if len(recs) == rc.ResultCount {
			break
		}
	}
	if len(recs) == 0 {
		return nil, failf("job recommendation: reply referenced no known jobs")
	}
	return &Response{Kind: KindRecommendation, Recommendations: recs}, nil
}

// skillGapReply mirrors the JSON shape the prompt demands.
type skillGapReply struct {
	ReadinessScore float64  `json:"readiness_score"`
	Summary        string   `json:"summary"`
	MatchedSkills  []string `json:"matched_skills"`
	Strengths      []string `json:"strengths"`
	Gaps           []struct {
		Skill      string `json:"skill"`
		Reason     string `json:"reason"`
		HowToLearn string `json:"how_to_learn"`
	} `json:"gaps"`
	Roadmap []string `json:"roadmap"`
}

func (s *Service) skillGap(ctx context.Context, req Request) (*Response, error) {
	if req.SkillGap == nil {
		return nil, failf("skill gap request has no context")
	}
	user, err := render(skillGapTemplate, req.SkillGap)
	if err != nil {
		return nil, failf("render prompt: %v", err)
	}
	reply, err := s.provider.Complete(ctx, Prompt{System: systemPrompt, User: user, MaxTokens: 1024, JSONMode: true})
	if err != nil {
		s.logger.Warn("skill gap failed", "err", err)
		return nil, failf("skill gap: %v", err)
	}

	var parsed skillGapReply
	if err := decodeReply(reply, skillGapSchema, &parsed); err != nil {
		return nil, failf("skill gap: %v", err)
	}

	score := clampScore(parsed.ReadinessScore)
	result := &SkillGapResult{
		Score:     score,
		Band:      ReadinessBand(score),
		Summary:   strings.TrimSpace(parsed.Summary),
		Matched:   parsed.MatchedSkills,
		Strengths: parsed.Strengths,
		Roadmap:   parsed.Roadmap,
	}
	for _, g := range parsed.Gaps {
		if strings.TrimSpace(g.Skill) == "" {
			continue
		}
		result.Gaps = append(result.Gaps, SkillGapItem{
			Skill:      strings.TrimSpace(g.Skill),
			Reason:     strings.TrimSpace(g.Reason),
			HowToLearn: strings.TrimSpace(g.HowToLearn),
		})
	}
	return &Response{Kind: KindSkillGap, SkillGap: result}, nil
}

// salaryReply mirrors the JSON shape the prompt demands.
type salaryReply struct {
	MinSalary       float64  `json:"min_salary"`
	MedianSalary    float64  `json:"median_salary"`
	MaxSalary       float64  `json:"max_salary"`
	Confidence      string   `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	NegotiationTips []string `json:"negotiation_tips"`
	FactorsUp       []string `json:"factors_up"`
	FactorsDown     []string `json:"factors_down"`
}

func (s *Service) salaryEstimate(ctx context.Context, req Request) (*Response, error) {
	if req.SalaryEstimate == nil {
		return nil, failf("salary estimate request has no context")
	}
	user, err := render(salaryEstimateTemplate, req.SalaryEstimate)
	if err != nil {
		return nil, failf("render prompt: %v", err)
	}
	reply, err := s.provider.Complete(ctx, Prompt{System: systemPrompt, User: user, MaxTokens: 1024, JSONMode: true})
	if err != nil {
		s.logger.Warn("salary estimate failed", "err", err)
		return nil, failf("salary estimate: %v", err)
	}

	var parsed salaryReply
	if err := decodeReply(reply, salaryEstimateSchema, &parsed); err != nil {
		return nil, failf("salary estimate: %v", err)
	}
	if parsed.MinSalary < 0 || parsed.MedianSalary < parsed.MinSalary || parsed.MaxSalary < parsed.MedianSalary {
		return nil, failf("salary estimate: inconsistent range %v/%v/%v",
			parsed.MinSalary, parsed.MedianSalary, parsed.MaxSalary)
	}
	result := &SalaryEstimateResult{
		Min:         int(parsed.MinSalary),
		Median:      int(parsed.MedianSalary),
		Max:         int(parsed.MaxSalary),
		Confidence:  normalizeConfidence(parsed.Confidence),
		Reasoning:   strings.TrimSpace(parsed.Reasoning),
		Tips:        parsed.NegotiationTips,
		FactorsUp:   parsed.FactorsUp,
		FactorsDown: parsed.FactorsDown,
	}
	return &Response{Kind: KindSalaryEstimate, Salary: result}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
