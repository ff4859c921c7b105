package insight

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/market_summary.md
var marketSummaryPromptRaw string

//go:embed prompts/job_recommendation.md
var recommendationPromptRaw string

//go:embed prompts/skill_gap.md
var skillGapPromptRaw string

//go:embed prompts/salary_estimate.md
var salaryEstimatePromptRaw string

// Prompt templates, parsed once at package init and reused on every
// Generate call. Template data is the matching request context.
var (
	marketSummaryTemplate  = template.Must(template.New("market_summary").Parse(marketSummaryPromptRaw))
	recommendationTemplate = template.Must(template.New("job_recommendation").Parse(recommendationPromptRaw))
	skillGapTemplate       = template.Must(template.New("skill_gap").Parse(skillGapPromptRaw))
	salaryEstimateTemplate = template.Must(template.New("salary_estimate").Parse(salaryEstimatePromptRaw))
)
