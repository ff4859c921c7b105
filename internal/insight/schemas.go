package insight

import "github.com/xeipuuv/gojsonschema"

// Reply schemas for the structured insight kinds. Fields beyond the
// required set are optional and get defaults after decoding.

const recommendationSchemaJSON = `{
	"type": "object",
	"required": ["matches"],
	"properties": {
		"matches": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["job_id", "match_score"],
				"properties": {
					"job_id": {"type": "integer"},
					"match_score": {"type": "number"},
					"reason": {"type": "string"}
				}
			}
		}
	}
}`

const skillGapSchemaJSON = `{
	"type": "object",
	"required": ["readiness_score", "summary"],
	"properties": {
		"readiness_score": {"type": "number"},
		"summary": {"type": "string"},
		"matched_skills": {"type": "array", "items": {"type": "string"}},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"gaps": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["skill"],
				"properties": {
					"skill": {"type": "string"},
					"reason": {"type": "string"},
					"how_to_learn": {"type": "string"}
				}
			}
		},
		"roadmap": {"type": "array", "items": {"type": "string"}}
	}
}`

const salaryEstimateSchemaJSON = `{
	"type": "object",
	"required": ["min_salary", "median_salary", "max_salary"],
	"properties": {
		"min_salary": {"type": "number"},
		"median_salary": {"type": "number"},
		"max_salary": {"type": "number"},
		"confidence": {"type": "string"},
		"reasoning": {"type": "string"},
		"negotiation_tips": {"type": "array", "items": {"type": "string"}},
		"factors_up": {"type": "array", "items": {"type": "string"}},
		"factors_down": {"type": "array", "items": {"type": "string"}}
	}
}`

func mustSchema(doc string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(err)
	}
	return s
}

// Compiled once at package init.
var (
	recommendationSchema = mustSchema(recommendationSchemaJSON)
	skillGapSchema       = mustSchema(skillGapSchemaJSON)
	salaryEstimateSchema = mustSchema(salaryEstimateSchemaJSON)
)
