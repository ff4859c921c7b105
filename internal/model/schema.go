package model

// Schema records which optional columns were present in the source.
// It is probed once by the record store at load time; aggregators
// consult it instead of re-deriving column presence per call.
// A present-but-empty value is not the same as an absent column:
// absence degrades behavior (unknown freshness, no salary stats)
// rather than producing empty buckets.
type Schema struct {
	HasSalary     bool // salary_min and salary_max columns exist
	HasExperience bool
	HasEducation  bool
	HasSkills     bool
	HasScraped    bool // date_scraped column exists
}

// FullSchema is the schema for a source carrying every optional column.
func FullSchema() Schema {
	return Schema{
		HasSalary:     true,
		HasExperience: true,
		HasEducation:  true,
		HasSkills:     true,
		HasScraped:    true,
	}
}
