// Package export renders a filtered view into downloadable artifacts:
// a CSV in the canonical column layout and a PDF market report. Both
// renderers are deterministic, so identical views produce identical
// bytes.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jobseekai/jobseek/internal/model"
)

// csvColumns is the canonical export order, matching the ingest layout
// so an export round-trips through the loader.
var csvColumns = []string{
	"job_title", "company", "industry", "location", "skills",
	"experience", "education", "salary_min", "salary_max", "date_scraped",
}

// TableBytes renders the view as CSV with a header row. Absent values
// become empty cells.
func TableBytes(table model.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, p := range table.Postings {
		row := []string{
			p.Title, p.Company, p.Industry, p.Location, p.SkillsRaw,
			p.Experience, p.Education,
			formatSalary(p.SalaryMin), formatSalary(p.SalaryMax),
			formatScraped(p.Scraped),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatSalary(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.0f", *v)
}

func formatScraped(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
