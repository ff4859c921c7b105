package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jobseekai/jobseek/internal/model"
)

// CSVStore reads the scraper's CSV output. Column presence is probed
// from the header so downstream aggregators can distinguish a missing
// column from empty values.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store reading the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load reads and cleans the whole CSV into a Table.
func (s *CSVStore) Load(ctx context.Context) (model.Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return model.Table{}, fmt.Errorf("open postings csv: %w", err)
	}
	defer f.Close()
	return readCSV(ctx, f)
}

func readCSV(ctx context.Context, r io.Reader) (model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // scraped rows are occasionally ragged

	header, err := reader.Read()
	if err == io.EOF {
		return model.Table{}, nil
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("read csv header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[normalizeHeader(name)] = i
	}

	_, minOK := col[colSalaryMin]
	_, maxOK := col[colSalaryMax]
	table := model.Table{
		Schema: model.Schema{
			HasSalary:     minOK && maxOK,
			HasExperience: has(col, colExperience),
			HasEducation:  has(col, colEducation),
			HasSkills:     has(col, colSkills),
			HasScraped:    has(col, colScraped),
		},
	}

	cell := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	for {
		if err := ctx.Err(); err != nil {
			return model.Table{}, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, fmt.Errorf("read csv row: %w", err)
		}

		p := model.Posting{
			Title:      cell(record, colTitle),
			Company:    cell(record, colCompany),
			Industry:   cell(record, colIndustry),
			Location:   cell(record, colLocation),
			SkillsRaw:  cell(record, colSkills),
			Experience: cell(record, colExperience),
			Education:  cell(record, colEducation),
			SalaryMin:  parseSalary(cell(record, colSalaryMin)),
			SalaryMax:  parseSalary(cell(record, colSalaryMax)),
			Scraped:    parseScraped(cell(record, colScraped)),
		}
		p.Skills = splitSkills(p.SkillsRaw)
		table.Postings = append(table.Postings, finalizePosting(p))
	}

	return table, nil
}

func has(col map[string]int, name string) bool {
	_, ok := col[name]
	return ok
}
