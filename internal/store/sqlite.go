package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jobseekai/jobseek/internal/model"
)

// SQLiteStore loads postings from the sqlite database the scraper
// writes to. The column set is probed from the postings table, so a
// database written before a column existed degrades the same way a
// short CSV header does.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the sqlite database at dbPath read-only.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads every row of the postings table into a snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (model.Table, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM postings")
	if err != nil {
		return model.Table{}, fmt.Errorf("querying postings: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return model.Table{}, fmt.Errorf("reading postings columns: %w", err)
	}
	col := map[string]int{}
	for i, name := range names {
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

	values := make([]sql.NullString, len(names))
	scan := make([]any, len(names))
	for i := range values {
		scan[i] = &values[i]
	}

	cell := func(name string) string {
		i, ok := col[name]
		if !ok || !values[i].Valid {
			return ""
		}
		return values[i].String
	}

	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return model.Table{}, fmt.Errorf("scanning posting row: %w", err)
		}
		p := model.Posting{
			Title:      cell(colTitle),
			Company:    cell(colCompany),
			Industry:   cell(colIndustry),
			Location:   cell(colLocation),
			SkillsRaw:  cell(colSkills),
			Experience: cell(colExperience),
			Education:  cell(colEducation),
			SalaryMin:  parseSalary(cell(colSalaryMin)),
			SalaryMax:  parseSalary(cell(colSalaryMax)),
			Scraped:    parseScraped(cell(colScraped)),
		}
		p.Skills = splitSkills(p.SkillsRaw)
		table.Postings = append(table.Postings, finalizePosting(p))
	}
	if err := rows.Err(); err != nil {
		return model.Table{}, fmt.Errorf("iterating postings: %w", err)
	}

	return table, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
