package metrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/jobseekai/jobseek/internal/model"
)

func fp(v float64) *float64 { return &v }

func tp(t time.Time) *time.Time { return &t }

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testTable() model.Table {
	return model.Table{
		Schema: model.FullSchema(),
		Postings: []model.Posting{
			{
				Title: "Data Analyst", Company: "Acme", Industry: "IT", Location: "Dhaka",
				Skills: []string{"python", "sql"}, Experience: "2 years",
				Education: "BSc in CSE required", SalaryMin: fp(30000), SalaryMax: fp(50000),
				Scraped: tp(now.Add(-2 * time.Hour)),
			},
			{
				Title: "Data Analyst", Company: "Acme", Industry: "IT", Location: "Dhaka",
				Skills: []string{"python", "excel"}, Experience: "3-5 years",
				Education: "MSc preferred, BSc acceptable", SalaryMin: fp(50000), SalaryMax: fp(70000),
				Scraped: tp(now.Add(-26 * time.Hour)),
			},
			{
				Title: "Sales Executive", Company: "Beta Ltd", Industry: "FMCG", Location: "Chattogram",
				Skills: []string{"communication"}, Experience: "7+ years",
				Education: "MBA", Scraped: tp(now.Add(-26 * time.Hour)),
			},
			{
				Title: "Backend Engineer", Company: "Acme", Industry: "IT", Location: "Dhaka",
				Skills: []string{"go", "sql"}, Experience: "contract basis",
				Education: "", SalaryMin: fp(80000), SalaryMax: fp(80000),
				Scraped: tp(now.Add(-50 * time.Hour)),
			},
		},
	}
}

func TestDistribution(t *testing.T) {
	got := Distribution(testTable(), FieldIndustry)
	want := []Count{{Value: "IT", Count: 3}, {Value: "FMCG", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Distribution = %v, want %v", got, want)
	}
}

func TestDistributionTieBreakAlphabetical(t *testing.T) {
	table := model.Table{Postings: []model.Posting{
		{Industry: "Telecom"}, {Industry: "Banking"},
	}}
	got := Distribution(table, FieldIndustry)
	if got[0].Value != "Banking" || got[1].Value != "Telecom" {
		t.Errorf("ties must break lexicographically, got %v", got)
	}
}

func TestDistributionCountsSumToNonNullRows(t *testing.T) {
	table := testTable()
	table.Postings = append(table.Postings, model.Posting{Title: "No Industry"})

	sum := 0
	for _, c := range Distribution(table, FieldIndustry) {
		sum += c.Count
	}
	if sum != table.Len()-1 {
		t.Errorf("bucket sum = %d, want %d (rows minus null-field rows)", sum, table.Len()-1)
	}
}

func TestDistributionEmptyTable(t *testing.T) {
	if got := Distribution(model.Table{}, FieldCompany); len(got) != 0 {
		t.Errorf("expected no buckets, got %v", got)
	}
	if Mode(model.Table{}, FieldTitle) != "N/A" {
		t.Error("Mode of empty table should be N/A")
	}
}

func TestTopSkills(t *testing.T) {
	got := TopSkills(testTable(), 2)
	want := []Count{{Value: "python", Count: 2}, {Value: "sql", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopSkills = %v, want %v", got, want)
	}
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	table := testTable()
	first := SkillFrequency(table)
	second := SkillFrequency(table)
	if !reflect.DeepEqual(first, second) {
		t.Error("SkillFrequency not idempotent")
	}
	if !reflect.DeepEqual(ComputeSalaryStats(table), ComputeSalaryStats(table)) {
		t.Error("ComputeSalaryStats not idempotent")
	}
	if !reflect.DeepEqual(ComputeCompanyIntel(table, "Acme", now), ComputeCompanyIntel(table, "Acme", now)) {
		t.Error("ComputeCompanyIntel not idempotent")
	}
}

func TestFreshness(t *testing.T) {
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		age  time.Duration
		want model.FreshnessStatus
	}{
		{"just under twelve hours", 11*time.Hour + 59*time.Minute, model.FreshnessFresh},
		{"exactly twelve hours", 12 * time.Hour, model.FreshnessStale},
		{"exactly thirty six hours", 36 * time.Hour, model.FreshnessStale},
		{"just past thirty six hours", 36*time.Hour + time.Second, model.FreshnessOld},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := model.Table{
				Schema:   model.Schema{HasScraped: true},
				Postings: []model.Posting{{Scraped: tp(base)}},
			}
			got := ComputeFreshness(table, base.Add(tt.age))
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestFreshnessUnknown(t *testing.T) {
	noColumn := model.Table{Postings: []model.Posting{{Title: "x"}}}
	if got := ComputeFreshness(noColumn, now); got.Status != model.FreshnessUnknown {
		t.Errorf("no date column: status = %s, want unknown", got.Status)
	}
	empty := model.Table{Schema: model.Schema{HasScraped: true}}
	if got := ComputeFreshness(empty, now); got.Status != model.FreshnessUnknown {
		t.Errorf("no rows: status = %s, want unknown", got.Status)
	}
}

func TestDeltaJobs(t *testing.T) {
	day := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	table := model.Table{
		Schema: model.Schema{HasScraped: true},
		Postings: []model.Posting{
			{Scraped: tp(day.AddDate(0, 0, 1))},
			{Scraped: tp(day.AddDate(0, 0, 1))},
			{Scraped: tp(day.AddDate(0, 0, 1))},
			{Scraped: tp(day)},
		},
	}
	if got := DeltaJobs(table); got != 2 {
		t.Errorf("DeltaJobs = %d, want 2", got)
	}
}

func TestDeltaJobsSingleDate(t *testing.T) {
	table := model.Table{
		Schema:   model.Schema{HasScraped: true},
		Postings: []model.Posting{{Scraped: tp(now)}, {Scraped: tp(now)}},
	}
	if got := DeltaJobs(table); got != 0 {
		t.Errorf("DeltaJobs = %d, want 0 with fewer than two distinct dates", got)
	}
}

func TestJobsOnLatestDay(t *testing.T) {
	day := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	table := model.Table{
		Schema: model.Schema{HasScraped: true},
		Postings: []model.Posting{
			{Scraped: tp(day.AddDate(0, 0, 1))},
			{Scraped: tp(day.AddDate(0, 0, 1))},
			{Scraped: tp(day)},
			{Scraped: nil},
		},
	}
	if got := JobsOnLatestDay(table); got != 2 {
		t.Errorf("JobsOnLatestDay = %d, want 2", got)
	}
	if got := JobsOnLatestDay(model.Table{}); got != 0 {
		t.Errorf("JobsOnLatestDay on empty table = %d, want 0", got)
	}
}

func TestNewCompaniesOnLatestDay(t *testing.T) {
	day := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	table := model.Table{
		Schema: model.Schema{HasScraped: true},
		Postings: []model.Posting{
			// Acme appeared the day before, so only Globex and Initech
			// count as new on the latest day.
			{Company: "Acme", Scraped: tp(day)},
			{Company: "Acme", Scraped: tp(day.AddDate(0, 0, 1))},
			{Company: "Globex", Scraped: tp(day.AddDate(0, 0, 1))},
			{Company: "Initech", Scraped: tp(day.AddDate(0, 0, 1))},
			{Company: "Initech", Scraped: tp(day.AddDate(0, 0, 1))},
			{Company: "", Scraped: tp(day.AddDate(0, 0, 1))},
		},
	}
	if got := NewCompaniesOnLatestDay(table); got != 2 {
		t.Errorf("NewCompaniesOnLatestDay = %d, want 2", got)
	}
	if got := NewCompaniesOnLatestDay(model.Table{}); got != 0 {
		t.Errorf("NewCompaniesOnLatestDay on empty table = %d, want 0", got)
	}
}

func TestParseExperience(t *testing.T) {
	tests := []struct {
		raw  string
		want model.ExperienceLevel
	}{
		{"2 years", model.ExpEntry},
		{"0-1 years", model.ExpEntry},
		{"3-5 years", model.ExpMid},
		{"7+ years", model.ExpSenior},
		{"At least 10 years", model.ExpSenior},
		{"contract basis", model.ExpUnspecified},
		{"", model.ExpUnspecified},
	}
	for _, tt := range tests {
		if got := ParseExperience(tt.raw); got != tt.want {
			t.Errorf("ParseExperience(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestExperienceLevels(t *testing.T) {
	levels := ExperienceLevels(testTable())
	if len(levels) != 4 {
		t.Fatalf("want all four buckets, got %d", len(levels))
	}
	byLevel := map[model.ExperienceLevel]LevelCount{}
	for _, lc := range levels {
		byLevel[lc.Level] = lc
	}
	if byLevel[model.ExpEntry].Count != 1 || byLevel[model.ExpMid].Count != 1 ||
		byLevel[model.ExpSenior].Count != 1 || byLevel[model.ExpUnspecified].Count != 1 {
		t.Errorf("bucket counts wrong: %+v", levels)
	}
	if byLevel[model.ExpEntry].Percent != 25 {
		t.Errorf("Entry percent = %v, want 25", byLevel[model.ExpEntry].Percent)
	}
}

func TestDegreeCounts(t *testing.T) {
	counts := DegreeCounts(testTable(), DefaultDegreeVocab())
	byLabel := map[string]int{}
	for _, c := range counts {
		byLabel[c.Value] = c.Count
	}
	// Row 2 mentions both MSc and BSc: non-exclusive matching counts both.
	if byLabel["BSc"] != 2 || byLabel["MSc"] != 1 || byLabel["MBA"] != 1 {
		t.Errorf("degree counts wrong: %v", byLabel)
	}
	if byLabel["PhD"] != 0 {
		t.Errorf("PhD = %d, want retained zero bucket", byLabel["PhD"])
	}
	if len(counts) != len(DefaultDegreeVocab()) {
		t.Errorf("zero buckets must be retained, got %d labels", len(counts))
	}
}

func TestIndustryEducationMatrix(t *testing.T) {
	mx := IndustryEducationMatrix(testTable(), DefaultDegreeVocab())
	if !reflect.DeepEqual(mx.Industries, []string{"FMCG", "IT"}) {
		t.Fatalf("industries = %v", mx.Industries)
	}
	degreeIdx := map[string]int{}
	for i, d := range mx.Degrees {
		degreeIdx[d] = i
	}
	itRow := mx.Cells[1]
	if itRow[degreeIdx["BSc"]] != 2 {
		t.Errorf("IT x BSc = %d, want 2", itRow[degreeIdx["BSc"]])
	}
	fmcgRow := mx.Cells[0]
	if fmcgRow[degreeIdx["MBA"]] != 1 {
		t.Errorf("FMCG x MBA = %d, want 1", fmcgRow[degreeIdx["MBA"]])
	}
	if fmcgRow[degreeIdx["PhD"]] != 0 {
		t.Error("zero cells must be retained")
	}
}

func TestSalaryStats(t *testing.T) {
	stats := ComputeSalaryStats(testTable())
	if stats.Count != 3 {
		t.Fatalf("Count = %d, want 3 (row without salary excluded)", stats.Count)
	}
	// Midpoints: 40000, 60000, 80000.
	if stats.Min != 40000 || stats.Median != 60000 || stats.Max != 80000 || stats.Mean != 60000 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSalaryStatsAllNull(t *testing.T) {
	table := model.Table{
		Schema:   model.Schema{HasSalary: true},
		Postings: []model.Posting{{Title: "x"}, {Title: "y"}},
	}
	if got := ComputeSalaryStats(table); got.Count != 0 {
		t.Errorf("all-null column should give zero count, got %+v", got)
	}
}

func TestCompanyIntel(t *testing.T) {
	intel := ComputeCompanyIntel(testTable(), "acme", now)
	if !intel.Found {
		t.Fatal("expected Found for existing company")
	}
	if intel.Openings != 3 {
		t.Errorf("Openings = %d, want 3", intel.Openings)
	}
	if intel.TopRole != "Data Analyst" {
		t.Errorf("TopRole = %q", intel.TopRole)
	}
	if intel.TopLocation != "Dhaka" {
		t.Errorf("TopLocation = %q", intel.TopLocation)
	}
	if !reflect.DeepEqual(intel.Industries, []string{"IT"}) {
		t.Errorf("Industries = %v", intel.Industries)
	}
}

func TestCompanyIntelNotFound(t *testing.T) {
	intel := ComputeCompanyIntel(testTable(), "Nonexistent Corp", now)
	if intel.Found {
		t.Fatal("expected not-found result, not an error and not Found")
	}
	if intel.Openings != 0 {
		t.Errorf("Openings = %d, want 0", intel.Openings)
	}
}

func TestWeeklyTrend(t *testing.T) {
	mk := func(recent, prev int) model.Table {
		table := model.Table{Schema: model.Schema{HasScraped: true}}
		for i := 0; i < recent; i++ {
			table.Postings = append(table.Postings, model.Posting{Company: "X", Scraped: tp(now.AddDate(0, 0, -2))})
		}
		for i := 0; i < prev; i++ {
			table.Postings = append(table.Postings, model.Posting{Company: "X", Scraped: tp(now.AddDate(0, 0, -10))})
		}
		return table
	}

	if intel := ComputeCompanyIntel(mk(10, 6), "X", now); intel.Trend != model.TrendUp {
		t.Errorf("10 vs 6: trend = %s, want up", intel.Trend)
	}
	if intel := ComputeCompanyIntel(mk(6, 6), "X", now); intel.Trend != model.TrendStable {
		t.Errorf("6 vs 6: trend = %s, want stable", intel.Trend)
	}
	if intel := ComputeCompanyIntel(mk(2, 5), "X", now); intel.Trend != model.TrendDown {
		t.Errorf("2 vs 5: trend = %s, want down", intel.Trend)
	}
}

func TestWeeklyTrendUnknownWithoutDates(t *testing.T) {
	table := model.Table{Postings: []model.Posting{{Company: "X"}}}
	intel := ComputeCompanyIntel(table, "X", now)
	if intel.Trend != model.TrendUnknown {
		t.Errorf("trend = %s, want unknown without date column", intel.Trend)
	}
}

func TestTopCompanies(t *testing.T) {
	got := TopCompanies(testTable(), 1)
	if len(got) != 1 || got[0].Value != "Acme" || got[0].Count != 3 {
		t.Errorf("TopCompanies = %v", got)
	}
}
