package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jobseekai/jobseek/internal/filter"
	"github.com/jobseekai/jobseek/internal/metrics"
	"github.com/jobseekai/jobseek/internal/model"
)

// reportRowCap bounds the listing appendix so huge views stay readable.
const reportRowCap = 30

// reportDate pins both PDF date stamps; together with catalog sorting
// this keeps the output stable across runs.
var reportDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ReportBytes renders a one-shot PDF market report for the view:
// headline KPIs, top companies, industry breakdown and a bounded
// listing appendix. Identical inputs produce byte-identical files.
func ReportBytes(table model.Table, sel filter.Selection) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(reportDate)
	pdf.SetModificationDate(reportDate)
	pdf.SetTitle("Job Market Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Job Market Report", "", 1, "L", false, 0, "")
	writeFilters(pdf, sel)
	pdf.Ln(2)

	writeKPIs(pdf, table)
	writeTopCompanies(pdf, table)
	writeIndustryBreakdown(pdf, table)
	writeListings(pdf, table)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFilters(pdf *fpdf.Fpdf, sel filter.Selection) {
	pdf.SetFont("Helvetica", "I", 9)
	line := "Filters: none"
	if !sel.Empty() {
		var parts []string
		if len(sel.Industries) > 0 {
			parts = append(parts, "industry "+strings.Join(sel.Industries, "/"))
		}
		if len(sel.Roles) > 0 {
			parts = append(parts, "role "+strings.Join(sel.Roles, "/"))
		}
		if len(sel.Locations) > 0 {
			parts = append(parts, "location "+strings.Join(sel.Locations, "/"))
		}
		line = "Filters: " + strings.Join(parts, "; ")
	}
	pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeKPIs(pdf *fpdf.Fpdf, table model.Table) {
	sectionHeader(pdf, "Key Figures")

	stats := metrics.ComputeSalaryStats(table)
	lines := []string{
		fmt.Sprintf("Total postings: %d", table.Len()),
		fmt.Sprintf("Companies hiring: %d", metrics.DistinctCount(table, metrics.FieldCompany)),
		fmt.Sprintf("Most advertised role: %s", metrics.Mode(table, metrics.FieldTitle)),
		fmt.Sprintf("Leading industry: %s", metrics.Mode(table, metrics.FieldIndustry)),
	}
	if stats.Count > 0 {
		lines = append(lines, fmt.Sprintf("Average salary (BDT/month): %.0f across %d postings", stats.Mean, stats.Count))
	} else {
		lines = append(lines, "Average salary: not disclosed")
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
}

func writeTopCompanies(pdf *fpdf.Fpdf, table model.Table) {
	sectionHeader(pdf, "Top Hiring Companies")

	companies := metrics.TopCompanies(table, 10)
	if len(companies) == 0 {
		pdf.CellFormat(0, 6, "No company data available.", "", 1, "L", false, 0, "")
		return
	}
	for i, c := range companies {
		line := fmt.Sprintf("%d. %s (%d openings)", i+1, c.Value, c.Count)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
}

func writeIndustryBreakdown(pdf *fpdf.Fpdf, table model.Table) {
	sectionHeader(pdf, "Postings by Industry")

	counts := metrics.Distribution(table, metrics.FieldIndustry)
	if len(counts) == 0 {
		pdf.CellFormat(0, 6, "No industry data available.", "", 1, "L", false, 0, "")
		return
	}
	for _, c := range counts {
		line := fmt.Sprintf("%s: %d", c.Value, c.Count)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
}

func writeListings(pdf *fpdf.Fpdf, table model.Table) {
	sectionHeader(pdf, "Listings")

	n := table.Len()
	if n == 0 {
		pdf.CellFormat(0, 6, "No postings match the current filters.", "", 1, "L", false, 0, "")
		return
	}
	if n > reportRowCap {
		pdf.CellFormat(0, 6, fmt.Sprintf("Showing first %d of %d postings.", reportRowCap, n), "", 1, "L", false, 0, "")
		n = reportRowCap
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(70, 6, "Title", "B", 0, "L", false, 0, "")
	pdf.CellFormat(55, 6, "Company", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, "Location", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Salary", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	for _, p := range table.Postings[:n] {
		pdf.CellFormat(70, 5, clip(p.Title, 45), "", 0, "L", false, 0, "")
		pdf.CellFormat(55, 5, clip(p.Company, 35), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, clip(p.Location, 22), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, salaryCell(p), "", 1, "L", false, 0, "")
	}
}

func salaryCell(p model.Posting) string {
	if !p.HasSalary() {
		return "negotiable"
	}
	return fmt.Sprintf("%.0f-%.0f", *p.SalaryMin, *p.SalaryMax)
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
