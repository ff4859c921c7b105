package metrics

import (
	"sort"

	"github.com/jobseekai/jobseek/internal/model"
)

// SalaryStats summarizes the midpoint salary of rows carrying both
// bounds. Count is zero (and the other fields meaningless) when no row
// qualifies or the columns are absent.
type SalaryStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	Count  int
}

// ComputeSalaryStats derives salary statistics over (min+max)/2.
// Rows missing either bound are excluded here but still count in every
// other aggregate.
func ComputeSalaryStats(table model.Table) SalaryStats {
	if !table.Schema.HasSalary {
		return SalaryStats{}
	}
	var mids []float64
	for _, p := range table.Postings {
		if p.HasSalary() {
			mids = append(mids, p.AvgSalary())
		}
	}
	if len(mids) == 0 {
		return SalaryStats{}
	}
	sort.Float64s(mids)

	var sum float64
	for _, m := range mids {
		sum += m
	}
	n := len(mids)
	median := mids[n/2]
	if n%2 == 0 {
		median = (mids[n/2-1] + mids[n/2]) / 2
	}
	return SalaryStats{
		Mean:   sum / float64(n),
		Median: median,
		Min:    mids[0],
		Max:    mids[n-1],
		Count:  n,
	}
}
