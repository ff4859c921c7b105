package metrics

import "github.com/jobseekai/jobseek/internal/model"

// SkillFrequency counts every normalized skill token across the table.
// Tokens are already trimmed, lowercased and deduped per row at load.
// Sorted by frequency desc, ties alphabetical.
func SkillFrequency(table model.Table) []Count {
	counts := map[string]int{}
	for _, p := range table.Postings {
		for _, s := range p.Skills {
			counts[s]++
		}
	}
	return sortCounts(counts)
}

// TopSkills returns the n most frequent skills.
func TopSkills(table model.Table, n int) []Count {
	freq := SkillFrequency(table)
	if n >= 0 && len(freq) > n {
		freq = freq[:n]
	}
	return freq
}
