// Package stats computes the view aggregates served by the dashboard.
package stats

import (
	"sort"
	"strings"

	"github.com/gigradar/gigradar/internal/models"
)

// AllTerms is the selector value that leaves the dataset unfiltered.
const AllTerms = "All"

// Filter returns the postings whose canonical search term matches the
// selection. An empty selection or AllTerms passes everything through.
func Filter(postings []models.Posting, term string) []models.Posting {
	if term == "" || term == AllTerms {
		return postings
	}
	out := make([]models.Posting, 0, len(postings))
	for _, p := range postings {
		if p.SearchTerm == term {
			out = append(out, p)
		}
	}
	return out
}

// Terms lists the distinct canonical search terms present, sorted.
func Terms(postings []models.Posting) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, p := range postings {
		if p.SearchTerm == "" {
			continue
		}
		if _, ok := seen[p.SearchTerm]; ok {
			continue
		}
		seen[p.SearchTerm] = struct{}{}
		terms = append(terms, p.SearchTerm)
	}
	sort.Strings(terms)
	return terms
}

// Summary holds the headline numbers for one selection. Averages are nil
// when no posting contributes the underlying field.
type Summary struct {
	Jobs          int      `json:"jobs"`
	AvgHourlyRate *float64 `json:"avg_hourly_rate"`
	AvgFixedPrice *float64 `json:"avg_fixed_price"`
	AvgTotalPay   *float64 `json:"avg_total_pay"`
}

type runningMean struct {
	sum float64
	n   int
}

func (m *runningMean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *runningMean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}

// Summarize computes the headline numbers for a set of postings. Each
// average skips the postings where the field is absent, so a selection of
// purely fixed-price jobs still reports a fixed-price mean and no hourly
// mean.
func Summarize(postings []models.Posting) Summary {
	var hourly, fixed, total runningMean
	for _, p := range postings {
		if p.HourlyRateMin != nil && p.HourlyRateMax != nil {
			hourly.add((*p.HourlyRateMin + *p.HourlyRateMax) / 2)
		}
		if p.FixedPrice != nil {
			fixed.add(*p.FixedPrice)
		}
		if p.EstimatedTotalPay != nil {
			total.add(*p.EstimatedTotalPay)
		}
	}
	return Summary{
		Jobs:          len(postings),
		AvgHourlyRate: hourly.value(),
		AvgFixedPrice: fixed.value(),
		AvgTotalPay:   total.value(),
	}
}

// Bin is one histogram bucket over estimated total pay.
type Bin struct {
	Lo     float64 `json:"lo"`
	Hi     float64 `json:"hi"`
	Count  int     `json:"count"`
	AvgPay float64 `json:"avg_pay"`
}

// Histogram buckets the positive pay estimates into nbins equal-width bins
// spanning the observed range; the upper edge of the last bin is inclusive.
// Returns nil when nothing is positive.
func Histogram(postings []models.Posting, nbins int) []Bin {
	if nbins <= 0 {
		return nil
	}

	var values []float64
	for _, p := range postings {
		if p.EstimatedTotalPay != nil && *p.EstimatedTotalPay > 0 {
			values = append(values, *p.EstimatedTotalPay)
		}
	}
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// Degenerate range: one bin holds everything.
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return []Bin{{Lo: lo, Hi: hi, Count: len(values), AvgPay: sum / float64(len(values))}}
	}

	width := (hi - lo) / float64(nbins)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[nbins-1].Hi = hi

	sums := make([]float64, nbins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		bins[idx].Count++
		sums[idx] += v
	}
	for i := range bins {
		if bins[i].Count > 0 {
			bins[i].AvgPay = sums[i] / float64(bins[i].Count)
		}
	}
	return bins
}

// Skill sort keys for TopSkills.
const (
	SortByCount = "count"
	SortByPay   = "pay"
)

// SkillRank is one entry of the skill leaderboard.
type SkillRank struct {
	Skill  string  `json:"skill"`
	Count  int     `json:"count"`
	AvgPay float64 `json:"avg_pay"`
}

// TopSkills ranks the canonical skills across all slots of the postings by
// occurrence count or by mean estimated total pay and returns the first n.
// A skill tagged on a posting counts once per slot it occupies.
func TopSkills(postings []models.Posting, n int, sortBy string) []SkillRank {
	counts := make(map[string]int)
	paySums := make(map[string]float64)
	for i := range postings {
		p := &postings[i]
		if p.EstimatedTotalPay == nil {
			continue
		}
		for _, skill := range p.Skills() {
			counts[skill]++
			paySums[skill] += *p.EstimatedTotalPay
		}
	}

	ranks := make([]SkillRank, 0, len(counts))
	for skill, count := range counts {
		ranks = append(ranks, SkillRank{
			Skill:  skill,
			Count:  count,
			AvgPay: paySums[skill] / float64(count),
		})
	}

	sort.Slice(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if sortBy == SortByPay {
			if a.AvgPay != b.AvgPay {
				return a.AvgPay > b.AvgPay
			}
		} else if a.Count != b.Count {
			return a.Count > b.Count
		}
		return strings.Compare(a.Skill, b.Skill) < 0
	})

	if n >= 0 && n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}
