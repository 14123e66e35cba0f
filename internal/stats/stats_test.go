package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/models"
	"github.com/gigradar/gigradar/internal/stats"
)

func f(v float64) *float64 { return &v }

func hourly(term string, min, max, pay float64, skills ...string) models.Posting {
	p := models.Posting{
		SearchTerm:        term,
		PayType:           models.PayHourly,
		HourlyRateMin:     f(min),
		HourlyRateMax:     f(max),
		EstimatedTotalPay: f(pay),
	}
	slots := p.SkillSlots()
	for i, s := range skills {
		*slots[i] = s
	}
	return p
}

func fixed(term string, price float64, skills ...string) models.Posting {
	p := models.Posting{
		SearchTerm:        term,
		PayType:           models.PayFixed,
		FixedPrice:        f(price),
		EstimatedTotalPay: f(price),
	}
	slots := p.SkillSlots()
	for i, s := range skills {
		*slots[i] = s
	}
	return p
}

func TestFilter(t *testing.T) {
	postings := []models.Posting{hourly("AI", 10, 20, 100), fixed("ML", 50)}

	require.Len(t, stats.Filter(postings, stats.AllTerms), 2)
	require.Len(t, stats.Filter(postings, ""), 2)

	got := stats.Filter(postings, "AI")
	require.Len(t, got, 1)
	require.Equal(t, "AI", got[0].SearchTerm)

	require.Empty(t, stats.Filter(postings, "statistics"))
}

func TestTerms(t *testing.T) {
	postings := []models.Posting{
		hourly("ML", 10, 20, 100),
		hourly("AI", 10, 20, 100),
		fixed("AI", 50),
		{PayType: models.PayFixed}, // no term
	}
	require.Equal(t, []string{"AI", "ML"}, stats.Terms(postings))
}

func TestSummarize(t *testing.T) {
	postings := []models.Posting{
		hourly("AI", 20, 40, 7200),
		hourly("AI", 50, 50, 12000),
		fixed("AI", 600),
	}

	got := stats.Summarize(postings)
	require.Equal(t, 3, got.Jobs)
	require.InDelta(t, 40.0, *got.AvgHourlyRate, 1e-9) // mean of 30 and 50
	require.InDelta(t, 600.0, *got.AvgFixedPrice, 1e-9)
	require.InDelta(t, (7200.0+12000+600)/3, *got.AvgTotalPay, 1e-9)
}

func TestSummarizeAbsentAverages(t *testing.T) {
	got := stats.Summarize([]models.Posting{fixed("AI", 600)})
	require.Equal(t, 1, got.Jobs)
	require.Nil(t, got.AvgHourlyRate)
	require.InDelta(t, 600.0, *got.AvgFixedPrice, 1e-9)

	empty := stats.Summarize(nil)
	require.Equal(t, 0, empty.Jobs)
	require.Nil(t, empty.AvgTotalPay)
}

func TestHistogram(t *testing.T) {
	postings := []models.Posting{
		fixed("AI", 100),
		fixed("AI", 150),
		fixed("AI", 900),
		fixed("AI", 1100),
		{PayType: models.PayFixed, EstimatedTotalPay: f(-10)}, // non-positive excluded
	}

	bins := stats.Histogram(postings, 2)
	require.Len(t, bins, 2)

	require.Equal(t, 100.0, bins[0].Lo)
	require.Equal(t, 600.0, bins[0].Hi)
	require.Equal(t, 2, bins[0].Count)
	require.InDelta(t, 125.0, bins[0].AvgPay, 1e-9)

	require.Equal(t, 1100.0, bins[1].Hi)
	require.Equal(t, 2, bins[1].Count)
	require.InDelta(t, 1000.0, bins[1].AvgPay, 1e-9)
}

func TestHistogramMaxValueLandsInLastBin(t *testing.T) {
	postings := []models.Posting{fixed("AI", 10), fixed("AI", 20)}
	bins := stats.Histogram(postings, 4)
	require.Len(t, bins, 4)
	require.Equal(t, 1, bins[0].Count)
	require.Equal(t, 1, bins[3].Count)
}

func TestHistogramDegenerateRange(t *testing.T) {
	postings := []models.Posting{fixed("AI", 500), fixed("AI", 500)}
	bins := stats.Histogram(postings, 20)
	require.Len(t, bins, 1)
	require.Equal(t, 2, bins[0].Count)
	require.InDelta(t, 500.0, bins[0].AvgPay, 1e-9)
}

func TestHistogramEmpty(t *testing.T) {
	require.Nil(t, stats.Histogram(nil, 20))
	require.Nil(t, stats.Histogram([]models.Posting{{}}, 20))
}

func TestTopSkillsByCount(t *testing.T) {
	postings := []models.Posting{
		fixed("AI", 100, "Python", "Machine Learning"),
		fixed("AI", 300, "Python"),
		fixed("AI", 500, "Statistics"),
	}

	got := stats.TopSkills(postings, 2, stats.SortByCount)
	require.Len(t, got, 2)
	require.Equal(t, "Python", got[0].Skill)
	require.Equal(t, 2, got[0].Count)
	require.InDelta(t, 200.0, got[0].AvgPay, 1e-9)
	// Tie between Machine Learning and Statistics breaks alphabetically.
	require.Equal(t, "Machine Learning", got[1].Skill)
}

func TestTopSkillsByPay(t *testing.T) {
	postings := []models.Posting{
		fixed("AI", 100, "Python", "Machine Learning"),
		fixed("AI", 300, "Python"),
		fixed("AI", 500, "Statistics"),
	}

	got := stats.TopSkills(postings, 10, stats.SortByPay)
	require.Equal(t, "Statistics", got[0].Skill)
	require.InDelta(t, 500.0, got[0].AvgPay, 1e-9)
	require.Equal(t, "Python", got[1].Skill)
	require.Equal(t, "Machine Learning", got[2].Skill)
}
