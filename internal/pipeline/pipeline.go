// Package pipeline turns deduplicated extract rows into the cleaned dataset.
package pipeline

import (
	"github.com/gigradar/gigradar/internal/models"
	"github.com/gigradar/gigradar/internal/processing"
)

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// Normalize derives a typed Posting from every raw row, drops the rows with
// no computable pay estimate, and canonicalizes the categorical columns of
// the survivors. Rate figures live in the pay-type text and hours, duration
// and budget figures in the duration/budget text, so both feed the
// estimator. Search-term canonicalization runs after the pay filter, over
// the surviving rows in their original order, because the forward fill
// depends on which neighbors remain.
func Normalize(rows []models.RawPosting) []models.Posting {
	postings := make([]models.Posting, 0, len(rows))
	for _, row := range rows {
		estimate, ok := processing.EstimateTotalPay(row.HourlyOrFixed, row.DurationOrBudget)
		if !ok {
			continue
		}

		p := models.Posting{
			JobTitle:          row.JobTitle,
			JobURL:            row.JobURL,
			SearchTerm:        row.SearchTerm,
			PayType:           processing.PayTypeOf(row.HourlyOrFixed),
			EstHoursPerWeek:   optional(processing.ParseHoursPerWeek(row.DurationOrBudget)),
			EstDurationWeeks:  optional(processing.ParseDurationWeeks(row.DurationOrBudget)),
			EstimatedTotalPay: &estimate,
			JobDescription:    row.JobDescription,
			Skill1:            row.Skill1,
			Skill2:            row.Skill2,
			Skill3:            row.Skill3,
			Skill4:            row.Skill4,
			Skill6:            row.Skill6,
			Skill7:            row.Skill7,
			Skill8:            row.Skill8,
			Skill9:            row.Skill9,
			Skill10:           row.Skill10,
			Skill11:           row.Skill11,
			Skill12:           row.Skill12,
			Skill13:           row.Skill13,
		}

		switch p.PayType {
		case models.PayHourly:
			if min, max, ok := processing.ParseHourlyRate(row.HourlyOrFixed); ok {
				p.HourlyRateMin, p.HourlyRateMax = &min, &max
			}
		case models.PayFixed:
			p.FixedPrice = optional(processing.ParseFixedPrice(row.DurationOrBudget))
		}

		postings = append(postings, p)
	}

	terms := make([]string, len(postings))
	for i := range postings {
		terms[i] = postings[i].SearchTerm
	}
	for i, term := range processing.CanonicalizeSearchTerms(terms) {
		postings[i].SearchTerm = term
	}

	for i := range postings {
		for _, slot := range postings[i].SkillSlots() {
			*slot = processing.CleanSkill(*slot)
		}
	}

	return postings
}
