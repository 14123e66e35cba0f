package models

// RawPosting is one row of the scraper extract. The extract carries a fixed,
// ordered 31-column schema; every field arrives as free text and an empty
// string means the scraper found nothing. JobURL uniquely identifies a
// posting across batches.
type RawPosting struct {
	DatePosted          string
	JobTitle            string
	JobURL              string
	SearchTerm          string
	PaymentStatus       string
	ClientRatingText    string
	ClientRatingValue   string
	ClientRatingDetails string
	ClientTotalSpent    string
	Spent               string
	ClientLocation      string
	HourlyOrFixed       string
	JobExpertiseLevel   string
	EstTimeOrBudget     string
	DurationOrBudget    string
	JobDescription      string
	Skill1              string
	Skill2              string
	Skill3              string
	Skill4              string
	Skill5              string
	NumProposals        string
	ProposalsRange      string
	Skill6              string
	Skill7              string
	Skill8              string
	Skill9              string
	Skill10             string
	Skill11             string
	Skill12             string
	Skill13             string
}

// Posting is a normalized posting as written to the cleaned dataset. Optional
// numeric fields are nil when no value could be extracted; every retained
// Posting has a non-nil EstimatedTotalPay. The column order mirrors the
// cleaned export, which never carried a skill_5 column.
type Posting struct {
	JobTitle          string   `csv:"job_title" json:"job_title"`
	JobURL            string   `csv:"job_url" json:"job_url"`
	SearchTerm        string   `csv:"search_term" json:"search_term"`
	PayType           PayType  `csv:"pay_type" json:"pay_type"`
	HourlyRateMin     *float64 `csv:"hourly_rate_min" json:"hourly_rate_min"`
	HourlyRateMax     *float64 `csv:"hourly_rate_max" json:"hourly_rate_max"`
	EstHoursPerWeek   *float64 `csv:"est_hours_per_week" json:"est_hours_per_week"`
	EstDurationWeeks  *float64 `csv:"est_duration_weeks" json:"est_duration_weeks"`
	FixedPrice        *float64 `csv:"fixed_price" json:"fixed_price"`
	EstimatedTotalPay *float64 `csv:"estimated_total_pay" json:"estimated_total_pay"`
	JobDescription    string   `csv:"job_description" json:"job_description"`
	Skill1            string   `csv:"skill_1" json:"skill_1"`
	Skill2            string   `csv:"skill_2" json:"skill_2"`
	Skill3            string   `csv:"skill_3" json:"skill_3"`
	Skill4            string   `csv:"skill_4" json:"skill_4"`
	Skill6            string   `csv:"skill_6" json:"skill_6"`
	Skill7            string   `csv:"skill_7" json:"skill_7"`
	Skill8            string   `csv:"skill_8" json:"skill_8"`
	Skill9            string   `csv:"skill_9" json:"skill_9"`
	Skill10           string   `csv:"skill_10" json:"skill_10"`
	Skill11           string   `csv:"skill_11" json:"skill_11"`
	Skill12           string   `csv:"skill_12" json:"skill_12"`
	Skill13           string   `csv:"skill_13" json:"skill_13"`
}

// SkillSlots returns pointers to every skill column so callers can walk or
// rewrite them without spelling the fields out.
func (p *Posting) SkillSlots() []*string {
	return []*string{
		&p.Skill1, &p.Skill2, &p.Skill3, &p.Skill4,
		&p.Skill6, &p.Skill7, &p.Skill8, &p.Skill9,
		&p.Skill10, &p.Skill11, &p.Skill12, &p.Skill13,
	}
}

// Skills returns the non-empty skill values of the posting.
func (p *Posting) Skills() []string {
	var out []string
	for _, slot := range p.SkillSlots() {
		if *slot != "" {
			out = append(out, *slot)
		}
	}
	return out
}
