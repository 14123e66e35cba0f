// Package processing holds the pure extraction core: parsers that pull
// numeric pay and duration figures out of loosely formatted posting text,
// the pay-type classifier, and the canonicalizers for search terms and
// skills. Nothing here does I/O and nothing here returns an error; text the
// parsers cannot make sense of simply yields no value.
package processing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gigradar/gigradar/internal/models"
)

var (
	hourlyRateRe   = regexp.MustCompile(`\$([\d,\.]+)(?:\s*-\s*\$([\d,\.]+))?`)
	hoursPerWeekRe = regexp.MustCompile(`(\d+)\+?\s*hrs?/week`)
	monthRangeRe   = regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*months?`)
	monthsRe       = regexp.MustCompile(`(\d+)\s*months?`)
	dollarAmountRe = regexp.MustCompile(`\$([\d,\.]+)`)
)

// parseAmount converts a matched currency figure to a float, dropping
// thousands separators.
func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseHourlyRate extracts the hourly rate range from text such as
// "Hourly: $75.00 - $100.00". A single amount counts as both ends of the
// range. ok is false when no amount is present.
func ParseHourlyRate(text string) (min, max float64, ok bool) {
	m := hourlyRateRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	min, ok = parseAmount(m[1])
	if !ok {
		return 0, 0, false
	}
	max = min
	if m[2] != "" {
		if v, vok := parseAmount(m[2]); vok {
			max = v
		}
	}
	return min, max, true
}

// ParseHoursPerWeek extracts the weekly hours figure from text such as
// "30+ hrs/week". "Less than" phrasing wins over any number in the text:
// "Less than 30 hrs/week" promises under 30 hours, so it estimates 25
// rather than taking the cap at face value.
func ParseHoursPerWeek(text string) (float64, bool) {
	if strings.Contains(strings.ToLower(text), "less than") {
		return 25, true
	}
	if m := hoursPerWeekRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return v, true
		}
	}
	return 0, false
}

// ParseDurationWeeks converts a duration phrase to weeks. "1 to 3 months"
// averages the range; "2 months" converts directly; "Less than 1 month"
// estimates 2 weeks. The range pattern runs first so "1 to 3 months" is not
// read as "3 months", and the less-than phrase runs before the single-value
// pattern so its "1 month" is not taken literally.
func ParseDurationWeeks(text string) (float64, bool) {
	if m := monthRangeRe.FindStringSubmatch(text); m != nil {
		lo, lok := parseAmount(m[1])
		hi, hok := parseAmount(m[2])
		if lok && hok {
			return (lo + hi) / 2 * 4, true
		}
	}
	if strings.Contains(strings.ToLower(text), "less than 1 month") {
		return 2, true
	}
	if m := monthsRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return v * 4, true
		}
	}
	return 0, false
}

// ParseFixedPrice extracts the first currency amount from text such as
// "$750.00".
func ParseFixedPrice(text string) (float64, bool) {
	m := dollarAmountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1])
}

// PayTypeOf classifies the pay-type text; "hourly" wins over "fixed" when
// both appear.
func PayTypeOf(text string) models.PayType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "hourly"):
		return models.PayHourly
	case strings.Contains(lower, "fixed"):
		return models.PayFixed
	default:
		return models.PayUnknown
	}
}

// Fallbacks applied when an hourly posting does not state its hours or
// duration. They deliberately bias toward keeping sparse postings comparable
// instead of discarding them.
const (
	FallbackHoursPerWeek  = 30
	FallbackDurationWeeks = 8 // roughly two months
)

// EstimateTotalPay computes the estimated total value of a posting from its
// pay-type text and its duration/budget text. Hourly postings multiply the
// average rate by hours per week and weeks, substituting the fallbacks for
// missing components; fixed postings use the stated budget. ok is false when
// no estimate can be formed.
func EstimateTotalPay(payText, budgetText string) (float64, bool) {
	switch PayTypeOf(payText) {
	case models.PayHourly:
		min, max, ok := ParseHourlyRate(payText)
		if !ok {
			return 0, false
		}
		avgRate := (min + max) / 2
		hours, ok := ParseHoursPerWeek(budgetText)
		if !ok {
			hours = FallbackHoursPerWeek
		}
		weeks, ok := ParseDurationWeeks(budgetText)
		if !ok {
			weeks = FallbackDurationWeeks
		}
		return avgRate * hours * weeks, true
	case models.PayFixed:
		return ParseFixedPrice(budgetText)
	default:
		return 0, false
	}
}
