package processing

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var continuationRe = regexp.MustCompile(`^\+\d+$`)

var titleCaser = cases.Title(language.English)

// nonSkills are tag values the scraper picks up that are not skills at all:
// résumé boilerplate, generic business words, fragments of longer phrases.
var nonSkills = map[string]struct{}{
	"female": {}, "budget": {}, "company": {}, "project": {},
	"article": {}, "review": {}, "advertisement": {}, "advertising": {},
	"media": {}, "english": {}, "accuracy verification": {},
	"casual tone": {}, "presentation": {}, "resume": {},
	"error detection": {}, "draft documentation": {},
	"product knowledge": {}, "client management": {},
	"communication skills": {}, "critical thinking skills": {},
	"personal computer": {}, "smartphone": {}, "phone communication": {},
	"accounts payable": {}, "accounts receivable": {},
	"customer experience": {}, "heap": {}, "scientist": {},
	"engineer": {}, "engineering": {}, "learn": {}, "learning": {},
}

// canonicalSkills folds common spellings and abbreviations into one label.
var canonicalSkills = map[string]string{
	"ai":                          "Artificial Intelligence",
	"artificial":                  "Artificial Intelligence",
	"artificial intelligence":     "Artificial Intelligence",
	"machine":                     "Machine Learning",
	"machine learning":            "Machine Learning",
	"ml":                          "Machine Learning",
	"python":                      "Python",
	"data":                        "Data Science",
	"data science":                "Data Science",
	"statistics":                  "Statistics",
	"statistical":                 "Statistics",
	"statistic":                   "Statistics",
	"deep learning":               "Deep Learning",
	"nlp":                         "Natural Language Processing",
	"natural language processing": "Natural Language Processing",
}

// CleanSkill canonicalizes one skill tag. It returns "" for values that
// should be dropped: blanks, "+N" continuation markers from the source UI,
// and known non-skill terms. Known synonyms map to their canonical label and
// anything else is kept title-cased. The denylist runs before the synonym
// table, so a value in both is dropped, not mapped.
func CleanSkill(skill string) string {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return ""
	}
	if continuationRe.MatchString(trimmed) {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if _, drop := nonSkills[lower]; drop {
		return ""
	}
	if canonical, ok := canonicalSkills[lower]; ok {
		return canonical
	}
	return titleCaser.String(lower)
}
