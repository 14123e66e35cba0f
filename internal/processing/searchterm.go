package processing

import "strings"

// searchTermBuckets maps a lowercased raw search term to its coarse
// category. Terms missing from the table are dropped rather than passed
// through; see DESIGN.md for why that behavior is kept.
var searchTermBuckets = map[string]string{
	"ai":          "AI",
	"artificial":  "AI",
	"intelligent": "AI",
	"machine":     "ML",
	"learning":    "ML",
	"statistics":  "statistics",
	"engineer":    "data engineering",
	"data":        "data engineering",
	"python":      "data engineering",
}

// CanonicalizeSearchTerms maps a column of raw search terms to canonical
// buckets in place of the originals. Postings are scraped in batches under
// one query and the query label is sometimes stamped only on the first row,
// so absent values are forward-filled from the nearest earlier row before
// mapping. Leading absents with nothing to fill from stay absent, and terms
// outside the bucket table become absent. Must run in original row order.
func CanonicalizeSearchTerms(terms []string) []string {
	out := make([]string, len(terms))
	last := ""
	for i, term := range terms {
		if term == "" {
			term = last
		} else {
			last = term
		}
		out[i] = searchTermBuckets[strings.ToLower(term)]
	}
	return out
}
