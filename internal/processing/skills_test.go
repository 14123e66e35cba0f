package processing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/processing"
)

func TestCleanSkill(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "continuation marker", input: "+4", want: ""},
		{name: "padded continuation marker", input: " +12 ", want: ""},
		{name: "denylisted", input: "Resume", want: ""},
		{name: "denylisted multiword", input: "communication skills", want: ""},
		{name: "synonym", input: "ml", want: "Machine Learning"},
		{name: "synonym uppercase", input: "NLP", want: "Natural Language Processing"},
		{name: "synonym phrase", input: "artificial intelligence", want: "Artificial Intelligence"},
		{name: "default title case", input: "data visualization", want: "Data Visualization"},
		{name: "default trims", input: "  tensorflow  ", want: "Tensorflow"},
		{name: "denylist wins over title case", input: "engineering", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.CleanSkill(tt.input))
		})
	}
}

// Canonical forms must map to themselves, so a second cleaning pass is a
// no-op for every synonym in the table.
func TestCleanSkillIdempotent(t *testing.T) {
	inputs := []string{
		"ai", "artificial", "artificial intelligence",
		"machine", "machine learning", "ml",
		"python", "data", "data science",
		"statistics", "statistical", "statistic",
		"deep learning", "nlp", "natural language processing",
	}

	for _, input := range inputs {
		once := processing.CleanSkill(input)
		require.NotEmpty(t, once, "synonym %q must not be dropped", input)
		require.Equal(t, once, processing.CleanSkill(once), "cleaning %q twice diverged", input)
	}
}
