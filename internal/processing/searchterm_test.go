package processing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/processing"
)

func TestCanonicalizeSearchTermsForwardFill(t *testing.T) {
	got := processing.CanonicalizeSearchTerms([]string{"", "AI", "", "", "Data"})
	require.Equal(t, []string{"", "AI", "AI", "AI", "data engineering"}, got)
}

func TestCanonicalizeSearchTermsMapping(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "empty column", input: nil, want: []string{}},
		{name: "buckets", input: []string{"machine", "Learning", "statistics", "python"},
			want: []string{"ML", "ML", "statistics", "data engineering"}},
		{name: "case insensitive", input: []string{"ARTIFICIAL", "Intelligent"},
			want: []string{"AI", "AI"}},
		{name: "unmapped terms are dropped", input: []string{"blockchain", "ai"},
			want: []string{"", "AI"}},
		{name: "fill propagates raw value not bucket", input: []string{"engineer", ""},
			want: []string{"data engineering", "data engineering"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.CanonicalizeSearchTerms(tt.input))
		})
	}
}
