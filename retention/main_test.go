package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/models"
)

func TestParseDate(t *testing.T) {
	ts := parseDate("2026-08-20")
	require.False(t, ts.IsZero())
	require.Equal(t, 2026, ts.Year())
	require.Equal(t, time.August, ts.Month())
	require.Equal(t, 20, ts.Day())

	require.False(t, parseDate("2026-08-20T10:30:00Z").IsZero())
	require.False(t, parseDate("2026-08-20 10:30:00").IsZero())
	require.True(t, parseDate("last Tuesday").IsZero())
	require.True(t, parseDate("").IsZero())
}

func TestPrune(t *testing.T) {
	rows := []models.RawPosting{
		{JobURL: "old", DatePosted: "2020-01-01"},
		{JobURL: "fresh", DatePosted: time.Now().Format("2006-01-02")},
		{JobURL: "undated", DatePosted: ""},
		{JobURL: "garbled", DatePosted: "sometime"},
	}

	kept := prune(rows, time.Now().Add(-30*24*time.Hour))
	require.Len(t, kept, 3)
	require.Equal(t, "fresh", kept[0].JobURL)
	require.Equal(t, "undated", kept[1].JobURL)
	require.Equal(t, "garbled", kept[2].JobURL)
}
