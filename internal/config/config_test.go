package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/config"
)

func TestLoadPrepDefaults(t *testing.T) {
	t.Setenv("EXTRACT_PATH", "")
	t.Setenv("CLEANED_PATH", "")
	t.Setenv("PREVIEW_PATH", "")
	t.Setenv("PREVIEW_ROWS", "")

	cfg, err := config.LoadPrep()
	require.NoError(t, err)

	require.Equal(t, "data/upwork-extract.csv", cfg.ExtractPath)
	require.Equal(t, "data/upwork-cleaned.csv", cfg.CleanedPath)
	require.Equal(t, "data/upwork-cleaned-100.csv", cfg.PreviewPath)
	require.Equal(t, 100, cfg.PreviewRows)
}

func TestLoadPrepRejectsNonPositivePreview(t *testing.T) {
	t.Setenv("PREVIEW_ROWS", "-5")

	_, err := config.LoadPrep()
	require.Error(t, err)
}

func TestLoadDashboard(t *testing.T) {
	t.Setenv("DASHBOARD_BIND_ADDR", ":9090")
	t.Setenv("DASHBOARD_HISTOGRAM_BINS", "10")
	t.Setenv("DASHBOARD_TOP_SKILLS", "5")
	t.Setenv("CLEANED_PATH", "testdata/cleaned.csv")

	cfg, err := config.LoadDashboard()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.BindAddr)
	require.Equal(t, 10, cfg.HistogramBins)
	require.Equal(t, 5, cfg.TopSkills)
	require.Equal(t, "testdata/cleaned.csv", cfg.CleanedPath)
}

func TestLoadIngestDefaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("KAFKA_CONSUMER_GROUP", "")
	t.Setenv("INGEST_DEDUPE_CAPACITY", "")
	t.Setenv("INGEST_DEDUPE_TTL", "")

	cfg, err := config.LoadIngest()
	require.NoError(t, err)

	require.Len(t, cfg.KafkaBrokers, 1)
	require.Equal(t, "kafka:9092", cfg.KafkaBrokers[0])
	require.Equal(t, "postings_raw", cfg.KafkaTopic)
	require.Equal(t, "posting-ingest", cfg.KafkaConsumer)
	require.Equal(t, 20000, cfg.DedupeCapacity)
	require.Equal(t, 720*time.Hour, cfg.DedupeTTL)
}

func TestLoadIngestOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-a:29092, broker-b:29093")
	t.Setenv("KAFKA_TOPIC", "custom_topic")
	t.Setenv("INGEST_DEDUPE_CAPACITY", "50")
	t.Setenv("INGEST_DEDUPE_TTL", "48h")

	cfg, err := config.LoadIngest()
	require.NoError(t, err)

	require.Equal(t, []string{"broker-a:29092", "broker-b:29093"}, cfg.KafkaBrokers)
	require.Equal(t, "custom_topic", cfg.KafkaTopic)
	require.Equal(t, 50, cfg.DedupeCapacity)
	require.Equal(t, 48*time.Hour, cfg.DedupeTTL)
}

func TestLoadRetention(t *testing.T) {
	t.Setenv("RETENTION_INTERVAL", "12h")
	t.Setenv("RETENTION_MAX_AGE", "36h")

	cfg, err := config.LoadRetention()
	require.NoError(t, err)

	require.Equal(t, 12*time.Hour, cfg.Interval)
	require.Equal(t, 36*time.Hour, cfg.MaxAge)
}
