package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Common contains the dataset paths shared by every binary.
type Common struct {
	ExtractPath string
	CleanedPath string
}

// Prep configures the batch normalization run.
type Prep struct {
	Common
	PreviewPath string
	PreviewRows int
}

// Dashboard describes the HTTP dashboard.
type Dashboard struct {
	Common
	BindAddr      string
	HistogramBins int
	TopSkills     int
}

// Ingest holds configuration for the Kafka -> extract intake.
type Ingest struct {
	Common
	KafkaBrokers   []string
	KafkaTopic     string
	KafkaConsumer  string
	DedupeCapacity int
	DedupeTTL      time.Duration
}

// Retention configures the extract cleanup loop.
type Retention struct {
	Common
	Interval time.Duration
	MaxAge   time.Duration
}

func loadCommon() Common {
	return Common{
		ExtractPath: getEnv("EXTRACT_PATH", "data/upwork-extract.csv"),
		CleanedPath: getEnv("CLEANED_PATH", "data/upwork-cleaned.csv"),
	}
}

// LoadPrep builds a Prep config from environment variables.
func LoadPrep() (*Prep, error) {
	c := &Prep{
		Common:      loadCommon(),
		PreviewPath: getEnv("PREVIEW_PATH", "data/upwork-cleaned-100.csv"),
		PreviewRows: getInt("PREVIEW_ROWS", 100),
	}

	if c.PreviewRows <= 0 {
		return nil, fmt.Errorf("PREVIEW_ROWS must be positive")
	}

	return c, nil
}

// LoadDashboard builds a Dashboard config from environment variables.
func LoadDashboard() (*Dashboard, error) {
	c := &Dashboard{
		Common:        loadCommon(),
		BindAddr:      getEnv("DASHBOARD_BIND_ADDR", "0.0.0.0:8080"),
		HistogramBins: getInt("DASHBOARD_HISTOGRAM_BINS", 20),
		TopSkills:     getInt("DASHBOARD_TOP_SKILLS", 15),
	}

	if c.HistogramBins <= 0 {
		return nil, fmt.Errorf("DASHBOARD_HISTOGRAM_BINS must be positive")
	}
	if c.TopSkills <= 0 {
		return nil, fmt.Errorf("DASHBOARD_TOP_SKILLS must be positive")
	}

	return c, nil
}

// LoadIngest builds an Ingest config from environment variables.
func LoadIngest() (*Ingest, error) {
	c := &Ingest{
		Common:         loadCommon(),
		KafkaBrokers:   splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092")),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "postings_raw"),
		KafkaConsumer:  getEnv("KAFKA_CONSUMER_GROUP", "posting-ingest"),
		DedupeCapacity: getInt("INGEST_DEDUPE_CAPACITY", 20000),
		DedupeTTL:      getDuration("INGEST_DEDUPE_TTL", "720h"),
	}

	if len(c.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS must contain at least one broker")
	}
	if c.DedupeCapacity <= 0 {
		return nil, fmt.Errorf("INGEST_DEDUPE_CAPACITY must be positive")
	}
	if c.DedupeTTL <= 0 {
		return nil, fmt.Errorf("INGEST_DEDUPE_TTL must be positive")
	}

	return c, nil
}

// LoadRetention builds a Retention config from environment variables.
func LoadRetention() (*Retention, error) {
	c := &Retention{
		Common:   loadCommon(),
		Interval: getDuration("RETENTION_INTERVAL", "24h"),
		MaxAge:   getDuration("RETENTION_MAX_AGE", "2160h"),
	}

	if c.Interval <= 0 {
		return nil, fmt.Errorf("RETENTION_INTERVAL must be positive")
	}
	if c.MaxAge <= 0 {
		return nil, fmt.Errorf("RETENTION_MAX_AGE must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
