package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gigradar/gigradar/internal/config"
	"github.com/gigradar/gigradar/internal/dataset"
	"github.com/gigradar/gigradar/internal/logger"
	"github.com/gigradar/gigradar/internal/models"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("retention")
	cfg, err := config.LoadRetention()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	log.Info("retention job running",
		slog.Duration("interval", cfg.Interval),
		slog.Duration("max_age", cfg.MaxAge),
		slog.String("extract", cfg.ExtractPath),
	)

	// Run immediately on start.
	runOnce(log, cfg)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received")
			return
		case <-ticker.C:
			runOnce(log, cfg)
		}
	}
}

func runOnce(log *slog.Logger, cfg *config.Retention) {
	rows, err := dataset.LoadRaw(cfg.ExtractPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no extract yet, nothing to prune")
			return
		}
		log.Error("load extract", slog.Any("err", err))
		return
	}

	kept := prune(rows, time.Now().Add(-cfg.MaxAge))
	if len(kept) == len(rows) {
		log.Info("nothing to prune", slog.Int("rows", len(rows)))
		return
	}

	if err := dataset.WriteRaw(cfg.ExtractPath, kept); err != nil {
		log.Error("rewrite extract", slog.Any("err", err))
		return
	}

	log.Info("extract pruned",
		slog.Int("removed", len(rows)-len(kept)),
		slog.Int("kept", len(kept)),
	)
}

// prune drops rows whose posting date falls before the cutoff. Rows whose
// date cannot be parsed are kept; age is the only thing that may remove a
// posting here.
func prune(rows []models.RawPosting, cutoff time.Time) []models.RawPosting {
	kept := make([]models.RawPosting, 0, len(rows))
	for _, row := range rows {
		posted := parseDate(row.DatePosted)
		if !posted.IsZero() && posted.Before(cutoff) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, f := range formats {
		if ts, err := time.Parse(f, raw); err == nil {
			return ts
		}
	}

	return time.Time{}
}
