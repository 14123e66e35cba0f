package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gigradar/gigradar/internal/config"
	"github.com/gigradar/gigradar/internal/dataset"
	"github.com/gigradar/gigradar/internal/logger"
	"github.com/gigradar/gigradar/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("prep")
	cfg, err := config.LoadPrep()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	raw, err := dataset.LoadRaw(cfg.ExtractPath)
	if err != nil {
		log.Error("load extract", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("extract loaded", slog.String("path", cfg.ExtractPath), slog.Int("rows", len(raw)))

	deduped := dataset.DropDuplicates(raw)
	if dropped := len(raw) - len(deduped); dropped > 0 {
		log.Info("duplicate postings dropped", slog.Int("count", dropped))
	}

	postings := pipeline.Normalize(deduped)
	log.Info("postings normalized",
		slog.Int("kept", len(postings)),
		slog.Int("no_pay_estimate", len(deduped)-len(postings)),
	)

	if err := dataset.WriteCleaned(cfg.CleanedPath, postings); err != nil {
		log.Error("write cleaned dataset", slog.Any("err", err))
		os.Exit(1)
	}
	if err := dataset.WriteCleaned(cfg.PreviewPath, dataset.Head(postings, cfg.PreviewRows)); err != nil {
		log.Error("write preview", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("cleaned dataset written",
		slog.String("path", cfg.CleanedPath),
		slog.String("preview", cfg.PreviewPath),
	)
}
