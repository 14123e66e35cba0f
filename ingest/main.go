package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/gigradar/gigradar/internal/config"
	"github.com/gigradar/gigradar/internal/dataset"
	"github.com/gigradar/gigradar/internal/dedupe"
	"github.com/gigradar/gigradar/internal/logger"
	"github.com/gigradar/gigradar/internal/models"
)

// rawPosting is the JSON shape the scraper publishes for each posting it
// finds. Skills arrive as one list and are spread over the extract's
// thirteen skill columns.
type rawPosting struct {
	DatePosted          string   `json:"date_posted"`
	Title               string   `json:"title"`
	URL                 string   `json:"url"`
	SearchTerm          string   `json:"search_term"`
	PaymentStatus       string   `json:"payment_status"`
	ClientRatingText    string   `json:"client_rating_text"`
	ClientRatingValue   string   `json:"client_rating_value"`
	ClientRatingDetails string   `json:"client_rating_details"`
	ClientTotalSpent    string   `json:"client_total_spent"`
	Spent               string   `json:"spent"`
	ClientLocation      string   `json:"client_location"`
	HourlyOrFixed       string   `json:"hourly_or_fixed"`
	ExpertiseLevel      string   `json:"expertise_level"`
	EstTimeOrBudget     string   `json:"est_time_or_budget"`
	DurationOrBudget    string   `json:"duration_or_budget"`
	Description         string   `json:"description"`
	NumProposals        string   `json:"num_proposals"`
	ProposalsRange      string   `json:"proposals_range"`
	Skills              []string `json:"skills"`
}

type rowAppender interface {
	Append(row models.RawPosting) error
}

type extractAppender struct {
	path string
}

func (a extractAppender) Append(row models.RawPosting) error {
	return dataset.AppendRaw(a.path, row)
}

func main() {
	_ = godotenv.Load()

	log := logger.New("ingest")
	cfg, err := config.LoadIngest()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	cache := dedupe.NewCache(cfg.DedupeCapacity, cfg.DedupeTTL)
	appender := extractAppender{path: cfg.ExtractPath}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		Topic:          cfg.KafkaTopic,
		GroupID:        cfg.KafkaConsumer,
		MinBytes:       1e3,
		MaxBytes:       10e6,
		CommitInterval: 0, // Disable auto-commit; manual commit only
	})
	defer reader.Close()

	log.Info("ingest started",
		slog.String("topic", cfg.KafkaTopic),
		slog.String("group", cfg.KafkaConsumer),
		slog.String("extract", cfg.ExtractPath),
	)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("context canceled, stopping")
				return
			}
			log.Error("fetch message", slog.Any("err", err))
			continue
		}

		if err := processMessage(log, appender, cache, msg); err != nil {
			// A posting that cannot be appended degrades on its own; the
			// stream keeps moving.
			log.Warn("skipping message",
				slog.Any("err", err),
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message", slog.Any("err", err))
		}
	}
}

func processMessage(log *slog.Logger, appender rowAppender, cache *dedupe.Cache, msg kafka.Message) error {
	var payload rawPosting
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		return fmt.Errorf("decode posting: %w", err)
	}

	if strings.TrimSpace(payload.Title) == "" && strings.TrimSpace(payload.Description) == "" {
		return errors.New("empty payload")
	}

	url := strings.TrimSpace(payload.URL)
	if url == "" {
		// No URL means no natural identity; mint one so the posting still
		// deduplicates against redelivery of the same message.
		url = "urn:posting:" + uuid.NewString()
	}

	if cache.Seen(url) {
		log.Debug("duplicate posting", slog.String("url", url))
		return nil
	}

	if err := appender.Append(toRow(payload, url)); err != nil {
		return fmt.Errorf("append posting: %w", err)
	}

	cache.Remember(url)
	log.Info("posting ingested", slog.String("url", url), slog.String("title", payload.Title))
	return nil
}

func toRow(p rawPosting, url string) models.RawPosting {
	row := models.RawPosting{
		DatePosted:          p.DatePosted,
		JobTitle:            p.Title,
		JobURL:              url,
		SearchTerm:          p.SearchTerm,
		PaymentStatus:       p.PaymentStatus,
		ClientRatingText:    p.ClientRatingText,
		ClientRatingValue:   p.ClientRatingValue,
		ClientRatingDetails: p.ClientRatingDetails,
		ClientTotalSpent:    p.ClientTotalSpent,
		Spent:               p.Spent,
		ClientLocation:      p.ClientLocation,
		HourlyOrFixed:       p.HourlyOrFixed,
		JobExpertiseLevel:   p.ExpertiseLevel,
		EstTimeOrBudget:     p.EstTimeOrBudget,
		DurationOrBudget:    p.DurationOrBudget,
		JobDescription:      p.Description,
		NumProposals:        p.NumProposals,
		ProposalsRange:      p.ProposalsRange,
	}

	slots := []*string{
		&row.Skill1, &row.Skill2, &row.Skill3, &row.Skill4, &row.Skill5,
		&row.Skill6, &row.Skill7, &row.Skill8, &row.Skill9, &row.Skill10,
		&row.Skill11, &row.Skill12, &row.Skill13,
	}
	for i, skill := range p.Skills {
		if i >= len(slots) {
			break
		}
		*slots[i] = skill
	}
	return row
}
