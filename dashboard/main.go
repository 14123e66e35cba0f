package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/gigradar/gigradar/internal/config"
	"github.com/gigradar/gigradar/internal/dataset"
	"github.com/gigradar/gigradar/internal/logger"
	"github.com/gigradar/gigradar/internal/models"
	"github.com/gigradar/gigradar/internal/stats"
)

//go:embed index.html
var indexPage []byte

func main() {
	_ = godotenv.Load()

	log := logger.New("dashboard")
	cfg, err := config.LoadDashboard()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	postings, err := dataset.LoadCleaned(cfg.CleanedPath)
	if err != nil {
		log.Error("load cleaned dataset", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("cleaned dataset loaded",
		slog.String("path", cfg.CleanedPath),
		slog.Int("postings", len(postings)),
	)

	srv := newServer(log, cfg, postings)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", srv.handleIndex)
	r.Get("/health", srv.handleHealth)
	r.Get("/api/terms", srv.handleTerms)
	r.Get("/api/stats", srv.handleStats)
	r.Get("/api/histogram", srv.handleHistogram)
	r.Get("/api/skills", srv.handleSkills)

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("dashboard starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type server struct {
	log      *slog.Logger
	cfg      *config.Dashboard
	postings []models.Posting
	overall  stats.Summary
}

func newServer(log *slog.Logger, cfg *config.Dashboard, postings []models.Posting) *server {
	return &server{
		log:      log,
		cfg:      cfg,
		postings: postings,
		overall:  stats.Summarize(postings),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"postings": len(s.postings),
	})
}

type termsResponse struct {
	Terms []string `json:"terms"`
}

func (s *server) handleTerms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, termsResponse{Terms: stats.Terms(s.postings)})
}

type statsDelta struct {
	Jobs          int      `json:"jobs"`
	AvgHourlyRate *float64 `json:"avg_hourly_rate"`
	AvgFixedPrice *float64 `json:"avg_fixed_price"`
	AvgTotalPay   *float64 `json:"avg_total_pay"`
}

type statsResponse struct {
	Term     string        `json:"term"`
	Selected stats.Summary `json:"selected"`
	Overall  stats.Summary `json:"overall"`
	Delta    statsDelta    `json:"delta"`
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	term := selectedTerm(r)
	selected := stats.Summarize(stats.Filter(s.postings, term))

	writeJSON(w, http.StatusOK, statsResponse{
		Term:     term,
		Selected: selected,
		Overall:  s.overall,
		Delta: statsDelta{
			Jobs:          selected.Jobs - s.overall.Jobs,
			AvgHourlyRate: diff(selected.AvgHourlyRate, s.overall.AvgHourlyRate),
			AvgFixedPrice: diff(selected.AvgFixedPrice, s.overall.AvgFixedPrice),
			AvgTotalPay:   diff(selected.AvgTotalPay, s.overall.AvgTotalPay),
		},
	})
}

type histogramResponse struct {
	Term string      `json:"term"`
	Bins []stats.Bin `json:"bins"`
}

func (s *server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	term := selectedTerm(r)
	bins := stats.Histogram(stats.Filter(s.postings, term), s.cfg.HistogramBins)
	writeJSON(w, http.StatusOK, histogramResponse{Term: term, Bins: bins})
}

type skillsResponse struct {
	Term   string            `json:"term"`
	SortBy string            `json:"sort_by"`
	Skills []stats.SkillRank `json:"skills"`
}

func (s *server) handleSkills(w http.ResponseWriter, r *http.Request) {
	term := selectedTerm(r)
	sortBy := strings.TrimSpace(r.URL.Query().Get("sort"))
	switch sortBy {
	case "", stats.SortByCount:
		sortBy = stats.SortByCount
	case stats.SortByPay:
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sort must be count or pay"})
		return
	}

	ranks := stats.TopSkills(stats.Filter(s.postings, term), s.cfg.TopSkills, sortBy)
	writeJSON(w, http.StatusOK, skillsResponse{Term: term, SortBy: sortBy, Skills: ranks})
}

func selectedTerm(r *http.Request) string {
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		return stats.AllTerms
	}
	return term
}

func diff(selected, overall *float64) *float64 {
	if selected == nil || overall == nil {
		return nil
	}
	d := *selected - *overall
	return &d
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
