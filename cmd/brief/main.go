package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/krishang118/Butler-Briefing-Automation/internal/briefing"
	"github.com/krishang118/Butler-Briefing-Automation/internal/config"
	"github.com/krishang118/Butler-Briefing-Automation/internal/model"
	"github.com/krishang118/Butler-Briefing-Automation/internal/status"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/delivery"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/llm"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/mailbox"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/news"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/weather"
)

const pollInterval = 30 * time.Second

func main() {
	schedule := flag.Bool("schedule", false, "run as a daemon, firing once per day at the configured trigger time")
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on config file and environment")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	pipeline := buildPipeline(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*schedule {
		runOnce(ctx, pipeline)
		return
	}
	runScheduled(ctx, cfg, pipeline)
}

func buildPipeline(cfg *config.Config) *briefing.Pipeline {
	var writer briefing.Writer
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		writer = llm.NewAnthropicWriter(cfg.LLMAPIKey)
	default:
		writer = llm.NewOpenAIWriter(cfg.LLMAPIKey)
	}

	return &briefing.Pipeline{
		News: []briefing.HeadlineSource{
			news.NewBBC(cfg.BBCFeedURL),
			news.NewTimesOfIndia(cfg.TOIFeedURL),
		},
		Weather:     weather.NewClient(cfg.WeatherAPIKey),
		Mail:        mailbox.NewClient(cfg.IMAPAddr, cfg.GmailAddress, cfg.GmailAppPassword),
		Writer:      writer,
		Sender:      delivery.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.GmailAddress, cfg.GmailAppPassword),
		Clock:       briefing.SystemClock,
		City:        cfg.City,
		CountryCode: cfg.CountryCode,
		Recipient:   cfg.RecipientAddress,
		NewsLimit:   cfg.NewsLimit,
		InboxLimit:  cfg.InboxLimit,
	}
}

func runOnce(ctx context.Context, pipeline *briefing.Pipeline) {
	slog.Info("running immediate briefing")
	report, err := pipeline.Run(ctx)
	if err != nil {
		slog.Error("briefing run failed", "outcome", report.Outcome, "error", err)
		os.Exit(1)
	}
	slog.Info("briefing run completed", "outcome", report.Outcome,
		"headlines", report.HeadlineCount, "unread", report.InboxCount)
}

func runScheduled(ctx context.Context, cfg *config.Config, pipeline *briefing.Pipeline) {
	tracker := status.NewTracker("scheduled")

	scheduler := &briefing.Scheduler{
		Runner:       pipeline,
		Clock:        briefing.SystemClock,
		Location:     cfg.Location,
		TriggerHour:  cfg.TriggerHour,
		TriggerMin:   cfg.TriggerMinute,
		PollInterval: pollInterval,
	}
	scheduler.OnReport = func(report model.RunReport) {
		tracker.Record(report)
		tracker.SetLastFired(scheduler.LastFired())
	}

	if cfg.StatusAddr != "" {
		router := status.NewRouter(tracker)
		go func() {
			if err := router.Run(cfg.StatusAddr); err != nil {
				slog.Error("status server stopped", "error", err)
			}
		}()
		slog.Info("status server listening", "addr", cfg.StatusAddr)
	}

	slog.Info("scheduler starting", "trigger", cfg.TriggerTime, "timezone", cfg.Timezone)
	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("scheduler error: %v", err)
	}
}
