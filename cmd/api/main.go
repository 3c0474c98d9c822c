package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/agenda"
	calHTTP "calendar-assistant/internal/calendar/delivery/http"
	tgDelivery "calendar-assistant/internal/calendar/delivery/telegram"
	"calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/router"
	"calendar-assistant/internal/webhook"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/telegram"
)

// @title       Calendar Assistant API
// @description Telegram bot that turns chat and voice messages into Google Calendar changes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting calendar assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Clients
	telegramBot, err := telegram.NewBot(cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	logger.Infof(ctx, "Telegram bot @%s authorized", telegramBot.Username())

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}

	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsFile,
		gcalendar.WithTokenFile(cfg.GoogleCalendar.TokenFile))
	if err != nil {
		logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate the token file")
		return fmt.Errorf("google calendar: %w", err)
	}
	logger.Infof(ctx, "Google Calendar initialized (calendar: %s)", cfg.GoogleCalendar.CalendarID)

	// 4. Calendar domain
	calendarUC := usecase.New(
		logger,
		calendarClient,
		router.New(geminiClient, logger),
		geminiClient,
		datemath.NewNormalizer(cfg.Events.FallbackOffset()),
		usecase.Config{
			CalendarID:      cfg.GoogleCalendar.CalendarID,
			MinScore:        cfg.Matching.MinScore,
			SearchLimit:     cfg.Matching.SearchLimit,
			DefaultDuration: cfg.Events.DefaultDuration,
		},
	)

	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		SecretToken:     cfg.Telegram.SecretToken,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})

	telegramHandler := tgDelivery.New(logger, calendarUC, telegramBot, security, tgDelivery.Config{
		BotName:     cfg.Telegram.BotName,
		EventsLimit: cfg.Telegram.EventsLimit,
	})

	var calendarHandler calHTTP.Handler
	if cfg.Feed.Enabled {
		calendarHandler = calHTTP.New(logger, calendarUC, calHTTP.Config{
			Token: cfg.Feed.Token,
			Name:  cfg.Feed.Name,
			Limit: cfg.Feed.Limit,
		})
	}

	// 5. Agenda digest (optional)
	if cfg.Agenda.Enabled {
		loc, err := time.LoadLocation(cfg.Agenda.Timezone)
		if err != nil {
			return fmt.Errorf("agenda timezone: %w", err)
		}
		scheduler, err := agenda.New(logger, calendarUC, telegramBot, agenda.Config{
			Schedule:  cfg.Agenda.Schedule,
			ChatID:    cfg.Agenda.ChatID,
			Location:  loc,
			Window:    cfg.Agenda.Window,
			MaxEvents: cfg.Agenda.MaxEvents,
		})
		if err != nil {
			return fmt.Errorf("agenda: %w", err)
		}
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("agenda: %w", err)
		}
		defer scheduler.Stop()
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, security),
		TelegramHandler: telegramHandler,
		CalendarHandler: calendarHandler,
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	go registerWebhook(ctx, cfg, logger, telegramBot)

	// 7. Run
	return httpServer.Run(ctx)
}

// registerWebhook sets the bot commands and webhook: the configured URL,
// otherwise the public URL of a local ngrok tunnel.
func registerWebhook(ctx context.Context, cfg *config.Config, logger log.Logger, bot *telegram.Bot) {
	if err := bot.SetCommands(tgDelivery.Commands()); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram commands: %v", err)
	}

	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := newNgrokDetector(cfg.Ngrok.APIURL).detect(ctx)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(webhookURL, cfg.Telegram.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
