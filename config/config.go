package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // agenda.timezone in minimal images

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar assistant
	Telegram       TelegramConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Matching       MatchingConfig
	Events         EventsConfig

	// Surfaces
	Webhook WebhookConfig
	Feed    FeedConfig
	Agenda  AgendaConfig
	Ngrok   NgrokConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	BotName     string
	EventsLimit int64
}

type GeminiConfig struct {
	APIKey string
	Model  string
	APIURL string
}

type GoogleCalendarConfig struct {
	CredentialsFile string
	TokenFile       string
	CalendarID      string
}

type MatchingConfig struct {
	MinScore    float64
	SearchLimit int64
}

type EventsConfig struct {
	DefaultDuration        time.Duration
	FallbackUTCOffsetHours int
}

type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

type FeedConfig struct {
	Enabled bool
	Token   string
	Name    string
	Limit   int64
}

type AgendaConfig struct {
	Enabled   bool
	Schedule  string
	ChatID    int64
	Timezone  string
	Window    time.Duration
	MaxEvents int64
}

type NgrokConfig struct {
	APIURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// CONFIG_FILE points at an explicit file instead.
func Load() (*Config, error) {
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.BotName = viper.GetString("telegram.bot_name")
	cfg.Telegram.EventsLimit = viper.GetInt64("telegram.events_limit")
	if tgToken := firstNonEmpty(viper.GetString("telegram_bot_token"), viper.GetString("teleg_bot")); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsFile = viper.GetString("google_calendar.credentials_file")
	cfg.GoogleCalendar.TokenFile = viper.GetString("google_calendar.token_file")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if creds := viper.GetString("google_credentials_file"); creds != "" {
		cfg.GoogleCalendar.CredentialsFile = creds
	}
	if tokenFile := viper.GetString("google_token_file"); tokenFile != "" {
		cfg.GoogleCalendar.TokenFile = tokenFile
	}
	if calendarID := viper.GetString("google_calendar_id"); calendarID != "" {
		cfg.GoogleCalendar.CalendarID = calendarID
	}

	// Matching & event defaults
	cfg.Matching.MinScore = viper.GetFloat64("matching.min_score")
	cfg.Matching.SearchLimit = viper.GetInt64("matching.search_limit")
	cfg.Events.DefaultDuration = viper.GetDuration("events.default_duration")
	cfg.Events.FallbackUTCOffsetHours = viper.GetInt("events.fallback_utc_offset_hours")

	// Webhook
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(strings.Join(viper.GetStringSlice("webhook.allowed_ips"), ","))

	// ICS feed
	cfg.Feed.Enabled = viper.GetBool("feed.enabled")
	cfg.Feed.Token = viper.GetString("feed.token")
	cfg.Feed.Name = viper.GetString("feed.name")
	cfg.Feed.Limit = viper.GetInt64("feed.limit")

	// Agenda
	cfg.Agenda.Enabled = viper.GetBool("agenda.enabled")
	cfg.Agenda.Schedule = viper.GetString("agenda.schedule")
	cfg.Agenda.ChatID = viper.GetInt64("agenda.chat_id")
	cfg.Agenda.Timezone = viper.GetString("agenda.timezone")
	cfg.Agenda.Window = viper.GetDuration("agenda.window")
	cfg.Agenda.MaxEvents = viper.GetInt64("agenda.max_events")

	cfg.Ngrok.APIURL = viper.GetString("ngrok.api_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("telegram.bot_name", "mixa")
	viper.SetDefault("telegram.events_limit", 10)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("google_calendar.credentials_file", "credentials.json")
	viper.SetDefault("google_calendar.token_file", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("matching.min_score", 0.45)
	viper.SetDefault("matching.search_limit", 20)
	viper.SetDefault("events.default_duration", "1h")
	viper.SetDefault("events.fallback_utc_offset_hours", 1)

	viper.SetDefault("webhook.rate_limit_per_min", 30)

	viper.SetDefault("feed.enabled", true)
	viper.SetDefault("feed.name", "Calendar assistant")
	viper.SetDefault("feed.limit", 50)

	viper.SetDefault("agenda.enabled", false)
	viper.SetDefault("agenda.schedule", "0 8 * * *")
	viper.SetDefault("agenda.timezone", "UTC")
	viper.SetDefault("agenda.window", "24h")
	viper.SetDefault("agenda.max_events", 20)

	viper.SetDefault("ngrok.api_url", "http://ngrok:4040")
}

// Validate checks required settings and value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Telegram.BotToken == "" {
		errs = append(errs, errors.New("telegram.bot_token (TELEGRAM_BOT_TOKEN or TELEG_BOT) is required"))
	}
	if c.Gemini.APIKey == "" {
		errs = append(errs, errors.New("gemini.api_key (GEMINI_API_KEY) is required"))
	}
	if c.GoogleCalendar.CredentialsFile == "" {
		errs = append(errs, errors.New("google_calendar.credentials_file is required"))
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}
	if c.Matching.MinScore < 0 || c.Matching.MinScore > 1 {
		errs = append(errs, fmt.Errorf("matching.min_score %.2f must be within [0, 1]", c.Matching.MinScore))
	}
	if c.Matching.SearchLimit <= 0 {
		errs = append(errs, errors.New("matching.search_limit must be positive"))
	}
	if c.Events.DefaultDuration <= 0 {
		errs = append(errs, errors.New("events.default_duration must be positive"))
	}
	if h := c.Events.FallbackUTCOffsetHours; h < -12 || h > 14 {
		errs = append(errs, fmt.Errorf("events.fallback_utc_offset_hours %d must be within [-12, 14]", h))
	}
	if c.Webhook.RateLimitPerMin < 0 {
		errs = append(errs, errors.New("webhook.rate_limit_per_min must not be negative"))
	}
	if c.Agenda.Enabled {
		if c.Agenda.ChatID == 0 {
			errs = append(errs, errors.New("agenda.chat_id is required when the agenda is enabled"))
		}
		if _, err := time.LoadLocation(c.Agenda.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("agenda.timezone: %w", err))
		}
	}

	return errors.Join(errs...)
}

// FallbackOffset is the UTC offset applied to zone-less timestamps.
func (c EventsConfig) FallbackOffset() time.Duration {
	return time.Duration(c.FallbackUTCOffsetHours) * time.Hour
}

// splitList splits a comma separated value, since viper does not parse lists from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
