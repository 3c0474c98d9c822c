package telegram

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot API types delivered to the webhook.
type (
	Update        = tgbotapi.Update
	Message       = tgbotapi.Message
	MessageEntity = tgbotapi.MessageEntity
	Chat          = tgbotapi.Chat
	User          = tgbotapi.User
	Voice         = tgbotapi.Voice
)

// Command is a bot command shown in the Telegram menu.
type Command struct {
	Name        string
	Description string
}

// Parse modes accepted by SendMessageWithMode.
const (
	ParseModeNone     = ""
	ParseModeHTML     = tgbotapi.ModeHTML
	ParseModeMarkdown = tgbotapi.ModeMarkdown
)

// Option customises a Bot.
type Option func(*options)

type options struct {
	apiEndpoint  string
	fileEndpoint string
	httpClient   *http.Client
}

// WithAPIEndpoint overrides the method URL format ("<base>/bot%s/%s").
func WithAPIEndpoint(format string) Option {
	return func(o *options) {
		o.apiEndpoint = format
	}
}

// WithFileEndpoint overrides the file download URL format ("<base>/file/bot%s/%s").
func WithFileEndpoint(format string) Option {
	return func(o *options) {
		o.fileEndpoint = format
	}
}

// WithHTTPClient sets the HTTP client used for API calls and downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
