package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/internal/model"
	pkgLog "calendar-assistant/pkg/log"
	pkgResponse "calendar-assistant/pkg/response"
	pkgTelegram "calendar-assistant/pkg/telegram"
)

type handler struct {
	l       pkgLog.Logger
	uc      calendar.UseCase
	bot     Messenger
	limiter RateLimiter
	cfg     Config
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine detached from the request.
// @Summary Telegram webhook
// @Description Receives Bot API updates and answers the chat asynchronously
// @Tags Telegram
// @Accept json
// @Produce json
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Webhook secret token"
// @Success 200 {object} response.Resp "Update accepted or ignored"
// @Failure 400 {object} response.Resp "Malformed update"
// @Failure 401 {object} response.Resp "Invalid secret token"
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		pkgResponse.Error(c, pkgResponse.BadRequest("malformed update", err))
		return
	}

	// Ignore non-message updates (edits, channel posts, callbacks)
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": pkgResponse.StatusIgnored})
		return
	}

	// Telegram retries non-2xx answers, so throttled updates are still acknowledged.
	if h.limiter != nil {
		if err := h.limiter.CheckRateLimit(strconv.FormatInt(msg.Chat.ID, 10)); err != nil {
			h.l.Warnf(ctx, "telegram handler: %v", err)
			pkgResponse.OK(c, map[string]string{"status": pkgResponse.StatusRateLimited})
			return
		}
	}

	traceID := pkgLog.TraceIDFromContext(ctx)
	go func() {
		bgCtx := pkgLog.WithTraceID(context.Background(), traceID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(msg.Chat.ID, msgProcessingFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": pkgResponse.StatusAccepted})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		return h.handleCommand(ctx, msg)
	}

	sc := scopeOf(msg)

	var (
		out calendar.Outcome
		err error
	)
	switch {
	case msg.Voice != nil:
		audio, derr := h.bot.DownloadFile(ctx, msg.Voice.FileID)
		if derr != nil {
			h.l.Errorf(ctx, "telegram handler: voice download failed: %v", derr)
			return h.bot.SendMessage(chatID, msgVoiceDownload)
		}
		out, err = h.uc.HandleVoice(ctx, sc, calendar.VoiceInput{Audio: audio, MimeType: msg.Voice.MimeType})
	case msg.Text != "":
		out, err = h.uc.Handle(ctx, sc, calendar.HandleInput{Text: msg.Text})
	default:
		return nil
	}

	if errors.Is(err, calendar.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("handle message: %w", err)
	}

	if out.Err != nil {
		h.l.Warnf(ctx, "telegram handler: %s/%s failed: %v", out.Category, out.Action, out.Err)
	}

	reply, err := h.reply(ctx, out)
	if err != nil {
		return err
	}
	return h.bot.SendMessage(chatID, reply)
}

func (h *handler) handleCommand(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case cmdStart:
		return h.bot.SendMessage(chatID, msgStart)
	case cmdWhatIsName:
		return h.bot.SendMessage(chatID, h.cfg.BotName)
	case cmdEvents:
		text, err := h.upcoming(ctx)
		if err != nil {
			return err
		}
		return h.bot.SendMessage(chatID, text)
	default:
		return h.bot.SendMessage(chatID, msgHelp)
	}
}

// reply renders the outcome; pass-through intents are answered here.
func (h *handler) reply(ctx context.Context, out calendar.Outcome) (string, error) {
	text := out.Message
	if out.Kind == calendar.OutcomePassThrough {
		switch out.Category {
		case intent.CategoryList:
			listing, err := h.upcoming(ctx)
			if err != nil {
				return "", err
			}
			text = listing
		default:
			text = msgHelp
		}
	}

	if out.Transcript != "" {
		text = fmt.Sprintf("Heard: %q\n\n%s", out.Transcript, text)
	}
	return text, nil
}

func (h *handler) upcoming(ctx context.Context) (string, error) {
	events, err := h.uc.ListUpcoming(ctx, h.cfg.EventsLimit)
	if err != nil {
		return "", fmt.Errorf("list upcoming: %w", err)
	}
	return calendar.FormatEventList(events), nil
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.UserName
	}
	return sc
}
