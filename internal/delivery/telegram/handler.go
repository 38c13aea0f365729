package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot       BotAPI
	logger    *zap.Logger
	games     GameFactory
	content   ContentProvider
	sessions  SessionStore
	analytics AnalyticsService
	converter Converter
	tts       Synthesizer // nil: audio is skipped

	tasks sync.WaitGroup // background work started by updates
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	games GameFactory,
	content ContentProvider,
	sessions SessionStore,
	analytics AnalyticsService,
	converter Converter,
	tts Synthesizer,
) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		games:     games,
		content:   content,
		sessions:  sessions,
		analytics: analytics,
		converter: converter,
		tts:       tts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// Wait blocks until background work started by updates has finished.
func (h *Handler) Wait() {
	h.tasks.Wait()
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch cmd := update.Message.Command(); cmd {
		case "start":
			msg := newHTMLMessage(chatID, msgWelcome)
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		case "words":
			_ = h.withErrorHandling(h.handleWords())(ctx, chatID)

		case "convert":
			_ = h.withErrorHandling(h.handleConvert(update.Message.CommandArguments()))(ctx, chatID)

		case "reset":
			_ = h.withErrorHandling(h.handleReset())(ctx, chatID)

		case "stop":
			_ = h.withErrorHandling(h.handleStop())(ctx, chatID)

		default:
			kind, ok := commandGames[cmd]
			if !ok {
				h.send(newHTMLMessage(chatID, msgUnknownCommand))
				return
			}
			_ = h.withErrorHandling(h.handleStartGame(kind, "command"))(ctx, chatID)
		}

		return
	}

	_ = h.withErrorHandling(h.handleText(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) tgbotapi.Message {
	sent, err := h.bot.Send(c)
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
	return sent
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
