package telegram

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
	"github.com/aliskhannn/time-explorer-bot/internal/service"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

// handleStartGame starts kind for the chat, replacing any running game.
func (h *Handler) handleStartGame(kind entities.GameKind, source string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		g := h.newGame(chatID, kind)
		if g == nil {
			return fmt.Errorf("unknown game %q", kind)
		}

		h.sessions.Store(chatID, kind, g)
		h.analytics.Track(chatID, service.EventGameOpened, kind, map[string]any{"source": source})

		text, kb, _ := renderGame(storage.ActiveGame{Kind: kind, Game: g})
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb

		sent, err := h.bot.Send(msg)
		if err != nil {
			return fmt.Errorf("send %s game: %w", kind, err)
		}
		h.sessions.SetMessageID(chatID, g, sent.MessageID)

		h.logger.Info("game started",
			zap.Int64("chat_id", chatID),
			zap.String("game", string(kind)),
			zap.String("source", source),
		)
		return nil
	}
}

func (h *Handler) newGame(chatID int64, kind entities.GameKind) storage.Game {
	var g storage.Game
	opts := []game.Option{
		game.WithRecorder(h.analytics.ForChat(chatID)),
		// Timed transitions happen off the update loop; re-render them here.
		game.WithOnChange(func() { h.refresh(chatID, g) }),
	}

	switch kind {
	case entities.GameDiscovery:
		g = h.games.NewDiscovery(h.speakerFor(chatID), opts...)
	case entities.GameMatching:
		g = h.games.NewMatching(opts...)
	case entities.GameJumble:
		g = h.games.NewJumble(opts...)
	case entities.GameSorter:
		g = h.games.NewSorter(opts...)
	case entities.GamePilot:
		g = h.games.NewPilot(opts...)
	case entities.GameWizard:
		g = h.games.NewWizard(opts...)
	case entities.GameQuiz:
		g = h.games.NewQuiz(opts...)
	}
	return g
}

// refresh re-renders g in place if it is still the chat's active game.
func (h *Handler) refresh(chatID int64, g storage.Game) {
	ag, ok := h.sessions.Peek(chatID)
	if !ok || ag.Game != g || ag.MessageID == 0 {
		return
	}
	h.editGame(chatID, ag)
}

func (h *Handler) editGame(chatID int64, ag storage.ActiveGame) {
	text, kb, ok := renderGame(ag)
	if !ok {
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, ag.MessageID, text, kb)
	edit.ParseMode = tgbotapi.ModeHTML

	if _, err := h.bot.Request(edit); err != nil {
		h.logger.Debug("failed to edit game message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", ag.MessageID),
			zap.Error(err),
		)
	}
}

// handleText routes free text to games that take typed answers.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		ag, ok := h.sessions.Get(chatID)
		if !ok {
			h.send(newHTMLMessage(chatID, msgNoActiveGame))
			return nil
		}

		switch g := ag.Game.(type) {
		case *game.Jumble:
			g.Submit(text)
		case *game.Session:
			if ag.Kind != entities.GameWizard {
				h.send(newHTMLMessage(chatID, msgUseButtons))
				return nil
			}
			g.Submit(text)
		default:
			h.send(newHTMLMessage(chatID, msgUseButtons))
			return nil
		}

		h.editGame(chatID, ag)
		return nil
	}
}

// handleReset restarts the chat's active game.
func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		ag, ok := h.sessions.Get(chatID)
		if !ok {
			h.send(newHTMLMessage(chatID, msgNoActiveGame))
			return nil
		}

		resetGame(ag.Game)
		h.editGame(chatID, ag)
		return nil
	}
}

// handleStop ends the chat's active game and shows the menu again.
func (h *Handler) handleStop() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		ag, ok := h.sessions.Peek(chatID)
		if !ok {
			h.send(newHTMLMessage(chatID, msgNoActiveGame))
			return nil
		}

		h.sessions.Delete(chatID)
		h.logger.Info("game stopped",
			zap.Int64("chat_id", chatID),
			zap.String("game", string(ag.Kind)),
		)

		msg := newHTMLMessage(chatID, msgGameStopped)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
		return nil
	}
}

func resetGame(g storage.Game) {
	switch g := g.(type) {
	case *game.Discovery:
		g.Reset()
	case *game.Matching:
		g.Reset()
	case *game.Jumble:
		g.Reset()
	case *game.Sorter:
		g.Reset()
	case *game.Session:
		g.Reset()
	}
}

// handleConvert answers "/convert <amount> <from> <to>".
func (h *Handler) handleConvert(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		fields := strings.Fields(args)
		if len(fields) != 3 {
			h.send(newHTMLMessage(chatID, esc(msgConvertUsage)))
			return nil
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			h.send(newHTMLMessage(chatID, esc(msgConvertBadValue)))
			return nil
		}

		from, ok := service.ParseUnit(fields[1])
		if !ok {
			h.send(newHTMLMessage(chatID, esc(fmt.Sprintf(msgConvertBadUnit, fields[1]))))
			return nil
		}
		to, ok := service.ParseUnit(fields[2])
		if !ok {
			h.send(newHTMLMessage(chatID, esc(fmt.Sprintf(msgConvertBadUnit, fields[2]))))
			return nil
		}

		result, err := h.converter.Convert(value, from, to)
		if errors.Is(err, service.ErrUnsupportedConversion) {
			h.send(newHTMLMessage(chatID, esc(fmt.Sprintf(msgConvertMissing, from, to))))
			return nil
		}
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}

		text := fmt.Sprintf("✨ %s %s = <b>%s</b> %s",
			esc(service.FormatAmount(value)), from, service.FormatAmount(result), to)
		h.send(newHTMLMessage(chatID, text))
		return nil
	}
}

func (h *Handler) handleWords() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newHTMLMessage(chatID, renderWords(h.content.Words())))
		return nil
	}
}
