package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var notice string
	defer func() {
		// Remove the user's "clock".
		answer := tgbotapi.NewCallback(cb.ID, notice)
		if _, err := h.bot.Request(answer); err != nil {
			h.logger.Debug("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	cd := decodeCallback(cb.Data)
	switch cd.Action {
	case groupMenu:
		if len(cd.Params) != 1 {
			return
		}
		kind, ok := entities.ParseGameKind(cd.Params[0])
		if !ok {
			h.logger.Warn("unknown game in callback", zap.String("data", cb.Data))
			return
		}
		_ = h.withErrorHandling(h.handleStartGame(kind, "menu"))(ctx, chatID)

	case groupGame:
		in, ok := parseGameIntent(cd)
		if !ok {
			h.logger.Warn("invalid game callback", zap.String("data", cb.Data))
			return
		}
		notice = h.handleGameIntent(ctx, chatID, cb.Message.MessageID, in)
	}
}

// handleGameIntent applies in to the chat's active game and re-renders it.
// It returns a short notice for the callback answer.
func (h *Handler) handleGameIntent(ctx context.Context, chatID int64, messageID int, in gameIntent) string {
	switch in.action {
	case actionNoop:
		return ""
	case actionMenu:
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
		return ""
	}

	ag, ok := h.sessions.Get(chatID)
	if !ok || ag.MessageID != messageID {
		return msgGameExpired
	}

	if in.action == actionReset {
		resetGame(ag.Game)
		h.editGame(chatID, ag)
		return ""
	}

	var notice string
	switch g := ag.Game.(type) {
	case *game.Discovery:
		if in.action == actionListen {
			h.listen(ctx, chatID, g)
			return ""
		}
		notice = applyDiscovery(g, in)
	case *game.Matching:
		if in.action == actionCard && in.hasArg {
			g.Select(in.arg)
		}
	case *game.Jumble:
		applyJumble(g, in)
	case *game.Sorter:
		applySorter(g, in)
	case *game.Session:
		notice = h.applySession(ag.Kind, g, in)
	}

	h.editGame(chatID, ag)
	return notice
}

// listen plays the pronunciation off the update loop, since synthesis can
// take as long as the TTS timeout. The card is re-rendered once it is heard.
func (h *Handler) listen(ctx context.Context, chatID int64, g *game.Discovery) {
	h.tasks.Add(1)
	go func() {
		defer h.tasks.Done()
		g.Listen(ctx)
		h.refresh(chatID, g)
	}()
}

func applyDiscovery(g *game.Discovery, in gameIntent) string {
	switch in.action {
	case actionFlip:
		g.Flip()
	case actionStartTest:
		if g.StartTest().Stage != game.StageTest {
			return msgListenFirst
		}
	case actionOption:
		if in.hasArg {
			g.ChooseIndex(in.arg)
		}
	}
	return ""
}

func applyJumble(g *game.Jumble, in gameIntent) {
	switch in.action {
	case actionTile:
		if in.hasArg {
			g.Pick(in.arg)
		}
	case actionUnpick:
		if in.hasArg {
			g.Unpick(in.arg)
		}
	case actionVerify:
		g.Verify()
	}
}

func applySorter(g *game.Sorter, in gameIntent) {
	switch in.action {
	case actionUp:
		if in.hasArg {
			g.MoveItem(in.arg, game.Up)
		}
	case actionDown:
		if in.hasArg {
			g.MoveItem(in.arg, game.Down)
		}
	case actionCheck:
		g.Check()
	}
}

func (h *Handler) applySession(kind entities.GameKind, g *game.Session, in gameIntent) string {
	switch in.action {
	case actionOption:
		if in.hasArg {
			g.SubmitIndex(in.arg)
		}
	case actionNext:
		g.Advance()
	case actionHint:
		if kind == entities.GameWizard {
			return h.games.ArabicHint(g.Snapshot().RoundIndex)
		}
	}
	return ""
}
