package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
)

type gameInfo struct {
	Title   string
	Icon    string
	Command string
}

var gameInfos = map[entities.GameKind]gameInfo{
	entities.GameDiscovery: {Title: "Discovery Journey", Icon: "🧭", Command: "learn"},
	entities.GameMatching:  {Title: "Matching Mix", Icon: "🃏", Command: "match"},
	entities.GameJumble:    {Title: "Star Jumble", Icon: "✨", Command: "jumble"},
	entities.GameSorter:    {Title: "Time Ladder", Icon: "🪜", Command: "order"},
	entities.GamePilot:     {Title: "Time Pilot", Icon: "👨‍✈️", Command: "pilot"},
	entities.GameWizard:    {Title: "Time Alchemist", Icon: "🧪", Command: "wizard"},
	entities.GameQuiz:      {Title: "Time Quiz", Icon: "❓", Command: "quiz"},
}

// commandGames maps bot commands to the game they start.
var commandGames = func() map[string]entities.GameKind {
	out := make(map[string]entities.GameKind, len(gameInfos))
	for kind, info := range gameInfos {
		out[info.Command] = kind
	}
	return out
}()

// buildMenuKeyboard builds the game picker, two games per row.
func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, kind := range entities.AllGames {
		info := gameInfos[kind]
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(info.Icon+" "+info.Title, buildMenuCallback(kind)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildFinishedKeyboard offers a replay or the menu.
func buildFinishedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnReset, buildGameCallback(actionReset)),
			tgbotapi.NewInlineKeyboardButtonData(btnMenu, buildGameCallback(actionMenu)),
		),
	)
}

func resetRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnReset, buildGameCallback(actionReset)),
	)
}

// buildOptionsKeyboard lists options one per row. After an answer the
// chosen option is marked.
func buildOptionsKeyboard(snap game.Snapshot) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(snap.Round.Options)+2)
	for i, opt := range snap.Round.Options {
		label := opt
		if snap.Selection == opt {
			switch snap.Status {
			case game.StatusCorrect:
				label = "🚀 " + opt
			case game.StatusIncorrect:
				label = "💥 " + opt
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildGameIndexCallback(actionOption, i)),
		))
	}
	if snap.Status == game.StatusCorrect {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnNext, buildGameCallback(actionNext)),
		))
	}
	rows = append(rows, resetRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildDeckKeyboard lays the matching deck out two cards per row.
func buildDeckKeyboard(snap game.MatchingSnapshot) tgbotapi.InlineKeyboardMarkup {
	completed := make(map[int]bool, len(snap.Completed))
	for _, i := range snap.Completed {
		completed[i] = true
	}
	pending := make(map[int]bool, len(snap.Pending))
	for _, i := range snap.Pending {
		pending[i] = true
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, card := range snap.Deck {
		label := card.Content
		switch {
		case completed[i]:
			label = "✅ " + label
		case pending[i]:
			label = "👉 " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildGameIndexCallback(actionCard, i)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, resetRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildTilesKeyboard shows free letter tiles, the guess (tap to undo) and
// the check button once every tile is placed.
func buildTilesKeyboard(snap game.JumbleSnapshot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	tiles := make([]tgbotapi.InlineKeyboardButton, 0, len(snap.Tiles))
	for i, tl := range snap.Tiles {
		label := tl.Letter
		if tl.Used {
			label = "·"
		}
		tiles = append(tiles, tgbotapi.NewInlineKeyboardButtonData(label, buildGameIndexCallback(actionTile, i)))
	}
	rows = append(rows, tiles)

	if len(snap.Guess) > 0 {
		guess := make([]tgbotapi.InlineKeyboardButton, 0, len(snap.Guess))
		for i, l := range snap.Guess {
			guess = append(guess, tgbotapi.NewInlineKeyboardButtonData(l, buildGameIndexCallback(actionUnpick, i)))
		}
		rows = append(rows, guess)
	}

	if snap.Complete && snap.Status == game.StatusPresenting {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnVerify, buildGameCallback(actionVerify)),
		))
	}
	rows = append(rows, resetRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildLadderKeyboard gives every item its own row with move arrows.
func buildLadderKeyboard(snap game.SorterSnapshot) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(snap.Items)+2)
	for i, w := range snap.Items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnUp, buildGameIndexCallback(actionUp, i)),
			tgbotapi.NewInlineKeyboardButtonData(w.Icon+" "+w.English, buildGameCallback(actionNoop)),
			tgbotapi.NewInlineKeyboardButtonData(btnDown, buildGameIndexCallback(actionDown, i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnCheck, buildGameCallback(actionCheck)),
	))
	rows = append(rows, resetRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildCardKeyboard drives the flashcard intro stage.
func buildCardKeyboard(snap game.DiscoverySnapshot) tgbotapi.InlineKeyboardMarkup {
	listen := btnListen
	if snap.Listened {
		listen = btnHeard
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnFlip, buildGameCallback(actionFlip)),
			tgbotapi.NewInlineKeyboardButtonData(listen, buildGameCallback(actionListen)),
		),
	}
	if snap.Flipped && snap.Listened {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStartTest, buildGameCallback(actionStartTest)),
		))
	}
	rows = append(rows, resetRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func buildWizardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnHint, buildGameCallback(actionHint)),
		),
		resetRow(),
	)
}
