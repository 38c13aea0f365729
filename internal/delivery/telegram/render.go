package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
	"github.com/aliskhannn/time-explorer-bot/internal/service"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

// renderGame renders the current state of an active game.
func renderGame(ag storage.ActiveGame) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	switch g := ag.Game.(type) {
	case *game.Discovery:
		text, kb := renderDiscovery(g.Snapshot())
		return text, kb, true
	case *game.Matching:
		text, kb := renderMatching(g.Snapshot())
		return text, kb, true
	case *game.Jumble:
		text, kb := renderJumble(g.Snapshot())
		return text, kb, true
	case *game.Sorter:
		text, kb := renderSorter(g.Snapshot())
		return text, kb, true
	case *game.Session:
		snap := g.Snapshot()
		if ag.Kind == entities.GameWizard {
			text, kb := renderWizard(snap)
			return text, kb, true
		}
		text, kb := renderChoice(ag.Kind, snap)
		return text, kb, true
	default:
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}
}

func header(kind entities.GameKind) string {
	info := gameInfos[kind]
	return fmt.Sprintf("%s <b>%s</b>", info.Icon, esc(info.Title))
}

// progressBar renders done of total as filled and empty dots.
func progressBar(done, total int) string {
	if total <= 0 {
		return ""
	}
	done = min(max(done, 0), total)
	return strings.Repeat("●", done) + strings.Repeat("○", total-done)
}

func withFeedback(b *strings.Builder, sig string) {
	if sig != "" {
		b.WriteString("\n\n")
		b.WriteString(esc(sig))
	}
}

func finishedText(kind entities.GameKind, done string, score, total int) string {
	return fmt.Sprintf("%s\n\n🏆 %s\n\nScore: <b>%d / %d</b>", header(kind), esc(done), score, total)
}

func renderDiscovery(snap game.DiscoverySnapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	if snap.Finished() {
		return finishedText(entities.GameDiscovery, msgDiscoveryDone, snap.Score, snap.TotalRounds), buildFinishedKeyboard()
	}

	var b strings.Builder
	b.WriteString(header(entities.GameDiscovery))
	fmt.Fprintf(&b, "  %s\n\n", progressBar(snap.RoundIndex, snap.TotalRounds))

	r := snap.Round
	if snap.Stage == game.StageIntro {
		fmt.Fprintf(&b, "%s <b>%s</b>", r.Icon, esc(r.Prompt))
		if snap.Flipped {
			fmt.Fprintf(&b, "\n\n%s\n<i>%s</i>", esc(r.Answer), esc(r.Hint))
		}
		b.WriteString("\n\n")
		b.WriteString(esc(msgDiscoveryIntro))
		return b.String(), buildCardKeyboard(snap)
	}

	fmt.Fprintf(&b, "%s <b>%s</b>\n\n%s", r.Icon, esc(r.Prompt), esc(msgDiscoveryTest))
	withFeedback(&b, feedbackText(snap.Signal, snap.Epoch))
	return b.String(), buildOptionsKeyboard(snap.Snapshot)
}

func renderMatching(snap game.MatchingSnapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	total := len(snap.Deck) / 2
	if snap.Finished {
		text := finishedText(entities.GameMatching, msgMatchingDone, snap.Pairs, total)
		return text + fmt.Sprintf("\nAttempts: %d", snap.Attempts), buildFinishedKeyboard()
	}

	var b strings.Builder
	b.WriteString(header(entities.GameMatching))
	fmt.Fprintf(&b, "  %s\n\n%s", progressBar(snap.Pairs, total), esc(msgMatchingIntro))
	withFeedback(&b, feedbackText(snap.Signal, snap.Attempts))
	return b.String(), buildDeckKeyboard(snap)
}

func renderJumble(snap game.JumbleSnapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	if snap.Finished() {
		return finishedText(entities.GameJumble, msgJumbleDone, snap.Score, snap.TotalRounds), buildFinishedKeyboard()
	}

	var b strings.Builder
	b.WriteString(header(entities.GameJumble))
	fmt.Fprintf(&b, "  %s\n\n", progressBar(snap.RoundIndex, snap.TotalRounds))

	r := snap.Round
	fmt.Fprintf(&b, "%s <b>%s</b> <i>(%s)</i>\n\n", r.Icon, esc(r.Prompt), esc(r.Hint))

	slots := make([]string, len(snap.Tiles))
	for i := range slots {
		slots[i] = "_"
		if i < len(snap.Guess) {
			slots[i] = snap.Guess[i]
		}
	}
	fmt.Fprintf(&b, "<code>%s</code>\n\n%s", esc(strings.Join(slots, " ")), esc(msgJumbleIntro))
	withFeedback(&b, feedbackText(snap.Signal, snap.Epoch))
	return b.String(), buildTilesKeyboard(snap)
}

func renderSorter(snap game.SorterSnapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString(header(entities.GameSorter))
	b.WriteString("\n\n")
	b.WriteString(esc(msgSorterIntro))
	fmt.Fprintf(&b, "\n\nMoves: %d", snap.Moves)
	withFeedback(&b, feedbackText(snap.Signal, snap.Checks))

	if snap.Status == game.SortWin {
		return b.String(), buildFinishedKeyboard()
	}
	return b.String(), buildLadderKeyboard(snap)
}

func renderChoice(kind entities.GameKind, snap game.Snapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	if snap.Finished() {
		done := msgQuizDone
		if kind == entities.GamePilot {
			done = msgPilotDone
		}
		return finishedText(kind, done, snap.Score, snap.TotalRounds), buildFinishedKeyboard()
	}

	intro := msgQuizIntro
	if kind == entities.GamePilot {
		intro = msgPilotIntro
	}

	var b strings.Builder
	b.WriteString(header(kind))
	fmt.Fprintf(&b, "  %s  ⭐ %d\n\n", progressBar(snap.RoundIndex, snap.TotalRounds), snap.Score)

	r := snap.Round
	if r.Icon != "" {
		b.WriteString(r.Icon + " ")
	}
	fmt.Fprintf(&b, "<b>%s</b>", esc(r.Prompt))
	if r.Hint != "" {
		fmt.Fprintf(&b, "\n%s", esc(r.Hint))
	}
	fmt.Fprintf(&b, "\n\n<i>%s</i>", esc(intro))
	withFeedback(&b, feedbackText(snap.Signal, snap.Epoch))
	return b.String(), buildOptionsKeyboard(snap)
}

func renderWizard(snap game.Snapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	if snap.Finished() {
		return finishedText(entities.GameWizard, msgWizardDone, snap.Score, snap.TotalRounds), buildFinishedKeyboard()
	}

	var b strings.Builder
	b.WriteString(header(entities.GameWizard))
	fmt.Fprintf(&b, "  %s\nRank: <b>%s</b>\n\n", progressBar(snap.RoundIndex, snap.TotalRounds), esc(service.WizardRank(snap.RoundIndex)))

	r := snap.Round
	fmt.Fprintf(&b, "<b>%s</b> = ? <b>%s</b>\n\n<i>%s</i>", esc(r.Prompt), esc(r.Hint), esc(msgWizardIntro))
	withFeedback(&b, feedbackText(snap.Signal, snap.Epoch))
	return b.String(), buildWizardKeyboard()
}

// renderWords lists the vocabulary cards.
func renderWords(words []entities.TimeWord) string {
	var b strings.Builder
	b.WriteString("📚 <b>Time words</b> كلمات الوقت\n")
	for _, w := range words {
		fmt.Fprintf(&b, "\n%s <b>%s</b> (%s) - %s <i>%s</i> (%s)\n💡 %s\n",
			w.Icon,
			esc(w.English),
			esc(w.PluralEnglish),
			esc(w.Arabic),
			esc(w.Transliteration),
			esc(w.PluralArabic),
			esc(w.Fact),
		)
	}
	return b.String()
}
