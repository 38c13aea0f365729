package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

func TestFeedbackText(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		seed   int
		prefix string
	}{
		{"correct", feedback.MsgCorrect, 0, "✅ " + praises[0]},
		{"try again", feedback.MsgTryAgain, 1, "❌ " + tips[1]},
		{"negative seed", feedback.MsgCorrect, -1, "✅ " + praises[1]},
		{"match", feedback.MsgMatch, 0, "✨ Match!"},
		{"mismatch", feedback.MsgMismatch, 0, "🙈"},
		{"sorted", feedback.MsgSorted, 0, "🎉"},
		{"not sorted", feedback.MsgNotSorted, 0, "🤔"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedbackText(feedback.Signal{Message: tt.msg}, tt.seed)
			assert.True(t, strings.HasPrefix(got, tt.prefix), got)
		})
	}

	assert.Empty(t, feedbackText(feedback.Signal{Message: feedback.MsgReady}, 0))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "●●○○○", progressBar(2, 5))
	assert.Equal(t, "●●●", progressBar(7, 3))
	assert.Equal(t, "○○", progressBar(-1, 2))
	assert.Empty(t, progressBar(0, 0))
}

func TestRenderWords(t *testing.T) {
	text := renderWords([]entities.TimeWord{
		{English: "Day", PluralEnglish: "Days", Arabic: "يوم", Transliteration: "Yawm", Fact: "A day has 24 hours & one night."},
	})

	assert.Contains(t, text, "<b>Day</b> (Days)")
	assert.Contains(t, text, "<i>Yawm</i>")
	assert.Contains(t, text, "24 hours &amp; one night")
}

func TestRenderGame_EveryKind(t *testing.T) {
	env := newTestEnv(t)

	for kind := range gameInfos {
		g := env.h.newGame(testChat, kind)
		require.NotNil(t, g, kind)

		text, kb, ok := renderGame(storage.ActiveGame{Kind: kind, Game: g})
		require.True(t, ok, kind)
		assert.Contains(t, text, gameInfos[kind].Title, kind)
		assert.NotEmpty(t, kb.InlineKeyboard, kind)
		g.Close()
	}
}

func TestRenderGame_Unknown(t *testing.T) {
	_, _, ok := renderGame(storage.ActiveGame{Game: nil})
	assert.False(t, ok)
}
