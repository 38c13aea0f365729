package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/game"
)

// chatSpeaker sends pronunciations to one chat as audio messages.
type chatSpeaker struct {
	h      *Handler
	chatID int64
}

func (h *Handler) speakerFor(chatID int64) game.Speaker {
	return chatSpeaker{h: h, chatID: chatID}
}

// Speak never fails: without audio the learner gets a short notice instead.
func (s chatSpeaker) Speak(ctx context.Context, text string) {
	if s.h.tts == nil {
		s.h.send(newHTMLMessage(s.chatID, msgAudioFailed))
		return
	}

	data, err := s.h.tts.Synthesize(ctx, text)
	if err != nil {
		s.h.logger.Warn("pronunciation unavailable",
			zap.Int64("chat_id", s.chatID),
			zap.String("text", text),
			zap.Error(err),
		)
		s.h.send(newHTMLMessage(s.chatID, msgAudioFailed))
		return
	}

	audio := tgbotapi.NewAudio(s.chatID, tgbotapi.FileBytes{Name: text + ".mp3", Bytes: data})
	audio.Title = text
	audio.Caption = "🔊 " + text
	s.h.send(audio)
}
