package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
	"github.com/aliskhannn/time-explorer-bot/internal/service"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type GameFactory interface {
	NewDiscovery(speaker game.Speaker, opts ...game.Option) *game.Discovery
	NewMatching(opts ...game.Option) *game.Matching
	NewJumble(opts ...game.Option) *game.Jumble
	NewSorter(opts ...game.Option) *game.Sorter
	NewPilot(opts ...game.Option) *game.Session
	NewWizard(opts ...game.Option) *game.Session
	NewQuiz(opts ...game.Option) *game.Session
	ArabicHint(roundIndex int) string
}

type ContentProvider interface {
	Words() []entities.TimeWord
}

type AnalyticsService interface {
	ForChat(chatID int64) game.Recorder
	Track(chatID int64, name string, kind entities.GameKind, attrs map[string]any)
}

type Converter interface {
	Convert(value float64, from, to service.Unit) (float64, error)
}

// Synthesizer produces pronunciation audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type SessionStore interface {
	Store(chatID int64, kind entities.GameKind, g storage.Game)
	Get(chatID int64) (storage.ActiveGame, bool)
	Peek(chatID int64) (storage.ActiveGame, bool)
	SetMessageID(chatID int64, g storage.Game, messageID int)
	Delete(chatID int64)
}
