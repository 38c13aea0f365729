package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
)

// Game is any running mini-game instance.
type Game interface {
	Close()
}

// ActiveGame is the game a chat is currently playing.
type ActiveGame struct {
	Kind      entities.GameKind
	Game      Game
	MessageID int // message that renders the game, edited in place
	LastSeen  time.Time
}

// Evicted identifies a game removed by Evict.
type Evicted struct {
	ChatID int64
	Kind   entities.GameKind
}

// SessionStorage provides in-memory storage for active games by chat ID.
type SessionStorage struct {
	mu    sync.RWMutex
	games map[int64]*ActiveGame
	now   func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		games: make(map[int64]*ActiveGame),
		now:   time.Now,
	}
}

// Store sets the active game of a chat. A game it replaces is closed.
func (s *SessionStorage) Store(chatID int64, kind entities.GameKind, g Game) {
	s.mu.Lock()
	prev := s.games[chatID]
	s.games[chatID] = &ActiveGame{Kind: kind, Game: g, LastSeen: s.now()}
	s.mu.Unlock()

	if prev != nil && prev.Game != g {
		prev.Game.Close()
	}
}

// Get returns the active game of a chat and marks it as used.
func (s *SessionStorage) Get(chatID int64) (ActiveGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ag, ok := s.games[chatID]
	if !ok {
		return ActiveGame{}, false
	}
	ag.LastSeen = s.now()
	return *ag, true
}

// Peek returns the active game without touching it.
func (s *SessionStorage) Peek(chatID int64) (ActiveGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ag, ok := s.games[chatID]
	if !ok {
		return ActiveGame{}, false
	}
	return *ag, true
}

// SetMessageID records the message rendering g. It does nothing if g is no
// longer the chat's active game.
func (s *SessionStorage) SetMessageID(chatID int64, g Game, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ag, ok := s.games[chatID]; ok && ag.Game == g {
		ag.MessageID = messageID
	}
}

// Delete removes and closes the active game of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	ag := s.games[chatID]
	delete(s.games, chatID)
	s.mu.Unlock()

	if ag != nil {
		ag.Game.Close()
	}
}

// Evict removes and closes every game last used before idleSince.
func (s *SessionStorage) Evict(idleSince time.Time) []Evicted {
	var stale []*ActiveGame
	var out []Evicted

	s.mu.Lock()
	for chatID, ag := range s.games {
		if ag.LastSeen.Before(idleSince) {
			stale = append(stale, ag)
			out = append(out, Evicted{ChatID: chatID, Kind: ag.Kind})
			delete(s.games, chatID)
		}
	}
	s.mu.Unlock()

	for _, ag := range stale {
		ag.Game.Close()
	}
	return out
}

// Len returns the number of active games.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
