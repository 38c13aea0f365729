package game

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
)

// MatchingSnapshot is a copy of matching game state for rendering.
type MatchingSnapshot struct {
	SessionID string
	Deck      []entities.Card
	Pending   []int // selected, not yet resolved
	Completed []int // matched cards, ascending
	Pairs     int
	Attempts  int
	Locked    bool // a mismatch is on display; selections are ignored
	Finished  bool
	Signal    feedback.Signal
}

// Matching is the two-slot selection game over English/Arabic cards.
type Matching struct {
	mu    sync.Mutex
	opts  options
	timer timer

	words         []entities.TimeWord
	shuffler      *shuffle.Shuffler
	mismatchDelay time.Duration

	id        string
	deck      []entities.Card
	pending   []int
	completed map[int]struct{}
	attempts  int
	signal    feedback.Signal
}

// NewMatching deals a deck of two cards per word.
func NewMatching(
	words []entities.TimeWord,
	sh *shuffle.Shuffler,
	mismatchDelay time.Duration,
	opts ...Option,
) *Matching {
	o := newOptions(opts)
	m := &Matching{
		opts:          o,
		timer:         timer{sched: o.scheduler},
		words:         slices.Clone(words),
		shuffler:      sh,
		mismatchDelay: mismatchDelay,
	}

	m.mu.Lock()
	m.dealLocked()
	m.mu.Unlock()

	return m
}

// Select flips card i. Selecting a completed or pending card, an index out
// of range, or any card while a pair is pending does nothing.
func (m *Matching) Select(i int) MatchingSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.deck) || len(m.pending) >= 2 || m.finishedLocked() {
		return m.snapshotLocked()
	}
	if _, done := m.completed[i]; done || slices.Contains(m.pending, i) {
		return m.snapshotLocked()
	}

	m.pending = append(m.pending, i)
	if len(m.pending) < 2 {
		m.signal = feedback.For(feedback.OutcomePending, m.feedbackContext())
		return m.snapshotLocked()
	}

	m.attempts++
	a, b := m.pending[0], m.pending[1]
	if m.deck[a].Matches(m.deck[b]) {
		m.completed[a] = struct{}{}
		m.completed[b] = struct{}{}
		m.pending = nil
		m.signal = feedback.For(feedback.OutcomeMatch, m.feedbackContext())

		m.opts.recorder.Record(EventCardsMatched, map[string]any{
			"game":       string(entities.GameMatching),
			"session_id": m.id,
			"match_key":  m.deck[a].MatchKey,
		})

		if m.finishedLocked() {
			m.signal = feedback.For(feedback.OutcomeFinished, m.feedbackContext())
			m.opts.recorder.Record(EventGameFinished, map[string]any{
				"game":       string(entities.GameMatching),
				"session_id": m.id,
				"score":      len(m.completed) / 2,
				"total":      len(m.deck) / 2,
				"attempts":   m.attempts,
			})
		}
		return m.snapshotLocked()
	}

	m.signal = feedback.For(feedback.OutcomeMismatch, m.feedbackContext())
	m.timer.schedule(&m.mu, m.mismatchDelay, m.clearPendingLocked, m.opts.onChange)

	return m.snapshotLocked()
}

// Reset re-deals the deck and clears progress.
func (m *Matching) Reset() MatchingSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dealLocked()
	m.opts.recorder.Record(EventGameReset, map[string]any{
		"game":       string(entities.GameMatching),
		"session_id": m.id,
	})
	return m.snapshotLocked()
}

// Close cancels a pending mismatch clear.
func (m *Matching) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timer.cancel()
}

// Snapshot returns the current state.
func (m *Matching) Snapshot() MatchingSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked()
}

func (m *Matching) dealLocked() {
	m.timer.cancel()

	deck := make([]entities.Card, 0, len(m.words)*2)
	for _, w := range m.words {
		en, ar := entities.NewCardPair(w)
		deck = append(deck, en, ar)
	}

	m.id = uuid.NewString()
	m.deck = shuffle.Distinct(m.shuffler, deck)
	m.pending = nil
	m.completed = make(map[int]struct{}, len(m.deck))
	m.attempts = 0
	m.signal = feedback.For(feedback.OutcomePending, m.feedbackContext())
}

func (m *Matching) clearPendingLocked() {
	m.pending = nil
	m.signal = feedback.For(feedback.OutcomePending, m.feedbackContext())
}

func (m *Matching) finishedLocked() bool {
	return len(m.deck) > 0 && len(m.completed) == len(m.deck)
}

func (m *Matching) feedbackContext() feedback.Context {
	return feedback.Context{MismatchDelay: m.mismatchDelay}
}

func (m *Matching) snapshotLocked() MatchingSnapshot {
	snap := MatchingSnapshot{
		SessionID: m.id,
		Deck:      slices.Clone(m.deck),
		Pending:   slices.Clone(m.pending),
		Pairs:     len(m.completed) / 2,
		Attempts:  m.attempts,
		Locked:    m.timer.pending(),
		Finished:  m.finishedLocked(),
		Signal:    m.signal,
	}

	snap.Completed = make([]int, 0, len(m.completed))
	for i := range m.completed {
		snap.Completed = append(snap.Completed, i)
	}
	sort.Ints(snap.Completed)

	return snap
}
