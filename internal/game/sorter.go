package game

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
)

// SortStatus is the result of the last check.
type SortStatus string

const (
	SortIdle  SortStatus = "idle"
	SortWrong SortStatus = "wrong"
	SortWin   SortStatus = "win"
)

// Direction moves an item one position up (towards index 0) or down.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// SorterSnapshot is a copy of sorter state for rendering.
type SorterSnapshot struct {
	SessionID string
	Items     []entities.TimeWord
	Status    SortStatus
	Moves     int
	Checks    int
	Signal    feedback.Signal
}

// Sorter asks the learner to put words in their canonical order.
type Sorter struct {
	mu   sync.Mutex
	opts options

	reference []entities.TimeWord
	shuffler  *shuffle.Shuffler

	id     string
	items  []entities.TimeWord
	status SortStatus
	moves  int
	checks int
	signal feedback.Signal
}

// NewSorter scrambles reference, which is the order the learner must restore.
func NewSorter(reference []entities.TimeWord, sh *shuffle.Shuffler, opts ...Option) *Sorter {
	s := &Sorter{
		opts:      newOptions(opts),
		reference: slices.Clone(reference),
		shuffler:  sh,
	}

	s.mu.Lock()
	s.scrambleLocked()
	s.mu.Unlock()

	return s
}

// MoveItem swaps item i with its neighbour in dir. Moves past either end,
// out-of-range indices and moves after a win are ignored.
func (s *Sorter) MoveItem(i int, dir Direction) SorterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := i + int(dir)
	if s.status == SortWin || (dir != Up && dir != Down) {
		return s.snapshotLocked()
	}
	if i < 0 || i >= len(s.items) || j < 0 || j >= len(s.items) {
		return s.snapshotLocked()
	}

	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.moves++
	s.status = SortIdle
	s.signal = feedback.For(feedback.OutcomePending, feedback.Context{})

	return s.snapshotLocked()
}

// Check reports whether the current order equals the reference position by
// position.
func (s *Sorter) Check() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := slices.Equal(s.items, s.reference)
	s.checks++
	if ok {
		s.status = SortWin
		s.signal = feedback.For(feedback.OutcomeSorted, feedback.Context{})
	} else {
		s.status = SortWrong
		s.signal = feedback.For(feedback.OutcomeNotSorted, feedback.Context{})
	}

	s.opts.recorder.Record(EventOrderChecked, map[string]any{
		"game":       string(entities.GameSorter),
		"session_id": s.id,
		"correct":    ok,
		"moves":      s.moves,
	})

	return ok
}

// Reset scrambles the items again.
func (s *Sorter) Reset() SorterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scrambleLocked()
	s.opts.recorder.Record(EventGameReset, map[string]any{
		"game":       string(entities.GameSorter),
		"session_id": s.id,
	})
	return s.snapshotLocked()
}

// Snapshot returns the current state.
func (s *Sorter) Snapshot() SorterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Close implements the common game lifecycle; the sorter has no timers.
func (s *Sorter) Close() {}

func (s *Sorter) scrambleLocked() {
	s.id = uuid.NewString()
	s.items = shuffle.Distinct(s.shuffler, s.reference)
	s.status = SortIdle
	s.moves = 0
	s.checks = 0
	s.signal = feedback.For(feedback.OutcomePending, feedback.Context{})
}

func (s *Sorter) snapshotLocked() SorterSnapshot {
	return SorterSnapshot{
		SessionID: s.id,
		Items:     slices.Clone(s.items),
		Status:    s.status,
		Moves:     s.moves,
		Checks:    s.checks,
		Signal:    s.signal,
	}
}
