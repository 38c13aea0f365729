package game

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPresenting Status = "presenting" // round shown, awaiting input
	StatusEvaluating Status = "evaluating" // input being compared
	StatusCorrect    Status = "correct"    // resolved, auto-advance pending
	StatusIncorrect  Status = "incorrect"  // resolved, auto-retry pending
	StatusFinished   Status = "finished"   // no rounds remain
)

// Round is one prompt/answer unit. Which fields are set depends on the game.
type Round struct {
	Prompt  string   // question text, scenario, word or conversion value
	Hint    string   // secondary line: Arabic text, transliteration or target unit
	Icon    string   // illustration
	Answer  string   // expected answer
	Options []string // multiple choice options, answer included exactly once
	Letters []string // letter tiles for spelling games
}

func (r Round) clone() Round {
	r.Options = slices.Clone(r.Options)
	r.Letters = slices.Clone(r.Letters)
	return r
}

// Descriptor configures a Session for one mini-game.
type Descriptor struct {
	Kind         entities.GameKind
	Compare      Comparison
	OptionCount  int           // distractors per round, passed to Build
	AdvanceDelay time.Duration // correct -> next round
	RetryDelay   time.Duration // incorrect -> same round

	// Build generates a fresh round sequence. It is called on creation and on Reset.
	Build func(optionCount int) []Round
	// Reshuffle, if set, rearranges the current round before a retry.
	Reshuffle func(Round) Round
}

// Snapshot is a copy of session state for rendering.
type Snapshot struct {
	SessionID   string
	Kind        entities.GameKind
	Status      Status
	RoundIndex  int
	TotalRounds int
	Round       Round  // zero value once finished
	Score       int    // rounds solved
	Selection   string // last submitted choice
	Solved      []int  // indices of solved rounds, ascending
	Signal      feedback.Signal
	Epoch       int // bumped whenever the presented round changes
}

// Finished reports whether the session reached its terminal state.
func (s Snapshot) Finished() bool {
	return s.Status == StatusFinished
}

// Session is the generic round-by-round state machine.
type Session struct {
	mu    sync.Mutex
	desc  Descriptor
	opts  options
	timer timer

	id        string
	rounds    []Round
	index     int
	score     int
	status    Status
	selection string
	solved    map[int]struct{}
	signal    feedback.Signal
	epoch     int
}

// NewSession creates a session at round 0 of freshly built rounds.
func NewSession(desc Descriptor, opts ...Option) *Session {
	o := newOptions(opts)
	s := &Session{
		desc:  desc,
		opts:  o,
		timer: timer{sched: o.scheduler},
	}

	s.mu.Lock()
	s.initLocked()
	s.mu.Unlock()

	return s
}

// Kind returns the mini-game this session plays.
func (s *Session) Kind() entities.GameKind {
	return s.desc.Kind
}

// Submit evaluates choice against the current round. It only acts while a
// round is presented; otherwise it returns the unchanged state.
func (s *Session) Submit(choice string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitLocked(choice, true)
	return s.snapshotLocked()
}

// SubmitIndex submits the option at index i. An index outside the option
// list is evaluated as an incorrect answer.
func (s *Session) SubmitIndex(i int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		choice string
		valid  bool
	)
	if s.status == StatusPresenting {
		opts := s.rounds[s.index].Options
		if i >= 0 && i < len(opts) {
			choice, valid = opts[i], true
		}
	}

	s.submitLocked(choice, valid)
	return s.snapshotLocked()
}

// Advance moves past a correctly answered round without waiting for the
// timer. It is a no-op unless the current round was answered correctly.
func (s *Session) Advance() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusCorrect {
		s.timer.cancel()
		s.advanceLocked()
	}
	return s.snapshotLocked()
}

// Retry returns to an incorrectly answered round without waiting for the
// timer. It is a no-op unless the current round was answered incorrectly.
func (s *Session) Retry() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusIncorrect {
		s.timer.cancel()
		s.retryLocked()
	}
	return s.snapshotLocked()
}

// Reset restarts the session with regenerated rounds. Any pending timed
// transition is cancelled.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initLocked()
	s.opts.recorder.Record(EventGameReset, map[string]any{
		"game":       string(s.desc.Kind),
		"session_id": s.id,
	})
	return s.snapshotLocked()
}

// Close cancels any pending timed transition.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer.cancel()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) initLocked() {
	s.timer.cancel()

	s.id = uuid.NewString()
	s.rounds = nil
	if s.desc.Build != nil {
		s.rounds = s.desc.Build(s.desc.OptionCount)
	}
	s.index = 0
	s.score = 0
	s.selection = ""
	s.solved = make(map[int]struct{}, len(s.rounds))
	s.epoch++

	if len(s.rounds) == 0 {
		s.status = StatusFinished
		s.signal = feedback.For(feedback.OutcomeFinished, s.feedbackContext())
		return
	}

	s.status = StatusPresenting
	s.signal = feedback.For(feedback.OutcomePending, s.feedbackContext())
}

func (s *Session) submitLocked(choice string, valid bool) {
	if s.status != StatusPresenting {
		return
	}

	s.status = StatusEvaluating
	s.selection = choice

	correct := valid && s.desc.Compare.match(choice, s.rounds[s.index].Answer)
	if correct {
		s.status = StatusCorrect
		if _, ok := s.solved[s.index]; !ok {
			s.solved[s.index] = struct{}{}
			s.score++
		}
		s.signal = feedback.For(feedback.OutcomeCorrect, s.feedbackContext())
		s.timer.schedule(&s.mu, s.desc.AdvanceDelay, s.advanceLocked, s.opts.onChange)
	} else {
		s.status = StatusIncorrect
		s.signal = feedback.For(feedback.OutcomeIncorrect, s.feedbackContext())
		s.timer.schedule(&s.mu, s.desc.RetryDelay, s.retryLocked, s.opts.onChange)
	}

	s.opts.recorder.Record(EventRoundResolved, map[string]any{
		"game":       string(s.desc.Kind),
		"session_id": s.id,
		"round":      s.index,
		"correct":    correct,
	})
}

func (s *Session) advanceLocked() {
	if s.status != StatusCorrect {
		return
	}

	s.selection = ""
	s.epoch++

	if s.index+1 < len(s.rounds) {
		s.index++
		s.status = StatusPresenting
		s.signal = feedback.For(feedback.OutcomePending, s.feedbackContext())
		return
	}

	s.index = len(s.rounds)
	s.status = StatusFinished
	s.signal = feedback.For(feedback.OutcomeFinished, s.feedbackContext())

	s.opts.recorder.Record(EventGameFinished, map[string]any{
		"game":       string(s.desc.Kind),
		"session_id": s.id,
		"score":      s.score,
		"total":      len(s.rounds),
	})
}

func (s *Session) retryLocked() {
	if s.status != StatusIncorrect {
		return
	}

	if s.desc.Reshuffle != nil {
		s.rounds[s.index] = s.desc.Reshuffle(s.rounds[s.index].clone())
	}
	s.selection = ""
	s.epoch++
	s.status = StatusPresenting
	s.signal = feedback.For(feedback.OutcomePending, s.feedbackContext())
}

func (s *Session) feedbackContext() feedback.Context {
	return feedback.Context{
		AdvanceDelay: s.desc.AdvanceDelay,
		RetryDelay:   s.desc.RetryDelay,
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:   s.id,
		Kind:        s.desc.Kind,
		Status:      s.status,
		RoundIndex:  s.index,
		TotalRounds: len(s.rounds),
		Score:       s.score,
		Selection:   s.selection,
		Signal:      s.signal,
		Epoch:       s.epoch,
	}
	if s.index < len(s.rounds) {
		snap.Round = s.rounds[s.index].clone()
	}

	snap.Solved = make([]int, 0, len(s.solved))
	for i := range s.solved {
		snap.Solved = append(snap.Solved, i)
	}
	sort.Ints(snap.Solved)

	return snap
}
