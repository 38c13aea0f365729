package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
	"github.com/aliskhannn/time-explorer-bot/internal/testutil"
)

const testMismatch = 800 * time.Millisecond

func testWords() []entities.TimeWord {
	return []entities.TimeWord{
		{English: "Hour", Arabic: "ساعة"},
		{English: "Day", Arabic: "يوم"},
		{English: "Week", Arabic: "أسبوع"},
		{English: "Month", Arabic: "شهر"},
		{English: "Year", Arabic: "سنة"},
	}
}

// pairOf returns the index of the card completing deck[i].
func pairOf(t *testing.T, deck []entities.Card, i int) int {
	t.Helper()
	for j, c := range deck {
		if j != i && deck[i].Matches(c) {
			return j
		}
	}
	t.Fatalf("no pair for card %d", i)
	return -1
}

// nonPairOf returns the index of a card that does not match deck[i].
func nonPairOf(t *testing.T, deck []entities.Card, i int) int {
	t.Helper()
	for j, c := range deck {
		if j != i && !deck[i].Matches(c) {
			return j
		}
	}
	t.Fatalf("no mismatching card for %d", i)
	return -1
}

func newTestMatching(t *testing.T, opts ...Option) (*Matching, *testutil.ManualScheduler) {
	t.Helper()
	sched := testutil.NewManualScheduler()
	opts = append([]Option{WithScheduler(sched)}, opts...)
	return NewMatching(testWords(), shuffle.New(21), testMismatch, opts...), sched
}

func TestMatching_Deal(t *testing.T) {
	m, _ := newTestMatching(t)

	snap := m.Snapshot()
	require.Len(t, snap.Deck, 10)

	var en, ar int
	for _, c := range snap.Deck {
		switch c.Lang {
		case entities.LangEnglish:
			en++
		case entities.LangArabic:
			ar++
		}
	}
	assert.Equal(t, 5, en)
	assert.Equal(t, 5, ar)
	assert.Empty(t, snap.Completed)
	assert.False(t, snap.Finished)
}

func TestMatching_MatchCompletesImmediately(t *testing.T) {
	m, sched := newTestMatching(t)
	deck := m.Snapshot().Deck

	m.Select(0)
	snap := m.Select(pairOf(t, deck, 0))

	assert.Len(t, snap.Completed, 2)
	assert.Empty(t, snap.Pending)
	assert.Equal(t, 1, snap.Pairs)
	assert.Equal(t, feedback.MsgMatch, snap.Signal.Message)
	assert.Equal(t, 0, sched.Pending())
}

func TestMatching_MismatchClearsAfterDelay(t *testing.T) {
	changes := 0
	m, sched := newTestMatching(t, WithOnChange(func() { changes++ }))
	deck := m.Snapshot().Deck

	other := nonPairOf(t, deck, 0)
	m.Select(0)
	snap := m.Select(other)

	assert.Equal(t, []int{0, other}, snap.Pending, "both cards stay visible")
	assert.True(t, snap.Locked)
	assert.Equal(t, feedback.MsgMismatch, snap.Signal.Message)

	third := -1
	for i := range deck {
		if i != 0 && i != other {
			third = i
			break
		}
	}
	snap = m.Select(third)
	assert.Equal(t, []int{0, other}, snap.Pending, "third selection is ignored while locked")

	sched.Advance(testMismatch)
	snap = m.Snapshot()
	assert.Empty(t, snap.Pending)
	assert.False(t, snap.Locked)
	assert.Empty(t, snap.Completed)
	assert.Equal(t, 1, changes)
}

func TestMatching_SameLanguageSameKeyNeverMatches(t *testing.T) {
	a := entities.Card{Content: "Day", MatchKey: "Day", Lang: entities.LangEnglish}
	b := entities.Card{Content: "Day", MatchKey: "Day", Lang: entities.LangEnglish}
	assert.False(t, a.Matches(b))
}

func TestMatching_NoOpSelections(t *testing.T) {
	m, _ := newTestMatching(t)
	deck := m.Snapshot().Deck

	m.Select(0)
	snap := m.Select(0)
	assert.Equal(t, []int{0}, snap.Pending, "reselecting a pending card is a no-op")

	snap = m.Select(-1)
	assert.Equal(t, []int{0}, snap.Pending)
	snap = m.Select(len(deck))
	assert.Equal(t, []int{0}, snap.Pending)

	pair := pairOf(t, deck, 0)
	m.Select(pair)

	snap = m.Select(0)
	assert.Empty(t, snap.Pending, "a completed card cannot be reselected")
	snap = m.Select(pair)
	assert.Empty(t, snap.Pending)
	assert.Equal(t, 1, snap.Attempts, "no-ops do not count as attempts")
}

func TestMatching_CompletedIsMonotonic(t *testing.T) {
	m, sched := newTestMatching(t)
	deck := m.Snapshot().Deck

	prev := 0
	for i := range deck {
		for j := range deck {
			m.Select(i)
			snap := m.Select(j)
			require.GreaterOrEqual(t, len(snap.Completed), prev)
			prev = len(snap.Completed)
			sched.Advance(testMismatch)
		}
	}

	assert.GreaterOrEqual(t, len(m.Snapshot().Completed), prev)
}

func TestMatching_FinishAndReset(t *testing.T) {
	rec := &spyRecorder{}
	m, _ := newTestMatching(t, WithRecorder(rec))
	deck := m.Snapshot().Deck

	done := map[int]bool{}
	for i := range deck {
		if done[i] {
			continue
		}
		j := pairOf(t, deck, i)
		m.Select(i)
		m.Select(j)
		done[i], done[j] = true, true
	}

	snap := m.Snapshot()
	assert.True(t, snap.Finished)
	assert.Equal(t, 5, snap.Pairs)
	assert.Equal(t, 5, snap.Attempts)
	assert.Equal(t, feedback.MsgFinished, snap.Signal.Message)
	assert.Contains(t, rec.names(), EventGameFinished)

	assert.Equal(t, snap.Completed, m.Select(0).Completed, "selecting after finish is a no-op")

	reset := m.Reset()
	assert.False(t, reset.Finished)
	assert.Empty(t, reset.Completed)
	assert.Equal(t, 0, reset.Attempts)
	assert.Len(t, reset.Deck, 10)
	assert.NotEqual(t, snap.SessionID, reset.SessionID)
}

func TestMatching_ResetCancelsMismatchClear(t *testing.T) {
	m, sched := newTestMatching(t)
	deck := m.Snapshot().Deck

	m.Select(0)
	m.Select(nonPairOf(t, deck, 0))
	m.Reset()
	m.Select(1)

	sched.Advance(testMismatch)
	assert.Equal(t, []int{1}, m.Snapshot().Pending, "stale clear must not wipe the new selection")
}
