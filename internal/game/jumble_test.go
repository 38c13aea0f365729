package game

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
	"github.com/aliskhannn/time-explorer-bot/internal/testutil"
)

const (
	jumbleAdvance = 1500 * time.Millisecond
	jumbleRetry   = 800 * time.Millisecond
)

func newTestJumble(t *testing.T, words ...string) (*Jumble, *testutil.ManualScheduler) {
	t.Helper()
	sh := shuffle.New(5)
	sched := testutil.NewManualScheduler()

	desc := Descriptor{
		Kind:         entities.GameJumble,
		AdvanceDelay: jumbleAdvance,
		RetryDelay:   jumbleRetry,
		Build: func(int) []Round {
			rounds := make([]Round, 0, len(words))
			for _, w := range words {
				rounds = append(rounds, Round{
					Prompt:  w,
					Answer:  w,
					Letters: shuffle.Distinct(sh, splitLetters(w)),
				})
			}
			return rounds
		},
	}
	return NewJumble(desc, sh, WithScheduler(sched)), sched
}

// pickWord picks the tiles spelling word, left to right.
func pickWord(t *testing.T, j *Jumble, word string) JumbleSnapshot {
	t.Helper()
	var snap JumbleSnapshot
	for _, l := range splitLetters(word) {
		tiles := j.Snapshot().Tiles
		idx := slices.IndexFunc(tiles, func(tl Tile) bool { return tl.Letter == l && !tl.Used })
		require.GreaterOrEqual(t, idx, 0, "no free tile %q", l)
		snap = j.Pick(idx)
	}
	return snap
}

func TestJumble_TilesAreScrambled(t *testing.T) {
	j, _ := newTestJumble(t, "DAY")
	snap := j.Snapshot()

	letters := make([]string, 0, len(snap.Tiles))
	for _, tl := range snap.Tiles {
		letters = append(letters, tl.Letter)
		assert.False(t, tl.Used)
	}
	assert.ElementsMatch(t, []string{"D", "A", "Y"}, letters)
	assert.NotEqual(t, []string{"D", "A", "Y"}, letters)
}

func TestJumble_CorrectSpelling(t *testing.T) {
	j, sched := newTestJumble(t, "DAY", "WEEK")

	snap := pickWord(t, j, "DAY")
	assert.True(t, snap.Complete)
	assert.Equal(t, []string{"D", "A", "Y"}, snap.Guess)

	snap = j.Verify()
	assert.Equal(t, StatusCorrect, snap.Status)
	assert.Equal(t, 1, snap.Score)

	sched.Advance(jumbleAdvance)
	snap = j.Snapshot()
	assert.Equal(t, 1, snap.RoundIndex)
	assert.Empty(t, snap.Guess)
	assert.Len(t, snap.Tiles, 4)
}

func TestJumble_WrongSpellingReshufflesOnRetry(t *testing.T) {
	j, sched := newTestJumble(t, "DAY")

	pickWord(t, j, "DYA")
	snap := j.Verify()
	require.Equal(t, StatusIncorrect, snap.Status)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, []string{"D", "Y", "A"}, snap.Guess, "wrong guess stays visible until retry")

	sched.Advance(jumbleRetry)
	snap = j.Snapshot()
	assert.Equal(t, StatusPresenting, snap.Status)
	assert.Empty(t, snap.Guess)

	letters := make([]string, 0, len(snap.Tiles))
	for _, tl := range snap.Tiles {
		assert.False(t, tl.Used)
		letters = append(letters, tl.Letter)
	}
	assert.ElementsMatch(t, []string{"D", "A", "Y"}, letters)
	assert.NotEqual(t, []string{"D", "A", "Y"}, letters)
}

func TestJumble_VerifyNeedsAllTiles(t *testing.T) {
	j, _ := newTestJumble(t, "WEEK")

	pickWord(t, j, "WE")
	snap := j.Verify()
	assert.Equal(t, StatusPresenting, snap.Status)
	assert.False(t, snap.Complete)
}

func TestJumble_PickAndUnpick(t *testing.T) {
	j, _ := newTestJumble(t, "WEEK")

	snap := pickWord(t, j, "WEE")
	assert.Equal(t, []string{"W", "E", "E"}, snap.Guess)

	snap = j.Unpick(1)
	assert.Equal(t, []string{"W", "E"}, snap.Guess)
	used := 0
	for _, tl := range snap.Tiles {
		if tl.Used {
			used++
		}
	}
	assert.Equal(t, 2, used)

	before := snap.Guess
	snap = j.Unpick(9)
	assert.Equal(t, before, snap.Guess)
	snap = j.Pick(-1)
	assert.Equal(t, before, snap.Guess)
}

func TestJumble_PickingAUsedTileIsNoOp(t *testing.T) {
	j, _ := newTestJumble(t, "DAY")

	j.Pick(0)
	snap := j.Pick(0)
	assert.Len(t, snap.Guess, 1)
}

func TestJumble_TypedSubmitFoldsCase(t *testing.T) {
	j, _ := newTestJumble(t, "DAY")

	snap := j.Submit(" day ")
	assert.Equal(t, StatusCorrect, snap.Status)
}

func TestJumble_ResetClearsBoard(t *testing.T) {
	j, sched := newTestJumble(t, "DAY")

	pickWord(t, j, "DAY")
	j.Verify()
	snap := j.Reset()
	assert.Equal(t, StatusPresenting, snap.Status)
	assert.Empty(t, snap.Guess)
	assert.Equal(t, 0, snap.Score)

	sched.Advance(jumbleAdvance)
	assert.Equal(t, StatusPresenting, j.Snapshot().Status, "advance scheduled before reset is dropped")
}
