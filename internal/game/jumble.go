package game

import (
	"slices"
	"strings"
	"sync"

	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
)

// Tile is one letter of a jumble round.
type Tile struct {
	Letter string
	Used   bool
}

// JumbleSnapshot extends the session snapshot with the tile board.
type JumbleSnapshot struct {
	Snapshot
	Tiles    []Tile
	Guess    []string
	Complete bool // every tile has been placed
}

// Jumble is the spelling game: the learner rebuilds a word from scrambled
// letter tiles. Rounds must carry Letters and an Answer.
type Jumble struct {
	mu      sync.Mutex
	session *Session

	epoch int
	used  []bool
	guess []int // tile indices in pick order
}

// NewJumble creates a spelling session. Answers are compared with case
// folding and a failed attempt re-scrambles the tiles before the retry.
func NewJumble(desc Descriptor, sh *shuffle.Shuffler, opts ...Option) *Jumble {
	desc.Compare = CompareFold
	desc.Reshuffle = func(r Round) Round {
		r.Letters = shuffle.Distinct(sh, splitLetters(r.Answer))
		return r
	}

	j := &Jumble{session: NewSession(desc, opts...)}
	j.sync(j.session.Snapshot())
	return j
}

// Pick moves tile i into the guess.
func (j *Jumble) Pick(i int) JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Snapshot()
	j.sync(snap)

	if snap.Status == StatusPresenting && i >= 0 && i < len(j.used) && !j.used[i] {
		j.used[i] = true
		j.guess = append(j.guess, i)
	}
	return j.build(snap)
}

// Unpick returns the letter at guess position pos to the board.
func (j *Jumble) Unpick(pos int) JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Snapshot()
	j.sync(snap)

	if snap.Status == StatusPresenting && pos >= 0 && pos < len(j.guess) {
		j.used[j.guess[pos]] = false
		j.guess = slices.Delete(j.guess, pos, pos+1)
	}
	return j.build(snap)
}

// Verify submits the assembled guess. It does nothing until every tile
// has been placed.
func (j *Jumble) Verify() JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Snapshot()
	j.sync(snap)

	if len(j.guess) == 0 || len(j.guess) != len(j.used) {
		return j.build(snap)
	}

	snap = j.session.Submit(j.word(snap.Round))
	j.sync(snap)
	return j.build(snap)
}

// Submit checks a typed word, bypassing the tiles.
func (j *Jumble) Submit(word string) JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Submit(word)
	j.sync(snap)
	return j.build(snap)
}

// Reset restarts with freshly scrambled words.
func (j *Jumble) Reset() JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Reset()
	j.sync(snap)
	return j.build(snap)
}

// Snapshot returns the current state.
func (j *Jumble) Snapshot() JumbleSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := j.session.Snapshot()
	j.sync(snap)
	return j.build(snap)
}

// Close cancels pending transitions.
func (j *Jumble) Close() {
	j.session.Close()
}

// sync clears the board whenever the presented round changed.
func (j *Jumble) sync(snap Snapshot) {
	if j.used != nil && snap.Epoch == j.epoch {
		return
	}
	j.epoch = snap.Epoch
	j.used = make([]bool, len(snap.Round.Letters))
	j.guess = nil
}

func (j *Jumble) word(r Round) string {
	var b strings.Builder
	for _, i := range j.guess {
		b.WriteString(r.Letters[i])
	}
	return b.String()
}

func (j *Jumble) build(snap Snapshot) JumbleSnapshot {
	out := JumbleSnapshot{
		Snapshot: snap,
		Tiles:    make([]Tile, len(snap.Round.Letters)),
		Guess:    make([]string, 0, len(j.guess)),
		Complete: len(j.guess) > 0 && len(j.guess) == len(j.used),
	}
	for i, l := range snap.Round.Letters {
		out.Tiles[i] = Tile{Letter: l, Used: i < len(j.used) && j.used[i]}
	}
	for _, i := range j.guess {
		if i < len(snap.Round.Letters) {
			out.Guess = append(out.Guess, snap.Round.Letters[i])
		}
	}
	return out
}

func splitLetters(word string) []string {
	out := make([]string, 0, len(word))
	for _, r := range word {
		out = append(out, string(r))
	}
	return out
}
