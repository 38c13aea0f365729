package game

import (
	"context"
	"sync"
)

// Stage is the flashcard phase of the current word.
type Stage string

const (
	StageIntro Stage = "intro" // card shown, learner flips and listens
	StageTest  Stage = "test"  // learner picks the Arabic term
)

// Speaker pronounces text. It returns once playback finished or failed.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

type nopSpeaker struct{}

func (nopSpeaker) Speak(context.Context, string) {}

// DiscoverySnapshot extends the session snapshot with the flashcard stage.
type DiscoverySnapshot struct {
	Snapshot
	Stage    Stage
	Flipped  bool
	Listened bool
}

type cardKey struct {
	session string
	round   int
}

// Discovery is the flashcard game. Each round is introduced as a card the
// learner must flip and listen to before being tested on it.
type Discovery struct {
	mu      sync.Mutex
	session *Session
	speaker Speaker

	key      cardKey
	stage    Stage
	flipped  bool
	listened bool
}

// NewDiscovery creates a flashcard session. Rounds carry the English word
// as Prompt and the Arabic term as Answer.
func NewDiscovery(desc Descriptor, speaker Speaker, opts ...Option) *Discovery {
	if speaker == nil {
		speaker = nopSpeaker{}
	}

	d := &Discovery{
		session: NewSession(desc, opts...),
		speaker: speaker,
	}
	d.sync(d.session.Snapshot())
	return d
}

// Flip turns the card over. It only acts during the intro stage.
func (d *Discovery) Flip() DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Snapshot()
	d.sync(snap)

	if !snap.Finished() && d.stage == StageIntro {
		d.flipped = !d.flipped
	}
	return d.build(snap)
}

// Listen pronounces the current word and marks it heard. Playback failure
// counts as heard. If the card changed during playback, nothing is marked.
func (d *Discovery) Listen(ctx context.Context) DiscoverySnapshot {
	d.mu.Lock()
	snap := d.session.Snapshot()
	d.sync(snap)
	if snap.Finished() || d.stage != StageIntro {
		out := d.build(snap)
		d.mu.Unlock()
		return out
	}
	key, text := d.key, snap.Round.Prompt
	d.mu.Unlock()

	d.speaker.Speak(ctx, text)

	d.mu.Lock()
	defer d.mu.Unlock()

	snap = d.session.Snapshot()
	d.sync(snap)
	if d.key == key && d.stage == StageIntro {
		d.listened = true
	}
	return d.build(snap)
}

// StartTest moves to the test stage once the card was flipped and heard.
func (d *Discovery) StartTest() DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Snapshot()
	d.sync(snap)

	if d.stage == StageIntro && d.flipped && d.listened {
		d.stage = StageTest
	}
	return d.build(snap)
}

// ChooseIndex answers with option i. It is ignored outside the test stage.
func (d *Discovery) ChooseIndex(i int) DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Snapshot()
	d.sync(snap)

	if d.stage == StageTest {
		snap = d.session.SubmitIndex(i)
		d.sync(snap)
	}
	return d.build(snap)
}

// Choose answers with the given Arabic term.
func (d *Discovery) Choose(choice string) DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Snapshot()
	d.sync(snap)

	if d.stage == StageTest {
		snap = d.session.Submit(choice)
		d.sync(snap)
	}
	return d.build(snap)
}

// Reset restarts from the first word.
func (d *Discovery) Reset() DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Reset()
	d.sync(snap)
	return d.build(snap)
}

// Snapshot returns the current state.
func (d *Discovery) Snapshot() DiscoverySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.session.Snapshot()
	d.sync(snap)
	return d.build(snap)
}

// Close cancels pending transitions.
func (d *Discovery) Close() {
	d.session.Close()
}

// sync returns to the intro stage when a new card is presented. A retry
// keeps the learner in the test stage.
func (d *Discovery) sync(snap Snapshot) {
	key := cardKey{session: snap.SessionID, round: snap.RoundIndex}
	if key == d.key && d.stage != "" {
		return
	}
	d.key = key
	d.stage = StageIntro
	d.flipped = false
	d.listened = false
}

func (d *Discovery) build(snap Snapshot) DiscoverySnapshot {
	return DiscoverySnapshot{
		Snapshot: snap,
		Stage:    d.stage,
		Flipped:  d.flipped,
		Listened: d.listened,
	}
}
