package game

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/testutil"
)

const (
	discoveryAdvance = 1500 * time.Millisecond
	discoveryRetry   = 1000 * time.Millisecond
)

type spySpeaker struct {
	mu     sync.Mutex
	spoken []string
	during func()
}

func (s *spySpeaker) Speak(_ context.Context, text string) {
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	during := s.during
	s.mu.Unlock()

	if during != nil {
		during()
	}
}

func discoveryRounds(int) []Round {
	return []Round{
		{Prompt: "Hour", Answer: "ساعة", Options: []string{"يوم", "ساعة", "شهر"}},
		{Prompt: "Day", Answer: "يوم", Options: []string{"يوم", "سنة", "أسبوع"}},
	}
}

func newTestDiscovery(t *testing.T, sp Speaker) (*Discovery, *testutil.ManualScheduler) {
	t.Helper()
	sched := testutil.NewManualScheduler()
	desc := Descriptor{
		Kind:         entities.GameDiscovery,
		AdvanceDelay: discoveryAdvance,
		RetryDelay:   discoveryRetry,
		Build:        discoveryRounds,
	}
	return NewDiscovery(desc, sp, WithScheduler(sched)), sched
}

func toTest(t *testing.T, d *Discovery) DiscoverySnapshot {
	t.Helper()
	d.Flip()
	d.Listen(context.Background())
	snap := d.StartTest()
	require.Equal(t, StageTest, snap.Stage)
	return snap
}

func TestDiscovery_StartTestNeedsFlipAndListen(t *testing.T) {
	sp := &spySpeaker{}
	d, _ := newTestDiscovery(t, sp)

	snap := d.StartTest()
	assert.Equal(t, StageIntro, snap.Stage)

	d.Flip()
	snap = d.StartTest()
	assert.Equal(t, StageIntro, snap.Stage, "not heard yet")

	snap = d.Listen(context.Background())
	assert.True(t, snap.Listened)
	assert.Equal(t, []string{"Hour"}, sp.spoken)

	snap = d.StartTest()
	assert.Equal(t, StageTest, snap.Stage)
}

func TestDiscovery_FlipToggles(t *testing.T) {
	d, _ := newTestDiscovery(t, nil)

	assert.True(t, d.Flip().Flipped)
	assert.False(t, d.Flip().Flipped)
}

func TestDiscovery_ChooseIgnoredDuringIntro(t *testing.T) {
	d, _ := newTestDiscovery(t, nil)

	snap := d.Choose("ساعة")
	assert.Equal(t, StatusPresenting, snap.Status)
	assert.Equal(t, 0, snap.Score)
}

func TestDiscovery_CorrectAdvancesToNextCardIntro(t *testing.T) {
	d, sched := newTestDiscovery(t, nil)
	snap := toTest(t, d)

	idx := slices.Index(snap.Round.Options, "ساعة")
	snap = d.ChooseIndex(idx)
	assert.Equal(t, StatusCorrect, snap.Status)

	sched.Advance(discoveryAdvance)
	snap = d.Snapshot()
	assert.Equal(t, 1, snap.RoundIndex)
	assert.Equal(t, StageIntro, snap.Stage)
	assert.False(t, snap.Flipped)
	assert.False(t, snap.Listened)
}

func TestDiscovery_RetryStaysInTest(t *testing.T) {
	d, sched := newTestDiscovery(t, nil)
	toTest(t, d)

	snap := d.Choose("شهر")
	assert.Equal(t, StatusIncorrect, snap.Status)

	sched.Advance(discoveryRetry)
	snap = d.Snapshot()
	assert.Equal(t, StatusPresenting, snap.Status)
	assert.Equal(t, StageTest, snap.Stage)
}

func TestDiscovery_ListenIgnoredWhenCardChanges(t *testing.T) {
	sp := &spySpeaker{}
	d, _ := newTestDiscovery(t, sp)
	sp.during = func() { d.Reset() }

	snap := d.Listen(context.Background())
	assert.False(t, snap.Listened)
	assert.Equal(t, StageIntro, snap.Stage)
}

func TestDiscovery_FinishAndReset(t *testing.T) {
	d, sched := newTestDiscovery(t, nil)

	for _, answer := range []string{"ساعة", "يوم"} {
		toTest(t, d)
		d.Choose(answer)
		sched.Advance(discoveryAdvance)
	}

	snap := d.Snapshot()
	require.True(t, snap.Finished())
	assert.Equal(t, 2, snap.Score)
	assert.False(t, d.Flip().Flipped, "finished deck cannot be flipped")

	snap = d.Reset()
	assert.Equal(t, 0, snap.RoundIndex)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, StageIntro, snap.Stage)
}
