package service

import (
	"strings"
	"time"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
)

// Timings are the default delays of timed transitions.
type Timings struct {
	Advance  time.Duration
	Retry    time.Duration
	Mismatch time.Duration
}

// Per-game pacing that differs from the defaults.
var (
	advanceOverrides = map[entities.GameKind]time.Duration{
		entities.GameWizard: 1200 * time.Millisecond,
	}
	retryOverrides = map[entities.GameKind]time.Duration{
		entities.GameJumble: 800 * time.Millisecond,
		entities.GameWizard: 500 * time.Millisecond,
	}
)

const discoveryDistractors = 2

// GameFactory builds configured mini-game instances from static content.
type GameFactory struct {
	content  ContentProvider
	shuffler *shuffle.Shuffler
	timings  Timings
}

// NewGameFactory creates a new game factory.
func NewGameFactory(
	content ContentProvider,
	shuffler *shuffle.Shuffler,
	timings Timings,
) *GameFactory {
	return &GameFactory{
		content:  content,
		shuffler: shuffler,
		timings:  timings,
	}
}

// Timings returns the delays used for kind.
func (f *GameFactory) Timings(kind entities.GameKind) Timings {
	t := f.timings
	if d, ok := advanceOverrides[kind]; ok {
		t.Advance = d
	}
	if d, ok := retryOverrides[kind]; ok {
		t.Retry = d
	}
	return t
}

// NewDiscovery starts the flashcard game. speaker pronounces the words for
// the learner's chat.
func (f *GameFactory) NewDiscovery(speaker game.Speaker, opts ...game.Option) *game.Discovery {
	return game.NewDiscovery(f.descriptor(entities.GameDiscovery, f.discoveryRounds), speaker, opts...)
}

// NewMatching starts the memory matching game.
func (f *GameFactory) NewMatching(opts ...game.Option) *game.Matching {
	return game.NewMatching(f.content.Words(), f.shuffler, f.timings.Mismatch, opts...)
}

// NewJumble starts the spelling game.
func (f *GameFactory) NewJumble(opts ...game.Option) *game.Jumble {
	return game.NewJumble(f.descriptor(entities.GameJumble, f.jumbleRounds), f.shuffler, opts...)
}

// NewSorter starts the ordering game over the vocabulary in content order.
func (f *GameFactory) NewSorter(opts ...game.Option) *game.Sorter {
	return game.NewSorter(f.content.Words(), f.shuffler, opts...)
}

// NewPilot starts the scenario game.
func (f *GameFactory) NewPilot(opts ...game.Option) *game.Session {
	return game.NewSession(f.descriptor(entities.GamePilot, f.pilotRounds), opts...)
}

// NewWizard starts the conversion drill.
func (f *GameFactory) NewWizard(opts ...game.Option) *game.Session {
	desc := f.descriptor(entities.GameWizard, f.wizardRounds)
	desc.Compare = game.CompareFold
	return game.NewSession(desc, opts...)
}

// NewQuiz starts the trivia game.
func (f *GameFactory) NewQuiz(opts ...game.Option) *game.Session {
	return game.NewSession(f.descriptor(entities.GameQuiz, f.quizRounds), opts...)
}

func (f *GameFactory) descriptor(kind entities.GameKind, build func(int) []game.Round) game.Descriptor {
	t := f.Timings(kind)
	desc := game.Descriptor{
		Kind:         kind,
		Compare:      game.CompareExact,
		AdvanceDelay: t.Advance,
		RetryDelay:   t.Retry,
		Build:        build,
	}
	if kind == entities.GameDiscovery {
		desc.OptionCount = discoveryDistractors
	}
	return desc
}

func (f *GameFactory) discoveryRounds(distractors int) []game.Round {
	words := f.content.Words()
	pool := make([]string, 0, len(words))
	for _, w := range words {
		pool = append(pool, w.Arabic)
	}

	rounds := make([]game.Round, 0, len(words))
	for _, w := range words {
		rounds = append(rounds, game.Round{
			Prompt:  w.English,
			Hint:    w.Transliteration,
			Icon:    w.Icon,
			Answer:  w.Arabic,
			Options: f.shuffler.BuildOptions(w.Arabic, pool, distractors),
		})
	}
	return rounds
}

func (f *GameFactory) jumbleRounds(int) []game.Round {
	words := f.content.Words()
	rounds := make([]game.Round, 0, len(words))
	for _, w := range words {
		target := strings.ToUpper(w.English)
		rounds = append(rounds, game.Round{
			Prompt:  w.Arabic,
			Hint:    w.Transliteration,
			Icon:    w.Icon,
			Answer:  target,
			Letters: shuffle.Distinct(f.shuffler, letters(target)),
		})
	}
	return rounds
}

func (f *GameFactory) pilotRounds(int) []game.Round {
	scenarios := f.content.Scenarios()
	rounds := make([]game.Round, 0, len(scenarios))
	for _, sc := range scenarios {
		rounds = append(rounds, game.Round{
			Prompt:  sc.Text,
			Hint:    sc.ArabicText,
			Icon:    sc.Icon,
			Answer:  sc.Correct,
			Options: f.shuffler.BuildOptions(sc.Correct, sc.Options, len(sc.Options)),
		})
	}
	return rounds
}

func (f *GameFactory) wizardRounds(int) []game.Round {
	quests := f.content.Quests()
	rounds := make([]game.Round, 0, len(quests))
	for _, q := range quests {
		rounds = append(rounds, game.Round{
			Prompt: q.Prefix + " " + q.Prompt,
			Hint:   q.TargetUnit,
			Answer: q.CorrectAnswer,
		})
	}
	return rounds
}

func (f *GameFactory) quizRounds(int) []game.Round {
	questions := f.content.Questions()
	rounds := make([]game.Round, 0, len(questions))
	for _, q := range questions {
		rounds = append(rounds, game.Round{
			Prompt:  q.Question,
			Hint:    q.ArabicQuestion,
			Answer:  q.CorrectAnswer,
			Options: f.shuffler.BuildOptions(q.CorrectAnswer, q.Options, len(q.Options)),
		})
	}
	return rounds
}

// WizardRank is the title shown for progress through the conversion drill.
func WizardRank(roundIndex int) string {
	switch {
	case roundIndex < 2:
		return "Apprentice"
	case roundIndex < 4:
		return "Time Traveler"
	default:
		return "Master Alchemist"
	}
}

// ArabicHint returns the hint of the quest at roundIndex, if any.
func (f *GameFactory) ArabicHint(roundIndex int) string {
	quests := f.content.Quests()
	if roundIndex < 0 || roundIndex >= len(quests) {
		return ""
	}
	return quests[roundIndex].ArabicHint
}

func letters(word string) []string {
	out := make([]string, 0, len(word))
	for _, r := range word {
		out = append(out, string(r))
	}
	return out
}
