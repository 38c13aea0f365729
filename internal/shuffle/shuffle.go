// Package shuffle produces randomized orderings of game content: option
// lists, card decks and letter tiles.
package shuffle

import (
	"math/rand"
	"slices"
	"sync"
	"time"
)

// Shuffler is a seedable source of uniform permutations.
// It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Shuffler seeded with seed. A zero seed uses the current time.
func New(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// swap permutes n positions in place with Fisher-Yates.
func (s *Shuffler) swap(n int, fn func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, fn)
}

// Permute returns a uniformly shuffled copy of in.
func Permute[T any](s *Shuffler, in []T) []T {
	out := slices.Clone(in)
	s.swap(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Distinct returns a shuffled copy of in that differs from in element-wise
// whenever len(in) > 1. When the draw reproduces the input it is rotated left
// by one. A sequence whose elements are all equal has no differing
// permutation and comes back unchanged.
func Distinct[T comparable](s *Shuffler, in []T) []T {
	out := Permute(s, in)
	if len(out) < 2 || !slices.Equal(out, in) {
		return out
	}
	return append(out[1:], out[0])
}

// BuildOptions returns count+1 distinct options: correct exactly once plus
// count distractors drawn without replacement from pool, in random order.
// Values equal to correct and repeated values in pool are skipped, keeping the
// first occurrence. If pool has fewer candidates than count, all of them are used.
func (s *Shuffler) BuildOptions(correct string, pool []string, count int) []string {
	candidates := uniqueKeepOrder(pool, correct)
	candidates = Permute(s, candidates)
	if count < 0 {
		count = 0
	}
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	options := make([]string, 0, len(candidates)+1)
	options = append(options, correct)
	options = append(options, candidates...)

	return Permute(s, options)
}

// uniqueKeepOrder drops duplicates and the excluded value while preserving order.
func uniqueKeepOrder(in []string, exclude string) []string {
	seen := map[string]struct{}{exclude: {}}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
