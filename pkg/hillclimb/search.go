// Package hillclimb implements the iterated-restart local search over
// partial node mappings: a smart deterministic first restart followed by R
// random restarts, each hill-climbing via the best available MOVE/SWAP
// neighbor until no further positive gain remains. Grounded on
// s2match.py's get_best_match/smart_init_mapping/random_init_mapping/
// get_best_gain, and on engine/search.go's Searcher shape: a small struct
// wrapping config plus a constructor, with the actual search expressed as
// ordinary methods rather than free functions.
package hillclimb

import (
	"math/rand"

	"github.com/s2match/s2match/pkg/match"
	"github.com/s2match/s2match/pkg/triple"
)

// stopGain is the minimum positive gain worth applying before a restart
// is considered converged.
const stopGain = 1e-10

// Searcher runs the hill-climbing search for a single graph pair. It holds
// no mutable state between calls to Search; the *rand.Rand it is given is
// the only source of nondeterminism, so reusing one across pairs makes a
// run's overall output reproducible from a single seed.
type Searcher struct {
	Restarts int
	RNG      *rand.Rand

	// Audit enables an internal-inconsistency check: after every accepted
	// MOVE/SWAP, the new mapping's score is recomputed from scratch and
	// compared to the incremental value. Off by default since it doubles
	// the cost of every step.
	Audit bool

	// OnInconsistency is invoked whenever Audit is on and the incremental
	// and recomputed scores disagree beyond auditTolerance. It never
	// influences the search itself — audit mode observes, it does not
	// correct.
	OnInconsistency func(mapping []int, incremental, recomputed float64)
}

// New constructs a Searcher with restarts beyond the smart start and an
// explicit RNG.
func New(restarts int, rng *rand.Rand) *Searcher {
	return &Searcher{Restarts: restarts, RNG: rng}
}

const auditTolerance = 1e-9

// Result is the best mapping found across all restarts and its score.
type Result struct {
	Mapping []int
	Score   float64
}

// Search runs the restart loop described in the package doc. pool.N1
// unmapped nodes are represented as -1 in the returned Mapping.
func (s *Searcher) Search(pool *match.Pool, g1, g2 triple.Graph) Result {
	eval := match.NewEvaluator(pool)

	best := Result{Mapping: unmapped(pool.N1), Score: 0}

	for r := 0; r <= s.Restarts; r++ {
		var mapping []int
		if r == 0 {
			mapping = s.smartInit(pool, g1, g2)
		} else {
			mapping = s.randomInit(pool)
		}

		cur := eval.Score(mapping)
		for {
			gain, next := s.bestNeighbor(pool, eval, mapping, cur)
			if gain <= stopGain {
				break
			}
			mapping = next
			cur += gain
			if s.Audit {
				s.checkConsistency(eval, mapping, cur)
			}
		}

		if cur > best.Score {
			best = Result{Mapping: mapping, Score: cur}
		}
	}

	return best
}

func (s *Searcher) checkConsistency(eval *match.Evaluator, mapping []int, incremental float64) {
	recomputed := eval.Recompute(mapping)
	delta := incremental - recomputed
	if delta < 0 {
		delta = -delta
	}
	if delta > auditTolerance && s.OnInconsistency != nil {
		s.OnInconsistency(append([]int(nil), mapping...), incremental, recomputed)
	}
}

func unmapped(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = -1
	}
	return m
}

// smartInit builds the first restart's seed mapping: pair each node with
// the first not-yet-used candidate sharing its concept label, then
// randomly fill whatever remains unmapped.
func (s *Searcher) smartInit(pool *match.Pool, g1, g2 triple.Graph) []int {
	mapping := unmapped(pool.N1)
	used := make(map[int]bool, pool.N1)
	var unresolved []int

	for i, candidates := range pool.Candidates {
		if len(candidates) == 0 {
			continue
		}
		concept := g1.Instances[i].Concept
		matched := false
		for _, j := range candidates {
			if used[j] {
				continue
			}
			if g2.Instances[j].Concept == concept {
				mapping[i] = j
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			unresolved = append(unresolved, i)
		}
	}

	for _, i := range unresolved {
		candidates := availableCandidates(pool.Candidates[i], used)
		if len(candidates) == 0 {
			continue
		}
		j := candidates[s.RNG.Intn(len(candidates))]
		mapping[i] = j
		used[j] = true
	}

	return mapping
}

// randomInit builds a random restart's seed mapping.
func (s *Searcher) randomInit(pool *match.Pool) []int {
	mapping := unmapped(pool.N1)
	used := make(map[int]bool, pool.N1)

	for i, candidates := range pool.Candidates {
		available := availableCandidates(candidates, used)
		if len(available) == 0 {
			continue
		}
		j := available[s.RNG.Intn(len(available))]
		mapping[i] = j
		used[j] = true
	}

	return mapping
}

func availableCandidates(candidates []int, used map[int]bool) []int {
	out := make([]int, 0, len(candidates))
	for _, j := range candidates {
		if !used[j] {
			out = append(out, j)
		}
	}
	return out
}

// bestNeighbor scans every MOVE and SWAP neighbor of mapping, returning
// the largest positive gain found (0 if none) and the mapping that
// achieves it.
func (s *Searcher) bestNeighbor(pool *match.Pool, eval *match.Evaluator, mapping []int, cur float64) (float64, []int) {
	bestGain := 0.0
	var bestMapping []int

	mapped := make(map[int]bool, pool.N1)
	for _, j := range mapping {
		if j != -1 {
			mapped[j] = true
		}
	}

	for i, old := range mapping {
		for _, j := range pool.Candidates[i] {
			if mapped[j] {
				continue
			}
			gain := eval.MoveGain(mapping, i, old, j, cur)
			if gain > bestGain {
				bestGain = gain
				bestMapping = applyMove(mapping, i, j)
			}
		}
	}

	for i := 0; i < len(mapping); i++ {
		for j := i + 1; j < len(mapping); j++ {
			gain := eval.SwapGain(mapping, i, mapping[i], j, mapping[j], cur)
			if gain > bestGain {
				bestGain = gain
				bestMapping = applySwap(mapping, i, j)
			}
		}
	}

	return bestGain, bestMapping
}

func applyMove(mapping []int, i, j int) []int {
	out := append([]int(nil), mapping...)
	out[i] = j
	return out
}

func applySwap(mapping []int, i, j int) []int {
	out := append([]int(nil), mapping...)
	out[i], out[j] = out[j], out[i]
	return out
}
