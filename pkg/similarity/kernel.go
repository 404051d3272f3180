// Package similarity implements the graded concept-similarity kernel: the
// deterministic identity / sense-stripping / multi-word-split / vector
// policy that turns two concept labels into a score in [0,1]. It follows
// s2match.py's maybe_sim/maybe_get_vec/maybe_has_sim family and, for its
// stateful-cache shape, engine/search.go's Searcher pattern: a struct
// holding config plus a lazily filled cache, with small single-purpose
// methods.
package similarity

import (
	"regexp"
	"strings"

	"github.com/s2match/s2match/pkg/embedding"
)

// senseSuffix matches a trailing predicate-sense suffix: a hyphen followed
// by a run of digits at the end of the string.
var senseSuffix = regexp.MustCompile(`-([0-9]+)$`)

// MultiTokenStrategy selects how a hyphenated, out-of-vocabulary concept
// label is vectorized.
type MultiTokenStrategy string

const (
	StrategySplit MultiTokenStrategy = "split"
	StrategyNone  MultiTokenStrategy = "none"
)

// Config bundles every kernel policy knob the similarity function
// enumerates.
type Config struct {
	Func               embedding.Func
	Cutoff             float64
	DiffSense          float64
	MultiTokenStrategy MultiTokenStrategy
}

// Kernel evaluates sim(a,b) against a fixed embedding table and config,
// caching results for the lifetime of a single pair-comparison. It is not
// safe for concurrent use by multiple goroutines; each pair comparison
// must own its own Kernel.
type Kernel struct {
	cfg   Config
	table embedding.Table
	cache map[cacheKey]float64
}

// New constructs a Kernel scoped to one graph-pair comparison.
func New(cfg Config, table embedding.Table) *Kernel {
	return &Kernel{cfg: cfg, table: table, cache: make(map[cacheKey]float64)}
}

type cacheKey struct{ a, b string }

// key normalizes (a,b) so either ordering hits the same cache entry.
func key(a, b string) cacheKey {
	if a <= b {
		return cacheKey{a, b}
	}
	return cacheKey{b, a}
}

// Sim implements the nine-step identity/sense/vector comparison policy.
func (k *Kernel) Sim(a, b string) float64 {
	ck := key(a, b)
	if v, ok := k.cache[ck]; ok {
		return v
	}
	v := k.compute(a, b)
	k.cache[ck] = v
	return v
}

func (k *Kernel) compute(a, b string) float64 {
	if a == b {
		return 1
	}

	sa, hasSenseA := strip(a)
	sb, hasSenseB := strip(b)

	if hasSenseA && hasSenseB && sa == sb {
		return k.cfg.DiffSense
	}
	if hasSenseA && !hasSenseB && sa == b {
		return k.cfg.DiffSense
	}
	if hasSenseB && !hasSenseA && sb == a {
		return k.cfg.DiffSense
	}

	va, sensedA := k.vector(a, hasSenseA, sa)
	vb, sensedB := k.vector(b, hasSenseB, sb)
	if va == nil || vb == nil {
		return 0
	}

	s := k.cfg.Func(va, vb)
	if s <= k.cfg.Cutoff {
		return 0
	}
	if sensedA || sensedB {
		return s * k.cfg.DiffSense
	}
	return s
}

// strip removes a trailing "-DD" predicate-sense suffix. ok is false when
// the label carries no such suffix.
func strip(label string) (stripped string, ok bool) {
	loc := senseSuffix.FindStringIndex(label)
	if loc == nil {
		return "", false
	}
	return label[:loc[0]], true
}

// vector resolves the vector for a concept label: sensed words look up
// their stripped form directly with no MWE split; unsensed words go
// through the multi-word-concept strategy. sensed reports whether the
// original label carried a sense suffix, independent of whether a vector
// was found (needed by the final diffsense discount check).
func (k *Kernel) vector(label string, hasSense bool, stripped string) (vec []float64, sensed bool) {
	if hasSense {
		v, ok := k.table.Lookup(stripped)
		if !ok {
			return nil, true
		}
		return k.augment(v, stripped), true
	}

	if v, ok := k.table.Lookup(label); ok {
		return v, false
	}
	if k.cfg.MultiTokenStrategy == StrategySplit && strings.Contains(label, "-") {
		parts := strings.Split(label, "-")
		var sum []float64
		for _, p := range parts {
			v, ok := k.table.Lookup(p)
			if !ok {
				continue
			}
			sum = addInto(sum, v)
		}
		return sum, false
	}
	return nil, false
}

// augment adds the vector for base+"s" when present: the morphological
// third-person augmentation applied to sensed words whose base vector was
// found.
func (k *Kernel) augment(base []float64, baseWord string) []float64 {
	plural, ok := k.table.Lookup(baseWord + "s")
	if !ok {
		return base
	}
	out := make([]float64, len(base))
	copy(out, base)
	return addInto(out, plural)
}

// addInto adds src into dst elementwise, allocating dst if nil and
// extending it if src is longer. Mismatched-but-nonzero lengths sum over
// the shorter common prefix.
func addInto(dst, src []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(src))
		copy(dst, src)
		return dst
	}
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
	if len(src) > len(dst) {
		dst = append(dst, src[len(dst):]...)
	}
	return dst
}
