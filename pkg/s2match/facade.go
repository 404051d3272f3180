// Package s2match is the scoring façade: it wires the similarity kernel,
// pool builder, and hill-climbing search together into a single graph-pair
// or corpus comparison, and formats results for output. Follows
// s2match.py's compute_s2match_from_two_lists (the programmatic, non-CLI
// entry point the original exposes) and persistence/store.go's save/load
// driver shape for the read-compute-accumulate corpus loop.
package s2match

import (
	"math/rand"
	"time"

	"github.com/s2match/s2match/pkg/config"
	"github.com/s2match/s2match/pkg/embedding"
	"github.com/s2match/s2match/pkg/hillclimb"
	"github.com/s2match/s2match/pkg/match"
	"github.com/s2match/s2match/pkg/similarity"
	"github.com/s2match/s2match/pkg/triple"
)

const (
	prefix1 = "a"
	prefix2 = "b"
)

// Result is the outcome of comparing two graphs: the best mapping found,
// its graded match score, and the derived precision/recall/F.
type Result struct {
	Mapping      []int
	Match        float64
	TestTriples  int
	GoldTriples  int
	Precision    float64
	Recall       float64
	F1           float64
}

func weightingScheme(s string) match.WeightingScheme {
	switch s {
	case "concept":
		return match.WeightingConcept
	case "structure":
		return match.WeightingStructure
	default:
		return match.WeightingStandard
	}
}

func multiTokenStrategy(s string) similarity.MultiTokenStrategy {
	if s == "none" {
		return similarity.StrategyNone
	}
	return similarity.StrategySplit
}

func similarityFunc(name string) embedding.Func {
	if f, ok := embedding.FuncByName(name); ok {
		return f
	}
	return embedding.Cosine
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// CompareGraphs compares g1 (test) against g2 (gold), using cfg's
// similarity/weighting/search policy and table for concept vectors. g1 and
// g2 need not already be densely renamed; this renames each independently
// before building the candidate pool.
func CompareGraphs(g1, g2 triple.Graph, cfg *config.Config, table embedding.Table) (Result, error) {
	r1 := g1.Rename(prefix1)
	r2 := g2.Rename(prefix2)

	kernel := similarity.New(similarity.Config{
		Func:               similarityFunc(cfg.Similarity.Function),
		Cutoff:             cfg.Similarity.Cutoff,
		DiffSense:          cfg.Similarity.DiffSense,
		MultiTokenStrategy: multiTokenStrategy(cfg.Similarity.MultiTokenStrategy),
	}, table)

	pool := match.BuildPool(r1, r2, prefix1, prefix2, kernel, weightingScheme(cfg.Weighting.Scheme))

	searcher := hillclimb.New(cfg.Search.Restarts, newRNG(cfg.Search.Seed))
	if cfg.Runtime.Audit {
		searcher.Audit = true
		searcher.OnInconsistency = func(mapping []int, incremental, recomputed float64) {
			diag := Diagnostic{
				PoolSize:       len(pool.Pairs),
				MappingAfter:   mapping,
				IncrementalVal: incremental,
				RecomputedVal:  recomputed,
			}
			diag.Report(cfg.Runtime.DiagnosticPath)
		}
	}
	best := searcher.Search(pool, r1, r2)

	testNum := r1.NumTriples()
	goldNum := r2.NumTriples()
	p, rcl, f1 := ComputeF(best.Score, testNum, goldNum)

	return Result{
		Mapping:     best.Mapping,
		Match:       best.Score,
		TestTriples: testNum,
		GoldTriples: goldNum,
		Precision:   p,
		Recall:      rcl,
		F1:          f1,
	}, nil
}
