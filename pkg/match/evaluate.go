package match

import "strconv"

// Evaluator computes the graded triple-match score of a mapping against a
// fixed Pool, memoizing every mapping it has ever scored. An Evaluator is
// scoped to one pair-comparison and must not be reused across pairs or
// shared across goroutines.
type Evaluator struct {
	Pool *Pool
	memo map[string]float64
}

// NewEvaluator constructs an Evaluator over pool with a fresh, empty memo
// table.
func NewEvaluator(pool *Pool) *Evaluator {
	return &Evaluator{Pool: pool, memo: make(map[string]float64)}
}

// mapKey renders a mapping as a stable string key for the memo table. A
// rolling hash would also work; a delimited decimal encoding is simpler
// and just as stable, at the cost of a few bytes per entry.
func mapKey(mapping []int) string {
	buf := make([]byte, 0, len(mapping)*4)
	for i, v := range mapping {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Score returns the memoized sum of SelfScore over every mapped node plus,
// for every unordered pair of mapped nodes, the relation count read once,
// from the lower-indexed node's pair adjacency entry (the storage-symmetry
// invariant plus the i′>i filter avoid double counting).
func (e *Evaluator) Score(mapping []int) float64 {
	key := mapKey(mapping)
	if v, ok := e.memo[key]; ok {
		return v
	}

	total := 0.0
	for i, j := range mapping {
		if j == -1 {
			continue
		}
		id, ok := e.Pool.idFor(i, j)
		if !ok {
			continue
		}
		total += e.Pool.SelfScore[id]
		for _, edge := range e.Pool.Adjacency[id] {
			other := e.Pool.Pairs[edge.other]
			if other.I > i && mapping[other.I] == other.J {
				total += float64(edge.count)
			}
		}
	}

	e.memo[key] = total
	return total
}

// Recompute computes mapping's score from scratch, bypassing the memo
// table entirely. It exists for audit mode: comparing its result against
// the memoized incremental value catches a MOVE/SWAP gain bug that a
// memo-table read would otherwise mask.
func (e *Evaluator) Recompute(mapping []int) float64 {
	total := 0.0
	for i, j := range mapping {
		if j == -1 {
			continue
		}
		id, ok := e.Pool.idFor(i, j)
		if !ok {
			continue
		}
		total += e.Pool.SelfScore[id]
		for _, edge := range e.Pool.Adjacency[id] {
			other := e.Pool.Pairs[edge.other]
			if other.I > i && mapping[other.I] == other.J {
				total += float64(edge.count)
			}
		}
	}
	return total
}

// pairDelta returns sign*(contribution of the single pair (i,j) given
// mapping), optionally skipping adjacency entries whose first coordinate
// equals skip (skip<0 means "skip nothing"). It backs both MoveGain and
// SwapGain.
func (e *Evaluator) pairDelta(mapping []int, i, j int, sign float64, skip int) float64 {
	id, ok := e.Pool.idFor(i, j)
	if !ok {
		return 0
	}
	total := sign * e.Pool.SelfScore[id]
	for _, edge := range e.Pool.Adjacency[id] {
		other := e.Pool.Pairs[edge.other]
		if other.I == skip {
			continue
		}
		if mapping[other.I] == other.J {
			total += sign * float64(edge.count)
		}
	}
	return total
}
