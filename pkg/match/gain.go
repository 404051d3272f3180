package match

// MoveGain computes the score delta of setting mapping[i] from oldJ to
// newJ in O(degree), without materializing the new mapping's full score.
// curScore must be e.Score(mapping) (the caller's current cached score),
// so the result can be memoized as an absolute score for the new mapping.
func (e *Evaluator) MoveGain(mapping []int, i, oldJ, newJ int, curScore float64) float64 {
	newMapping := append([]int(nil), mapping...)
	newMapping[i] = newJ
	key := mapKey(newMapping)
	if v, ok := e.memo[key]; ok {
		return v - curScore
	}

	gain := e.pairDelta(newMapping, i, newJ, 1, -1) + e.pairDelta(mapping, i, oldJ, -1, -1)

	e.memo[key] = curScore + gain
	return gain
}

// SwapGain computes the score delta of exchanging the images of i and j:
// mapping[i], mapping[j] = mj, mi. Precondition: i<j —
// the hill-climber's i<j enumeration is what makes "the earlier-index
// pair is referenced first" well defined, so entries belonging to the
// second pair skip adjacency whose first coordinate is i to avoid
// double-counting the interaction already folded into the first pair's sum.
func (e *Evaluator) SwapGain(mapping []int, i, mi, j, mj int, curScore float64) float64 {
	newMapping := append([]int(nil), mapping...)
	newMapping[i] = mj
	newMapping[j] = mi
	key := mapKey(newMapping)
	if v, ok := e.memo[key]; ok {
		return v - curScore
	}

	gain := e.pairDelta(newMapping, i, mj, 1, -1)
	gain += e.pairDelta(newMapping, j, mi, 1, i)
	gain += e.pairDelta(mapping, i, mi, -1, -1)
	gain += e.pairDelta(mapping, j, mj, -1, i)

	e.memo[key] = curScore + gain
	return gain
}
