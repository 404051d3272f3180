// Package match builds the candidate pool and weight dictionary from two
// triple.Graphs and evaluates graded triple-match scores for a mapping,
// including the O(degree) incremental MOVE/SWAP gain used by the
// hill-climbing search. It follows s2match.py's
// compute_pool/compute_match/move_gain/swap_gain, with the weight
// dictionary implemented as a flat SelfScore array plus a per-pair
// adjacency list instead of a nested dict-of-dicts, and engine/
// matrix_ops.go's shape of a mutable-state struct built up by small
// single-purpose methods.
package match

import (
	"sort"
	"strings"

	"github.com/s2match/s2match/pkg/similarity"
	"github.com/s2match/s2match/pkg/triple"
)

// WeightingScheme selects the multiplier applied to instance-concept
// contributions.
type WeightingScheme string

const (
	WeightingStandard  WeightingScheme = "standard"
	WeightingConcept   WeightingScheme = "concept"
	WeightingStructure WeightingScheme = "structure"
)

func (w WeightingScheme) multiplier() float64 {
	switch w {
	case WeightingConcept:
		return 3
	case WeightingStructure:
		return 0.3333
	default:
		return 1
	}
}

// Pair is a candidate node-alignment (i, j) with i a node of graph 1 and j
// a node of graph 2.
type Pair struct {
	I, J int
}

type relEdge struct {
	other int // index into Pool.Pairs / Pool.SelfScore / Pool.Adjacency
	count int
}

// Pool is the candidate-mapping list C plus the flat weight table W. Pairs
// holds every candidate pair ever touched during construction, in
// assignment order; SelfScore and Adjacency are parallel slices indexed by
// that same pair id.
type Pool struct {
	N1, N2     int
	Candidates [][]int
	Pairs      []Pair
	SelfScore  []float64
	Adjacency  [][]relEdge

	ids map[Pair]int
}

func newPool(n1, n2 int) *Pool {
	return &Pool{
		N1:         n1,
		N2:         n2,
		Candidates: make([][]int, n1),
		ids:        make(map[Pair]int),
	}
}

// idFor reports the pair id assigned to (i,j), if any.
func (p *Pool) idFor(i, j int) (int, bool) {
	id, ok := p.ids[Pair{i, j}]
	return id, ok
}

// pairID returns the id for (i,j), lazily creating it. Creation appends j
// to Candidates[i] and allocates a zero SelfScore slot, so relation-only
// pairs read back as 0 without a separate "missing means 0" branch.
func (p *Pool) pairID(i, j int) int {
	pr := Pair{i, j}
	if id, ok := p.ids[pr]; ok {
		return id
	}
	id := len(p.Pairs)
	p.Pairs = append(p.Pairs, pr)
	p.SelfScore = append(p.SelfScore, 0)
	p.Adjacency = append(p.Adjacency, nil)
	p.ids[pr] = id
	p.Candidates[i] = append(p.Candidates[i], j)
	return id
}

func (p *Pool) addSelf(i, j int, amount float64) {
	if amount == 0 {
		return
	}
	id := p.pairID(i, j)
	p.SelfScore[id] += amount
}

// addRelationEdge wires a firing relation triple between candidate pairs
// (i1,j1) and (i2,j2). Self-loops (P==Q) add to SelfScore instead of the
// adjacency list.
func (p *Pool) addRelationEdge(i1, j1, i2, j2 int) {
	if i1 == i2 && j1 == j2 {
		p.addSelf(i1, j1, 1)
		return
	}

	pI, pJ, qI, qJ := i1, j1, i2, j2
	if i1 > i2 {
		pI, pJ, qI, qJ = i2, j2, i1, j1
	}
	idP := p.pairID(pI, pJ)
	idQ := p.pairID(qI, qJ)
	p.bumpAdjacency(idP, idQ)
	p.bumpAdjacency(idQ, idP)
}

func (p *Pool) bumpAdjacency(id, other int) {
	for i := range p.Adjacency[id] {
		if p.Adjacency[id][i].other == other {
			p.Adjacency[id][i].count++
			return
		}
	}
	p.Adjacency[id] = append(p.Adjacency[id], relEdge{other: other, count: 1})
}

func (p *Pool) sortCandidates() {
	for i := range p.Candidates {
		sort.Ints(p.Candidates[i])
	}
}

// BuildPool implements the candidate-pool and weight-dictionary
// construction rules over two renamed graphs. prefix1/prefix2 are the
// rename prefixes g1/g2 were produced with (triple.Graph.Rename), used to
// recover dense node indices.
func BuildPool(g1, g2 triple.Graph, prefix1, prefix2 string, kernel *similarity.Kernel, weighting WeightingScheme) *Pool {
	p := newPool(len(g1.Instances), len(g2.Instances))
	mult := weighting.multiplier()

	for i, inst1 := range g1.Instances {
		for j, inst2 := range g2.Instances {
			s := kernel.Sim(strings.ToLower(inst1.Concept), strings.ToLower(inst2.Concept)) * mult
			if s > 0 {
				p.addSelf(i, j, s)
			}
		}
	}

	buildAttributePool(p, g1, g2, prefix1, prefix2, kernel)
	buildRelationPool(p, g1, g2, prefix1, prefix2)

	p.sortCandidates()
	return p
}

func buildAttributePool(p *Pool, g1, g2 triple.Graph, prefix1, prefix2 string, kernel *similarity.Kernel) {
	for _, a1 := range g1.Attributes {
		i := triple.NodeIndex(a1.Node, prefix1)
		rel1 := strings.ToLower(a1.Relation)
		for _, a2 := range g2.Attributes {
			rel2 := strings.ToLower(a2.Relation)
			if rel1 != rel2 {
				continue
			}
			j := triple.NodeIndex(a2.Node, prefix2)

			if rel1 == "top" {
				v1 := similarity.CleanLiteral(strings.ToLower(a1.Value))
				v2 := similarity.CleanLiteral(strings.ToLower(a2.Value))
				if v1 == v2 {
					p.addSelf(i, j, 1)
				} else {
					p.addSelf(i, j, kernel.Sim(v1, v2))
				}
				continue
			}

			if strings.ToLower(a1.Value) == strings.ToLower(a2.Value) {
				p.addSelf(i, j, 1)
			}
		}
	}
}

func buildRelationPool(p *Pool, g1, g2 triple.Graph, prefix1, prefix2 string) {
	for _, r1 := range g1.Relations {
		label1 := strings.ToLower(r1.Label)
		s1 := triple.NodeIndex(r1.Src, prefix1)
		t1 := triple.NodeIndex(r1.Dst, prefix1)
		for _, r2 := range g2.Relations {
			if strings.ToLower(r2.Label) != label1 {
				continue
			}
			s2 := triple.NodeIndex(r2.Src, prefix2)
			t2 := triple.NodeIndex(r2.Dst, prefix2)
			p.addRelationEdge(s1, s2, t1, t2)
		}
	}
}
