package match

import (
	"testing"

	"github.com/s2match/s2match/pkg/embedding"
	"github.com/s2match/s2match/pkg/similarity"
	"github.com/s2match/s2match/pkg/triple"
)

func testKernel() *similarity.Kernel {
	return similarity.New(similarity.Config{
		Func:               embedding.Cosine,
		Cutoff:             0.5,
		DiffSense:          0.5,
		MultiTokenStrategy: similarity.StrategySplit,
	}, embedding.NewTableForTest(nil))
}

func hitBoyGraphs() (triple.Graph, triple.Graph) {
	g := triple.Graph{
		Instances: []triple.Instance{
			{Node: "x", Concept: "hit-01"},
			{Node: "y", Concept: "boy"},
		},
		Attributes: []triple.Attribute{
			{Relation: "top", Node: "x", Value: "hit-01"},
		},
		Relations: []triple.Relation{
			{Label: "ARG0", Src: "x", Dst: "y"},
		},
	}
	return g.Rename("a"), g.Rename("a")
}

func TestBuildPoolIdenticalGraphsSelfScoreForEveryInstance(t *testing.T) {
	g1, g2 := hitBoyGraphs()
	pool := BuildPool(g1, g2, "a", "a", testKernel(), WeightingStandard)

	id, ok := pool.idFor(0, 0)
	if !ok {
		t.Fatal("expected candidate pair (0,0)")
	}
	if pool.SelfScore[id] < 0.999 {
		t.Fatalf("expected self score ~1 for identical concepts, got %v", pool.SelfScore[id])
	}
}

func TestBuildPoolWeightingSchemeMultipliesInstanceContribution(t *testing.T) {
	g1, g2 := hitBoyGraphs()
	standard := BuildPool(g1, g2, "a", "a", testKernel(), WeightingStandard)
	concept := BuildPool(g1, g2, "a", "a", testKernel(), WeightingConcept)

	// Use the (1,1) "boy"/"boy" pair, which carries only an instance-concept
	// contribution (node 0 also carries an unweighted "top" attribute
	// contribution that would otherwise mask the multiplier's effect).
	idStd, _ := standard.idFor(1, 1)
	idConcept, _ := concept.idFor(1, 1)

	want := 3 * standard.SelfScore[idStd]
	got := concept.SelfScore[idConcept]
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("expected concept weighting to 3x the standard contribution: got %v want %v", got, want)
	}
}

func TestBuildPoolRelationEdgeIsSymmetric(t *testing.T) {
	g1, g2 := hitBoyGraphs()
	pool := BuildPool(g1, g2, "a", "a", testKernel(), WeightingStandard)

	id00, ok := pool.idFor(0, 0)
	if !ok {
		t.Fatal("expected pair (0,0)")
	}
	id11, ok := pool.idFor(1, 1)
	if !ok {
		t.Fatal("expected pair (1,1)")
	}

	found := false
	for _, edge := range pool.Adjacency[id00] {
		if edge.other == id11 && edge.count == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected relation edge from (0,0) to (1,1)")
	}

	foundBack := false
	for _, edge := range pool.Adjacency[id11] {
		if edge.other == id00 && edge.count == 1 {
			foundBack = true
		}
	}
	if !foundBack {
		t.Fatal("expected symmetric relation edge from (1,1) back to (0,0)")
	}
}

func TestBuildPoolTopDifferingLiteralsUsesSimilarity(t *testing.T) {
	g1 := triple.Graph{
		Instances:  []triple.Instance{{Node: "a0", Concept: "thing"}},
		Attributes: []triple.Attribute{{Relation: "top", Node: "a0", Value: "good"}},
	}
	g2 := triple.Graph{
		Instances:  []triple.Instance{{Node: "a0", Concept: "thing"}},
		Attributes: []triple.Attribute{{Relation: "top", Node: "a0", Value: "bad"}},
	}
	kernel := similarity.New(similarity.Config{
		Func:               embedding.Cosine,
		Cutoff:             0.0,
		DiffSense:          0.5,
		MultiTokenStrategy: similarity.StrategySplit,
	}, embedding.NewTableForTest(map[string][]float64{
		"good": {1, 0},
		"bad":  {0.5, 0.5},
	}))

	pool := BuildPool(g1, g2, "a", "a", kernel, WeightingStandard)
	id, ok := pool.idFor(0, 0)
	if !ok {
		t.Fatal("expected candidate pair (0,0)")
	}
	// SelfScore accumulates both the instance-concept match (sim=1, identical
	// "thing") and the top-literal similarity (< 1 since "good" != "bad").
	if pool.SelfScore[id] <= 1.0 {
		t.Fatalf("expected self score > 1 (instance + top contributions), got %v", pool.SelfScore[id])
	}
}
