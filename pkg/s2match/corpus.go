package s2match

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/s2match/s2match/pkg/amrio"
	"github.com/s2match/s2match/pkg/config"
	"github.com/s2match/s2match/pkg/embedding"
)

// PairOutcome is one entry of a corpus run: either a Result or a
// parse failure recorded against that pair's position. Malformed pairs
// are reported as NA_WRONG_AMR and skipped, not fatal.
type PairOutcome struct {
	Index   int
	Result  Result
	Err     error // non-nil for a malformed pair; Result is zero in that case
}

// CorpusTotals accumulates match/triple counts across every successfully
// parsed pair, so a corpus run sums counts and applies the P/R/F formulas
// once rather than averaging per-pair scores.
type CorpusTotals struct {
	Match       float64
	TestTriples int
	GoldTriples int
	Skipped     int
}

// ComparePairStream reads aligned AMR blocks from test and gold, compares
// each pair, and returns one PairOutcome per successfully-read pair in
// stream order (malformed pairs included as Err entries, so the caller
// can skip and continue rather than abort). When the two streams run out
// at different block counts, it logs the condition and stops reading.
func ComparePairStream(test, gold io.Reader, cfg *config.Config, table embedding.Table) ([]PairOutcome, error) {
	testReader := amrio.NewReader(test)
	goldReader := amrio.NewReader(gold)
	parser := amrio.NewParser(amrio.Options{DoNotMarkQuotes: cfg.Parser.DoNotMarkQuotes})

	var blocks []struct{ t, g string }
	for {
		tBlock, tOK := testReader.Next()
		gBlock, gOK := goldReader.Next()
		if !tOK && !gOK {
			break
		}
		if tOK != gOK {
			log.Printf("s2match: %v after %d pairs, stopping read", ErrStreamLengthMismatch, len(blocks))
			break
		}
		blocks = append(blocks, struct{ t, g string }{tBlock, gBlock})
	}

	return comparePairs(blocks, parser, cfg, table)
}

func comparePairs(blocks []struct{ t, g string }, parser *amrio.Parser, cfg *config.Config, table embedding.Table) ([]PairOutcome, error) {
	workers := cfg.Runtime.Workers
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]PairOutcome, len(blocks))
	compute := func(i int) {
		g1, err := parser.Parse(blocks[i].t)
		if err != nil {
			outcomes[i] = PairOutcome{Index: i, Err: fmt.Errorf("%w: %v", ErrMalformedGraph, err)}
			return
		}
		g2, err := parser.Parse(blocks[i].g)
		if err != nil {
			outcomes[i] = PairOutcome{Index: i, Err: fmt.Errorf("%w: %v", ErrMalformedGraph, err)}
			return
		}
		result, err := CompareGraphs(g1, g2, cfg, table)
		outcomes[i] = PairOutcome{Index: i, Result: result, Err: err}
	}

	if workers == 1 {
		for i := range blocks {
			compute(i)
		}
		return outcomes, nil
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range blocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			compute(i)
		}(i)
	}
	wg.Wait()

	return outcomes, nil
}

// CompareCorpus runs ComparePairStream and folds every successfully
// compared pair's match/triple counts into a single CorpusTotals, applying
// the P/R/F formula once over the summed counts rather than averaging
// per-pair scores. RunID labels the run for diagnostic/log correlation.
func CompareCorpus(test, gold io.Reader, cfg *config.Config, table embedding.Table) (CorpusTotals, []PairOutcome, uuid.UUID, error) {
	runID := uuid.New()

	outcomes, err := ComparePairStream(test, gold, cfg, table)
	if err != nil {
		return CorpusTotals{}, nil, runID, err
	}

	var totals CorpusTotals
	for _, o := range outcomes {
		if o.Err != nil {
			totals.Skipped++
			continue
		}
		totals.Match += o.Result.Match
		totals.TestTriples += o.Result.TestTriples
		totals.GoldTriples += o.Result.GoldTriples
	}

	return totals, outcomes, runID, nil
}
