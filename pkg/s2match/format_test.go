package s2match

import (
	"strings"
	"testing"

	"github.com/s2match/s2match/pkg/triple"
)

func TestFormatPairResultMalformedPairIsNAWrongAMR(t *testing.T) {
	got := FormatPairResult(Result{}, ErrMalformedGraph, false)
	if got != "Smatch score F1: NA_WRONG_AMR" {
		t.Fatalf("unexpected malformed-pair format: %q", got)
	}
}

func TestFormatPairResultPlain(t *testing.T) {
	got := FormatPairResult(Result{F1: 0.857}, nil, false)
	if got != "Smatch score F1 0.857" {
		t.Fatalf("unexpected pair format: %q", got)
	}
}

func TestFormatPairResultWithPrecisionRecall(t *testing.T) {
	got := FormatPairResult(Result{F1: 1, Precision: 1, Recall: 1}, nil, true)
	if !strings.Contains(got, "Precision: 1.000") || !strings.Contains(got, "Recall: 1.000") {
		t.Fatalf("expected precision/recall lines, got %q", got)
	}
	if !strings.HasSuffix(got, "Smatch score F1 1.000") {
		t.Fatalf("expected F1 line last, got %q", got)
	}
}

func TestFormatCorpusResult(t *testing.T) {
	got := FormatCorpusResult(CorpusTotals{Match: 4, TestTriples: 6, GoldTriples: 6}, false)
	if !strings.HasPrefix(got, "Document F-score:") {
		t.Fatalf("unexpected corpus format: %q", got)
	}
}

func TestFormatAlignmentShowsMappedAndUnmappedNodes(t *testing.T) {
	g1 := triple.Graph{Instances: []triple.Instance{{Node: "a0", Concept: "hit-01"}, {Node: "a1", Concept: "boy"}}}
	g2 := triple.Graph{Instances: []triple.Instance{{Node: "b0", Concept: "hit-01"}}}

	got := FormatAlignment([]int{0, -1}, g1, g2)
	if !strings.Contains(got, "a0(hit-01) -> b0(hit-01)") {
		t.Fatalf("expected mapped node line, got %q", got)
	}
	if !strings.Contains(got, "a1(boy) -> (unmapped)") {
		t.Fatalf("expected unmapped node line, got %q", got)
	}
}
