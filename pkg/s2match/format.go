package s2match

import (
	"fmt"
	"strings"

	"github.com/s2match/s2match/pkg/triple"
)

// FormatPairResult renders a single pair's score as "Smatch score F1
// <p.ppp>", with optional Precision/Recall lines when reportPR is set. A
// malformed pair renders as NA_WRONG_AMR regardless of reportPR.
func FormatPairResult(r Result, err error, reportPR bool) string {
	if err != nil {
		return "Smatch score F1: NA_WRONG_AMR"
	}

	var sb strings.Builder
	if reportPR {
		fmt.Fprintf(&sb, "Precision: %.3f\n", r.Precision)
		fmt.Fprintf(&sb, "Recall: %.3f\n", r.Recall)
	}
	fmt.Fprintf(&sb, "Smatch score F1 %.3f", r.F1)
	return sb.String()
}

// FormatCorpusResult renders a corpus's aggregated score as "Document
// F-score: <p.ppp>, <p.pppp>" — the same F value at two decimal
// precisions, with optional Precision/Recall lines.
func FormatCorpusResult(totals CorpusTotals, reportPR bool) string {
	p, r, f := ComputeF(totals.Match, totals.TestTriples, totals.GoldTriples)

	var sb strings.Builder
	if reportPR {
		fmt.Fprintf(&sb, "Precision: %.3f\n", p)
		fmt.Fprintf(&sb, "Recall: %.3f\n", r)
	}
	fmt.Fprintf(&sb, "Document F-score: %.3f, %.4f", f, f)
	return sb.String()
}

// FormatAlignment renders a mapping as a human-readable line per mapped
// node, restoring s2match.py's print_alignment debug helper. mapping
// indexes into g2's renamed instances; g1/g2 should already be Rename'd
// with the prefixes the mapping was computed against.
func FormatAlignment(mapping []int, g1, g2 triple.Graph) string {
	var sb strings.Builder
	for i, j := range mapping {
		if i >= len(g1.Instances) {
			break
		}
		if j == -1 {
			fmt.Fprintf(&sb, "%s(%s) -> (unmapped)\n", g1.Instances[i].Node, g1.Instances[i].Concept)
			continue
		}
		if j >= len(g2.Instances) {
			continue
		}
		fmt.Fprintf(&sb, "%s(%s) -> %s(%s)\n", g1.Instances[i].Node, g1.Instances[i].Concept, g2.Instances[j].Node, g2.Instances[j].Concept)
	}
	return strings.TrimRight(sb.String(), "\n")
}
