package s2match

import (
	"fmt"
	"log"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Diagnostic is the audit-mode snapshot taken when an incremental
// MOVE/SWAP gain disagrees with a from-scratch recompute beyond
// tolerance: surfaced, never used to silently correct the mapping.
// Follows persistence/codec.go's use of github.com/vmihailenco/msgpack/v5
// for compact internal-structure dumps.
type Diagnostic struct {
	PoolSize       int
	MappingBefore  []int
	MappingAfter   []int
	IncrementalVal float64
	RecomputedVal  float64
}

// ErrorMargin reports the absolute delta between the incremental and
// recomputed scores, compared against the hill-climb search's audit
// tolerance.
func (d Diagnostic) ErrorMargin() float64 {
	delta := d.IncrementalVal - d.RecomputedVal
	if delta < 0 {
		delta = -delta
	}
	return delta
}

// Report logs d and, if path is non-empty, msgpack-encodes it there. It
// never mutates the mapping that produced d — audit mode observes, it
// does not correct. The returned error always wraps
// ErrInternalInconsistency, even when there is no diagnostic path to write
// to, so callers can identify an audit finding with errors.Is.
func (d Diagnostic) Report(path string) error {
	err := fmt.Errorf("%w: incremental=%v recomputed=%v delta=%v pool_size=%d",
		ErrInternalInconsistency, d.IncrementalVal, d.RecomputedVal, d.ErrorMargin(), d.PoolSize)
	log.Print(err)

	if path == "" {
		return err
	}

	data, merr := msgpack.Marshal(d)
	if merr != nil {
		return fmt.Errorf("%w; s2match: encoding diagnostic: %w", err, merr)
	}
	if werr := os.WriteFile(path, data, 0o644); werr != nil {
		return fmt.Errorf("%w; s2match: writing diagnostic to %s: %w", err, path, werr)
	}
	return err
}
