package s2match

import "errors"

var (
	// ErrMalformedGraph is returned (and converted to a per-pair
	// NA_WRONG_AMR result) when a block fails to parse.
	ErrMalformedGraph = errors.New("s2match: malformed AMR graph")

	// ErrStreamLengthMismatch is logged (not returned) when the two input
	// streams of a corpus comparison run out at different block counts; the
	// read stops there and the pairs already read are kept.
	ErrStreamLengthMismatch = errors.New("s2match: AMR streams have different lengths")

	// ErrInternalInconsistency is surfaced (never auto-corrected) when
	// audit mode detects a MOVE/SWAP incremental gain that disagrees with
	// a from-scratch recompute beyond the hill-climb search's audit
	// tolerance.
	ErrInternalInconsistency = errors.New("s2match: incremental gain disagrees with recomputed score")
)
