// Package amrio reads AMR graph records from a textual stream and parses
// the penman-subset notation each record carries into a triple.Graph.
// Follows core.ParseConnString's idiom of hand-rolled scanning with
// descriptive error wrapping rather than a parser-generator. Graph records
// are blank-line-delimited; '#'-prefixed lines are comments.
package amrio

import (
	"bufio"
	"io"
	"strings"
)

// Reader splits an io.Reader into successive AMR blocks, each a
// newline-joined run of non-comment, non-blank lines terminated by a blank
// line or end of input.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r for block-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next block's raw text (comment lines stripped, blank
// lines excluded) and true, or ("", false) at end of input.
func (r *Reader) Next() (string, bool) {
	var lines []string
	sawAny := false

	for r.scanner.Scan() {
		line := r.scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if sawAny {
				return strings.Join(lines, "\n"), true
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines = append(lines, line)
		sawAny = true
	}

	if sawAny {
		return strings.Join(lines, "\n"), true
	}
	return "", false
}

// Err reports any error encountered by the underlying scanner.
func (r *Reader) Err() error {
	return r.scanner.Err()
}
