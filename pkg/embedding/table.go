// Package embedding loads word-vector tables from whitespace-separated text
// files (GloVe's on-disk format: "word v1 v2 ... vn" per line) and exposes
// the three similarity functions s2match's kernel can select between.
package embedding

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Table is a read-only word → vector lookup, shared across every pair
// comparison in a run.
type Table struct {
	vectors map[string][]float64
	dim     int
}

// Load reads a GloVe-style vector file. An empty path, or one that can't be
// opened (missing file, permission error, and so on), returns an empty
// Table rather than an error: a missing or unreadable embedding file means
// proceed with an empty vocabulary, not fail the run.
func Load(path string) (Table, error) {
	if path == "" {
		return Table{vectors: map[string][]float64{}}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("embedding: %s unreadable (%v), proceeding with empty vocabulary", path, err)
		return Table{vectors: map[string][]float64{}}, nil
	}
	defer f.Close()

	vectors := make(map[string][]float64)
	dim := 0

	scanner := bufio.NewScanner(f)
	// GloVe lines can be long for high-dimensional vectors; grow past the
	// default 64KiB token buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		word := fields[0]
		vec := make([]float64, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return Table{}, fmt.Errorf("embedding: %s:%d: parsing coordinate %q: %w", path, lineNo, tok, err)
			}
			vec = append(vec, v)
		}
		if dim == 0 {
			dim = len(vec)
		}
		vectors[word] = vec
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("embedding: reading %s: %w", path, err)
	}

	return Table{vectors: vectors, dim: dim}, nil
}

// Lookup returns the vector for word and whether it was present.
func (t Table) Lookup(word string) ([]float64, bool) {
	v, ok := t.vectors[word]
	return v, ok
}

// Len reports the vocabulary size.
func (t Table) Len() int {
	return len(t.vectors)
}

// Dim reports the vector dimensionality (0 for an empty table).
func (t Table) Dim() int {
	return t.dim
}

// NewTableForTest builds a Table directly from an in-memory vocabulary,
// for packages that need a fixture embedding table without writing one to
// disk and calling Load.
func NewTableForTest(vectors map[string][]float64) Table {
	dim := 0
	for _, v := range vectors {
		dim = len(v)
		break
	}
	if vectors == nil {
		vectors = map[string][]float64{}
	}
	return Table{vectors: vectors, dim: dim}
}
