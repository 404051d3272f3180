package s2match

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiagnosticErrorMarginIsAbsoluteDelta(t *testing.T) {
	d := Diagnostic{IncrementalVal: 5.0, RecomputedVal: 5.0000001}
	if d.ErrorMargin() <= 0 {
		t.Fatal("expected a nonzero error margin for differing values")
	}
}

func TestDiagnosticReportWritesFileWhenPathSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diag.msgpack")
	d := Diagnostic{PoolSize: 3, IncrementalVal: 1, RecomputedVal: 2}

	err := d.Report(path)
	if !errors.Is(err, ErrInternalInconsistency) {
		t.Fatalf("expected error to wrap ErrInternalInconsistency, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected diagnostic file to be written: %v", err)
	}
}

func TestDiagnosticReportWrapsSentinelWithoutPath(t *testing.T) {
	d := Diagnostic{IncrementalVal: 1, RecomputedVal: 2}
	err := d.Report("")
	if !errors.Is(err, ErrInternalInconsistency) {
		t.Fatalf("expected error to wrap ErrInternalInconsistency, got %v", err)
	}
}
