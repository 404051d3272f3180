package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Search.Restarts != 4 {
		t.Fatalf("expected default restarts 4, got %d", cfg.Search.Restarts)
	}
	if cfg.Similarity.Function != "cosine" {
		t.Fatalf("expected default similarity function cosine, got %q", cfg.Similarity.Function)
	}
	if cfg.Similarity.Cutoff != 0.5 || cfg.Similarity.DiffSense != 0.5 {
		t.Fatalf("expected default cutoff/diffSense 0.5, got %v/%v", cfg.Similarity.Cutoff, cfg.Similarity.DiffSense)
	}
	if cfg.Weighting.Scheme != "standard" {
		t.Fatalf("expected default weighting scheme standard, got %q", cfg.Weighting.Scheme)
	}
	if cfg.Similarity.MultiTokenStrategy != "split" {
		t.Fatalf("expected default multi-token strategy split, got %q", cfg.Similarity.MultiTokenStrategy)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigFromFileOverlaysOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s2match.yaml")
	contents := "similarity:\n  similarityFunction: euclidean\n  cutoff: 0.7\nweighting:\n  scheme: concept\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := ConfigFromFile(path)
	if err != nil {
		t.Fatalf("ConfigFromFile: %v", err)
	}
	if cfg.Similarity.Function != "euclidean" {
		t.Fatalf("expected overlay to set similarity function, got %q", cfg.Similarity.Function)
	}
	if cfg.Similarity.Cutoff != 0.7 {
		t.Fatalf("expected overlay to set cutoff, got %v", cfg.Similarity.Cutoff)
	}
	if cfg.Weighting.Scheme != "concept" {
		t.Fatalf("expected overlay to set weighting scheme, got %q", cfg.Weighting.Scheme)
	}
	// Fields absent from the file retain their defaults.
	if cfg.Search.Restarts != 4 {
		t.Fatalf("expected untouched field to retain default, got %d", cfg.Search.Restarts)
	}
}

func TestConfigFromFileMissingFileErrors(t *testing.T) {
	if _, err := ConfigFromFile("/nonexistent/path/s2match.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfigFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("S2MATCH_RESTARTS", "10")
	t.Setenv("S2MATCH_CUTOFF", "0.25")
	t.Setenv("S2MATCH_REPORT_PR", "true")
	t.Setenv("S2MATCH_MODE", "per-pair")

	cfg := ConfigFromEnv(DefaultConfig())
	if cfg.Search.Restarts != 10 {
		t.Fatalf("expected env override restarts=10, got %d", cfg.Search.Restarts)
	}
	if cfg.Similarity.Cutoff != 0.25 {
		t.Fatalf("expected env override cutoff=0.25, got %v", cfg.Similarity.Cutoff)
	}
	if !cfg.Output.ReportPR {
		t.Fatal("expected env override reportPR=true")
	}
	if cfg.Output.Mode != "per-pair" {
		t.Fatalf("expected env override mode=per-pair, got %q", cfg.Output.Mode)
	}
}

func TestConfigFromEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("S2MATCH_RESTARTS", "not-a-number")
	cfg := ConfigFromEnv(DefaultConfig())
	if cfg.Search.Restarts != 4 {
		t.Fatalf("expected unparsable env value to leave default in place, got %d", cfg.Search.Restarts)
	}
}

func TestLoadConfigLayersDefaultsFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s2match.yaml")
	if err := os.WriteFile(path, []byte("search:\n  restarts: 8\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	t.Setenv("S2MATCH_RESTARTS", "20")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Search.Restarts != 20 {
		t.Fatalf("expected env to win over file, got %d", cfg.Search.Restarts)
	}
}

func TestValidateRejectsUnknownSimilarityFunction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Similarity.Function = "manhattan"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown similarity function")
	}
}

func TestValidateRejectsUnknownWeightingScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weighting.Scheme = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown weighting scheme")
	}
}

func TestValidateRejectsUnknownMultiTokenStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Similarity.MultiTokenStrategy = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown multi-token strategy")
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Mode = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown output mode")
	}
}

func TestValidateNormalizesCaseBeforeCheckingDomain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Similarity.Function = "  Cosine  "
	cfg.Weighting.Scheme = "STANDARD"
	cfg.Output.Mode = "Corpus"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected differently-cased known values to validate, got %v", err)
	}
	if cfg.Similarity.Function != "cosine" {
		t.Fatalf("expected similarity.function normalized to %q, got %q", "cosine", cfg.Similarity.Function)
	}
	if cfg.Weighting.Scheme != "standard" {
		t.Fatalf("expected weighting.scheme normalized to %q, got %q", "standard", cfg.Weighting.Scheme)
	}
	if cfg.Output.Mode != "corpus" {
		t.Fatalf("expected output.mode normalized to %q, got %q", "corpus", cfg.Output.Mode)
	}
}

func TestValidateWrapsErrUnknownConfigValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Mode = "bogus"
	err := cfg.Validate()
	if !errors.Is(err, ErrUnknownConfigValue) {
		t.Fatalf("expected error to wrap ErrUnknownConfigValue, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeCutoff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Similarity.Cutoff = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range cutoff")
	}
}

func TestValidateRejectsNegativeRestarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Restarts = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative restarts")
	}
}

func TestApplyCLIOverridesOnlyTouchesSetFields(t *testing.T) {
	cfg := DefaultConfig()
	restarts := 99
	cfg.ApplyCLIOverrides(&CLIOverrides{Restarts: &restarts})

	if cfg.Search.Restarts != 99 {
		t.Fatalf("expected override to set restarts=99, got %d", cfg.Search.Restarts)
	}
	if cfg.Similarity.Function != "cosine" {
		t.Fatalf("expected untouched field to retain default, got %q", cfg.Similarity.Function)
	}
}

func TestApplyCLIOverridesNilIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyCLIOverrides(nil)
	if cfg.Search.Restarts != 4 {
		t.Fatalf("expected nil overrides to be a no-op, got %d", cfg.Search.Restarts)
	}
}
