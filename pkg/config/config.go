// Package config implements the four-level layered configuration s2match
// loads before comparing a single pair or a corpus: built-in defaults,
// overlaid by an optional YAML file, overlaid by S2MATCH_* environment
// variables, overlaid last by explicit CLI flags. Shaped after
// core.Config/DefaultConfig/ConfigFromFile/ConfigFromEnv/LoadConfig/
// Validate/CLIOverrides, generalized from a brain server's settings to
// s2match's own enumerated knobs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigValue is returned when Validate rejects a field outside
// its documented domain, whether an unrecognized enum value or a numeric
// field outside its allowed range.
var ErrUnknownConfigValue = errors.New("config: unknown configuration value")

// SearchConfig groups hill-climbing restart and RNG settings, including
// the explicit-seed recommendation for reproducible runs.
type SearchConfig struct {
	Restarts int   `yaml:"restarts"`
	Seed     int64 `yaml:"seed"`
}

// SimilarityConfig groups the graded concept-similarity kernel's policy
// knobs.
type SimilarityConfig struct {
	Function            string  `yaml:"similarityFunction"`
	Cutoff              float64 `yaml:"cutoff"`
	DiffSense           float64 `yaml:"diffSense"`
	MultiTokenStrategy  string  `yaml:"multiTokenConceptStrategy"`
}

// WeightingConfig groups the instance-concept weighting scheme.
type WeightingConfig struct {
	Scheme string `yaml:"scheme"`
}

// VectorsConfig groups the embedding table location.
type VectorsConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig groups the reporting mode.
type OutputConfig struct {
	Mode     string `yaml:"mode"`
	ReportPR bool   `yaml:"reportPR"`
}

// ParserConfig groups AMR-parser pass-through flags.
type ParserConfig struct {
	DoNotMarkQuotes bool `yaml:"doNotMarkQuotes"`
}

// RuntimeConfig groups ambient execution controls that sit outside the
// core matching algorithm: concurrency, the audit flag, and diagnostic
// output.
type RuntimeConfig struct {
	Workers        int    `yaml:"workers"`
	Audit          bool   `yaml:"audit"`
	DiagnosticPath string `yaml:"diagnosticPath"`
	Verbose        bool   `yaml:"verbose"`
}

// Config is the root configuration object for an s2match run.
type Config struct {
	Search     SearchConfig     `yaml:"search"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Weighting  WeightingConfig  `yaml:"weighting"`
	Vectors    VectorsConfig    `yaml:"vectors"`
	Output     OutputConfig     `yaml:"output"`
	Parser     ParserConfig     `yaml:"parser"`
	Runtime    RuntimeConfig    `yaml:"runtime"`
}

// DefaultConfig returns a Config populated with s2match's documented
// defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Restarts: 4,
			Seed:     0,
		},
		Similarity: SimilarityConfig{
			Function:           "cosine",
			Cutoff:             0.5,
			DiffSense:          0.5,
			MultiTokenStrategy: "split",
		},
		Weighting: WeightingConfig{
			Scheme: "standard",
		},
		Vectors: VectorsConfig{
			Path: "",
		},
		Output: OutputConfig{
			Mode:     "corpus",
			ReportPR: false,
		},
		Parser: ParserConfig{
			DoNotMarkQuotes: false,
		},
		Runtime: RuntimeConfig{
			Workers:        1,
			Audit:          false,
			DiagnosticPath: "",
			Verbose:        false,
		},
	}
}

// ConfigFromFile reads a YAML configuration file and merges it on top of
// the built-in defaults. Fields absent from the file retain their
// defaults.
func ConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv applies S2MATCH_* environment variable overrides to cfg.
// If cfg is nil a new default Config is created first.
//
//	S2MATCH_RESTARTS            → Search.Restarts
//	S2MATCH_SEED                → Search.Seed
//	S2MATCH_SIMILARITY_FUNCTION → Similarity.Function
//	S2MATCH_CUTOFF              → Similarity.Cutoff
//	S2MATCH_DIFFSENSE           → Similarity.DiffSense
//	S2MATCH_MULTI_TOKEN_STRATEGY→ Similarity.MultiTokenStrategy
//	S2MATCH_WEIGHTING_SCHEME    → Weighting.Scheme
//	S2MATCH_VECTORS_PATH        → Vectors.Path
//	S2MATCH_MODE                → Output.Mode
//	S2MATCH_REPORT_PR           → Output.ReportPR        ("true"/"false")
//	S2MATCH_DO_NOT_MARK_QUOTES  → Parser.DoNotMarkQuotes  ("true"/"false")
//	S2MATCH_WORKERS             → Runtime.Workers
//	S2MATCH_AUDIT               → Runtime.Audit           ("true"/"false")
//	S2MATCH_DIAGNOSTIC_PATH     → Runtime.DiagnosticPath
//	S2MATCH_VERBOSE             → Runtime.Verbose         ("true"/"false")
func ConfigFromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	setEnvInt("S2MATCH_RESTARTS", &cfg.Search.Restarts)
	setEnvInt64("S2MATCH_SEED", &cfg.Search.Seed)

	setEnvStr("S2MATCH_SIMILARITY_FUNCTION", &cfg.Similarity.Function)
	setEnvFloat("S2MATCH_CUTOFF", &cfg.Similarity.Cutoff)
	setEnvFloat("S2MATCH_DIFFSENSE", &cfg.Similarity.DiffSense)
	setEnvStr("S2MATCH_MULTI_TOKEN_STRATEGY", &cfg.Similarity.MultiTokenStrategy)

	setEnvStr("S2MATCH_WEIGHTING_SCHEME", &cfg.Weighting.Scheme)

	setEnvStr("S2MATCH_VECTORS_PATH", &cfg.Vectors.Path)

	setEnvStr("S2MATCH_MODE", &cfg.Output.Mode)
	setEnvBool("S2MATCH_REPORT_PR", &cfg.Output.ReportPR)

	setEnvBool("S2MATCH_DO_NOT_MARK_QUOTES", &cfg.Parser.DoNotMarkQuotes)

	setEnvInt("S2MATCH_WORKERS", &cfg.Runtime.Workers)
	setEnvBool("S2MATCH_AUDIT", &cfg.Runtime.Audit)
	setEnvStr("S2MATCH_DIAGNOSTIC_PATH", &cfg.Runtime.DiagnosticPath)
	setEnvBool("S2MATCH_VERBOSE", &cfg.Runtime.Verbose)

	return cfg
}

// LoadConfig implements the configuration hierarchy's first three levels:
// defaults, optional YAML overlay, then environment overrides. The caller
// applies CLI overrides afterward via ApplyCLIOverrides.
func LoadConfig(configPath string) (*Config, error) {
	var cfg *Config
	if configPath != "" {
		var err error
		cfg, err = ConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}
	return ConfigFromEnv(cfg), nil
}

func setEnvStr(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func setEnvBool(key string, target *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}

func setEnvInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func setEnvInt64(key string, target *int64) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*target = n
		}
	}
}

func setEnvFloat(key string, target *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}

// Validate enforces the enumerated domains for every policy field; an
// unrecognized value is a hard configuration error, refused before any
// pair is processed.
func (c *Config) Validate() error {
	c.Similarity.Function = strings.ToLower(strings.TrimSpace(c.Similarity.Function))
	c.Similarity.MultiTokenStrategy = strings.ToLower(strings.TrimSpace(c.Similarity.MultiTokenStrategy))
	c.Weighting.Scheme = strings.ToLower(strings.TrimSpace(c.Weighting.Scheme))
	c.Output.Mode = strings.ToLower(strings.TrimSpace(c.Output.Mode))

	switch c.Similarity.Function {
	case "cosine", "euclidean", "cityblock":
	default:
		return fmt.Errorf("%w: similarity.function %q (want cosine|euclidean|cityblock)", ErrUnknownConfigValue, c.Similarity.Function)
	}
	if c.Similarity.Cutoff < 0 || c.Similarity.Cutoff > 1 {
		return fmt.Errorf("%w: similarity.cutoff must be in [0,1], got %v", ErrUnknownConfigValue, c.Similarity.Cutoff)
	}
	if c.Similarity.DiffSense < 0 || c.Similarity.DiffSense > 1 {
		return fmt.Errorf("%w: similarity.diffSense must be in [0,1], got %v", ErrUnknownConfigValue, c.Similarity.DiffSense)
	}
	switch c.Similarity.MultiTokenStrategy {
	case "split", "none":
	default:
		return fmt.Errorf("%w: similarity.multiTokenConceptStrategy %q (want split|none)", ErrUnknownConfigValue, c.Similarity.MultiTokenStrategy)
	}

	switch c.Weighting.Scheme {
	case "standard", "concept", "structure":
	default:
		return fmt.Errorf("%w: weighting.scheme %q (want standard|concept|structure)", ErrUnknownConfigValue, c.Weighting.Scheme)
	}

	switch c.Output.Mode {
	case "corpus", "per-pair":
	default:
		return fmt.Errorf("%w: output.mode %q (want corpus|per-pair)", ErrUnknownConfigValue, c.Output.Mode)
	}

	if c.Search.Restarts < 0 {
		return fmt.Errorf("%w: search.restarts must be >= 0, got %d", ErrUnknownConfigValue, c.Search.Restarts)
	}
	if c.Search.Restarts > 1000 {
		return fmt.Errorf("%w: search.restarts=%d is implausibly large", ErrUnknownConfigValue, c.Search.Restarts)
	}

	if c.Runtime.Workers < 0 {
		return fmt.Errorf("%w: runtime.workers must be >= 0, got %d", ErrUnknownConfigValue, c.Runtime.Workers)
	}

	return nil
}
