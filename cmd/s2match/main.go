// Command s2match compares AMR graph pairs with the S2Match graded
// similarity metric. Config layering follows cmd/qubicdb/main.go's
// four-level precedence (defaults -> YAML -> env -> explicit CLI
// flags via pflag's flags.Changed gating).
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s2match/s2match/pkg/config"
)

func main() {
	var cliOverrides config.CLIOverrides
	var configPath string
	var testPath, goldPath string

	rootCmd := &cobra.Command{
		Use:   "s2match",
		Short: "s2match - graded AMR graph similarity",
		Long:  "Compares Abstract Meaning Representation graph pairs with a graded concept-similarity extension of Smatch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), configPath, testPath, goldPath, &cliOverrides)
		},
		SilenceUsage: true,
	}

	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "f", "", "Path to YAML config file (overrides S2MATCH_CONFIG env)")
	f.StringVar(&testPath, "test", "", "Path to test AMR file (defaults to stdin)")
	f.StringVar(&goldPath, "gold", "", "Path to gold AMR file (required)")

	cliOverrides.Restarts = f.Int("restarts", 0, "Hill-climbing restart count")
	cliOverrides.Seed = f.Int64("seed", 0, "RNG seed (0 = time-derived)")
	cliOverrides.SimilarityFunction = f.String("similarity-function", "", "cosine|euclidean|cityblock")
	cliOverrides.Cutoff = f.Float64("cutoff", 0, "Similarity cutoff in [0,1]")
	cliOverrides.DiffSense = f.Float64("diff-sense", 0, "Discount applied to same-lemma different-sense concepts")
	cliOverrides.MultiTokenStrategy = f.String("multi-token-strategy", "", "split|none")
	cliOverrides.WeightingScheme = f.String("weighting-scheme", "", "standard|concept|structure")
	cliOverrides.VectorsPath = f.String("vectors", "", "Path to whitespace-separated word-vector file")
	cliOverrides.Mode = f.String("mode", "", "corpus|per-pair")
	cliOverrides.ReportPR = f.Bool("report-pr", false, "Include Precision/Recall lines in output")
	cliOverrides.DoNotMarkQuotes = f.Bool("do-not-mark-quotes", false, "Disable quote-marking pass-through to the parser")
	cliOverrides.Workers = f.Int("workers", 0, "Concurrent pair-comparison workers (corpus mode)")
	cliOverrides.Audit = f.Bool("audit", false, "Recompute every accepted search step and diagnose mismatches")
	cliOverrides.DiagnosticPath = f.String("diagnostic-path", "", "Write audit diagnostics to this msgpack file")
	cliOverrides.Verbose = f.Bool("verbose", false, "Verbose logging")

	rootCmd.AddCommand(newServeMCPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyExplicitFlags applies only the CLI flags the user explicitly passed,
// so unset flags never clobber values resolved from YAML or environment.
func applyExplicitFlags(flags *pflag.FlagSet, cfg *config.Config, o *config.CLIOverrides) {
	overrides := config.CLIOverrides{}

	if flags.Changed("restarts") {
		overrides.Restarts = o.Restarts
	}
	if flags.Changed("seed") {
		overrides.Seed = o.Seed
	}
	if flags.Changed("similarity-function") {
		overrides.SimilarityFunction = o.SimilarityFunction
	}
	if flags.Changed("cutoff") {
		overrides.Cutoff = o.Cutoff
	}
	if flags.Changed("diff-sense") {
		overrides.DiffSense = o.DiffSense
	}
	if flags.Changed("multi-token-strategy") {
		overrides.MultiTokenStrategy = o.MultiTokenStrategy
	}
	if flags.Changed("weighting-scheme") {
		overrides.WeightingScheme = o.WeightingScheme
	}
	if flags.Changed("vectors") {
		overrides.VectorsPath = o.VectorsPath
	}
	if flags.Changed("mode") {
		overrides.Mode = o.Mode
	}
	if flags.Changed("report-pr") {
		overrides.ReportPR = o.ReportPR
	}
	if flags.Changed("do-not-mark-quotes") {
		overrides.DoNotMarkQuotes = o.DoNotMarkQuotes
	}
	if flags.Changed("workers") {
		overrides.Workers = o.Workers
	}
	if flags.Changed("audit") {
		overrides.Audit = o.Audit
	}
	if flags.Changed("diagnostic-path") {
		overrides.DiagnosticPath = o.DiagnosticPath
	}
	if flags.Changed("verbose") {
		overrides.Verbose = o.Verbose
	}

	cfg.ApplyCLIOverrides(&overrides)
}
