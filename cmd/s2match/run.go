package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/s2match/s2match/pkg/config"
	"github.com/s2match/s2match/pkg/embedding"
	"github.com/s2match/s2match/pkg/s2match"
)

// run implements the comparison pipeline after CLI flags are parsed:
// resolve config, load the embedding table, read the AMR stream(s), compare,
// and format output. It exits with status 1 for config/argument errors and
// status 2 for I/O errors reading either input stream.
func run(flags *pflag.FlagSet, configPath, testPath, goldPath string, cliOverrides *config.CLIOverrides) error {
	if configPath == "" {
		configPath = os.Getenv("S2MATCH_CONFIG")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	applyExplicitFlags(flags, cfg, cliOverrides)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if goldPath == "" {
		fmt.Fprintln(os.Stderr, "--gold is required")
		os.Exit(1)
	}

	table, err := embedding.Load(cfg.Vectors.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load embedding table: %v\n", err)
		os.Exit(2)
	}
	if cfg.Runtime.Verbose {
		log.Printf("s2match: loaded %d vectors (dim=%d)", table.Len(), table.Dim())
	}

	testStream, closeTest, err := openInput(testPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open test input: %v\n", err)
		os.Exit(2)
	}
	defer closeTest()

	goldStream, closeGold, err := openInput(goldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open gold input: %v\n", err)
		os.Exit(2)
	}
	defer closeGold()

	switch cfg.Output.Mode {
	case "per-pair":
		return runPair(testStream, goldStream, cfg, table)
	default:
		return runCorpus(testStream, goldStream, cfg, table)
	}
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runPair(testStream, goldStream io.Reader, cfg *config.Config, table embedding.Table) error {
	outcomes, err := s2match.ComparePairStream(testStream, goldStream, cfg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpus comparison failed: %v\n", err)
		os.Exit(2)
	}
	for _, o := range outcomes {
		fmt.Println(s2match.FormatPairResult(o.Result, o.Err, cfg.Output.ReportPR))
	}
	return nil
}

func runCorpus(testStream, goldStream io.Reader, cfg *config.Config, table embedding.Table) error {
	totals, outcomes, runID, err := s2match.CompareCorpus(testStream, goldStream, cfg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpus comparison failed: %v\n", err)
		os.Exit(2)
	}
	if cfg.Runtime.Verbose {
		log.Printf("s2match: run %s compared %d pairs (%d skipped)", runID, len(outcomes), totals.Skipped)
	}
	fmt.Println(s2match.FormatCorpusResult(totals, cfg.Output.ReportPR))
	return nil
}
