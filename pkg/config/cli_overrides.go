package config

// CLIOverrides carries optional values set via command-line flags. Pointer
// fields are nil when the flag was not explicitly provided, letting the
// caller distinguish "not set" from the zero value (same shape as
// core.CLIOverrides/ApplyCLIOverrides, which gates each field the same way
// on cobra's flags.Changed()).
type CLIOverrides struct {
	Restarts            *int
	Seed                *int64
	SimilarityFunction  *string
	Cutoff              *float64
	DiffSense           *float64
	MultiTokenStrategy  *string
	WeightingScheme     *string
	VectorsPath         *string
	Mode                *string
	ReportPR            *bool
	DoNotMarkQuotes     *bool
	Workers             *int
	Audit               *bool
	DiagnosticPath      *string
	Verbose             *bool
}

// ApplyCLIOverrides patches c with any explicitly-set CLI flags. Only
// non-nil fields in o are applied, preserving whatever the defaults/file/
// env layers already resolved.
func (c *Config) ApplyCLIOverrides(o *CLIOverrides) {
	if o == nil {
		return
	}
	if o.Restarts != nil {
		c.Search.Restarts = *o.Restarts
	}
	if o.Seed != nil {
		c.Search.Seed = *o.Seed
	}
	if o.SimilarityFunction != nil {
		c.Similarity.Function = *o.SimilarityFunction
	}
	if o.Cutoff != nil {
		c.Similarity.Cutoff = *o.Cutoff
	}
	if o.DiffSense != nil {
		c.Similarity.DiffSense = *o.DiffSense
	}
	if o.MultiTokenStrategy != nil {
		c.Similarity.MultiTokenStrategy = *o.MultiTokenStrategy
	}
	if o.WeightingScheme != nil {
		c.Weighting.Scheme = *o.WeightingScheme
	}
	if o.VectorsPath != nil {
		c.Vectors.Path = *o.VectorsPath
	}
	if o.Mode != nil {
		c.Output.Mode = *o.Mode
	}
	if o.ReportPR != nil {
		c.Output.ReportPR = *o.ReportPR
	}
	if o.DoNotMarkQuotes != nil {
		c.Parser.DoNotMarkQuotes = *o.DoNotMarkQuotes
	}
	if o.Workers != nil {
		c.Runtime.Workers = *o.Workers
	}
	if o.Audit != nil {
		c.Runtime.Audit = *o.Audit
	}
	if o.DiagnosticPath != nil {
		c.Runtime.DiagnosticPath = *o.DiagnosticPath
	}
	if o.Verbose != nil {
		c.Runtime.Verbose = *o.Verbose
	}
}
