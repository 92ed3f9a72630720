// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"popsum-core/aggregate"
	"popsum-core/sitestat"
	"popsum/internal/clibase"
	"popsum/internal/cliutil"
	"popsum/internal/output"
)

// Options holds all popsum CLI flags and arguments.
type Options struct {
	clibase.Common

	StatFiles []string // positional: per-window statistic tables

	Level  string // window | chromosome | genome
	Matrix string // emit a pairwise matrix for this metric instead of the summary table

	Threads   int
	BatchSize int
}

// NewFlagSet returns the popsum flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "summarize per-window population statistics (pi, dxy, fst, het)")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	nh := clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Level, "level", "window", "aggregation level: window | chromosome | genome [window]")
	fs.StringVar(&opt.Level, "l", "window", "alias of --level")
	fs.StringVar(&opt.Matrix, "matrix", "", "emit the pairwise population matrix for this metric (dxy | fst) instead of the summary table")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for accumulation (0 = sequential) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.BatchSize, "batch-size", 0, "rows per parallel work unit (0 = default) [0]")

	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !*nh

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.StatFiles = files

	// Validation
	if err := opt.Common.Validate(); err != nil {
		return opt, err
	}
	if len(opt.StatFiles) == 0 {
		return opt, errors.New("at least one statistic table (or '-') is required")
	}
	if _, err := aggregate.ParseLevel(opt.Level); err != nil {
		return opt, err
	}
	opt.Level = strings.ToLower(opt.Level)
	if opt.Matrix != "" {
		m, ok := sitestat.NormalizeMetric(opt.Matrix)
		if !ok || (m != sitestat.MetricDxy && m != sitestat.MetricFst) {
			return opt, fmt.Errorf("invalid --matrix %q (dxy | fst)", opt.Matrix)
		}
		opt.Matrix = m
		if opt.Level == "window" {
			return opt, errors.New("--matrix requires --level chromosome or genome")
		}
		if opt.Output == output.FormatJSONL {
			return opt, errors.New("--matrix is a single document; --output text or json")
		}
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.BatchSize < 0 {
		return opt, errors.New("--batch-size must be >= 0")
	}
	return opt, nil
}
