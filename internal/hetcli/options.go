// internal/hetcli/options.go
package hetcli

import (
	"errors"
	"flag"
	"fmt"

	"popsum-core/vcf"
	"popsum/internal/clibase"
	"popsum/internal/cliutil"
)

// Options holds all vcfstats CLI flags and arguments.
type Options struct {
	clibase.Common

	VCFFile string // positional: variant-call file (or '-')

	Contig string
	Start  int64
	End    int64

	Summary bool
}

// NewFlagSet returns the vcfstats flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "per-sample heterozygosity and call rate from a VCF")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	nh := clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Contig, "contig", "", "restrict to one contig/chromosome")
	fs.Int64Var(&opt.Start, "start", 0, "window start (1-based, needs --contig)")
	fs.Int64Var(&opt.End, "end", 0, "window end (inclusive, needs --contig)")
	fs.BoolVar(&opt.Summary, "summary", false, "log mean/median/stddev of heterozygosity and call rate [false]")

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

	// Validation
	if err := opt.Common.Validate(); err != nil {
		return opt, err
	}
	switch len(posArgs) {
	case 0:
		return opt, errors.New("a VCF path (or '-') is required")
	case 1:
		opt.VCFFile = posArgs[0]
	default:
		return opt, fmt.Errorf("expected one VCF path, got %d", len(posArgs))
	}
	if (opt.Start != 0 || opt.End != 0) && opt.Contig == "" {
		return opt, errors.New("--start/--end need --contig")
	}
	if opt.Contig != "" && opt.End != 0 && opt.End < opt.Start {
		return opt, errors.New("--end before --start")
	}
	return opt, nil
}

// Region returns the requested restriction, or nil for the whole input.
func (o Options) Region() *vcf.Region {
	if o.Contig == "" {
		return nil
	}
	start, end := o.Start, o.End
	if start <= 0 {
		start = 1
	}
	if end <= 0 {
		end = int64(^uint64(0) >> 1)
	}
	return &vcf.Region{Chrom: o.Contig, Start: start, End: end}
}
