// internal/gerpcli/options.go
package gerpcli

import (
	"errors"
	"flag"

	"popsum-core/vcf"
	"popsum/internal/clibase"
)

// Options holds all gerpmerge CLI flags.
type Options struct {
	clibase.Common

	GerpFile string
	VCFFile  string

	Contig string
	Start  int64
	End    int64
}

// NewFlagSet returns the gerpmerge flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "add per-sample derived-allele counts to a GERP conservation table")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	nh := clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.GerpFile, "gerp", "", "GERP table (chrom, pos, ancestral_state, score) [*]")
	fs.StringVar(&opt.GerpFile, "g", "", "alias of --gerp")
	fs.StringVar(&opt.VCFFile, "vcf", "", "VCF to join on chromosome+position [*]")
	fs.StringVar(&opt.Contig, "contig", "", "contig/chromosome to process [*]")
	fs.StringVar(&opt.Contig, "c", "", "alias of --contig")
	fs.Int64Var(&opt.Start, "start", 0, "window start (1-based) [*]")
	fs.Int64Var(&opt.Start, "s", 0, "alias of --start")
	fs.Int64Var(&opt.End, "end", 0, "window end (inclusive) [*]")
	fs.Int64Var(&opt.End, "e", 0, "alias of --end")

	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
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

	// Validation. The merge holds one window of genotypes in memory, so
	// the window bounds are mandatory.
	if err := opt.Common.Validate(); err != nil {
		return opt, err
	}
	switch {
	case opt.GerpFile == "":
		return opt, errors.New("--gerp is required")
	case opt.VCFFile == "":
		return opt, errors.New("--vcf is required")
	case opt.Contig == "":
		return opt, errors.New("--contig is required")
	case opt.Start <= 0:
		return opt, errors.New("--start must be >= 1")
	case opt.End < opt.Start:
		return opt, errors.New("--end must be >= --start")
	}
	return opt, nil
}

// Region returns the mandatory merge window.
func (o Options) Region() *vcf.Region {
	return &vcf.Region{Chrom: o.Contig, Start: o.Start, End: o.End}
}
