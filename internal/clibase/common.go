// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"

	"popsum/internal/output"
	"popsum/internal/version"
)

// Common holds CLI fields shared by popsum, vcfstats and gerpmerge.
type Common struct {
	// Output
	Output string // text|json|jsonl
	Header bool   // true unless --no-header

	// Grouping
	GroupsFile string

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool the caller uses to set Common.Header = !noHeader after
// parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	fs.StringVar(&c.GroupsFile, "groups", "", "YAML populations file (declares population → sample lists)")
	nh := fs.Bool("no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	return nh
}

// Validate checks the shared fields.
func (c *Common) Validate() error {
	if !output.ValidFormat(c.Output) {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name, oneLiner string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Version: %s

Usage of %s:
`, name, oneLiner, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
