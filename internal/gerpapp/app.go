// internal/gerpapp/app.go
package gerpapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"popsum-core/gerp"
	"popsum/internal/applog"
	"popsum/internal/gerpcli"
	"popsum/internal/version"
	"popsum/internal/writers"
)

// RunContext executes the gerpmerge pipeline: load one window of genotypes,
// stream the conservation table through the join, write enriched rows.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := gerpcli.NewFlagSet("gerpmerge")
	fs.SetOutput(io.Discard)

	opts, err := gerpcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "gerpmerge version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	log := applog.New(stderr, opts.Quiet)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	res, err := gerp.Merge(ctx, opts.GerpFile, opts.VCFFile, opts.Region())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log.Info("merged",
		"contig", opts.Contig,
		"sites", len(res.Sites),
		"samples", len(res.Samples),
		"unmatched", res.Unmatched,
	)

	in, errCh := writers.StartSiteWriter(outw, res.Samples, opts.Output, opts.Header, 0)
	for _, sc := range res.Sites {
		in <- sc
	}
	close(in)
	if werr := <-errCh; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}
