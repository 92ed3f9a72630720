// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"popsum-core/aggregate"
	"popsum-core/matrix"
	"popsum/internal/applog"
	"popsum/internal/cli"
	"popsum/internal/grouping"
	"popsum/internal/output"
	"popsum/internal/pipeline"
	"popsum/internal/version"
	"popsum/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("popsum")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "popsum version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	log := applog.New(stderr, opts.Quiet)

	var groups *grouping.Config
	if opts.GroupsFile != "" {
		groups, err = grouping.Load(opts.GroupsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sums, err := pipeline.AccumulateFiles(ctx, pipeline.Config{
		Threads:   opts.Threads,
		BatchSize: opts.BatchSize,
	}, opts.StatFiles)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Configuration errors fail before anything is written: no partial
	// tables ship.
	if groups != nil {
		for k := range sums {
			if err := groups.CheckPopulation(k.Pair.A); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 2
			}
			if err := groups.CheckPopulation(k.Pair.B); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 2
			}
		}
	}

	level, _ := aggregate.ParseLevel(opts.Level)
	rows := aggregate.Aggregate(sums, level)
	log.Info("aggregated", "groups", len(sums), "rows", len(rows), "level", opts.Level)

	if opts.Matrix != "" {
		m, err := matrix.Build(rows, opts.Matrix)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		if opts.Output == output.FormatJSON {
			err = output.WriteMatrixJSON(outw, m)
		} else {
			err = output.WriteMatrix(outw, m, opts.Header)
		}
		if writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return flushExit(outw, stderr, 0)
	}

	inCh, writeErr := writers.StartSummaryWriter(outw, opts.Output, opts.Header, 0)
	for _, r := range rows {
		inCh <- r
	}
	close(inCh)
	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
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
