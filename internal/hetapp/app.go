// internal/hetapp/app.go
package hetapp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"popsum-core/genotype"
	"popsum/internal/applog"
	"popsum/internal/grouping"
	"popsum/internal/hetcli"
	"popsum/internal/jsonlutil"
	"popsum/internal/output"
	"popsum/internal/version"
	"popsum/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := hetcli.NewFlagSet("vcfstats")
	fs.SetOutput(io.Discard)

	opts, err := hetcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "vcfstats version %s\n", version.Version)
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

	samples, perSample, err := genotype.Extract(ctx, opts.VCFFile, opts.Region())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if groups != nil {
		if err := groups.CheckSamples(samples); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	rows := make([]output.SampleRow, 0, len(samples))
	for i, s := range samples {
		r := output.SampleRow{Sample: s, Stats: perSample[i]}
		if groups != nil {
			r.Population = groups.PopulationOf(s)
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Sample < rows[j].Sample })

	if opts.Summary {
		logSummary(log, rows)
	}

	switch opts.Output {
	case output.FormatJSON:
		err = output.WriteSamplesJSON(outw, rows)
	case output.FormatJSONL:
		pipe, done := jsonlutil.Start(outw, 0,
			func(enc *json.Encoder, r output.SampleRow) error {
				return output.EncodeSampleLine(enc, r)
			}, writers.IsBrokenPipe)
		for _, r := range rows {
			pipe <- r
		}
		close(pipe)
		err = <-done
	default:
		err = output.WriteSamples(outw, rows, opts.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// logSummary reports the distribution of the two ratios across samples.
// Samples whose ratio is undefined (nothing called) are excluded.
func logSummary(log *slog.Logger, rows []output.SampleRow) {
	var hets, rates []float64
	for _, r := range rows {
		if h := r.Stats.Heterozygosity(); h.Defined {
			hets = append(hets, h.V)
		}
		if cr := r.Stats.CallRate(); cr.Defined {
			rates = append(rates, cr.V)
		}
	}
	for _, block := range []struct {
		name string
		xs   []float64
	}{{"heterozygosity", hets}, {"call_rate", rates}} {
		if len(block.xs) == 0 {
			log.Info("summary", "stat", block.name, "samples", 0)
			continue
		}
		sorted := append([]float64(nil), block.xs...)
		sort.Float64s(sorted)
		log.Info("summary",
			"stat", block.name,
			"samples", len(block.xs),
			"mean", stat.Mean(block.xs, nil),
			"median", stat.Quantile(0.5, stat.Empirical, sorted, nil),
			"stddev", stat.StdDev(block.xs, nil),
		)
	}
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
