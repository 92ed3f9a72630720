// core/sitestat/reader.go
package sitestat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"popsum-core/stats"
	"popsum-core/tabio"
)

// Stream reads a piawka/pixy-style per-window statistic table and emits one
// Record per row carrying a recognized metric. Columns (tab-separated):
//
//	chrom  window_start  window_end  pop1  pop2  metric  sites  value  numerator  denominator
//
// pop2 may be "." or empty for single-population metrics. Rows with an
// unrecognized metric label are skipped; rows violating the schema abort
// the stream with a file:line error.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	return tabio.ScanLines(ctx, path, false, func(ln int, line string) error {
		rec, ok, err := parseRow(line)
		if err != nil {
			return fmt.Errorf("%s:%d %w", path, ln, err)
		}
		if !ok {
			return nil
		}
		return emit(rec)
	})
}

func parseRow(line string) (Record, bool, error) {
	f := strings.Split(line, "\t")
	if len(f) != 10 {
		return Record{}, false, fmt.Errorf("bad field count: got %d, want 10", len(f))
	}

	metric, known := NormalizeMetric(f[5])
	if !known {
		return Record{}, false, nil
	}

	start, err := strconv.ParseInt(f[1], 10, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad window start %q", f[1])
	}
	end, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad window end %q", f[2])
	}
	if end < start {
		return Record{}, false, fmt.Errorf("window end %d before start %d", end, start)
	}

	sites, err := strconv.ParseUint(f[6], 10, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad sites count %q", f[6])
	}
	val, err := stats.Parse(f[7])
	if err != nil {
		return Record{}, false, fmt.Errorf("bad value: %w", err)
	}
	num, err := strconv.ParseFloat(f[8], 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad numerator %q", f[8])
	}
	den, err := strconv.ParseFloat(f[9], 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad denominator %q", f[9])
	}
	if den < 0 {
		return Record{}, false, fmt.Errorf("negative denominator %g", den)
	}
	// fst numerators are variance components and may be negative; the
	// difference-count metrics may not.
	if num < 0 && metric != MetricFst {
		return Record{}, false, fmt.Errorf("negative numerator %g for metric %s", num, metric)
	}

	pair := Pair{A: f[3], B: f[4]}
	if pair.B == "." {
		pair.B = ""
	}
	if pair.A == "" {
		return Record{}, false, fmt.Errorf("empty pop1")
	}

	return Record{
		Pair:   pair,
		Chrom:  f[0],
		Start:  start,
		End:    end,
		Metric: metric,
		Sites:  sites,
		Value:  val,
		Num:    num,
		Den:    den,
	}, true, nil
}
