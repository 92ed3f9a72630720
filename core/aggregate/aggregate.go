// core/aggregate/aggregate.go
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"popsum-core/sitestat"
	"popsum-core/stats"
)

// Level selects the scope statistics are re-summed over.
type Level int

const (
	LevelWindow Level = iota
	LevelChromosome
	LevelGenome
)

// ParseLevel maps a CLI label to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "window":
		return LevelWindow, nil
	case "chromosome", "chrom":
		return LevelChromosome, nil
	case "genome":
		return LevelGenome, nil
	}
	return 0, fmt.Errorf("invalid level %q (window | chromosome | genome)", s)
}

// WholeScope marks the window bounds of chromosome- and genome-level rows.
const WholeScope = "*"

// Row is one emitted aggregate: a pair/scope/metric with its re-summed
// numerator, denominator and compared-site count, plus the quotient as a
// tagged value (undefined when the denominator is zero). Weight for any
// further averaging is Den. Rows are immutable once emitted.
type Row struct {
	Pair   sitestat.Pair
	Chrom  string // WholeScope at genome level
	Start  int64  // 0 outside window level
	End    int64
	Metric string
	Sites  uint64
	Num    float64
	Den    float64
	Value  stats.Value
}

// WindowLabel renders the start/end cells of the output table.
func (r Row) WindowLabel() (string, string) {
	if r.Start == 0 && r.End == 0 {
		return WholeScope, WholeScope
	}
	return fmt.Sprintf("%d", r.Start), fmt.Sprintf("%d", r.End)
}

// Aggregate re-sums running sums at the requested level and divides once
// per scope. All metrics, fst included, use the ratio-of-sums form:
// (Σ numerator)/(Σ denominator) across every constituent window. Averaging
// already-divided window values would bias toward windows with few sites
// and is never done here. Output order is deterministic.
func Aggregate(sums sitestat.RunningSums, level Level) []Row {
	scoped := make(map[sitestat.Key]sitestat.Sums, len(sums))
	for k, s := range sums {
		sk := scopeKey(k, level)
		scoped[sk] = scoped[sk].Add(s)
	}

	rows := make([]Row, 0, len(scoped))
	for k, s := range scoped {
		rows = append(rows, Row{
			Pair:   k.Pair,
			Chrom:  k.Chrom,
			Start:  k.Start,
			End:    k.End,
			Metric: k.Metric,
			Sites:  s.Sites,
			Num:    s.Num,
			Den:    s.Den,
			Value:  stats.Ratio(s.Num, s.Den),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		if a.Pair.A != b.Pair.A {
			return a.Pair.A < b.Pair.A
		}
		if a.Pair.B != b.Pair.B {
			return a.Pair.B < b.Pair.B
		}
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		return a.Start < b.Start
	})
	return rows
}

func scopeKey(k sitestat.Key, level Level) sitestat.Key {
	switch level {
	case LevelChromosome:
		k.Start, k.End = 0, 0
	case LevelGenome:
		k.Start, k.End = 0, 0
		k.Chrom = WholeScope
	}
	return k
}
