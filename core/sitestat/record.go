// core/sitestat/record.go
package sitestat

import (
	"strings"

	"popsum-core/stats"
)

// Metric labels recognized in the per-window statistic stream.
const (
	MetricPi  = "pi"
	MetricDxy = "dxy"
	MetricFst = "fst"
	MetricHet = "het"
)

// NormalizeMetric lowercases a metric label and strips the "_pixy" suffix
// that piawka/pixy output carries (het_pixy → het). ok is false for labels
// this tool does not aggregate.
func NormalizeMetric(s string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(s))
	m = strings.TrimSuffix(m, "_pixy")
	switch m {
	case MetricPi, MetricDxy, MetricFst, MetricHet:
		return m, true
	}
	return m, false
}

// Pair identifies the population(s) a statistic belongs to. B is empty for
// single-population metrics (pi, het).
type Pair struct {
	A string
	B string
}

// IsSingle reports whether the pair is a single-population statistic.
func (p Pair) IsSingle() bool { return p.B == "" }

// String renders "A:B", or just "A" for single-population statistics.
func (p Pair) String() string {
	if p.IsSingle() {
		return p.A
	}
	return p.A + ":" + p.B
}

// Record is one raw per-window observation of a ratio-estimator component:
// Num is the summed pairwise differences (or variance component for fst),
// Den the number of comparable site pairs. Aggregation always recomputes
// Num/Den; Value is the producer's own quotient, kept for provenance only.
type Record struct {
	Pair   Pair
	Chrom  string
	Start  int64 // 1-based inclusive window bounds
	End    int64
	Metric string
	Sites  uint64
	Value  stats.Value
	Num    float64
	Den    float64
}

// Key groups records for accumulation: one fold state per
// (pair, chromosome, window, metric).
type Key struct {
	Pair   Pair
	Chrom  string
	Start  int64
	End    int64
	Metric string
}

// Key returns the record's accumulation group.
func (r Record) Key() Key {
	return Key{Pair: r.Pair, Chrom: r.Chrom, Start: r.Start, End: r.End, Metric: r.Metric}
}
