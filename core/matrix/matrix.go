// core/matrix/matrix.go
package matrix

import (
	"fmt"
	"sort"

	"popsum-core/aggregate"
	"popsum-core/stats"
)

// Matrix is a square, symmetric population x population table for one
// statistic. Populations are ordered lexicographically so output is
// diffable across runs. Pairs without data stay undefined: a consumer can
// always tell "no differentiation" (0) from "no data" (NA).
type Matrix struct {
	Metric      string
	Populations []string
	cells       map[[2]string]stats.Value
}

// Build assembles the matrix for metric from aggregated rows. Input rows
// give one direction per pair; both orientations receive the identical
// value. Rows at window level are rejected: a matrix cell summarizes a
// whole chromosome or genome scope, never a single window.
func Build(rows []aggregate.Row, metric string) (*Matrix, error) {
	m := &Matrix{Metric: metric, cells: make(map[[2]string]stats.Value)}
	seen := make(map[string]bool)
	scope := ""

	for _, r := range rows {
		if r.Metric != metric {
			continue
		}
		if r.Start != 0 || r.End != 0 {
			return nil, fmt.Errorf("matrix for %s: window-level row %s:%d-%d; aggregate to chromosome or genome scope first",
				metric, r.Chrom, r.Start, r.End)
		}
		if r.Pair.IsSingle() {
			continue
		}
		if scope == "" {
			scope = r.Chrom
		} else if r.Chrom != scope {
			return nil, fmt.Errorf("matrix for %s: rows span scopes %q and %q; one matrix summarizes one scope",
				metric, scope, r.Chrom)
		}
		a, b := r.Pair.A, r.Pair.B
		if prev, dup := m.cells[[2]string{a, b}]; dup && prev != r.Value {
			return nil, fmt.Errorf("matrix for %s: conflicting values for pair %s:%s", metric, a, b)
		}
		m.cells[[2]string{a, b}] = r.Value
		m.cells[[2]string{b, a}] = r.Value
		seen[a], seen[b] = true, true
	}

	m.Populations = make([]string, 0, len(seen))
	for p := range seen {
		m.Populations = append(m.Populations, p)
	}
	sort.Strings(m.Populations)
	return m, nil
}

// Cell returns the value for (a, b). The diagonal is 0 by convention; a
// pair never observed is undefined.
func (m *Matrix) Cell(a, b string) stats.Value {
	if a == b {
		return stats.Of(0)
	}
	if v, ok := m.cells[[2]string{a, b}]; ok {
		return v
	}
	return stats.Undefined
}
