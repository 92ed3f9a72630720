// core/matrix/matrix_test.go
package matrix

import (
	"reflect"
	"testing"

	"popsum-core/aggregate"
	"popsum-core/sitestat"
	"popsum-core/stats"
)

func genomeRow(a, b, metric string, v float64) aggregate.Row {
	return aggregate.Row{
		Pair:   sitestat.Pair{A: a, B: b},
		Chrom:  aggregate.WholeScope,
		Metric: metric,
		Value:  stats.Of(v),
	}
}

func TestBuild_SymmetricAndSorted(t *testing.T) {
	rows := []aggregate.Row{
		genomeRow("south", "north", "dxy", 0.03),
		genomeRow("north", "west", "dxy", 0.01),
		genomeRow("south", "west", "dxy", 0.02),
	}
	m, err := Build(rows, "dxy")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !reflect.DeepEqual(m.Populations, []string{"north", "south", "west"}) {
		t.Fatalf("populations not lexicographic: %v", m.Populations)
	}
	for _, a := range m.Populations {
		for _, b := range m.Populations {
			if m.Cell(a, b) != m.Cell(b, a) {
				t.Fatalf("asymmetry at (%s,%s): %v vs %v", a, b, m.Cell(a, b), m.Cell(b, a))
			}
		}
	}
	if got := m.Cell("north", "south"); !got.Defined || got.V != 0.03 {
		t.Fatalf("cell (north,south) = %v, want 0.03", got)
	}
}

func TestBuild_MissingPairIsNA_DiagonalZero(t *testing.T) {
	rows := []aggregate.Row{
		genomeRow("a", "b", "fst", 0.1),
		genomeRow("c", "d", "fst", 0.2),
	}
	m, err := Build(rows, "fst")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := m.Cell("a", "c"); got.Defined {
		t.Fatalf("pair without data must stay undefined, got %v", got)
	}
	if got := m.Cell("a", "c").String(); got != stats.NA {
		t.Fatalf("missing cell renders %q, want %q", got, stats.NA)
	}
	if got := m.Cell("b", "b"); !got.Defined || got.V != 0 {
		t.Fatalf("diagonal = %v, want 0", got)
	}
}

func TestBuild_IgnoresOtherMetricsAndSinglePops(t *testing.T) {
	rows := []aggregate.Row{
		genomeRow("a", "b", "fst", 0.1),
		genomeRow("a", "b", "dxy", 0.3),
		{Pair: sitestat.Pair{A: "a"}, Chrom: aggregate.WholeScope, Metric: "fst", Value: stats.Of(9)},
	}
	m, err := Build(rows, "fst")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := m.Cell("a", "b"); got.V != 0.1 {
		t.Fatalf("cell = %v, want fst row only", got)
	}
	if len(m.Populations) != 2 {
		t.Fatalf("populations = %v", m.Populations)
	}
}

func TestBuild_RejectsWindowRows(t *testing.T) {
	rows := []aggregate.Row{{
		Pair: sitestat.Pair{A: "a", B: "b"}, Chrom: "chr1", Start: 1, End: 100,
		Metric: "fst", Value: stats.Of(0.5),
	}}
	if _, err := Build(rows, "fst"); err == nil {
		t.Fatal("window-level rows must be rejected")
	}
}
