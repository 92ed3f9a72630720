// internal/output/summary_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"popsum-core/aggregate"
	"popsum-core/sitestat"
	"popsum-core/stats"
)

func demoRows() []aggregate.Row {
	return []aggregate.Row{
		{
			Pair: sitestat.Pair{A: "north", B: "south"}, Chrom: "chr1",
			Start: 1, End: 10000, Metric: "dxy",
			Sites: 40, Num: 12, Den: 400, Value: stats.Of(0.03),
		},
		{
			Pair: sitestat.Pair{A: "north"}, Chrom: aggregate.WholeScope,
			Metric: "pi", Sites: 0, Num: 0, Den: 0, Value: stats.Undefined,
		},
	}
}

func TestWriteSummary_TSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, demoRows(), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != SummaryHeader {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "north\tsouth\tchr1\t1\t10000\tdxy\t40\t12\t400\t0.03" {
		t.Fatalf("row = %q", lines[1])
	}
	// Whole-scope single-pop row: "." pop2, "*" bounds, NA value.
	if lines[2] != "north\t.\t*\t*\t*\tpi\t0\t0\t0\tNA" {
		t.Fatalf("row = %q", lines[2])
	}
}

// Re-reading a written table must preserve NA as missing, distinct from 0.
func TestSummary_RoundTripKeepsNA(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, demoRows(), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		cells := strings.Split(line, "\t")
		v, err := stats.Parse(cells[len(cells)-1])
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if v.Defined != demoRows()[i].Value.Defined || v != demoRows()[i].Value {
			t.Fatalf("row %d: round trip %v != %v", i, v, demoRows()[i].Value)
		}
	}
}

func TestWriteSummaryJSON_NullBoundsAndValue(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaryJSON(&buf, demoRows()); err != nil {
		t.Fatalf("json: %v", err)
	}
	s := buf.String()
	if !strings.Contains(s, `"window_start": null`) {
		t.Fatalf("whole-scope bounds should be null:\n%s", s)
	}
	if !strings.Contains(s, `"value": null`) {
		t.Fatalf("undefined value should be null:\n%s", s)
	}
	if !strings.Contains(s, `"value": 0.03`) {
		t.Fatalf("defined value lost:\n%s", s)
	}
}
