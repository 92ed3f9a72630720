// internal/output/summary.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"popsum-core/aggregate"
	"popsum-core/stats"
	"popsum/internal/jsonutil"
)

// StreamSummary writes aggregate rows as a tab-delimited table from a
// channel. Single-population rows carry "." in pop2; whole-scope rows
// carry "*" window bounds. Undefined values render as NA.
func StreamSummary(w io.Writer, in <-chan aggregate.Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeSummaryRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes a slice of aggregate rows (buffered path).
func WriteSummary(w io.Writer, rows []aggregate.Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := writeSummaryRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaryRow(w io.Writer, r aggregate.Row) error {
	pop2 := r.Pair.B
	if pop2 == "" {
		pop2 = "."
	}
	ws, we := r.WindowLabel()
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%g\t%g\t%s\n",
		r.Pair.A, pop2, r.Chrom, ws, we, r.Metric, r.Sites, r.Num, r.Den, r.Value)
	return err
}

type summaryJSON struct {
	Pop1        string      `json:"pop1"`
	Pop2        string      `json:"pop2,omitempty"`
	Chrom       string      `json:"chrom"`
	WindowStart *int64      `json:"window_start"`
	WindowEnd   *int64      `json:"window_end"`
	Metric      string      `json:"metric"`
	Sites       uint64      `json:"sites"`
	Numerator   float64     `json:"numerator"`
	Denominator float64     `json:"denominator"`
	Value       stats.Value `json:"value"`
}

func summaryWire(r aggregate.Row) summaryJSON {
	j := summaryJSON{
		Pop1: r.Pair.A, Pop2: r.Pair.B, Chrom: r.Chrom,
		Metric: r.Metric, Sites: r.Sites,
		Numerator: r.Num, Denominator: r.Den, Value: r.Value,
	}
	if r.Start != 0 || r.End != 0 {
		s, e := r.Start, r.End
		j.WindowStart, j.WindowEnd = &s, &e
	}
	return j
}

// WriteSummaryJSON writes aggregate rows as an indented JSON array.
// Whole-scope rows carry null window bounds; undefined values null.
func WriteSummaryJSON(w io.Writer, rows []aggregate.Row) error {
	out := make([]summaryJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, summaryWire(r))
	}
	return jsonutil.EncodePretty(w, out)
}

// EncodeSummaryLine encodes one aggregate row as a single JSONL record.
func EncodeSummaryLine(enc *json.Encoder, r aggregate.Row) error {
	return enc.Encode(summaryWire(r))
}
