// internal/output/sample.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"popsum-core/genotype"
	"popsum-core/stats"
	"popsum/internal/jsonutil"
)

// SampleRow pairs a sample name with its finalized counters; Population is
// filled only when a groups file was given.
type SampleRow struct {
	Sample     string
	Population string
	Stats      genotype.SampleStats
}

// WriteSamples writes the per-sample table. A population column is
// appended only when at least one row carries one.
func WriteSamples(w io.Writer, rows []SampleRow, header bool) error {
	grouped := false
	for _, r := range rows {
		if r.Population != "" {
			grouped = true
			break
		}
	}
	if header {
		h := SampleHeader
		if grouped {
			h += "\tpopulation"
		}
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	for _, r := range rows {
		s := r.Stats
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s",
			r.Sample, s.Het, s.Hom, s.Missing, s.Total,
			s.Heterozygosity().Format(6), s.CallRate().Format(6))
		if err != nil {
			return err
		}
		if grouped {
			if _, err := fmt.Fprintf(w, "\t%s", r.Population); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

type sampleJSON struct {
	Sample         string      `json:"sample"`
	Population     string      `json:"population,omitempty"`
	Het            uint64      `json:"n_het"`
	Hom            uint64      `json:"n_hom"`
	Missing        uint64      `json:"n_missing"`
	Total          uint64      `json:"n_total"`
	Heterozygosity stats.Value `json:"heterozygosity"`
	CallRate       stats.Value `json:"call_rate"`
}

func sampleWire(r SampleRow) sampleJSON {
	return sampleJSON{
		Sample: r.Sample, Population: r.Population,
		Het: r.Stats.Het, Hom: r.Stats.Hom,
		Missing: r.Stats.Missing, Total: r.Stats.Total,
		Heterozygosity: r.Stats.Heterozygosity(),
		CallRate:       r.Stats.CallRate(),
	}
}

// WriteSamplesJSON writes the per-sample table as an indented JSON array.
func WriteSamplesJSON(w io.Writer, rows []SampleRow) error {
	out := make([]sampleJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, sampleWire(r))
	}
	return jsonutil.EncodePretty(w, out)
}

// EncodeSampleLine encodes one per-sample row as a single JSONL record.
func EncodeSampleLine(enc *json.Encoder, r SampleRow) error {
	return enc.Encode(sampleWire(r))
}
