// internal/output/sites.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"popsum-core/gerp"
	"popsum-core/stats"
	"popsum/internal/jsonutil"
)

// SitesHeader builds the enriched conservation-table header for a sample
// list. Per-sample column names keep the original tool's
// "<sample>_no_derived_alleles" convention so downstream notebooks work
// unchanged.
func SitesHeader(samples []string) string {
	cols := []string{"chrom", "pos", "ancestral_state", "gerp_score"}
	for _, s := range samples {
		cols = append(cols, s+"_no_derived_alleles")
	}
	return strings.Join(cols, "\t")
}

// StreamSites writes enriched conservation sites as TSV from a channel.
func StreamSites(w io.Writer, samples []string, in <-chan gerp.SiteCounts, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SitesHeader(samples)); err != nil {
			return err
		}
	}
	for sc := range in {
		if err := writeSiteRow(w, sc); err != nil {
			return err
		}
	}
	return nil
}

func writeSiteRow(w io.Writer, sc gerp.SiteCounts) error {
	cells := make([]string, 0, 4+len(sc.Counts))
	cells = append(cells, sc.Chrom, fmt.Sprintf("%d", sc.Pos), sc.Ancestral, sc.Score.String())
	for _, c := range sc.Counts {
		if c.Defined {
			cells = append(cells, fmt.Sprintf("%d", int64(c.V)))
		} else {
			cells = append(cells, stats.NA)
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}

type siteJSON struct {
	Chrom     string                 `json:"chrom"`
	Pos       int64                  `json:"pos"`
	Ancestral string                 `json:"ancestral_state"`
	Score     stats.Value            `json:"gerp_score"`
	Derived   map[string]stats.Value `json:"derived_alleles"`
}

func siteWire(samples []string, sc gerp.SiteCounts) siteJSON {
	j := siteJSON{
		Chrom: sc.Chrom, Pos: sc.Pos, Ancestral: sc.Ancestral,
		Score: sc.Score, Derived: make(map[string]stats.Value, len(samples)),
	}
	for i, s := range samples {
		j.Derived[s] = sc.Counts[i]
	}
	return j
}

// WriteSitesJSON writes enriched sites as an indented JSON array.
func WriteSitesJSON(w io.Writer, samples []string, sites []gerp.SiteCounts) error {
	out := make([]siteJSON, 0, len(sites))
	for _, sc := range sites {
		out = append(out, siteWire(samples, sc))
	}
	return jsonutil.EncodePretty(w, out)
}

// EncodeSiteLine encodes one enriched site as a single JSONL record.
func EncodeSiteLine(enc *json.Encoder, samples []string, sc gerp.SiteCounts) error {
	return enc.Encode(siteWire(samples, sc))
}
