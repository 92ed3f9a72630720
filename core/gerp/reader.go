// core/gerp/reader.go
package gerp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"popsum-core/stats"
	"popsum-core/tabio"
	"popsum-core/vcf"
)

// Record is one site of the conservation table: ancestral-state annotation
// plus a GERP score. Ancestral "N" (or empty) means the ancestral/derived
// state is unknown at that site.
type Record struct {
	Chrom     string
	Pos       int64
	Ancestral string
	Score     stats.Value
}

// AncestralKnown reports whether the site has a usable ancestral state.
func (r Record) AncestralKnown() bool {
	return r.Ancestral != "" && !strings.EqualFold(r.Ancestral, "N") && r.Ancestral != stats.NA
}

// Stream reads a headerless GERP table (chrom, pos, ancestral_state,
// gerp_score; tab-separated, optional gzip) and emits records inside
// region.
func Stream(ctx context.Context, path string, region *vcf.Region, emit func(Record) error) error {
	return tabio.ScanLines(ctx, path, false, func(ln int, line string) error {
		f := strings.Split(line, "\t")
		if len(f) != 4 {
			return fmt.Errorf("%s:%d bad field count: got %d, want 4", path, ln, len(f))
		}
		pos, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%s:%d bad position %q", path, ln, f[1])
		}
		score, err := stats.Parse(f[3])
		if err != nil {
			return fmt.Errorf("%s:%d bad score: %v", path, ln, err)
		}
		rec := Record{Chrom: f[0], Pos: pos, Ancestral: f[2], Score: score}
		if region != nil && !(rec.Chrom == region.Chrom && rec.Pos >= region.Start && rec.Pos <= region.End) {
			return nil
		}
		return emit(rec)
	})
}
