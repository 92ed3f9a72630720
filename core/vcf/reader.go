// core/vcf/reader.go
package vcf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"popsum-core/tabio"
)

// Region restricts streaming to one contig window (1-based, inclusive).
type Region struct {
	Chrom string
	Start int64
	End   int64
}

func (r *Region) contains(chrom string, pos int64) bool {
	if r == nil {
		return true
	}
	return chrom == r.Chrom && pos >= r.Start && pos <= r.End
}

// Site is one VCF data row reduced to what the statistics need: position,
// alleles and one Call per sample, index-aligned with the header's sample
// list. Ownership is transient: produced and consumed within one pass.
type Site struct {
	Chrom string
	Pos   int64
	Ref   string
	Alt   string
	Calls []Call
}

// fixed leading columns before the per-sample fields
var leadCols = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}

// Stream parses a VCF (plain or gzipped, "-" for stdin). header is called
// once with the sample names; emit is called per data row inside region.
// Schema violations abort with a file:line error.
func Stream(ctx context.Context, path string, region *Region, header func(samples []string) error, emit func(Site) error) error {
	var samples []string
	sawHeader := false

	return tabio.ScanLines(ctx, path, true, func(ln int, line string) error {
		if strings.HasPrefix(line, "##") {
			return nil
		}
		if strings.HasPrefix(line, "#CHROM") {
			f := strings.Split(line, "\t")
			if len(f) < len(leadCols)+1 {
				return fmt.Errorf("%s:%d header has no sample columns", path, ln)
			}
			samples = f[len(leadCols):]
			sawHeader = true
			if header != nil {
				return header(samples)
			}
			return nil
		}
		if !sawHeader {
			return fmt.Errorf("%s:%d data before #CHROM header", path, ln)
		}

		f := strings.Split(line, "\t")
		if len(f) != len(leadCols)+len(samples) {
			return fmt.Errorf("%s:%d bad field count: got %d, want %d", path, ln, len(f), len(leadCols)+len(samples))
		}
		pos, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%s:%d bad POS %q", path, ln, f[1])
		}
		if !region.contains(f[0], pos) {
			return nil
		}

		gtIndex := gtSubfield(f[8])
		if gtIndex < 0 {
			return fmt.Errorf("%s:%d FORMAT %q has no GT subfield", path, ln, f[8])
		}

		site := Site{
			Chrom: f[0],
			Pos:   pos,
			Ref:   f[3],
			Alt:   f[4],
			Calls: make([]Call, len(samples)),
		}
		for i, fld := range f[len(leadCols):] {
			site.Calls[i] = ParseGT(fld, gtIndex)
		}
		return emit(site)
	})
}

func gtSubfield(format string) int {
	for i, key := range strings.Split(format, ":") {
		if key == "GT" {
			return i
		}
	}
	return -1
}
