// core/gerp/merge.go
package gerp

import (
	"context"

	"popsum-core/stats"
	"popsum-core/vcf"
)

// SiteCounts is one enriched conservation site: the original record plus
// one derived-allele-copy count per sample (index-aligned with Samples in
// the Result). A count is undefined when the sample's genotype is missing,
// when the ancestral state is unknown, or when the site has no genotype
// row at all.
type SiteCounts struct {
	Record
	Counts []stats.Value
}

// Result of a derived-allele merge.
type Result struct {
	Samples   []string
	Sites     []SiteCounts
	Unmatched int // conservation sites with no genotype row (kept, counts NA)
}

type posKey struct {
	chrom string
	pos   int64
}

// Merge joins a conservation table with a VCF on chromosome+position and
// computes per-sample derived-allele copies:
//
//	ancestral == REF → derived copies = alt dosage
//	ancestral != REF → derived copies = ploidy − alt dosage
//
// Sites absent from the VCF pass through with undefined counts and are
// tallied in Unmatched rather than dropped; downstream consumers need to
// tell "not genotyped here" from "zero derived alleles". Intended to run
// per window (region bounds the genotype map held in memory).
func Merge(ctx context.Context, annotPath, vcfPath string, region *vcf.Region) (*Result, error) {
	res := &Result{}

	byPos := make(map[posKey]vcf.Site)
	err := vcf.Stream(ctx, vcfPath, region,
		func(samples []string) error {
			res.Samples = samples
			return nil
		},
		func(site vcf.Site) error {
			byPos[posKey{site.Chrom, site.Pos}] = site
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	err = Stream(ctx, annotPath, region, func(rec Record) error {
		sc := SiteCounts{Record: rec, Counts: make([]stats.Value, len(res.Samples))}
		site, ok := byPos[posKey{rec.Chrom, rec.Pos}]
		if !ok {
			res.Unmatched++
			res.Sites = append(res.Sites, sc)
			return nil
		}
		if !rec.AncestralKnown() {
			res.Sites = append(res.Sites, sc)
			return nil
		}
		ancestralIsRef := rec.Ancestral == site.Ref
		for i, c := range site.Calls {
			if c.Missing {
				continue
			}
			derived := c.Alt
			if !ancestralIsRef {
				derived = c.Ploidy - c.Alt
			}
			sc.Counts[i] = stats.Of(float64(derived))
		}
		res.Sites = append(res.Sites, sc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
