// core/genotype/stats.go
package genotype

import (
	"context"
	"fmt"

	"popsum-core/stats"
	"popsum-core/vcf"
)

// SampleStats counts one sample's calls across a genotype stream. The
// counters are folded incrementally; the derived ratios are computed once,
// from the finalized counters, never per site.
type SampleStats struct {
	Het     uint64
	Hom     uint64
	Missing uint64
	Total   uint64
}

// Heterozygosity is het/(total-missing); undefined when nothing was called.
func (s SampleStats) Heterozygosity() stats.Value {
	return stats.Ratio(float64(s.Het), float64(s.Total-s.Missing))
}

// CallRate is (total-missing)/total; undefined when no sites were seen.
func (s SampleStats) CallRate() stats.Value {
	return stats.Ratio(float64(s.Total-s.Missing), float64(s.Total))
}

// Accumulator folds vcf sites into per-sample counters. Memory is bounded
// by the sample count, not the site count.
type Accumulator struct {
	samples   []string
	counts    []SampleStats
	finalized bool
}

func NewAccumulator(samples []string) *Accumulator {
	return &Accumulator{samples: samples, counts: make([]SampleStats, len(samples))}
}

// Observe folds one site. Calls with unequal alleles count as het, equal
// alleles as hom; missing calls count toward Total but nothing else.
func (a *Accumulator) Observe(site vcf.Site) error {
	if a.finalized {
		return fmt.Errorf("genotype: observe after finalize")
	}
	if len(site.Calls) != len(a.samples) {
		return fmt.Errorf("genotype: site %s:%d has %d calls for %d samples",
			site.Chrom, site.Pos, len(site.Calls), len(a.samples))
	}
	for i, c := range site.Calls {
		s := &a.counts[i]
		s.Total++
		switch {
		case c.Missing:
			s.Missing++
		case c.Het:
			s.Het++
		default:
			s.Hom++
		}
	}
	return nil
}

// Finalize closes the fold and returns the counters. Further Observe calls
// are rejected, so partial and final values cannot drift apart.
func (a *Accumulator) Finalize() []SampleStats {
	a.finalized = true
	return a.counts
}

// Samples returns the sample names in column order.
func (a *Accumulator) Samples() []string { return a.samples }

// Extract runs the whole pipeline over one VCF: a single streaming pass
// producing per-sample stats. On error (including cancellation) no partial
// result is returned.
func Extract(ctx context.Context, path string, region *vcf.Region) ([]string, []SampleStats, error) {
	var acc *Accumulator
	err := vcf.Stream(ctx, path, region,
		func(samples []string) error {
			acc = NewAccumulator(samples)
			return nil
		},
		func(site vcf.Site) error {
			return acc.Observe(site)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	if acc == nil {
		return nil, nil, fmt.Errorf("%s: no #CHROM header found", path)
	}
	return acc.Samples(), acc.Finalize(), nil
}
