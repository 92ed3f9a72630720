// core/genotype/stats_test.go
package genotype

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"popsum-core/vcf"
)

func site(calls ...vcf.Call) vcf.Site {
	return vcf.Site{Chrom: "chr1", Pos: 1, Ref: "A", Alt: "T", Calls: calls}
}

// 10 calls: 6 het, 3 hom, 1 missing.
func TestAccumulator_MixedCalls(t *testing.T) {
	acc := NewAccumulator([]string{"S1"})
	het := vcf.Call{Het: true, Alt: 1, Ploidy: 2}
	hom := vcf.Call{Alt: 2, Ploidy: 2}
	miss := vcf.Call{Missing: true, Ploidy: 2}

	for i := 0; i < 6; i++ {
		if err := acc.Observe(site(het)); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := acc.Observe(site(hom)); err != nil {
			t.Fatal(err)
		}
	}
	if err := acc.Observe(site(miss)); err != nil {
		t.Fatal(err)
	}

	got := acc.Finalize()[0]
	if got.Het != 6 || got.Hom != 3 || got.Missing != 1 || got.Total != 10 {
		t.Fatalf("counters = %+v", got)
	}
	if h := got.Heterozygosity(); !h.Defined || math.Abs(h.V-6.0/9.0) > 1e-12 {
		t.Fatalf("heterozygosity = %v, want 6/9", h)
	}
	if cr := got.CallRate(); !cr.Defined || math.Abs(cr.V-0.9) > 1e-12 {
		t.Fatalf("call rate = %v, want 0.9", cr)
	}
}

func TestAccumulator_AllMissingIsUndefined(t *testing.T) {
	acc := NewAccumulator([]string{"S1"})
	for i := 0; i < 3; i++ {
		_ = acc.Observe(site(vcf.Call{Missing: true, Ploidy: 2}))
	}
	got := acc.Finalize()[0]
	if got.Heterozygosity().Defined {
		t.Fatalf("heterozygosity with zero called sites must be undefined, got %v", got.Heterozygosity())
	}
	if cr := got.CallRate(); !cr.Defined || cr.V != 0 {
		t.Fatalf("call rate should be a defined 0, got %v", cr)
	}
}

func TestAccumulator_RejectsObserveAfterFinalize(t *testing.T) {
	acc := NewAccumulator([]string{"S1"})
	_ = acc.Finalize()
	if err := acc.Observe(site(vcf.Call{Ploidy: 2})); err == nil {
		t.Fatal("observe after finalize must fail")
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n")
	b.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\tS2\n")
	gts := [][2]string{
		{"0/1", "0/0"}, {"0/1", "1/1"}, {"./.", "0/1"}, {"1/1", "0/0"},
	}
	for i, g := range gts {
		fmt.Fprintf(&b, "chr1\t%d\t.\tA\tT\t.\tPASS\t.\tGT\t%s\t%s\n", 100+i, g[0], g[1])
	}
	fn := "extract_demo.vcf"
	if err := os.WriteFile(fn, []byte(b.String()), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	defer os.Remove(fn)

	samples, perSample, err := Extract(context.Background(), fn, nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(samples) != 2 || samples[0] != "S1" {
		t.Fatalf("samples = %v", samples)
	}
	s1 := perSample[0]
	if s1.Het != 2 || s1.Hom != 1 || s1.Missing != 1 || s1.Total != 4 {
		t.Fatalf("S1 = %+v", s1)
	}
	s2 := perSample[1]
	if s2.Het != 2 || s2.Hom != 2 || s2.Missing != 0 {
		t.Fatalf("S2 = %+v", s2)
	}
}
