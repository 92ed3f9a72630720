// core/vcf/genotype.go
package vcf

import "strings"

// Call is one sample's genotype at one site. Alt is the allele dosage:
// the number of non-reference allele copies (0..Ploidy). Missing calls are
// excluded from every denominator downstream, never treated as homozygous
// reference.
type Call struct {
	Missing bool
	Het     bool
	Alt     int
	Ploidy  int
}

// ParseGT parses a VCF sample field. The GT subfield is taken at gtIndex
// within the colon-separated field (usually 0). Any "." allele makes the
// whole call missing. Separators "/" and "|" are equivalent; a single
// allele is a haploid call.
func ParseGT(field string, gtIndex int) Call {
	sub := field
	for i := 0; i < gtIndex; i++ {
		j := strings.IndexByte(sub, ':')
		if j < 0 {
			return Call{Missing: true}
		}
		sub = sub[j+1:]
	}
	if j := strings.IndexByte(sub, ':'); j >= 0 {
		sub = sub[:j]
	}
	if sub == "" {
		return Call{Missing: true}
	}

	alleles := strings.FieldsFunc(sub, func(r rune) bool { return r == '/' || r == '|' })
	if len(alleles) == 0 {
		return Call{Missing: true}
	}
	c := Call{Ploidy: len(alleles)}
	for _, a := range alleles {
		if a == "." {
			return Call{Missing: true, Ploidy: len(alleles)}
		}
		if a != "0" {
			c.Alt++
		}
	}
	if len(alleles) == 2 && alleles[0] != alleles[1] {
		c.Het = true
	}
	return c
}
