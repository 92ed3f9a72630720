package output

import "testing"

func TestHeaders_Stable(t *testing.T) {
	const wantSummary = "pop1\tpop2\tchrom\twindow_start\twindow_end\tmetric\tsites\tnumerator\tdenominator\tvalue"
	if SummaryHeader != wantSummary {
		t.Fatalf("SummaryHeader changed:\n got:  %q\n want: %q", SummaryHeader, wantSummary)
	}
	const wantSample = "sample\tn_het\tn_hom\tn_missing\tn_total\theterozygosity\tcall_rate"
	if SampleHeader != wantSample {
		t.Fatalf("SampleHeader changed:\n got:  %q\n want: %q", SampleHeader, wantSample)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatal("output format constants changed")
	}
	if !ValidFormat("text") || !ValidFormat("json") || !ValidFormat("jsonl") || ValidFormat("yaml") {
		t.Fatal("ValidFormat wrong")
	}
}

func TestSitesHeader_PerSampleColumns(t *testing.T) {
	got := SitesHeader([]string{"S1", "S2"})
	const want = "chrom\tpos\tancestral_state\tgerp_score\tS1_no_derived_alleles\tS2_no_derived_alleles"
	if got != want {
		t.Fatalf("SitesHeader:\n got:  %q\n want: %q", got, want)
	}
}
