package output

// Canonical TSV header rows. Keep these as the single source of truth; all
// writers should use them.
const (
	SummaryHeader = "pop1\tpop2\tchrom\twindow_start\twindow_end\tmetric\tsites\tnumerator\tdenominator\tvalue"
	SampleHeader  = "sample\tn_het\tn_hom\tn_missing\tn_total\theterozygosity\tcall_rate"
)

// Output format labels.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ValidFormat reports whether f is a recognized output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatJSONL:
		return true
	}
	return false
}
