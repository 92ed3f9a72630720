// core/stats/value_test.go
package stats

import (
	"encoding/json"
	"testing"
)

func TestRatio_ZeroDenominator(t *testing.T) {
	v := Ratio(3, 0)
	if v.Defined {
		t.Fatalf("expected undefined value for zero denominator, got %v", v)
	}
	if v.String() != NA {
		t.Fatalf("undefined value must render as %q, got %q", NA, v.String())
	}
}

func TestRoundTrip_NA_DistinctFromZero(t *testing.T) {
	zero, err := Parse("0")
	if err != nil {
		t.Fatalf("parse 0: %v", err)
	}
	na, err := Parse(NA)
	if err != nil {
		t.Fatalf("parse NA: %v", err)
	}
	if !zero.Defined || zero.V != 0 {
		t.Fatalf("parsed zero wrong: %+v", zero)
	}
	if na.Defined {
		t.Fatalf("parsed NA should be undefined: %+v", na)
	}
	if zero.String() == na.String() {
		t.Fatal("NA and 0 must not render identically")
	}
}

func TestJSON_NullForUndefined(t *testing.T) {
	b, err := json.Marshal(struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}{Of(0.5), Undefined})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":0.5,"b":null}` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var back struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.A.Defined || back.A.V != 0.5 || back.B.Defined {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
