package billdoc

import "testing"

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"20,030.00 KGS", 20030, true},
		{"20030", 20030, true},
		{"12.5 KGS", 12.5, true},
		{" 7,000 ", 7000, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"no digits here", 0, false},
		// Multiple decimal points strip to an unparseable literal; there is
		// no prefix-parse, the value is nil rather than "1.2".
		{"1.2.3", 0, false},
	}
	for _, tc := range tests {
		got := ParseWeight(tc.in)
		if tc.ok {
			if got == nil {
				t.Errorf("ParseWeight(%q) = nil, want %v", tc.in, tc.want)
				continue
			}
			if *got != tc.want {
				t.Errorf("ParseWeight(%q) = %v, want %v", tc.in, *got, tc.want)
			}
		} else if got != nil {
			t.Errorf("ParseWeight(%q) = %v, want nil", tc.in, *got)
		}
	}
}

func TestParseWeightIdempotentAcrossFormats(t *testing.T) {
	a := ParseWeight("20,030.00 KGS")
	b := ParseWeight("20030")
	if a == nil || b == nil {
		t.Fatal("expected both forms to parse")
	}
	if *a != *b {
		t.Errorf("formatted and plain forms differ: %v vs %v", *a, *b)
	}
}

func TestFormatKGS(t *testing.T) {
	v := 20030.0
	if got := FormatKGS(&v, 2); got != "20,030.00 KGS" {
		t.Errorf("short format = %q, want %q", got, "20,030.00 KGS")
	}
	if got := FormatKGS(&v, 3); got != "20,030.000 KGS" {
		t.Errorf("long format = %q, want %q", got, "20,030.000 KGS")
	}
	if got := FormatKGS(nil, 2); got != "" {
		t.Errorf("nil weight = %q, want empty", got)
	}
}

func TestSumWeights(t *testing.T) {
	containers := []Container{
		{GrossWt: "20,030.00 KGS", NetWt: "19,000"},
		{GrossWt: "10000", NetWt: "N/A"},
		{GrossWt: "garbage", NetWt: ""},
	}
	gross, net := SumWeights(containers)
	if gross != 30030 {
		t.Errorf("gross total = %v, want 30030", gross)
	}
	if net != 19000 {
		t.Errorf("net total = %v, want 19000", net)
	}
}
