package forecast

import (
	"errors"
	"testing"
)

func TestComputeCodeScenarios(t *testing.T) {
	tests := []struct {
		name     string
		pressure float64
		trend    Trend
		want     int
	}{
		{"steady at 1013", 1013, Steady, 13},
		{"falling at 980", 980, Falling, 10},
		{"falling at high pressure", 1050, Falling, 1},
		{"rising at 1020", 1020, Rising, 21},
		{"rising clamps at very low pressure", 800, Rising, 32},
		{"falling clamps at very high pressure", 1100, Falling, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCode(tt.pressure, tt.trend)
			if got != tt.want {
				t.Errorf("ComputeCode(%v, %v) = %d; want %d", tt.pressure, tt.trend, got, tt.want)
			}
		})
	}
}

func TestComputeCodeTruncates(t *testing.T) {
	// 50*1013/376 = 134.70..; truncation gives 134 and code 13.
	// Round-to-nearest would give 135 and code 12.
	if got := ComputeCode(1013, Steady); got != 13 {
		t.Errorf("ComputeCode(1013, Steady) = %d; want 13 (truncating division)", got)
	}
	// Fractional millibars must not change the code either.
	if got := ComputeCode(1013.9, Steady); got != 13 {
		t.Errorf("ComputeCode(1013.9, Steady) = %d; want 13", got)
	}
}

func TestComputeCodeInRange(t *testing.T) {
	for _, trend := range []Trend{Falling, Steady, Rising} {
		for p := 700.0; p <= 1200.0; p += 0.5 {
			code := ComputeCode(p, trend)
			if code < MinCode || code > MaxCode {
				t.Fatalf("ComputeCode(%v, %v) = %d; want within [%d, %d]", p, trend, code, MinCode, MaxCode)
			}
		}
	}
}

func TestComputeCodeMonotonic(t *testing.T) {
	// All three formulas have negative slope in pressure: a higher reading
	// can never yield a worse (higher) code under the same trend.
	for _, trend := range []Trend{Falling, Steady, Rising} {
		prev := ComputeCode(850, trend)
		for p := 850.5; p <= 1100.0; p += 0.5 {
			code := ComputeCode(p, trend)
			if code > prev {
				t.Fatalf("ComputeCode(%v, %v) = %d; want <= %d (previous, lower pressure)", p, trend, code, prev)
			}
			prev = code
		}
	}
}

func TestLookupBounds(t *testing.T) {
	for _, code := range []int{MinCode, MaxCode} {
		entry, err := Lookup(code)
		if err != nil {
			t.Fatalf("Lookup(%d) = %v; want nil error", code, err)
		}
		if entry.Description == "" {
			t.Errorf("Lookup(%d) returned empty description", code)
		}
	}
}

func TestLookupAnchors(t *testing.T) {
	entry, err := Lookup(13)
	if err != nil {
		t.Fatalf("Lookup(13) = %v; want nil error", err)
	}
	if entry.Description != "Fairly fine, possibly showery" {
		t.Errorf("Lookup(13).Description = %q; want %q", entry.Description, "Fairly fine, possibly showery")
	}
	if entry.Icon != SunCloud {
		t.Errorf("Lookup(13).Icon = %v; want %v", entry.Icon, SunCloud)
	}

	entry, err = Lookup(10)
	if err != nil {
		t.Fatalf("Lookup(10) = %v; want nil error", err)
	}
	if entry.Icon != Sun {
		t.Errorf("Lookup(10).Icon = %v; want %v", entry.Icon, Sun)
	}
}

func TestLookupGap(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"historical gap", 28},
		{"below range", 0},
		{"above range", 33},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup(tt.code)
			if err == nil {
				t.Fatalf("Lookup(%d) = nil error; want *LookupError", tt.code)
			}
			var lerr *LookupError
			if !errors.As(err, &lerr) {
				t.Fatalf("Lookup(%d) error type = %T; want *LookupError", tt.code, err)
			}
			if lerr.Code != tt.code {
				t.Errorf("LookupError.Code = %d; want %d", lerr.Code, tt.code)
			}
		})
	}
}

func TestLookupCoversComputedCodes(t *testing.T) {
	// Over plausible sea-level pressures every computed code resolves in
	// the table, except the historical gap at 28 (rising trend just below
	// 981 mb lands on it), which must fail with the typed error instead of
	// a guessed entry.
	for _, trend := range []Trend{Falling, Steady, Rising} {
		for p := 930.0; p <= 1085.0; p += 0.5 {
			code := ComputeCode(p, trend)
			_, err := Lookup(code)
			if err == nil {
				continue
			}
			var lerr *LookupError
			if !errors.As(err, &lerr) || lerr.Code != 28 {
				t.Fatalf("Lookup(ComputeCode(%v, %v)) = %v; want nil or gap error for 28", p, trend, err)
			}
			if code != 28 {
				t.Fatalf("ComputeCode(%v, %v) = %d with no table entry; only 28 may be absent", p, trend, code)
			}
		}
	}
}
