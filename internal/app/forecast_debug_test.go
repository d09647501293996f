package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestForecastSweepSurvivesTableGap(t *testing.T) {
	// The default sweep range crosses the code-28 band on the rising
	// branch (974-980 mb); the sweep must mark the gap and keep printing
	// the rest of the range.
	var buf bytes.Buffer
	if err := forecastSweep(&buf, 950, 1050, 5); err != nil {
		t.Fatalf("forecastSweep() = %v; want nil error", err)
	}
	out := buf.String()

	if !strings.Contains(out, "(historical table gap)") {
		t.Error("sweep output does not mark the code-28 gap")
	}
	if !strings.Contains(out, " 975.0 mb -> 28") {
		t.Error("sweep output missing the gap row at 975 mb rising")
	}
	for _, trend := range []string{"falling", "steady", "rising"} {
		if !strings.Contains(out, "--- trend: "+trend+" ---") {
			t.Errorf("sweep output missing trend section %q", trend)
		}
	}
	// Rows past the gap still print.
	if !strings.Contains(out, "1050.0 mb") {
		t.Error("sweep output stops before 1050 mb")
	}
}

func TestForecastSweepRowsResolve(t *testing.T) {
	var buf bytes.Buffer
	if err := forecastSweep(&buf, 1000, 1030, 10); err != nil {
		t.Fatalf("forecastSweep() = %v; want nil error", err)
	}
	if strings.Contains(buf.String(), "gap") {
		t.Error("sweep over 1000-1030 mb reported a gap; none of the branches hit 28 there")
	}
}
