package forecast

import "fmt"

// Zambretti code bounds. Codes index the static table below; 28 is a gap
// in the historical table and is never produced.
const (
	MinCode = 1
	MaxCode = 32
)

// ComputeCode maps sea-level pressure (mb) and the current trend to a
// Zambretti code in [MinCode, MaxCode].
//
// The arithmetic deliberately truncates: the historical tables were
// computed with integer division on whole millibars, and round-to-nearest
// would shift codes by one near the branch thresholds.
func ComputeCode(pressure float64, trend Trend) int {
	p := int(pressure)

	var code int
	switch trend {
	case Falling:
		code = 130 - (10*p)/81
	case Rising:
		code = 179 - (20*p)/129
	default:
		code = 147 - (50*p)/376
	}

	if code < MinCode {
		code = MinCode
	}
	if code > MaxCode {
		code = MaxCode
	}
	return code
}

// LookupError reports a code with no table entry. Callers must surface it
// rather than substitute a default forecast.
type LookupError struct {
	Code int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no forecast entry for code %d", e.Code)
}

// Lookup returns the forecast entry for a Zambretti code.
func Lookup(code int) (Entry, error) {
	if code < MinCode || code > MaxCode {
		return Entry{}, &LookupError{Code: code}
	}
	e := table[code]
	if e.Description == "" {
		// code 28, the historical gap
		return Entry{}, &LookupError{Code: code}
	}
	return e, nil
}
