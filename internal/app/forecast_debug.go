package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/relabs-tech/weather_companion/internal/forecast"
)

// RunForecastDebug sweeps a pressure range through every trend branch and
// prints the resulting Zambretti codes and descriptions. Handy for eyeballing
// the branch thresholds against the published tables.
func RunForecastDebug(minMb, maxMb, stepMb float64) error {
	return forecastSweep(os.Stdout, minMb, maxMb, stepMb)
}

func forecastSweep(w io.Writer, minMb, maxMb, stepMb float64) error {
	trends := []forecast.Trend{forecast.Falling, forecast.Steady, forecast.Rising}

	for _, trend := range trends {
		fmt.Fprintf(w, "--- trend: %s ---\n", trend)
		for p := minMb; p <= maxMb; p += stepMb {
			code := forecast.ComputeCode(p, trend)
			entry, err := forecast.Lookup(code)
			if err != nil {
				// the whole point of the sweep is to show where the
				// historical gap sits, so print the row and keep going
				var lerr *forecast.LookupError
				if errors.As(err, &lerr) {
					fmt.Fprintf(w, "%7.1f mb -> %2d  (historical table gap)\n", p, code)
					continue
				}
				return fmt.Errorf("pressure %.1f trend %s: %w", p, trend, err)
			}
			fmt.Fprintf(w, "%7.1f mb -> %2d  %-36s %s\n", p, code, entry.Description, entry.Icon)
		}
	}
	return nil
}
