package forecast

import "math"

// Humidex returns the perceived temperature for the given air temperature
// (°C) and relative humidity (%). It uses the vapour-pressure
// approximation 0.06*h*10^(0.03*t), so it needs no dew point input.
// The result is not clamped; below roughly 20 °C it can come out lower
// than the air temperature and the display simply shows the air value.
func Humidex(tempC, humidityPct float64) float64 {
	e := 0.06 * humidityPct * math.Pow(10, 0.03*tempC)
	return tempC + 0.5555*(e-10)
}
