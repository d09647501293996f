package env

import "math"

// SeaLevelPressure reduces a station pressure reading (mb) to sea level
// using the international barometric formula with the measured air
// temperature (°C) and the station altitude (m). At altitude 0 the reading
// passes through unchanged.
func SeaLevelPressure(stationMb, tempC, altitudeM float64) float64 {
	if altitudeM == 0 {
		return stationMb
	}
	kelvin := tempC + 273.15
	return stationMb * math.Pow(1-(0.0065*altitudeM)/(kelvin+0.0065*altitudeM), -5.257)
}
