package env

// Sample represents a single environmental measurement (BME280).
type Sample struct {
	Temperature float64 `json:"temp_c"`       // °C
	Humidity    float64 `json:"humidity_pct"` // relative humidity, 0-100
	Pressure    float64 `json:"pressure_mb"`  // station pressure, mb
	SeaLevel    float64 `json:"sea_level_mb"` // sea-level compensated, mb
}

// Source is anything that can provide environmental samples over time:
// the BME280, the mock source, maybe a replay source from file later.
type Source interface {
	Next() (Sample, error)
}
