package forecast

// Report is a single forecast result suitable for JSON and MQTT.
type Report struct {
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Trend       string  `json:"trend"`
	Humidex     float64 `json:"humidex"`

	// raw readings the presentation layer shows alongside the forecast
	Temperature float64 `json:"temp_c"`
	Humidity    float64 `json:"humidity_pct"`
	Pressure    float64 `json:"pressure_mb"` // sea-level compensated
}
