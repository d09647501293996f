// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package env

import (
	"math"
	"time"
)

type mockSource struct {
	start    time.Time
	altitude float64
}

// NewMockSource creates a mock environmental source that generates smooth
// changing values around typical indoor conditions.
func NewMockSource(altitudeM float64) Source {
	return &mockSource{start: time.Now(), altitude: altitudeM}
}

func (m *mockSource) Next() (Sample, error) {
	elapsed := time.Since(m.start).Seconds()

	temp := 21 + 3*math.Sin(elapsed/120)
	station := 1005 + 8*math.Sin(elapsed/600)

	return Sample{
		Temperature: temp,
		Humidity:    55 + 20*math.Cos(elapsed/300),
		Pressure:    station,
		SeaLevel:    SeaLevelPressure(station, temp, m.altitude),
	}, nil
}
