package env

import (
	"math"
	"testing"
)

func TestSeaLevelPressure(t *testing.T) {
	tests := []struct {
		name      string
		stationMb float64
		tempC     float64
		altitudeM float64
		want      float64
		epsilon   float64
	}{
		{"sea level passes through", 1013.25, 15, 0, 1013.25, 0},
		{"100 m at 15C", 1000, 15, 100, 1011.92, 0.05},
		{"500 m at 20C", 950, 20, 500, 1006.69, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeaLevelPressure(tt.stationMb, tt.tempC, tt.altitudeM)
			if math.Abs(got-tt.want) > tt.epsilon {
				t.Errorf("SeaLevelPressure(%v, %v, %v) = %v; want %v ± %v",
					tt.stationMb, tt.tempC, tt.altitudeM, got, tt.want, tt.epsilon)
			}
		})
	}
}

func TestSeaLevelPressureIncreasesWithAltitude(t *testing.T) {
	prev := SeaLevelPressure(1000, 15, 0)
	for alt := 50.0; alt <= 2000; alt += 50 {
		got := SeaLevelPressure(1000, 15, alt)
		if got <= prev {
			t.Fatalf("SeaLevelPressure(1000, 15, %v) = %v; want > %v", alt, got, prev)
		}
		prev = got
	}
}
