package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather_config.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

const validConfig = `
# weather companion test config
MQTT_BROKER=tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER=wc-producer

TOPIC_ENV_SAMPLE=weather/env
TOPIC_FORECAST=weather/forecast
TOPIC_GPS_POSITION=weather/gps
TOPIC_GPS_ALTITUDE=weather/gps/altitude

BME_I2C_ADDR=0x76
ENV_SAMPLE_INTERVAL=2000
STATION_ALTITUDE_M=120.5

DISPLAY_UPDATE_INTERVAL=250
DISPLAY_CONTENT=forecast

WEB_SERVER_PORT=8080
`

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() = %v; want nil", err)
	}

	if cfg.MQTTBroker != "tcp://localhost:1883" {
		t.Errorf("MQTTBroker = %q; want tcp://localhost:1883", cfg.MQTTBroker)
	}
	if cfg.BMEI2CAddr != 0x76 {
		t.Errorf("BMEI2CAddr = 0x%02X; want 0x76", cfg.BMEI2CAddr)
	}
	if cfg.DisplayUpdateInterval != 250 {
		t.Errorf("DisplayUpdateInterval = %d; want 250", cfg.DisplayUpdateInterval)
	}
	if cfg.StationAltitudeM != 120.5 {
		t.Errorf("StationAltitudeM = %v; want 120.5", cfg.StationAltitudeM)
	}
	if cfg.DisplayContent != "forecast" {
		t.Errorf("DisplayContent = %q; want forecast", cfg.DisplayContent)
	}
}

func TestLoadDefaultsTrendWindow(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() = %v; want nil", err)
	}
	if cfg.TrendWindowSeconds != 60 {
		t.Errorf("TrendWindowSeconds = %d; want default 60", cfg.TrendWindowSeconds)
	}

	cfg, err = Load(writeConfig(t, validConfig+"TREND_WINDOW_SECONDS=300\n"))
	if err != nil {
		t.Fatalf("Load() with override = %v; want nil", err)
	}
	if cfg.TrendWindowSeconds != 300 {
		t.Errorf("TrendWindowSeconds = %d; want 300", cfg.TrendWindowSeconds)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"unknown key", validConfig + "BOGUS_KEY=1\n", "unknown config key"},
		{"missing broker", strings.Replace(validConfig, "MQTT_BROKER=tcp://localhost:1883", "", 1), "MQTT_BROKER is required"},
		{"bad addr", strings.Replace(validConfig, "BME_I2C_ADDR=0x76", "BME_I2C_ADDR=banana", 1), "invalid BME_I2C_ADDR"},
		{"bad display content", strings.Replace(validConfig, "DISPLAY_CONTENT=forecast", "DISPLAY_CONTENT=emoji", 1), "DISPLAY_CONTENT"},
		{"negative window", validConfig + "TREND_WINDOW_SECONDS=-5\n", "must be positive"},
		{"malformed line", validConfig + "JUSTAKEY\n", "invalid config line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("Load() = nil error; want error containing %q", tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Load() error = %q; want substring %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Load() = nil error; want error for missing file")
	}
}
