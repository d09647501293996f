package app

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/relabs-tech/weather_companion/internal/config"
	"github.com/relabs-tech/weather_companion/internal/env"
	"github.com/relabs-tech/weather_companion/internal/forecast"
	"github.com/relabs-tech/weather_companion/internal/gps"
	"github.com/relabs-tech/weather_companion/internal/sensors"
)

// makeReport derives the forecast report for a sample under the given
// trend. It fails only when the Zambretti code lands on the table gap;
// the raw sample is published regardless.
func makeReport(sample env.Sample, trend forecast.Trend) (forecast.Report, error) {
	code := forecast.ComputeCode(sample.SeaLevel, trend)
	entry, err := forecast.Lookup(code)
	if err != nil {
		return forecast.Report{}, err
	}

	return forecast.Report{
		Code:        code,
		Description: entry.Description,
		Icon:        entry.Icon.String(),
		Trend:       trend.String(),
		Humidex:     forecast.Humidex(sample.Temperature, sample.Humidity),
		Temperature: sample.Temperature,
		Humidity:    sample.Humidity,
		Pressure:    sample.SeaLevel,
	}, nil
}

// RunEnvProducer samples the BME280, classifies the pressure trend, runs
// the Zambretti lookup, and publishes the sample and forecast report as
// JSON to MQTT.
func RunEnvProducer(useMock bool) error {
	log.Println("starting weather-companion env/forecast producer")

	cfg := config.Get()

	// --- Choose env source (mock vs real BME280) ---
	var mockSrc env.Source
	if useMock {
		log.Println("using mock environmental source")
		mockSrc = env.NewMockSource(cfg.StationAltitudeM)
	}

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting sample loop")

	// Station altitude used for sea-level reduction. Starts from config and
	// is refined by the GPS producer when a fix arrives.
	var (
		altMu    sync.RWMutex
		altitude = cfg.StationAltitudeM
	)
	if cfg.TopicGPSAltitude != "" {
		token := client.Subscribe(cfg.TopicGPSAltitude, 0, func(_ mqtt.Client, msg mqtt.Message) {
			var a gps.Altitude
			if err := json.Unmarshal(msg.Payload(), &a); err != nil {
				log.Printf("producer: altitude unmarshal error: %v", err)
				return
			}
			if !a.Valid {
				return
			}
			altMu.Lock()
			altitude = a.Meters
			altMu.Unlock()
		})
		token.Wait()
		if token.Error() != nil {
			return token.Error()
		}
		log.Printf("producer: subscribed to %s", cfg.TopicGPSAltitude)
	}

	// One tracker per device session. It owns the rolling pressure sample;
	// only this loop calls Evaluate.
	tracker := forecast.NewTracker(time.Duration(cfg.TrendWindowSeconds) * time.Second)

	ticker := time.NewTicker(time.Duration(cfg.EnvSampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		// 1) Read the sensor (blocking; the BME280's own conversion time
		//    paces the cycle together with the ticker)
		var sample env.Sample
		var err error
		if useMock {
			sample, err = mockSrc.Next()
		} else {
			altMu.RLock()
			alt := altitude
			altMu.RUnlock()
			sample, err = sensors.ReadEnv(alt)
		}
		if err != nil {
			log.Printf("producer: env read error: %v", err)
			continue
		}

		// 2) Publish the raw sample first (retained, so late subscribers
		//    get the latest state immediately). The presentation layer gets
		//    temperature/humidity/pressure every cycle, whatever becomes of
		//    the forecast below.
		if payload, err := json.Marshal(sample); err != nil {
			log.Printf("producer: sample marshal error: %v", err)
		} else {
			client.Publish(cfg.TopicEnvSample, 0, true, payload).Wait()
		}

		// 3) Trend, Zambretti code and report from sea-level pressure
		trend := tracker.Evaluate(sample.SeaLevel, t)
		report, err := makeReport(sample, trend)
		if err != nil {
			// the historical table gap at code 28; skip the report only
			log.Printf("producer: forecast lookup error: %v", err)
			continue
		}

		payload, err := json.Marshal(report)
		if err != nil {
			log.Printf("producer: report marshal error: %v", err)
			continue
		}
		client.Publish(cfg.TopicForecast, 0, true, payload).Wait()

		log.Printf("%s published forecast: code=%d trend=%s %q",
			t.Format(time.RFC3339), report.Code, report.Trend, report.Description)
	}

	return nil
}
