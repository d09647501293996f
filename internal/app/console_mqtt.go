package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/weather_companion/internal/config"
	"github.com/relabs-tech/weather_companion/internal/env"
	"github.com/relabs-tech/weather_companion/internal/forecast"
	"github.com/relabs-tech/weather_companion/internal/gps"
)

func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to env samples
	envToken := client.Subscribe(cfg.TopicEnvSample, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s env.Sample
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("console: sample unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[ENV]   T=%5.1fC  H=%5.1f%%  P=%7.1fmb  P0=%7.1fmb\n",
			s.Temperature, s.Humidity, s.Pressure, s.SeaLevel,
		)
	})
	envToken.Wait()
	if envToken.Error() != nil {
		return envToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicEnvSample)

	// Subscribe to forecast reports
	fcstToken := client.Subscribe(cfg.TopicForecast, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r forecast.Report
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("console: report unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[FCST]  code=%2d  trend=%-7s  humidex=%5.1f  %s (%s)\n",
			r.Code, r.Trend, r.Humidex, r.Description, r.Icon,
		)
	})
	fcstToken.Wait()
	if fcstToken.Error() != nil {
		return fcstToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicForecast)

	// Subscribe to GPS fixes when configured
	if cfg.TopicGPSPosition != "" {
		gpsToken := client.Subscribe(cfg.TopicGPSPosition, 0, func(_ mqtt.Client, msg mqtt.Message) {
			var f gps.Fix
			if err := json.Unmarshal(msg.Payload(), &f); err != nil {
				log.Printf("console: gps unmarshal error: %v", err)
				return
			}

			fmt.Printf(
				"[GPS]   lat=%9.4f  lon=%9.4f  alt=%6.1fm  v=%s\n",
				f.Latitude, f.Longitude, f.AltitudeM, f.Validity,
			)
		})
		gpsToken.Wait()
		if gpsToken.Error() != nil {
			return gpsToken.Error()
		}
		log.Printf("console: subscribed to %s", cfg.TopicGPSPosition)
	}

	// Block until interrupted
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	client.Disconnect(250)
	return nil
}
