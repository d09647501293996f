// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/weather_companion/internal/app"
	"github.com/relabs-tech/weather_companion/internal/config"
)

func main() {
	configPath := flag.String("config", "./weather_config.txt", "path to configuration file")
	useMock := flag.Bool("mock", false, "use the mock environmental source instead of the BME280")
	flag.Parse()

	log.Println("starting weather-companion env producer (BME280 → forecast → MQTT)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunEnvProducer(*useMock); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
