package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/weather_companion/internal/app"
)

func main() {
	minMb := flag.Float64("min", 950, "lowest pressure to sweep (mb)")
	maxMb := flag.Float64("max", 1050, "highest pressure to sweep (mb)")
	stepMb := flag.Float64("step", 5, "sweep step (mb)")
	flag.Parse()

	log.Println("starting Zambretti table debug sweep (standalone)")

	if err := app.RunForecastDebug(*minMb, *maxMb, *stepMb); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
