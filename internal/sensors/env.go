package sensors

import (
	"fmt"
	"sync"

	"github.com/relabs-tech/weather_companion/internal/config"
	"github.com/relabs-tech/weather_companion/internal/env"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
	"periph.io/x/host/v3"
)

var (
	bmeDev     *bmxx80.Dev
	bmeOnce    sync.Once
	bmeInitErr error
)

// initBME initializes the BME280 once
func initBME() {
	bmeOnce.Do(func() {
		cfg := config.Get()

		// Initialize periph host
		if _, err := host.Init(); err != nil {
			bmeInitErr = fmt.Errorf("periph host init: %w", err)
			return
		}

		bus, err := i2creg.Open(cfg.BMEI2CBus)
		if err != nil {
			bmeInitErr = fmt.Errorf("BME I2C open: %w", err)
			return
		}

		bmeDev, err = bmxx80.NewI2C(bus, cfg.BMEI2CAddr, &bmxx80.DefaultOpts)
		if err != nil {
			bmeInitErr = fmt.Errorf("BME init: %w", err)
			return
		}

		fmt.Println("BME280 sensor initialized successfully")
	})
}

// ReadEnv reads the BME280 (temp + humidity + pressure) and reduces the
// pressure to sea level using the given station altitude.
func ReadEnv(altitudeM float64) (env.Sample, error) {
	initBME()
	if bmeInitErr != nil {
		return env.Sample{}, bmeInitErr
	}

	var e physic.Env
	if err := bmeDev.Sense(&e); err != nil {
		return env.Sample{}, fmt.Errorf("BME sense: %w", err)
	}

	tempC := e.Temperature.Celsius()
	pressureMb := float64(e.Pressure) / float64(physic.Pascal) / 100.0 // 1 mbar = 100 Pa
	humidityPct := float64(e.Humidity) / float64(physic.PercentRH)

	return env.Sample{
		Temperature: tempC,
		Humidity:    humidityPct,
		Pressure:    pressureMb,
		SeaLevel:    env.SeaLevelPressure(pressureMb, tempC, altitudeM),
	}, nil
}
