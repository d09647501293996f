package app

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/weather_companion/internal/config"
	"github.com/relabs-tech/weather_companion/internal/env"
	"github.com/relabs-tech/weather_companion/internal/forecast"
)

const (
	displayW = 128
	displayH = 64

	charW      = 7 // basicfont.Face7x13 advance
	marqueeGap = 24
	scrollStep = 4
)

// DisplayData holds the latest data for display
type DisplayData struct {
	mu sync.RWMutex

	sample     env.Sample
	haveSample bool

	report     forecast.Report
	haveReport bool
}

// marquee tracks the horizontal scroll position of the forecast text.
type marquee struct {
	text   string
	offset int
}

// advance moves the scroll window and resets when the text changes.
func (m *marquee) advance(text string) int {
	if text != m.text {
		m.text = text
		m.offset = 0
		return 0
	}
	textW := len(text) * charW
	if textW <= displayW {
		return 0
	}
	m.offset = (m.offset + scrollStep) % (textW + marqueeGap)
	return m.offset
}

func RunDisplay() error {
	cfg := config.Get()

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open("")
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Println("display: SSD1306 initialized")

	if err := showSplash(dev); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	// Data storage
	data := &DisplayData{}

	// Connect to MQTT
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDDisplay)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: connected to MQTT broker at %s", cfg.MQTTBroker)

	if err := subscribeDisplay(client, data, cfg); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	// Display update loop
	ticker := time.NewTicker(time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond)
	defer ticker.Stop()

	scroll := &marquee{}

	log.Println("display: starting update loop")

	for range ticker.C {
		// Read data without copying the mutex
		data.mu.RLock()
		snapshot := DisplayData{
			sample:     data.sample,
			haveSample: data.haveSample,
			report:     data.report,
			haveReport: data.haveReport,
		}
		data.mu.RUnlock()

		if err := updateDisplay(dev, cfg.DisplayContent, &snapshot, scroll); err != nil {
			log.Printf("display: error updating display: %v", err)
		}
	}

	return nil
}

func subscribeDisplay(client mqtt.Client, data *DisplayData, cfg *config.Config) error {
	token := client.Subscribe(cfg.TopicEnvSample, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s env.Sample
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("display: sample unmarshal error: %v", err)
			return
		}
		data.mu.Lock()
		data.sample = s
		data.haveSample = true
		data.mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: subscribed to %s", cfg.TopicEnvSample)

	token = client.Subscribe(cfg.TopicForecast, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r forecast.Report
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("display: report unmarshal error: %v", err)
			return
		}
		data.mu.Lock()
		data.report = r
		data.haveReport = true
		data.mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: subscribed to %s", cfg.TopicForecast)

	return nil
}

func updateDisplay(dev *ssd1306.Dev, content string, data *DisplayData, scroll *marquee) error {
	switch content {
	case "forecast":
		return updateForecastDisplay(dev, data.report, data.haveReport, scroll)
	case "readings":
		return updateReadingsDisplay(dev, data.sample, data.haveSample)
	case "humidex":
		return updateHumidexDisplay(dev, data.report, data.haveReport)
	default:
		return fmt.Errorf("unknown display content type: %s", content)
	}
}

func newFrame() (*image1bit.VerticalLSB, *font.Drawer) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, displayW, displayH))

	// Blank image
	for i := 0; i < len(img.Pix); i++ {
		img.Pix[i] = 0
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	return img, drawer
}

func updateForecastDisplay(dev *ssd1306.Dev, report forecast.Report, haveData bool, scroll *marquee) error {
	img, drawer := newFrame()

	if !haveData {
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Forecast"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("Waiting..."))
		return dev.Draw(dev.Bounds(), img, image.Point{})
	}

	// Icon glyph top-left, pressure and trend beside it
	drawGlyph(img, report.Icon, 0, 0)

	drawer.Dot = fixed.P(28, 13)
	drawer.DrawBytes([]byte(fmt.Sprintf("%6.1fmb", report.Pressure)))

	drawer.Dot = fixed.P(28, 26)
	drawer.DrawBytes([]byte(report.Trend))

	// Description scrolls when wider than the panel
	offset := scroll.advance(report.Description)
	drawer.Dot = fixed.P(-offset, 46)
	drawer.DrawBytes([]byte(report.Description))
	if textW := len(report.Description) * charW; textW > displayW {
		// second copy for seamless wrap-around
		drawer.Dot = fixed.P(textW+marqueeGap-offset, 46)
		drawer.DrawBytes([]byte(report.Description))
	}

	drawer.Dot = fixed.P(0, 62)
	drawer.DrawBytes([]byte(fmt.Sprintf("%4.1fC  %3.0f%%", report.Temperature, report.Humidity)))

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func updateReadingsDisplay(dev *ssd1306.Dev, sample env.Sample, haveData bool) error {
	img, drawer := newFrame()

	if !haveData {
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Readings"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("Waiting..."))
	} else {
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte(fmt.Sprintf("T: %6.1f C", sample.Temperature)))

		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte(fmt.Sprintf("H: %6.1f %%", sample.Humidity)))

		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte(fmt.Sprintf("P: %6.1f mb", sample.Pressure)))

		drawer.Dot = fixed.P(0, 52)
		drawer.DrawBytes([]byte(fmt.Sprintf("P0:%6.1f mb", sample.SeaLevel)))
	}

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func updateHumidexDisplay(dev *ssd1306.Dev, report forecast.Report, haveData bool) error {
	img, drawer := newFrame()

	if !haveData {
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Humidex"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("Waiting..."))
	} else {
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte("Feels like"))

		drawer.Dot = fixed.P(0, 33)
		drawer.DrawBytes([]byte(fmt.Sprintf("%5.1f C", report.Humidex)))

		drawer.Dot = fixed.P(0, 52)
		drawer.DrawBytes([]byte(fmt.Sprintf("air %4.1f C", report.Temperature)))
	}

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func showSplash(dev *ssd1306.Dev) error {
	img, drawer := newFrame()

	drawer.Dot = fixed.P(10, 26)
	drawer.DrawBytes([]byte("Weather"))

	drawer.Dot = fixed.P(10, 43)
	drawer.DrawBytes([]byte("Companion"))

	drawer.Dot = fixed.P(25, 56)
	drawer.DrawBytes([]byte("..."))

	return dev.Draw(dev.Bounds(), img, image.Point{})
}
