package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/weather_companion/internal/config"
	"github.com/relabs-tech/weather_companion/internal/forecast"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// local device UI, no cross-origin concerns
	CheckOrigin: func(r *http.Request) bool { return true },
}

func RunWeb() error {
	cfg := config.Get()

	var (
		mu         sync.RWMutex
		lastReport forecast.Report
		haveReport bool
		wsClients  = map[*websocket.Conn]bool{}
	)

	// 1) Connect to MQTT broker on the Pi
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to forecast topic; cache the report and push it to any
	//    connected websocket clients
	token := client.Subscribe(cfg.TopicForecast, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r forecast.Report
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("web: MQTT payload unmarshal error: %v", err)
			return
		}
		mu.Lock()
		lastReport = r
		haveReport = true
		for conn := range wsClients {
			if err := conn.WriteJSON(r); err != nil {
				log.Printf("web: websocket write error: %v", err)
				conn.Close()
				delete(wsClients, conn)
			}
		}
		mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to MQTT topic %s", cfg.TopicForecast)

	// 3) JSON API endpoint: latest conditions
	http.HandleFunc("/api/conditions", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveReport {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastReport); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// 4) Websocket endpoint: live conditions push
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}

		mu.Lock()
		wsClients[conn] = true
		if haveReport {
			if err := conn.WriteJSON(lastReport); err != nil {
				log.Printf("web: websocket write error: %v", err)
				conn.Close()
				delete(wsClients, conn)
			}
		}
		mu.Unlock()

		// Drain (and discard) client messages so we notice disconnects
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					mu.Lock()
					delete(wsClients, conn)
					mu.Unlock()
					conn.Close()
					return
				}
			}
		}()
	})

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
