package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

// eventgen floods the order-events topic with fake mutation events so the
// consumer side (cache invalidation) can be exercised without a real form
// in front of it. Controlled over HTTP: POST /start, POST /stop, GET /stats.

type Generator struct {
	writer    *kafka.Writer
	isRunning atomic.Bool
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	totalSent atomic.Int64
}

type StartRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

func NewGenerator(brokers []string, topic string) *Generator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Generator{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

func (g *Generator) Start(rate int, duration time.Duration) {
	if g.isRunning.Swap(true) {
		return
	}
	g.totalSent.Store(0)
	log.Printf("generating events: rate=%d msg/s, duration=%v", rate, duration)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.isRunning.Store(false)

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		timer := time.NewTimer(duration)
		defer timer.Stop()

		for {
			select {
			case <-ticker.C:
				value, err := json.Marshal(fakeEvent())
				if err != nil {
					log.Printf("marshal event: %v", err)
					continue
				}
				if err := g.writer.WriteMessages(g.ctx, kafka.Message{
					Value: value,
					Time:  time.Now(),
				}); err != nil {
					log.Printf("write event: %v", err)
					continue
				}
				g.totalSent.Add(1)
			case <-timer.C:
				log.Printf("done, total sent: %d", g.totalSent.Load())
				return
			case <-g.ctx.Done():
				log.Printf("stopped, total sent: %d", g.totalSent.Load())
				return
			}
		}
	}()
}

func (g *Generator) Stop() {
	if g.isRunning.Load() {
		g.cancel()
		g.wg.Wait()
		g.ctx, g.cancel = context.WithCancel(context.Background())
	}
}

func (g *Generator) Close() {
	g.Stop()
	g.writer.Close()
}

var eventTypes = []string{"order.created", "order.updated", "order.deleted"}

func fakeEvent() map[string]any {
	return map[string]any{
		"event_type":  eventTypes[rand.Intn(len(eventTypes))],
		"order_id":    fmt.Sprintf("ord_%d_%d", time.Now().UnixNano(), rand.Intn(1000)),
		"reference":   fmt.Sprintf("REF-%05d", rand.Intn(100000)),
		"terminal_id": fmt.Sprintf("term-%d", rand.Intn(8)),
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
}

func main() {
	brokers := []string{"kafka:9092"}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = []string{v}
	}
	topic := "order-events"
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		topic = v
	}

	gen := NewGenerator(brokers, topic)
	defer gen.Close()

	http.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req StartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Rate <= 0 {
			req.Rate = 10
		}
		duration, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration format: "+err.Error(), http.StatusBadRequest)
			return
		}
		gen.Start(req.Rate, duration)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	http.HandleFunc("/stop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		gen.Stop()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "stopped",
			"total_sent": gen.totalSent.Load(),
		})
	})

	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"is_running": gen.isRunning.Load(),
			"total_sent": gen.totalSent.Load(),
		})
	})

	port := ":8082"
	if v := os.Getenv("EVENTGEN_PORT"); v != "" {
		port = ":" + v
	}
	log.Printf("eventgen listening on %s", port)
	log.Fatal(http.ListenAndServe(port, nil))
}
