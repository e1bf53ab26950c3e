package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Shipment struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

type OrderRef struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
}

type Data struct {
	Order    OrderRef  `json:"order"`
	Shipment *Shipment `json:"shipment,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

type SupplierEvent struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateEvent(orderID string) SupplierEvent {
	ev := SupplierEvent{
		Data: Data{Order: OrderRef{ID: int64(rand.Intn(9_000_000) + 1_000_000), ExternalID: orderID}},
	}
	switch n := rand.Intn(10); {
	case n < 7:
		tracking := "1Z" + randomString(16)
		ev.Type = "package_shipped"
		ev.Data.Shipment = &Shipment{
			TrackingNumber: tracking,
			TrackingURL:    "https://track.example.com/" + tracking,
		}
	case n < 9:
		ev.Type = "order_failed"
		ev.Data.Reason = "print file could not be processed"
	default:
		ev.Type = "order_canceled"
		ev.Data.Reason = "canceled by supplier"
	}
	return ev
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "supplier-events", "supplier events topic")
	orders := flag.String("orders", "", "comma separated order ids to emit events for")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	ids := strings.Split(*orders, ",")
	if *orders == "" {
		log.Fatal("at least one order id is required")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ev := generateEvent(ids[rand.Intn(len(ids))])
			data, _ := json.Marshal(ev)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.Data.Order.ExternalID), Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println(ev.Type, "emitted for", ev.Data.Order.ExternalID)
		case <-ctx.Done():
			return
		}
	}
}
