package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/antauren/star-burger/internal/domain"
)

// StatsConsumer feeds placed orders into the per-product counters.
type StatsConsumer struct {
	Reader *kafka.Reader
	Store  StatsRecorder
}

func NewStatsConsumer(reader *kafka.Reader, store StatsRecorder) *StatsConsumer {
	return &StatsConsumer{Reader: reader, Store: store}
}

func (c *StatsConsumer) Start(ctx context.Context) {
	log.Println("[statsworker] starting order consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("[statsworker] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[statsworker] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(event)
	}
}

func (c *StatsConsumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != "order_registered" {
		return
	}
	log.Printf("[statsworker] processing order %d with %d items", event.OrderID, len(event.Items))

	if err := c.Store.RecordOrder(event); err != nil {
		log.Printf("[statsworker] error recording order %d: %v", event.OrderID, err)
		return
	}
}
