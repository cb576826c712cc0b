package service

import (
	"testing"
	"time"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/mocks"
)

func TestStatsConsumerProcessOrder(t *testing.T) {
	store := mocks.NewStatsRecorder(t)
	consumer := NewStatsConsumer(nil, store)

	event := domain.OrderEvent{
		Type:      "order_registered",
		OrderID:   42,
		Items:     []domain.OrderEventItem{{ProductID: 1, Quantity: 2}},
		Timestamp: time.Now(),
	}
	store.On("RecordOrder", event).Return(nil)

	consumer.ProcessOrder(event)
}

func TestStatsConsumerIgnoresOtherEventTypes(t *testing.T) {
	store := mocks.NewStatsRecorder(t)
	consumer := NewStatsConsumer(nil, store)

	consumer.ProcessOrder(domain.OrderEvent{Type: "order_cancelled", OrderID: 1})

	store.AssertNotCalled(t, "RecordOrder")
}
