package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
)

type Message struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// Publisher emits order events to a broker. A nil Publisher (no broker
// configured) is valid and publishes nothing.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.KafkaConfig) *Publisher {
	if cfg.BrokerAddress == "" {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.BrokerAddress),
			Topic:    cfg.Topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// OrderPaid publishes an order_paid event keyed by the order ref, retrying
// with backoff before giving up.
func (p *Publisher) OrderPaid(ctx context.Context, order models.Order) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(Message{EventType: "order_paid", Data: order})
	if err != nil {
		return fmt.Errorf("marshalling order event: %w", err)
	}

	msg := kafka.Message{Key: []byte(order.Ref), Value: payload}

	const maxRetries = 3
	for i := 0; i < maxRetries; i++ {
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			return nil
		}
		log.Error().Err(err).Str("order_ref", order.Ref).Msg("publishing order event failed")
		time.Sleep(time.Second * time.Duration(i+1))
	}
	return fmt.Errorf("publishing order event: %w", err)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
