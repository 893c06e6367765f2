package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes CartChanged events keyed by owner, so one owner's
// events stay ordered within a partition.
type KafkaPublisher struct {
	w *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
			MaxAttempts:            3,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev app.CartChanged) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write cart event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

type linePayload struct {
	ProductRef string `json:"product_ref"`
	Quantity   int    `json:"quantity"`
}

type cartChangedPayload struct {
	OwnerID    string        `json:"owner_id"`
	Action     string        `json:"action"`
	ProductRef string        `json:"product_ref,omitempty"`
	Version    int64         `json:"version"`
	Lines      []linePayload `json:"lines"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func encode(ev app.CartChanged) (kafka.Message, error) {
	payload := cartChangedPayload{
		OwnerID:    ev.OwnerID.String(),
		Action:     ev.Action,
		Version:    ev.Version,
		Lines:      make([]linePayload, 0, len(ev.Lines)),
		OccurredAt: ev.OccurredAt,
	}
	if ev.ProductRef != nil {
		payload.ProductRef = ev.ProductRef.String()
	}
	for _, l := range ev.Lines {
		payload.Lines = append(payload.Lines, linePayload{ProductRef: l.ProductRef.String(), Quantity: l.Quantity})
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode cart event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(payload.OwnerID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("cart.changed")},
		},
	}, nil
}
