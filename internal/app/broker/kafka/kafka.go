// Package kafka is the broker sink implementation. Each send establishes a
// fresh client and tears it down afterwards, so a failed attempt leaves no
// shared connection state behind.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/escrima/go-orders-service/internal/app/usecase/publish"
)

type Sink struct {
	brokers []string
	topic   string
}

func New(brokers []string, topic string) *Sink {
	return &Sink{
		brokers: brokers,
		topic:   topic,
	}
}

func (s *Sink) Send(ctx context.Context, payload []byte) error {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", publish.ErrBrokerConnection, err)
	}
	defer client.Close()

	record := &kgo.Record{
		Topic:     s.topic,
		Value:     payload,
		Timestamp: time.Now(),
	}

	if err := client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("%w (topic %s): %s", publish.ErrBrokerTopic, s.topic, err)
	}

	return nil
}
