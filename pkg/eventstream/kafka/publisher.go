// Package kafka provides a Kafka-backed eventstream publisher.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/mnemolabs/mnemo/pkg/eventstream"
)

// Config holds Kafka publisher settings.
type Config struct {
	// Brokers is the list of bootstrap broker addresses.
	Brokers []string

	// Topic is the topic memory events are written to.
	Topic string
}

// Publisher implements eventstream.Publisher using a kafka-go Writer.
// Events are keyed by conversation id so a conversation's events land on
// one partition in order.
type Publisher struct {
	writer *kafkago.Writer

	mu     sync.Mutex
	closed bool
}

// NewPublisher creates a Kafka publisher for the given brokers and topic.
func NewPublisher(cfg Config) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafkago.Hash{},
		},
	}
}

// PublishMemory serializes the event as JSON and writes it to the topic.
func (p *Publisher) PublishMemory(ctx context.Context, event *eventstream.MemoryEvent) error {
	if event == nil {
		return eventstream.ErrNilEvent
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return eventstream.ErrClosed
	}
	p.mu.Unlock()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal memory event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.ConversationID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write memory event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}
