package kafka

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/eventstream"
)

var _ = Describe("Publisher", func() {
	newTestPublisher := func() *Publisher {
		return NewPublisher(Config{
			Brokers: []string{"localhost:9092"},
			Topic:   "mnemo.memory",
		})
	}

	It("rejects a nil event before touching the wire", func() {
		p := newTestPublisher()
		defer p.Close()

		err := p.PublishMemory(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})

	It("refuses to publish after close", func() {
		p := newTestPublisher()
		Expect(p.Close()).To(Succeed())

		event := eventstream.NewMemoryEvent(eventstream.EventTypeMemoryCompleted, "conv-1", 1, 0, 5)
		err := p.PublishMemory(context.Background(), event)
		Expect(err).To(MatchError(eventstream.ErrClosed))
	})

	It("is safe to close twice", func() {
		p := newTestPublisher()
		Expect(p.Close()).To(Succeed())
		Expect(p.Close()).To(Succeed())
	})
})
