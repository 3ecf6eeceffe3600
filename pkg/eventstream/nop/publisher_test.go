package nop

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/eventstream"
)

var _ = Describe("Publisher", func() {
	It("discards events without error", func() {
		p := NewPublisher()
		event := eventstream.NewMemoryEvent(eventstream.EventTypeMemoryCompleted, "conv-1", 1, 0, 5)

		Expect(p.PublishMemory(context.Background(), event)).To(Succeed())
		Expect(p.Close()).To(Succeed())
	})

	It("rejects a nil event", func() {
		p := NewPublisher()
		err := p.PublishMemory(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})
})
