package eventstream

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewMemoryEvent", func() {
	It("stamps schema version, id, and timestamp", func() {
		event := NewMemoryEvent(EventTypeMemoryCompleted, "conv-1", 7, 0, 13)

		Expect(event.SchemaVersion).To(Equal(SchemaVersionV1))
		Expect(event.EventType).To(Equal(EventTypeMemoryCompleted))
		Expect(event.EventID).NotTo(BeEmpty())
		Expect(event.EmittedAt).NotTo(BeZero())
		Expect(event.ConversationID).To(Equal("conv-1"))
		Expect(event.MemoryID).To(Equal(7))
		Expect(event.StartSequence).To(Equal(0))
		Expect(event.EndSequence).To(Equal(13))
	})

	It("assigns a unique id per event", func() {
		a := NewMemoryEvent(EventTypeMemoryCompleted, "conv-1", 1, 0, 5)
		b := NewMemoryEvent(EventTypeMemoryCompleted, "conv-1", 1, 0, 5)
		Expect(a.EventID).NotTo(Equal(b.EventID))
	})

	It("omits empty error and generation time from the payload", func() {
		event := NewMemoryEvent(EventTypeMemoryFailed, "conv-1", 7, 0, 13)

		data, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).NotTo(ContainSubstring("\"error\""))
		Expect(string(data)).NotTo(ContainSubstring("generation_time_ms"))
	})
})
