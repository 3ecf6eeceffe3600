package inmemory

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
)

var _ = Describe("Store", func() {
	var (
		st  *Store
		ctx context.Context
	)

	BeforeEach(func() {
		st = NewStore()
		ctx = context.Background()
	})

	insert := func(conversationID string, end int, status memory.Status, text string) int {
		id, err := st.InsertMemory(ctx, store.InsertParams{
			ConversationID: conversationID,
			MemoryText:     text,
			StartSequence:  0,
			EndSequence:    end,
			Status:         status,
		})
		Expect(err).NotTo(HaveOccurred())
		return id
	}

	Describe("InsertMemory", func() {
		It("assigns monotonically increasing ids", func() {
			first := insert("conv-1", 5, memory.StatusProcessing, "")
			second := insert("conv-1", 7, memory.StatusProcessing, "")
			Expect(second).To(Equal(first + 1))
		})

		It("rejects a completed record with empty text", func() {
			_, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})

			var verr store.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("rejects an unknown status", func() {
			_, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				Status:         memory.Status("done"),
			})
			Expect(err).To(HaveOccurred())
		})

		It("stores the base memory id", func() {
			baseID := insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)

			id, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				EndSequence:    9,
				BaseMemoryID:   &baseID,
				Status:         memory.StatusProcessing,
			})
			Expect(err).NotTo(HaveOccurred())

			rec, err := st.GetMemoryByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.BaseMemoryID).To(HaveValue(Equal(baseID)))
		})
	})

	Describe("GetLatestMemory", func() {
		It("returns nil, nil when no record matches", func() {
			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})

		It("returns the record with the highest end sequence", func() {
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["old"]}`)
			insert("conv-1", 9, memory.StatusCompleted, `{"facts":["new"]}`)

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.EndSequence).To(Equal(9))
		})

		It("filters by status", func() {
			insert("conv-1", 9, memory.StatusFailed, "")
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.EndSequence).To(Equal(5))
		})

		It("filters by conversation", func() {
			insert("conv-2", 9, memory.StatusCompleted, `{"facts":["other"]}`)

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})

		It("returns a copy that does not alias internal state", func() {
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			rec.MemoryText = "mutated"

			again, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.MemoryText).To(Equal(`{"facts":["a"]}`))
		})
	})

	Describe("GetMemoryByID", func() {
		It("returns NotFoundError for a missing id", func() {
			_, err := st.GetMemoryByID(ctx, 42)

			var nferr store.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
			Expect(nferr.MemoryID).To(Equal(42))
		})
	})

	Describe("ExistsProcessing", func() {
		It("is false with no processing rows", func() {
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)

			exists, err := st.ExistsProcessing(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("sees an in-flight row for the same conversation only", func() {
			insert("conv-1", 9, memory.StatusProcessing, "")

			exists, err := st.ExistsProcessing(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = st.ExistsProcessing(ctx, "conv-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("clears once the row reaches a terminal status", func() {
			id := insert("conv-1", 9, memory.StatusProcessing, "")

			Expect(st.UpdateMemoryStatus(ctx, id, store.StatusTransition{
				Status: memory.StatusFailed,
			})).To(Succeed())

			exists, err := st.ExistsProcessing(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("UpdateMemoryStatus", func() {
		It("completes a processing row with its memory text", func() {
			id := insert("conv-1", 9, memory.StatusProcessing, "")

			ms := int64(120)
			Expect(st.UpdateMemoryStatus(ctx, id, store.StatusTransition{
				Status:       memory.StatusCompleted,
				MemoryText:   `{"facts":["a"]}`,
				GenerationMs: &ms,
			})).To(Succeed())

			rec, err := st.GetMemoryByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Status).To(Equal(memory.StatusCompleted))
			Expect(rec.MemoryText).To(Equal(`{"facts":["a"]}`))
			Expect(rec.GenerationMs).To(HaveValue(Equal(int64(120))))
		})

		It("rejects completion with whitespace-only text", func() {
			id := insert("conv-1", 9, memory.StatusProcessing, "")

			err := st.UpdateMemoryStatus(ctx, id, store.StatusTransition{
				Status:     memory.StatusCompleted,
				MemoryText: "   ",
			})

			var verr store.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("does not overwrite memory text on a failed transition", func() {
			id := insert("conv-1", 9, memory.StatusProcessing, "")

			Expect(st.UpdateMemoryStatus(ctx, id, store.StatusTransition{
				Status:     memory.StatusFailed,
				MemoryText: "ignored",
			})).To(Succeed())

			rec, err := st.GetMemoryByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Status).To(Equal(memory.StatusFailed))
			Expect(rec.MemoryText).To(Equal(""))
		})

		It("returns NotFoundError for a missing id", func() {
			err := st.UpdateMemoryStatus(ctx, 42, store.StatusTransition{
				Status: memory.StatusFailed,
			})

			var nferr store.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
		})
	})

	Describe("GetMemoryHistory", func() {
		It("orders by end sequence descending", func() {
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)
			insert("conv-1", 9, memory.StatusFailed, "")
			insert("conv-1", 13, memory.StatusCompleted, `{"facts":["b"]}`)

			records, err := st.GetMemoryHistory(ctx, "conv-1", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].EndSequence).To(Equal(13))
			Expect(records[1].EndSequence).To(Equal(9))
			Expect(records[2].EndSequence).To(Equal(5))
		})

		It("applies the limit after ordering", func() {
			insert("conv-1", 5, memory.StatusCompleted, `{"facts":["a"]}`)
			insert("conv-1", 9, memory.StatusCompleted, `{"facts":["b"]}`)

			records, err := st.GetMemoryHistory(ctx, "conv-1", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].EndSequence).To(Equal(9))
		})

		It("returns nothing for an unknown conversation", func() {
			records, err := st.GetMemoryHistory(ctx, "conv-1", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})
	})
})
