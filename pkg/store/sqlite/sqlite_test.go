package sqlite_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/sqlite"
)

var _ = Describe("Store", func() {
	var (
		st  *sqlite.Store
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		st, err = sqlite.NewStore(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if st != nil {
			st.Close()
		}
	})

	Describe("NewStore", func() {
		It("creates a store with a file database", func() {
			tmpDir := GinkgoT().TempDir()
			dbPath := filepath.Join(tmpDir, "test.db")

			s, err := sqlite.NewStore(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer s.Close()

			_, err = os.Stat(dbPath)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("InsertMemory and GetMemoryByID", func() {
		It("round-trips a record", func() {
			id, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				MemoryText:     `{"facts":["a"]}`,
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())

			rec, err := st.GetMemoryByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.ConversationID).To(Equal("conv-1"))
			Expect(rec.MemoryText).To(Equal(`{"facts":["a"]}`))
			Expect(rec.EndSequence).To(Equal(5))
			Expect(rec.Status).To(Equal(memory.StatusCompleted))
			Expect(rec.CreatedAt).NotTo(BeZero())
		})

		It("persists the base memory chain", func() {
			baseID, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				MemoryText:     `{"facts":["a"]}`,
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())

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

		It("rejects a completed record with empty text", func() {
			_, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})

			var verr store.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("returns NotFoundError for a missing id", func() {
			_, err := st.GetMemoryByID(ctx, 999)

			var nferr store.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
		})
	})

	Describe("GetLatestMemory", func() {
		It("returns nil, nil when nothing matches", func() {
			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})

		It("returns the highest end sequence for the status", func() {
			for _, end := range []int{5, 13, 9} {
				_, err := st.InsertMemory(ctx, store.InsertParams{
					ConversationID: "conv-1",
					MemoryText:     `{"facts":["a"]}`,
					EndSequence:    end,
					Status:         memory.StatusCompleted,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.EndSequence).To(Equal(13))
		})
	})

	Describe("ExistsProcessing and UpdateMemoryStatus", func() {
		It("observes the processing row until its terminal transition", func() {
			id, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				EndSequence:    9,
				Status:         memory.StatusProcessing,
			})
			Expect(err).NotTo(HaveOccurred())

			exists, err := st.ExistsProcessing(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			ms := int64(42)
			Expect(st.UpdateMemoryStatus(ctx, id, store.StatusTransition{
				Status:       memory.StatusCompleted,
				MemoryText:   `{"facts":["a"]}`,
				GenerationMs: &ms,
			})).To(Succeed())

			exists, err = st.ExistsProcessing(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())

			rec, err := st.GetMemoryByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Status).To(Equal(memory.StatusCompleted))
			Expect(rec.GenerationMs).To(HaveValue(Equal(int64(42))))
		})

		It("returns NotFoundError when transitioning a missing record", func() {
			err := st.UpdateMemoryStatus(ctx, 999, store.StatusTransition{
				Status: memory.StatusFailed,
			})

			var nferr store.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
		})
	})

	Describe("GetMemoryHistory", func() {
		It("orders by end sequence descending with a limit", func() {
			for _, end := range []int{5, 9, 13} {
				_, err := st.InsertMemory(ctx, store.InsertParams{
					ConversationID: "conv-1",
					MemoryText:     `{"facts":["a"]}`,
					EndSequence:    end,
					Status:         memory.StatusCompleted,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			records, err := st.GetMemoryHistory(ctx, "conv-1", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].EndSequence).To(Equal(13))
			Expect(records[1].EndSequence).To(Equal(9))
		})
	})
})
