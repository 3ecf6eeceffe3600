package service

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/inmemory"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
	"github.com/mnemolabs/mnemo/pkg/worker"
)

func numberedMessages(n int) []memory.Message {
	msgs := make([]memory.Message, n)
	for i := range msgs {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		msgs[i] = memory.Message{Role: role, Content: "message"}
	}
	return msgs
}

var _ = Describe("MemoryService", func() {
	var (
		st   *inmemory.Store
		pool *worker.Pool
		svc  *MemoryService
		ctx  context.Context
	)

	newService := func(call summarizer.CallFunc) {
		var err error
		pool, err = worker.NewPool(&worker.Config{
			Store:      st,
			Summarizer: summarizer.New(call),
			Logger:     zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())

		svc, err = NewMemoryService(&Config{
			Store:  st,
			Pool:   pool,
			Logger: zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		st = inmemory.NewStore()
		ctx = context.Background()
		newService(func(context.Context, string) (string, error) {
			return `{"facts": ["the user is testing"]}`, nil
		})
	})

	AfterEach(func() {
		pool.Close()
	})

	insertCompleted := func(conversationID string, end int, text string) int {
		id, err := st.InsertMemory(ctx, store.InsertParams{
			ConversationID: conversationID,
			MemoryText:     text,
			StartSequence:  0,
			EndSequence:    end,
			Status:         memory.StatusCompleted,
		})
		Expect(err).NotTo(HaveOccurred())
		return id
	}

	Describe("NewMemoryService", func() {
		It("requires a store", func() {
			_, err := NewMemoryService(&Config{Pool: pool})
			Expect(err).To(MatchError(ContainSubstring("store is required")))
		})

		It("requires a worker pool", func() {
			_, err := NewMemoryService(&Config{Store: st})
			Expect(err).To(MatchError(ContainSubstring("worker pool is required")))
		})
	})

	Describe("GetContextForWorkflow", func() {
		It("requires a conversation id", func() {
			_, err := svc.GetContextForWorkflow(ctx, "", numberedMessages(4))
			Expect(err).To(HaveOccurred())
		})

		Context("without memory", func() {
			It("returns everything before the newest message as gap", func() {
				cc, err := svc.GetContextForWorkflow(ctx, "conv-1", numberedMessages(4))
				Expect(err).NotTo(HaveOccurred())
				Expect(cc.Memory).To(BeNil())
				Expect(cc.GapMessages).To(HaveLen(3))
			})

			It("returns an empty gap for a single-message conversation", func() {
				cc, err := svc.GetContextForWorkflow(ctx, "conv-1", numberedMessages(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(cc.GapMessages).To(BeEmpty())
			})
		})

		Context("with a completed memory", func() {
			It("returns the decoded memory and the uncovered middle messages", func() {
				insertCompleted("conv-1", 5, `{"facts": ["established earlier"]}`)

				// Coverage ends at 5; messages 6 and 7 are gap, 8 is the
				// newest and excluded.
				cc, err := svc.GetContextForWorkflow(ctx, "conv-1", numberedMessages(9))
				Expect(err).NotTo(HaveOccurred())
				Expect(cc.Memory).NotTo(BeNil())
				Expect(cc.Memory.Facts).To(Equal([]string{"established earlier"}))
				Expect(cc.GapMessages).To(HaveLen(2))
			})

			It("returns an empty gap when the memory covers everything but the newest", func() {
				insertCompleted("conv-1", 5, `{"facts": ["a"]}`)

				cc, err := svc.GetContextForWorkflow(ctx, "conv-1", numberedMessages(7))
				Expect(err).NotTo(HaveOccurred())
				Expect(cc.GapMessages).To(BeEmpty())
			})

			It("ignores failed records when picking the memory", func() {
				insertCompleted("conv-1", 5, `{"facts": ["good"]}`)
				_, err := st.InsertMemory(ctx, store.InsertParams{
					ConversationID: "conv-1",
					StartSequence:  0,
					EndSequence:    9,
					Status:         memory.StatusFailed,
				})
				Expect(err).NotTo(HaveOccurred())

				cc, err := svc.GetContextForWorkflow(ctx, "conv-1", numberedMessages(12))
				Expect(err).NotTo(HaveOccurred())
				Expect(cc.Memory.Facts).To(Equal([]string{"good"}))
			})
		})
	})

	Describe("TriggerSummarizationIfNeeded", func() {
		It("does not trigger below the threshold", func() {
			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 4, numberedMessages(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeFalse())
			Expect(st.Count()).To(BeZero())
		})

		It("triggers at the threshold and eventually completes", func() {
			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 5, numberedMessages(6))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeTrue())

			Eventually(func() *memory.MemoryRecord {
				rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
				Expect(err).NotTo(HaveOccurred())
				return rec
			}, 2*time.Second, 10*time.Millisecond).ShouldNot(BeNil())

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.StartSequence).To(Equal(0))
			Expect(rec.EndSequence).To(Equal(5))

			decoded := memory.Decode(rec.MemoryText)
			Expect(decoded.Facts).To(Equal([]string{"the user is testing"}))
		})

		It("skips while a summarization is in flight", func() {
			_, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-1",
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusProcessing,
			})
			Expect(err).NotTo(HaveOccurred())

			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 7, numberedMessages(8))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeFalse())
			Expect(st.Count()).To(Equal(1))
		})

		It("does not let another conversation's in-flight row block the trigger", func() {
			_, err := st.InsertMemory(ctx, store.InsertParams{
				ConversationID: "conv-2",
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusProcessing,
			})
			Expect(err).NotTo(HaveOccurred())

			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 5, numberedMessages(6))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeTrue())
		})

		It("chains onto the latest completed memory", func() {
			baseID := insertCompleted("conv-1", 5, `{"facts": ["established earlier"]}`)

			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 9, numberedMessages(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeTrue())

			Eventually(func() int {
				records, err := st.GetMemoryHistory(ctx, "conv-1", 10)
				Expect(err).NotTo(HaveOccurred())
				for _, rec := range records {
					if rec.Status == memory.StatusCompleted && rec.EndSequence == 9 {
						return 1
					}
				}
				return 0
			}, 2*time.Second, 10*time.Millisecond).Should(Equal(1))

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.BaseMemoryID).To(HaveValue(Equal(baseID)))

			decoded := memory.Decode(rec.MemoryText)
			Expect(decoded.Facts).To(ContainElement("established earlier"))
			Expect(decoded.Facts).To(ContainElement("the user is testing"))
		})

		It("plans an even-aligned trailing window for long conversations", func() {
			triggered, err := svc.TriggerSummarizationIfNeeded(ctx, "conv-1", 20, numberedMessages(21))
			Expect(err).NotTo(HaveOccurred())
			Expect(triggered).To(BeTrue())

			Eventually(func() *memory.MemoryRecord {
				rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
				Expect(err).NotTo(HaveOccurred())
				return rec
			}, 2*time.Second, 10*time.Millisecond).ShouldNot(BeNil())

			rec, err := st.GetLatestMemory(ctx, "conv-1", memory.StatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.StartSequence).To(Equal(8))
			Expect(rec.EndSequence).To(Equal(20))
		})

		It("releases the lock and reports ErrQueueFull when the pool rejects the job", func() {
			pool.Close()

			block := make(chan struct{})
			defer close(block)

			var err error
			pool, err = worker.NewPool(&worker.Config{
				Store: st,
				Summarizer: summarizer.New(func(context.Context, string) (string, error) {
					<-block
					return `{"facts": ["a"]}`, nil
				}),
				NumWorkers: 1,
				QueueSize:  1,
				Logger:     zap.NewNop(),
			})
			Expect(err).NotTo(HaveOccurred())

			svc, err = NewMemoryService(&Config{
				Store:  st,
				Pool:   pool,
				Logger: zap.NewNop(),
			})
			Expect(err).NotTo(HaveOccurred())

			// Saturate the pool with distinct conversations so the
			// in-flight gate does not short-circuit the trigger. With one
			// blocked worker and a queue of one, the third trigger at the
			// latest gets dropped.
			var dropped string
			for i := 0; i < 10; i++ {
				conv := string(rune('a' + i))
				triggered, err := svc.TriggerSummarizationIfNeeded(ctx, conv, 5, numberedMessages(6))
				if err != nil {
					Expect(err).To(MatchError(ErrQueueFull))
					Expect(triggered).To(BeFalse())
					dropped = conv
					break
				}
			}
			Expect(dropped).NotTo(BeEmpty())

			// The dropped job's processing row must have been released so
			// the conversation is not locked forever.
			records, err := st.GetMemoryHistory(ctx, dropped, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Status).To(Equal(memory.StatusFailed))
		})
	})

	Describe("GetLatestMemory", func() {
		It("returns nil, nil when the conversation has no completed memory", func() {
			rec, err := svc.GetLatestMemory(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})
	})

	Describe("MemoryHistory", func() {
		It("returns records newest first", func() {
			insertCompleted("conv-1", 5, `{"facts": ["a"]}`)
			insertCompleted("conv-1", 9, `{"facts": ["b"]}`)

			records, err := svc.MemoryHistory(ctx, "conv-1", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].EndSequence).To(Equal(9))
		})
	})
})
