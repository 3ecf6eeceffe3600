package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/eventstream"
	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/inmemory"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*eventstream.MemoryEvent
}

func (p *capturingPublisher) PublishMemory(_ context.Context, event *eventstream.MemoryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) all() []*eventstream.MemoryEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*eventstream.MemoryEvent{}, p.events...)
}

func messagesUpTo(n int) []memory.Message {
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

var _ = Describe("NewPool", func() {
	It("requires a store", func() {
		_, err := NewPool(&Config{
			Summarizer: summarizer.New(func(context.Context, string) (string, error) { return "", nil }),
			Logger:     zap.NewNop(),
		})
		Expect(err).To(MatchError(ContainSubstring("store is required")))
	})

	It("requires a summarizer", func() {
		_, err := NewPool(&Config{
			Store:  inmemory.NewStore(),
			Logger: zap.NewNop(),
		})
		Expect(err).To(MatchError(ContainSubstring("summarizer is required")))
	})
})

var _ = Describe("Pool", func() {
	var (
		st  *inmemory.Store
		ctx context.Context
	)

	BeforeEach(func() {
		st = inmemory.NewStore()
		ctx = context.Background()
	})

	newPool := func(call summarizer.CallFunc, publisher eventstream.Publisher) *Pool {
		pool, err := NewPool(&Config{
			Store:      st,
			Summarizer: summarizer.New(call),
			Publisher:  publisher,
			NumWorkers: 1,
			Logger:     zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())
		return pool
	}

	insertProcessing := func(conversationID string, start, end int, baseID *int) int {
		id, err := st.InsertMemory(ctx, store.InsertParams{
			ConversationID: conversationID,
			StartSequence:  start,
			EndSequence:    end,
			BaseMemoryID:   baseID,
			Status:         memory.StatusProcessing,
		})
		Expect(err).NotTo(HaveOccurred())
		return id
	}

	It("completes a job and persists the merged memory", func() {
		pool := newPool(func(context.Context, string) (string, error) {
			return `{"facts": ["the user is testing"]}`, nil
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 5, nil)
		done := make(chan Result, 1)

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    5,
			Messages:       messagesUpTo(8),
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusCompleted))
		Expect(result.Err).NotTo(HaveOccurred())

		rec, err := st.GetMemoryByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Status).To(Equal(memory.StatusCompleted))
		Expect(rec.GenerationMs).NotTo(BeNil())

		decoded := memory.Decode(rec.MemoryText)
		Expect(decoded.Facts).To(Equal([]string{"the user is testing"}))
	})

	It("summarizes only the messages after the base memory's coverage", func() {
		baseID, err := st.InsertMemory(ctx, store.InsertParams{
			ConversationID: "conv-1",
			MemoryText:     `{"facts": ["established earlier"]}`,
			StartSequence:  0,
			EndSequence:    5,
			Status:         memory.StatusCompleted,
		})
		Expect(err).NotTo(HaveOccurred())

		var captured string
		pool := newPool(func(_ context.Context, prompt string) (string, error) {
			captured = prompt
			return `{"facts": ["fresh insight"]}`, nil
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 9, &baseID)
		done := make(chan Result, 1)

		messages := messagesUpTo(10)
		for i := range messages {
			messages[i].Content = "message " + string(rune('0'+i))
		}

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    9,
			BaseMemoryID:   &baseID,
			Messages:       messages,
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusCompleted))

		// Only sequences 6 through 9 go to the model.
		Expect(captured).To(ContainSubstring("message 6"))
		Expect(captured).NotTo(ContainSubstring("message 5"))
		Expect(captured).To(ContainSubstring("established earlier"))

		rec, err := st.GetMemoryByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		decoded := memory.Decode(rec.MemoryText)
		Expect(decoded.Facts).To(Equal([]string{"established earlier", "fresh insight"}))
	})

	It("marks the row failed when the provider call fails", func() {
		pool := newPool(func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 5, nil)
		done := make(chan Result, 1)

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    5,
			Messages:       messagesUpTo(8),
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusFailed))

		var perr *summarizer.ProviderError
		Expect(errors.As(result.Err, &perr)).To(BeTrue())

		rec, err := st.GetMemoryByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Status).To(Equal(memory.StatusFailed))
		Expect(rec.MemoryText).To(BeEmpty())
	})

	It("marks the row failed when the model output cannot be parsed", func() {
		pool := newPool(func(context.Context, string) (string, error) {
			return "I could not produce JSON, sorry.", nil
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 5, nil)
		done := make(chan Result, 1)

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    5,
			Messages:       messagesUpTo(8),
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusFailed))

		var perr *summarizer.ParseError
		Expect(errors.As(result.Err, &perr)).To(BeTrue())
	})

	It("refuses to complete with an empty extraction", func() {
		pool := newPool(func(context.Context, string) (string, error) {
			return `{}`, nil
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 5, nil)
		done := make(chan Result, 1)

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    5,
			Messages:       messagesUpTo(8),
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusFailed))
		Expect(result.Err).To(MatchError(ContainSubstring("empty memory")))
	})

	It("fails a job whose window holds no new messages", func() {
		baseID, err := st.InsertMemory(ctx, store.InsertParams{
			ConversationID: "conv-1",
			MemoryText:     `{"facts": ["a"]}`,
			StartSequence:  0,
			EndSequence:    9,
			Status:         memory.StatusCompleted,
		})
		Expect(err).NotTo(HaveOccurred())

		pool := newPool(func(context.Context, string) (string, error) {
			return `{"facts": ["should not be called"]}`, nil
		}, nil)
		defer pool.Close()

		id := insertProcessing("conv-1", 0, 9, &baseID)
		done := make(chan Result, 1)

		Expect(pool.Enqueue(Job{
			MemoryID:       id,
			ConversationID: "conv-1",
			StartSequence:  0,
			EndSequence:    9,
			BaseMemoryID:   &baseID,
			Messages:       messagesUpTo(10),
			Done:           done,
		})).To(BeTrue())

		var result Result
		Eventually(done, 2*time.Second).Should(Receive(&result))
		Expect(result.Status).To(Equal(memory.StatusFailed))
		Expect(result.Err).To(MatchError(ContainSubstring("no new messages")))
	})

	It("publishes a terminal-outcome event for both outcomes", func() {
		publisher := &capturingPublisher{}

		fail := false
		pool := newPool(func(context.Context, string) (string, error) {
			if fail {
				return "", errors.New("boom")
			}
			return `{"facts": ["a"]}`, nil
		}, publisher)
		defer pool.Close()

		runJob := func(conversationID string) {
			id := insertProcessing(conversationID, 0, 5, nil)
			done := make(chan Result, 1)
			Expect(pool.Enqueue(Job{
				MemoryID:       id,
				ConversationID: conversationID,
				StartSequence:  0,
				EndSequence:    5,
				Messages:       messagesUpTo(8),
				Done:           done,
			})).To(BeTrue())
			Eventually(done, 2*time.Second).Should(Receive())
		}

		runJob("conv-ok")
		fail = true
		runJob("conv-bad")

		Eventually(func() int { return len(publisher.all()) }, 2*time.Second).Should(Equal(2))

		events := publisher.all()
		Expect(events[0].EventType).To(Equal(eventstream.EventTypeMemoryCompleted))
		Expect(events[0].ConversationID).To(Equal("conv-ok"))
		Expect(events[1].EventType).To(Equal(eventstream.EventTypeMemoryFailed))
		Expect(events[1].ConversationID).To(Equal("conv-bad"))
	})

	It("reports a full queue without blocking", func() {
		block := make(chan struct{})
		pool, err := NewPool(&Config{
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

		makeJob := func() Job {
			id := insertProcessing("conv-1", 0, 5, nil)
			return Job{
				MemoryID:       id,
				ConversationID: "conv-1",
				StartSequence:  0,
				EndSequence:    5,
				Messages:       messagesUpTo(8),
			}
		}

		// First job occupies the worker; once the queue also fills,
		// Enqueue must report the drop instead of blocking.
		Expect(pool.Enqueue(makeJob())).To(BeTrue())
		Eventually(func() bool {
			return pool.Enqueue(makeJob()) == false
		}, time.Second).Should(BeTrue())

		close(block)
		pool.Close()
	})
})
