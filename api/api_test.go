package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/service"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/inmemory"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
	"github.com/mnemolabs/mnemo/pkg/worker"
)

// testMessages builds an alternating user/assistant log of n messages.
func testMessages(n int) []memory.Message {
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

var _ = Describe("API server", func() {
	var (
		server *Server
		st     *inmemory.Store
		pool   *worker.Pool
	)

	BeforeEach(func() {
		st = inmemory.NewStore()

		summ := summarizer.New(func(_ context.Context, _ string) (string, error) {
			return `{"facts": ["the user is testing"]}`, nil
		})

		var err error
		pool, err = worker.NewPool(&worker.Config{
			Store:      st,
			Summarizer: summ,
			Logger:     zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())

		svc, err := service.NewMemoryService(&service.Config{
			Store:  st,
			Pool:   pool,
			Logger: zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())

		server = NewServer(Config{ListenAddr: ":0"}, svc, nil, zap.NewNop())
	})

	AfterEach(func() {
		pool.Close()
	})

	doJSON := func(method, path string, body any) *http.Response {
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		}

		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := server.app.Test(req, -1)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	decodeBody := func(resp *http.Response, out any) {
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Unmarshal(data, out)).To(Succeed())
	}

	Describe("GET /ping", func() {
		It("returns pong", func() {
			resp := doJSON(http.MethodGet, "/ping", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body string
			decodeBody(resp, &body)
			Expect(body).To(Equal("pong"))
		})
	})

	Describe("POST /conversations/:id/context", func() {
		It("returns all but the newest message as gap when no memory exists", func() {
			resp := doJSON(http.MethodPost, "/conversations/conv-1/context", ContextRequest{
				Messages: testMessages(4),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body ContextResponse
			decodeBody(resp, &body)
			Expect(body.Memory).To(BeNil())
			Expect(body.GapMessages).To(HaveLen(3))
		})

		It("returns memory plus the messages after its coverage", func() {
			_, err := st.InsertMemory(context.Background(), store.InsertParams{
				ConversationID: "conv-1",
				MemoryText:     `{"facts": ["established earlier"]}`,
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())

			resp := doJSON(http.MethodPost, "/conversations/conv-1/context", ContextRequest{
				Messages: testMessages(9),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body ContextResponse
			decodeBody(resp, &body)
			Expect(body.Memory).NotTo(BeNil())
			Expect(body.Memory.Facts).To(Equal([]string{"established earlier"}))
			Expect(body.GapMessages).To(HaveLen(2))
			Expect(body.Rendered).To(ContainSubstring("<memory>"))
			Expect(body.Rendered).To(ContainSubstring("<chat_history>"))
		})

		It("rejects a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/conversations/conv-1/context", bytes.NewReader([]byte("not json")))
			req.Header.Set("Content-Type", "application/json")

			resp, err := server.app.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /conversations/:id/summarize", func() {
		It("does not trigger below the threshold", func() {
			resp := doJSON(http.MethodPost, "/conversations/conv-1/summarize", SummarizeRequest{
				LastSavedSeq: 3,
				Messages:     testMessages(4),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusAccepted))

			var body SummarizeResponse
			decodeBody(resp, &body)
			Expect(body.Triggered).To(BeFalse())
		})

		It("triggers at the threshold and eventually completes", func() {
			resp := doJSON(http.MethodPost, "/conversations/conv-1/summarize", SummarizeRequest{
				LastSavedSeq: 7,
				Messages:     testMessages(8),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusAccepted))

			var body SummarizeResponse
			decodeBody(resp, &body)
			Expect(body.Triggered).To(BeTrue())

			Eventually(func() *memory.MemoryRecord {
				record, err := st.GetLatestMemory(context.Background(), "conv-1", memory.StatusCompleted)
				Expect(err).NotTo(HaveOccurred())
				return record
			}, 2*time.Second, 10*time.Millisecond).ShouldNot(BeNil())
		})
	})

	Describe("GET /conversations/:id/memory", func() {
		It("returns 404 when no completed memory exists", func() {
			resp := doJSON(http.MethodGet, "/conversations/conv-1/memory", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns the latest completed record", func() {
			_, err := st.InsertMemory(context.Background(), store.InsertParams{
				ConversationID: "conv-1",
				MemoryText:     `{"facts": ["a"]}`,
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())

			resp := doJSON(http.MethodGet, "/conversations/conv-1/memory", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var record memory.MemoryRecord
			decodeBody(resp, &record)
			Expect(record.EndSequence).To(Equal(5))
			Expect(record.Status).To(Equal(memory.StatusCompleted))
		})
	})

	Describe("GET /conversations/:id/history", func() {
		It("returns an empty list for an unknown conversation", func() {
			resp := doJSON(http.MethodGet, "/conversations/conv-1/history", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body struct {
				Count   int                    `json:"count"`
				Records []*memory.MemoryRecord `json:"records"`
			}
			decodeBody(resp, &body)
			Expect(body.Count).To(BeZero())
			Expect(body.Records).To(BeEmpty())
		})

		It("returns records newest first", func() {
			ctx := context.Background()
			for _, end := range []int{5, 7} {
				_, err := st.InsertMemory(ctx, store.InsertParams{
					ConversationID: "conv-1",
					MemoryText:     `{"facts": ["a"]}`,
					StartSequence:  0,
					EndSequence:    end,
					Status:         memory.StatusCompleted,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			resp := doJSON(http.MethodGet, "/conversations/conv-1/history?limit=10", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body struct {
				Count   int                    `json:"count"`
				Records []*memory.MemoryRecord `json:"records"`
			}
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(2))
			Expect(body.Records[0].EndSequence).To(Equal(7))
			Expect(body.Records[1].EndSequence).To(Equal(5))
		})
	})

	Describe("GET /memory/:id", func() {
		It("returns 404 for a missing record", func() {
			resp := doJSON(http.MethodGet, "/memory/999", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a non-integer id", func() {
			resp := doJSON(http.MethodGet, "/memory/abc", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns a record by id", func() {
			id, err := st.InsertMemory(context.Background(), store.InsertParams{
				ConversationID: "conv-1",
				StartSequence:  0,
				EndSequence:    5,
				Status:         memory.StatusProcessing,
			})
			Expect(err).NotTo(HaveOccurred())

			resp := doJSON(http.MethodGet, "/memory/1", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var record memory.MemoryRecord
			decodeBody(resp, &record)
			Expect(record.ID).To(Equal(id))
			Expect(record.Status).To(Equal(memory.StatusProcessing))
		})
	})
})
