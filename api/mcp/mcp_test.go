package mcp_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/api/mcp"
	"github.com/mnemolabs/mnemo/pkg/service"
	"github.com/mnemolabs/mnemo/pkg/store/inmemory"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
	"github.com/mnemolabs/mnemo/pkg/worker"
)

func TestMCP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MCP Suite")
}

var _ = Describe("MCP Server", func() {
	var (
		server *mcp.Server
		pool   *worker.Pool
		svc    *service.MemoryService
	)

	BeforeEach(func() {
		st := inmemory.NewStore()
		summ := summarizer.New(func(_ context.Context, _ string) (string, error) {
			return `{"facts": ["a"]}`, nil
		})

		var err error
		pool, err = worker.NewPool(&worker.Config{
			Store:      st,
			Summarizer: summ,
			Logger:     zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())

		svc, err = service.NewMemoryService(&service.Config{
			Store:  st,
			Pool:   pool,
			Logger: zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())

		server, err = mcp.NewServer(mcp.Config{
			Service: svc,
			Logger:  zap.NewNop(),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		pool.Close()
	})

	Describe("NewServer", func() {
		It("returns an error when the memory service is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Logger: zap.NewNop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("memory service is required"))
		})

		It("returns an error when logger is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Service: svc,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is required"))
		})

		It("creates a server with valid config", func() {
			Expect(server).NotTo(BeNil())
		})

		It("returns an HTTP handler", func() {
			handler := server.Handler()
			Expect(handler).NotTo(BeNil())
		})

		It("creates a noop server without a service", func() {
			noop, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(noop).NotTo(BeNil())
		})
	})
})
