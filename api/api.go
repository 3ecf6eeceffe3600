package api

import (
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/service"
)

// Server is the API server for reading conversation context and triggering
// summarization.
type Server struct {
	config  Config
	service *service.MemoryService
	logger  *zap.Logger
	app     *fiber.App
}

// NewServer creates a new API server.
// The service is injected to allow sharing with other components. mcpHandler
// is mounted at /mcp/* when non-nil.
func NewServer(config Config, svc *service.MemoryService, mcpHandler http.Handler, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:  config,
		service: svc,
		logger:  logger,
		app:     app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/conversations/:id/context", s.handleContext)
	app.Post("/conversations/:id/summarize", s.handleSummarize)
	app.Get("/conversations/:id/memory", s.handleLatestMemory)
	app.Get("/conversations/:id/history", s.handleHistory)
	app.Get("/memory/:id", s.handleGetRecord)

	if mcpHandler != nil {
		app.All("/mcp/*", adaptor.HTTPHandler(mcpHandler))
	}

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
