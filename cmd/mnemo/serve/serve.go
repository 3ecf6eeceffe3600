// Package servecmder provides the serve command for running the memory service.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/api"
	"github.com/mnemolabs/mnemo/api/mcp"
	"github.com/mnemolabs/mnemo/pkg/config"
	"github.com/mnemolabs/mnemo/pkg/eventstream"
	"github.com/mnemolabs/mnemo/pkg/eventstream/kafka"
	"github.com/mnemolabs/mnemo/pkg/eventstream/nop"
	"github.com/mnemolabs/mnemo/pkg/logger"
	"github.com/mnemolabs/mnemo/pkg/service"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/inmemory"
	"github.com/mnemolabs/mnemo/pkg/store/postgres"
	"github.com/mnemolabs/mnemo/pkg/store/sqlite"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
	"github.com/mnemolabs/mnemo/pkg/worker"
)

type ServeCommander struct {
	listen             string
	sqlitePath         string
	postgresURL        string
	summarizerProvider string
	summarizerModel    string
	summarizerTarget   string
	rollingSize        int
	summarizeAfter     int
	numWorkers         uint
	queueSize          uint
	debug              bool
	v                  *viper.Viper
	logger             *zap.Logger
}

// serveFlags registers the flags the serve command exposes. Each entry
// maps a registry key to its long name, shorthand, and viper config key.
var serveFlags = config.FlagSet{
	config.FlagAPIListen: {
		Name:        "listen",
		Shorthand:   "l",
		ViperKey:    "api.listen",
		Description: "Address for the API server to listen on",
	},
	config.FlagSQLite: {
		Name:        "sqlite",
		Shorthand:   "s",
		ViperKey:    "storage.sqlite_path",
		Description: "Path to SQLite database (default: in-memory)",
	},
	config.FlagPostgres: {
		Name:        "postgres",
		ViperKey:    "storage.postgres_url",
		Description: "Postgres connection URL (takes precedence over sqlite)",
	},
	config.FlagSummarizerProvider: {
		Name:        "provider",
		ViperKey:    "summarizer.provider",
		Description: "Summarizer LLM provider (openai, anthropic, ollama)",
	},
	config.FlagSummarizerModel: {
		Name:        "model",
		ViperKey:    "summarizer.model",
		Description: "Summarizer model name",
	},
	config.FlagSummarizerTarget: {
		Name:        "target",
		ViperKey:    "summarizer.target",
		Description: "Summarizer provider base URL",
	},
	config.FlagRollingSize: {
		Name:        "rolling-size",
		ViperKey:    "window.rolling_size",
		Description: "Number of recent messages kept out of summarization",
	},
	config.FlagSummarizeAfter: {
		Name:        "summarize-after",
		ViperKey:    "window.summarize_after",
		Description: "Minimum saved sequence before summarization triggers",
	},
	config.FlagNumWorkers: {
		Name:        "workers",
		ViperKey:    "worker.num_workers",
		Description: "Number of background summarization workers",
	},
	config.FlagQueueSize: {
		Name:        "queue-size",
		ViperKey:    "worker.queue_size",
		Description: "Capacity of the summarization job queue",
	},
}

// serveFlagKeys is the bind order for BindRegisteredFlags.
var serveFlagKeys = []string{
	config.FlagAPIListen,
	config.FlagSQLite,
	config.FlagPostgres,
	config.FlagSummarizerProvider,
	config.FlagSummarizerModel,
	config.FlagSummarizerTarget,
	config.FlagRollingSize,
	config.FlagSummarizeAfter,
	config.FlagNumWorkers,
	config.FlagQueueSize,
}

const serveLongDesc string = `Run the mnemo memory service.

Starts the HTTP API server, the background summarization worker pool, and
(when configured) the Kafka event publisher. Storage, summarizer, and window
settings come from config.toml in the .mnemo/ directory, MNEMO_* environment
variables, and the flags below, in increasing precedence.`

const serveShortDesc string = "Run the mnemo memory service"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)
			cmder.v = v
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			cmder.resolve()
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &cmder.listen)
	config.AddStringFlag(cmd, serveFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, serveFlags, config.FlagPostgres, &cmder.postgresURL)
	config.AddStringFlag(cmd, serveFlags, config.FlagSummarizerProvider, &cmder.summarizerProvider)
	config.AddStringFlag(cmd, serveFlags, config.FlagSummarizerModel, &cmder.summarizerModel)
	config.AddStringFlag(cmd, serveFlags, config.FlagSummarizerTarget, &cmder.summarizerTarget)
	config.AddIntFlag(cmd, serveFlags, config.FlagRollingSize, &cmder.rollingSize)
	config.AddIntFlag(cmd, serveFlags, config.FlagSummarizeAfter, &cmder.summarizeAfter)
	config.AddUintFlag(cmd, serveFlags, config.FlagNumWorkers, &cmder.numWorkers)
	config.AddUintFlag(cmd, serveFlags, config.FlagQueueSize, &cmder.queueSize)

	return cmd
}

// resolve reads the bound settings out of viper after flag binding.
func (c *ServeCommander) resolve() {
	c.listen = c.v.GetString("api.listen")
	c.sqlitePath = c.v.GetString("storage.sqlite_path")
	c.postgresURL = c.v.GetString("storage.postgres_url")
	c.summarizerProvider = c.v.GetString("summarizer.provider")
	c.summarizerModel = c.v.GetString("summarizer.model")
	c.summarizerTarget = c.v.GetString("summarizer.target")
	c.rollingSize = c.v.GetInt("window.rolling_size")
	c.summarizeAfter = c.v.GetInt("window.summarize_after")
	c.numWorkers = c.v.GetUint("worker.num_workers")
	c.queueSize = c.v.GetUint("worker.queue_size")
}

func (c *ServeCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	storer, err := c.newStore()
	if err != nil {
		return err
	}
	defer storer.Close()

	call, err := summarizer.NewCaller(summarizer.CallerConfig{
		Provider: c.summarizerProvider,
		Model:    c.summarizerModel,
		BaseURL:  c.summarizerTarget,
	})
	if err != nil {
		return fmt.Errorf("creating summarizer caller: %w", err)
	}

	publisher := c.newPublisher()
	defer publisher.Close()

	pool, err := worker.NewPool(&worker.Config{
		Store:      storer,
		Summarizer: summarizer.New(call),
		Publisher:  publisher,
		NumWorkers: c.numWorkers,
		QueueSize:  c.queueSize,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Close()

	svc, err := service.NewMemoryService(&service.Config{
		Store:             storer,
		Pool:              pool,
		RollingWindowSize: c.rollingSize,
		SummarizeAfterSeq: c.summarizeAfter,
		Logger:            c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating memory service: %w", err)
	}

	mcpServer, err := mcp.NewServer(mcp.Config{
		Service: svc,
		Logger:  c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	apiConfig := api.Config{
		ListenAddr: c.listen,
	}
	apiServer := api.NewServer(apiConfig, svc, mcpServer.Handler(), c.logger)

	c.logger.Info("starting memory service",
		zap.String("listen", c.listen),
		zap.String("summarizer_provider", c.summarizerProvider),
		zap.Int("rolling_size", c.rollingSize),
		zap.Int("summarize_after", c.summarizeAfter),
		zap.Uint("workers", c.numWorkers),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return apiServer.Shutdown()
	}
}

// newStore selects the storage driver. Postgres wins over SQLite; with
// neither configured the store is in-memory and data does not survive
// a restart.
func (c *ServeCommander) newStore() (store.Store, error) {
	if c.postgresURL != "" {
		storer, err := postgres.NewStore(context.Background(), c.postgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres store: %w", err)
		}
		c.logger.Info("using Postgres storage")
		return storer, nil
	}

	if c.sqlitePath != "" {
		storer, err := sqlite.NewStore(c.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite store: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", c.sqlitePath))
		return storer, nil
	}

	c.logger.Info("using in-memory storage")
	return inmemory.NewStore(), nil
}

// newPublisher returns the Kafka publisher when event streaming is enabled,
// otherwise a nop publisher.
func (c *ServeCommander) newPublisher() eventstream.Publisher {
	if !c.v.GetBool("events.enabled") {
		return nop.NewPublisher()
	}

	brokers := c.v.GetStringSlice("events.brokers")
	topic := c.v.GetString("events.topic")

	c.logger.Info("publishing memory events",
		zap.Strings("brokers", brokers),
		zap.String("topic", topic),
	)

	return kafka.NewPublisher(kafka.Config{
		Brokers: brokers,
		Topic:   topic,
	})
}
