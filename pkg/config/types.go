package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config represents the persistent mnemo configuration stored as config.toml
// in the .mnemo/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version    int              `toml:"version"`
	Storage    StorageConfig    `toml:"storage"`
	API        APIConfig        `toml:"api"`
	Client     ClientConfig     `toml:"client"`
	Summarizer SummarizerConfig `toml:"summarizer"`
	Window     WindowConfig     `toml:"window"`
	Worker     WorkerConfig     `toml:"worker"`
	Events     EventsConfig     `toml:"events"`
}

// StorageConfig holds memory record storage settings. When PostgresURL is
// set it takes precedence over the SQLite path.
type StorageConfig struct {
	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresURL string `toml:"postgres_url,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to the running
// API server. Values are full URLs (scheme + host + port).
type ClientConfig struct {
	APITarget string `toml:"api_target,omitempty"`
}

// SummarizerConfig holds LLM summarizer provider settings.
type SummarizerConfig struct {
	Provider string `toml:"provider,omitempty"`
	Model    string `toml:"model,omitempty"`
	Target   string `toml:"target,omitempty"`
}

// WindowConfig holds the summarization window tuning knobs.
type WindowConfig struct {
	RollingSize    int `toml:"rolling_size,omitempty"`
	SummarizeAfter int `toml:"summarize_after,omitempty"`
}

// WorkerConfig holds the background worker pool settings.
type WorkerConfig struct {
	NumWorkers uint `toml:"num_workers,omitempty"`
	QueueSize  uint `toml:"queue_size,omitempty"`
}

// EventsConfig holds event stream publisher settings. Disabled by default;
// when enabled, terminal summarization outcomes are published to Kafka.
type EventsConfig struct {
	Enabled bool     `toml:"enabled,omitempty"`
	Brokers []string `toml:"brokers,omitempty"`
	Topic   string   `toml:"topic,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"storage.postgres_url": {
		get: func(c *Config) string { return c.Storage.PostgresURL },
		set: func(c *Config, v string) error { c.Storage.PostgresURL = v; return nil },
	},
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
	"summarizer.provider": {
		get: func(c *Config) string { return c.Summarizer.Provider },
		set: func(c *Config, v string) error { c.Summarizer.Provider = v; return nil },
	},
	"summarizer.model": {
		get: func(c *Config) string { return c.Summarizer.Model },
		set: func(c *Config, v string) error { c.Summarizer.Model = v; return nil },
	},
	"summarizer.target": {
		get: func(c *Config) string { return c.Summarizer.Target },
		set: func(c *Config, v string) error { c.Summarizer.Target = v; return nil },
	},
	"window.rolling_size": {
		get: func(c *Config) string { return formatInt(c.Window.RollingSize) },
		set: func(c *Config, v string) error {
			n, err := parsePositiveInt("window.rolling_size", v)
			if err != nil {
				return err
			}
			c.Window.RollingSize = n
			return nil
		},
	},
	"window.summarize_after": {
		get: func(c *Config) string { return formatInt(c.Window.SummarizeAfter) },
		set: func(c *Config, v string) error {
			n, err := parsePositiveInt("window.summarize_after", v)
			if err != nil {
				return err
			}
			c.Window.SummarizeAfter = n
			return nil
		},
	},
	"worker.num_workers": {
		get: func(c *Config) string { return formatUint(c.Worker.NumWorkers) },
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for worker.num_workers: %w", err)
			}
			c.Worker.NumWorkers = uint(n)
			return nil
		},
	},
	"worker.queue_size": {
		get: func(c *Config) string { return formatUint(c.Worker.QueueSize) },
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for worker.queue_size: %w", err)
			}
			c.Worker.QueueSize = uint(n)
			return nil
		},
	},
	"events.enabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.Events.Enabled) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for events.enabled: %w", err)
			}
			c.Events.Enabled = b
			return nil
		},
	},
	"events.brokers": {
		get: func(c *Config) string { return strings.Join(c.Events.Brokers, ",") },
		set: func(c *Config, v string) error {
			if strings.TrimSpace(v) == "" {
				c.Events.Brokers = nil
				return nil
			}
			brokers := strings.Split(v, ",")
			for i, b := range brokers {
				brokers[i] = strings.TrimSpace(b)
			}
			c.Events.Brokers = brokers
			return nil
		},
	},
	"events.topic": {
		get: func(c *Config) string { return c.Events.Topic },
		set: func(c *Config, v string) error { c.Events.Topic = v; return nil },
	},
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatUint(n uint) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(n), 10)
}

func parsePositiveInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid value for %s: must be positive", key)
	}
	return n, nil
}
