package config

const (
	defaultAPIListen       = ":8080"
	defaultClientAPITarget = "http://localhost:8080"

	defaultSummarizerProvider = "ollama"
	defaultSummarizerModel    = "llama3.2"
	defaultSummarizerTarget   = "http://localhost:11434"

	defaultRollingWindowSize = 14
	defaultSummarizeAfter    = 5

	defaultNumWorkers uint = 3
	defaultQueueSize  uint = 256

	defaultEventsTopic = "mnemo.memory"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Client: ClientConfig{
			APITarget: defaultClientAPITarget,
		},
		Summarizer: SummarizerConfig{
			Provider: defaultSummarizerProvider,
			Model:    defaultSummarizerModel,
			Target:   defaultSummarizerTarget,
		},
		Window: WindowConfig{
			RollingSize:    defaultRollingWindowSize,
			SummarizeAfter: defaultSummarizeAfter,
		},
		Worker: WorkerConfig{
			NumWorkers: defaultNumWorkers,
			QueueSize:  defaultQueueSize,
		},
		Events: EventsConfig{
			Enabled: false,
			Topic:   defaultEventsTopic,
		},
	}
}
