// Package worker provides the bounded worker pool that runs summarization
// jobs in the background.
//
// The pool decouples summarization from the caller's request path: the
// triggering request performs only the lock-establishing insert, then hands
// the rest of the work to the pool with no back-pressure on the response.
// Every job ends by transitioning its processing row to a terminal status;
// failures are logged and published, never re-raised.
package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/eventstream"
	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/summarizer"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job is one summarization unit of work: the processing row it owns, the
// window it covers, and the message log snapshot to summarize from.
type Job struct {
	MemoryID       int
	ConversationID string
	StartSequence  int
	EndSequence    int
	BaseMemoryID   *int
	Messages       []memory.Message

	// Done, when non-nil, receives the job's Result after the terminal
	// status is written. Sends never block; an unready receiver misses
	// the notification.
	Done chan<- Result
}

// Result reports a job's terminal outcome.
type Result struct {
	MemoryID       int
	ConversationID string
	Status         memory.Status
	Err            error
}

// Config is the configuration options for the worker pool.
type Config struct {
	// Store is the memory record store jobs write their outcome to.
	Store store.Store

	// Summarizer performs the external LLM call.
	Summarizer *summarizer.Summarizer

	// Publisher receives terminal-outcome events. Optional.
	Publisher eventstream.Publisher

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (defaults to 256).
	QueueSize uint

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Pool processes summarization jobs asynchronously via a worker pool.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.Store == nil {
		return nil, errors.New("store is required")
	}
	if c.Summarizer == nil {
		return nil, errors.New("summarizer is required")
	}
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}
	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}
	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	p := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	p.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go p.worker(i)
	}

	return p, nil
}

// Enqueue submits a job for processing by the worker pool.
// Returns true if enqueued, false if the queue is full and the job dropped.
// Callers own the job's processing row and must release it (mark it failed)
// on a false return, or the conversation stays locked.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("summarization job queued",
			zap.Int("memory_id", job.MemoryID),
			zap.String("conversation_id", job.ConversationID),
		)
		return true
	default:
		p.logger.Error("job not queued, queue full, job dropped",
			zap.Int("memory_id", job.MemoryID),
			zap.String("conversation_id", job.ConversationID),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the API server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// worker is the inner worker goroutine that continuously pulls jobs off the
// jobs queue
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("summarization worker stopped", zap.Uint("worker_id", id))
}

// processJob runs one summarization attempt end to end and writes the
// terminal status. All errors terminate in a failed transition; nothing
// escapes to crash the worker.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()
	start := time.Now()

	status, err := p.summarize(ctx, job, start)
	if err != nil {
		p.logFailure(job, err)
		p.markFailed(ctx, job, start)
		status = memory.StatusFailed
	}

	p.publish(ctx, job, status, time.Since(start).Milliseconds())
	p.notify(job, status, err)
}

// summarize performs the happy-path summarization flow. A nil error means a
// completed row was written.
func (p *Pool) summarize(ctx context.Context, job Job, start time.Time) (memory.Status, error) {
	// Resolve the base memory this attempt extends, if any.
	var base *memory.StructuredMemory
	newStart := job.StartSequence
	if job.BaseMemoryID != nil {
		baseRecord, err := p.config.Store.GetMemoryByID(ctx, *job.BaseMemoryID)
		if err != nil {
			return memory.StatusFailed, fmt.Errorf("loading base memory: %w", err)
		}
		base = memory.Decode(baseRecord.MemoryText)
		newStart = baseRecord.EndSequence + 1
	}

	newMessages := sliceMessages(job.Messages, newStart, job.EndSequence)
	if len(newMessages) == 0 {
		return memory.StatusFailed, errors.New("no new messages to summarize")
	}

	incoming, err := p.config.Summarizer.Summarize(ctx, base, newMessages)
	if err != nil {
		return memory.StatusFailed, err
	}

	merged := memory.Merge(base, incoming)
	if merged.IsEmpty() {
		return memory.StatusFailed, errors.New("empty memory generated")
	}

	memoryText, err := merged.Encode()
	if err != nil {
		return memory.StatusFailed, err
	}

	elapsed := time.Since(start).Milliseconds()
	err = p.config.Store.UpdateMemoryStatus(ctx, job.MemoryID, store.StatusTransition{
		Status:       memory.StatusCompleted,
		MemoryText:   memoryText,
		GenerationMs: &elapsed,
	})
	if err != nil {
		return memory.StatusFailed, fmt.Errorf("completing memory record: %w", err)
	}

	p.logger.Info("summarized messages",
		zap.String("conversation_id", job.ConversationID),
		zap.Int("memory_id", job.MemoryID),
		zap.Int("start_sequence", job.StartSequence),
		zap.Int("end_sequence", job.EndSequence),
		zap.Int64("generation_time_ms", elapsed),
	)

	return memory.StatusCompleted, nil
}

// markFailed releases the job's processing row. A failed release leaves the
// row stuck at processing, the same failure mode as a crashed worker.
func (p *Pool) markFailed(ctx context.Context, job Job, start time.Time) {
	elapsed := time.Since(start).Milliseconds()
	err := p.config.Store.UpdateMemoryStatus(ctx, job.MemoryID, store.StatusTransition{
		Status:       memory.StatusFailed,
		GenerationMs: &elapsed,
	})
	if err != nil {
		p.logger.Error("failed to mark memory record failed",
			zap.Int("memory_id", job.MemoryID),
			zap.String("conversation_id", job.ConversationID),
			zap.Error(err),
		)
	}
}

// logFailure logs the failure with its summarizer error category.
func (p *Pool) logFailure(job Job, err error) {
	var parseErr *summarizer.ParseError
	var providerErr *summarizer.ProviderError

	switch {
	case errors.As(err, &parseErr):
		p.logger.Warn("summarizer returned unparseable output",
			zap.String("conversation_id", job.ConversationID),
			zap.Int("memory_id", job.MemoryID),
			zap.Error(err),
		)
	case errors.As(err, &providerErr):
		p.logger.Warn("summarizer provider call failed",
			zap.String("conversation_id", job.ConversationID),
			zap.Int("memory_id", job.MemoryID),
			zap.Error(err),
		)
	default:
		p.logger.Error("summarization failed",
			zap.String("conversation_id", job.ConversationID),
			zap.Int("memory_id", job.MemoryID),
			zap.Error(err),
		)
	}
}

// publish emits the terminal-outcome event. Publish errors are logged only.
func (p *Pool) publish(ctx context.Context, job Job, status memory.Status, elapsedMs int64) {
	if p.config.Publisher == nil {
		return
	}

	eventType := eventstream.EventTypeMemoryCompleted
	if status == memory.StatusFailed {
		eventType = eventstream.EventTypeMemoryFailed
	}

	event := eventstream.NewMemoryEvent(eventType, job.ConversationID, job.MemoryID, job.StartSequence, job.EndSequence)
	event.GenerationMs = elapsedMs

	if err := p.config.Publisher.PublishMemory(ctx, event); err != nil {
		p.logger.Warn("failed to publish memory event",
			zap.String("event_type", eventType),
			zap.String("conversation_id", job.ConversationID),
			zap.Error(err),
		)
	}
}

// notify sends the job result without blocking.
func (p *Pool) notify(job Job, status memory.Status, err error) {
	if job.Done == nil {
		return
	}

	select {
	case job.Done <- Result{
		MemoryID:       job.MemoryID,
		ConversationID: job.ConversationID,
		Status:         status,
		Err:            err,
	}:
	default:
	}
}

// sliceMessages returns messages[start:end+1] clamped to the slice bounds.
// Indices are message sequence numbers.
func sliceMessages(messages []memory.Message, start, end int) []memory.Message {
	if start < 0 {
		start = 0
	}
	if end >= len(messages) {
		end = len(messages) - 1
	}
	if start > end {
		return nil
	}
	return messages[start : end+1]
}
