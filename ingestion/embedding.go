package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/paperset/ai"
	"github.com/poiesic/paperset/core"
)

// DefaultRetryDelay is the fixed wait between attempts for one record.
const DefaultRetryDelay = 5 * time.Second

// Config holds tunables for the embedding client and pipeline.
type Config struct {
	// RetryDelay is the fixed delay between attempts for a single record.
	RetryDelay time.Duration

	// MaxAttempts bounds attempts per record; <= 0 retries indefinitely.
	MaxAttempts int

	// Workers is the number of concurrent embedding requests. 1 means
	// strictly sequential.
	Workers int

	// ReportInterval is how often to report progress (number of records).
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RetryDelay:     DefaultRetryDelay,
		MaxAttempts:    0,
		Workers:        1,
		ReportInterval: 10,
	}
}

// Client maps records to embedding vectors via an external service, one
// service call per record, in assembler order.
type Client struct {
	embedder ai.Embedder
	config   *Config
	logger   *slog.Logger
}

// NewClient creates an embedding client. A nil config uses DefaultConfig.
func NewClient(embedder ai.Embedder, config *Config) (*Client, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}

	return &Client{
		embedder: embedder,
		config:   config,
		logger:   slog.Default().With("component", "embedding-client"),
	}, nil
}

// EmbedRecords returns one vector per record, with position i of the output
// corresponding to position i of the input regardless of worker completion
// order. A record that fails is resubmitted after the configured delay and
// never skipped; with unbounded attempts the only error paths are context
// cancellation and submission failure. tracker may be nil.
func (c *Client) EmbedRecords(ctx context.Context, records []core.Record, tracker *ProgressTracker) ([][]float32, error) {
	vectors := make([][]float32, len(records))
	if len(records) == 0 {
		return vectors, nil
	}

	if c.config.Workers == 1 {
		for i := range records {
			vec, err := c.embedOne(ctx, i, records[i])
			if err != nil {
				return nil, err
			}
			vectors[i] = vec
			if tracker != nil {
				tracker.Increment(1)
			}
		}
		return vectors, nil
	}

	return c.embedConcurrent(ctx, records, vectors, tracker)
}

// embedOne retries a single record until the service returns its vector.
func (c *Client) embedOne(ctx context.Context, index int, record core.Record) ([]float32, error) {
	var vec []float32
	err := RetryWithDelay(ctx, func() error {
		var embedErr error
		vec, embedErr = c.embedder.EmbedText(ctx, record.Text)
		return embedErr
	}, c.config.MaxAttempts, c.config.RetryDelay)

	if err != nil {
		return nil, fmt.Errorf("embedding record %d (source %q): %w", index, record.Source, err)
	}

	return vec, nil
}

// embedConcurrent runs a bounded worker pool. Results are written to the
// record's own index, so positional correspondence does not depend on
// completion order.
func (c *Client) embedConcurrent(ctx context.Context, records []core.Record, vectors [][]float32, tracker *ProgressTracker) ([][]float32, error) {
	pool, err := ants.NewPool(c.config.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(e error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = e
			cancel()
		}
	}

	for i := range records {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			vec, embedErr := c.embedOne(cctx, i, records[i])
			if embedErr != nil {
				setErr(embedErr)
				return
			}
			vectors[i] = vec
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if submitErr != nil {
			wg.Done()
			setErr(fmt.Errorf("submitting record %d: %w", i, submitErr))
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}
