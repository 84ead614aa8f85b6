package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/paperset/ai"
	"github.com/poiesic/paperset/corpus"
	"github.com/poiesic/paperset/dataset"
)

// Pipeline runs the full corpus embedding workflow: load sources, assemble
// records, embed each record, merge text with vectors, and persist the
// dataset container. Stages run strictly in sequence; the output is written
// once, at the end of a successful run.
type Pipeline struct {
	sources    []corpus.Source
	client     *Client
	outputPath string
	config     *Config
	progress   io.Writer
	logger     *slog.Logger
}

// NewPipeline creates a pipeline for the given ordered sources.
// progress: where to write progress output (typically os.Stderr).
// A nil config uses DefaultConfig. The embedder is constructed and validated
// by the caller before this point, so a bad credential never reaches the
// embedding stage.
func NewPipeline(sources []corpus.Source, embedder ai.Embedder, outputPath string, config *Config, progress io.Writer) (*Pipeline, error) {
	if len(sources) == 0 {
		return nil, ErrSourcesRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if outputPath == "" {
		return nil, ErrOutputPathRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.ReportInterval < 1 {
		config.ReportInterval = 10
	}
	if progress == nil {
		progress = io.Discard
	}

	client, err := NewClient(embedder, config)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		sources:    sources,
		client:     client,
		outputPath: outputPath,
		config:     config,
		progress:   progress,
		logger:     slog.Default().With("component", "pipeline"),
	}, nil
}

// Run executes the pipeline. Input and structural errors are fatal; service
// errors are retried inside the embedding client and never surface here
// unless the context is canceled or a positive MaxAttempts is exhausted.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("loading corpus", "sources", len(p.sources))

	docs, err := corpus.LoadAll(p.sources)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	records := corpus.Assemble(docs)
	p.logger.Info("corpus assembled", "records", len(records))

	fmt.Fprintf(p.progress, "Embedding %d records from %d sources (workers: %d)\n",
		len(records), len(p.sources), p.config.Workers)

	tracker := NewProgressTracker(p.progress, len(records), p.config.ReportInterval)
	tracker.Start()

	vectors, err := p.client.EmbedRecords(ctx, records, tracker)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	tracker.Finish()

	ds, err := dataset.Build(records, vectors)
	if err != nil {
		return err
	}

	if err := dataset.WriteFile(p.outputPath, ds); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(p.progress, "Embedded %d records in %v (%.1f records/sec)\n",
		len(records), elapsed.Round(time.Second), float64(len(records))/elapsed.Seconds())
	fmt.Fprintf(p.progress, "Dataset written to %s\n", p.outputPath)

	return nil
}
