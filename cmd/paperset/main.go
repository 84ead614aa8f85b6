// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/poiesic/paperset/ai"
	"github.com/poiesic/paperset/ai/openai"
	"github.com/poiesic/paperset/core"
	"github.com/poiesic/paperset/corpus"
	"github.com/poiesic/paperset/dataset"
	"github.com/poiesic/paperset/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "paperset",
		Usage: "Build embedding datasets from labeled scientific paper corpora",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Embed labeled source files and write the dataset container",
				Action: buildCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Labeled source file as label=path (repeatable, order preserved)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output dataset container path",
						Value:   "papers.pset",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "https://api.openai.com/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Fixed delay between retries of a failed embedding call",
						Value: ingestion.DefaultRetryDelay,
					},
					&cli.IntFlag{
						Name:  "max-attempts",
						Usage: "Maximum attempts per embedding call (0 retries forever)",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent embedding workers",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 10,
					},
				},
			},
			{
				Name:   "inspect",
				Usage:  "Summarize an existing dataset container",
				Action: inspectCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the dataset container",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "show",
						Usage: "Print the first N entry texts",
						Value: 0,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildCommand(c *cli.Context) error {
	// With unbounded retry a stalled run only ends when the operator says
	// so; an interrupt cancels the retry loop instead of killing the
	// process mid-write.
	ctx, stop := rootContext()
	defer stop()

	sources, err := parseSources(c.StringSlice("source"))
	if err != nil {
		return err
	}

	// Validate config
	if c.Int("workers") <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if c.Duration("retry-delay") <= 0 {
		return fmt.Errorf("retry-delay must be greater than 0")
	}

	// The credential comes from the environment, optionally via a .env file.
	_ = godotenv.Load()
	token := os.Getenv("PAPERSET_API_KEY")

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIToken(token),
	)

	// A bad credential or host must fail here, before any service call.
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	ingestConfig := &ingestion.Config{
		RetryDelay:     c.Duration("retry-delay"),
		MaxAttempts:    c.Int("max-attempts"),
		Workers:        c.Int("workers"),
		ReportInterval: c.Int("report-interval"),
	}

	pipeline, err := ingestion.NewPipeline(sources, embedder, c.String("output"), ingestConfig, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", aiConfig.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", aiConfig.EmbeddingModel)
	fmt.Fprintf(os.Stderr, "Output: %s\n", c.String("output"))
	fmt.Fprintln(os.Stderr)

	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	return nil
}

func inspectCommand(c *cli.Context) error {
	ds, err := dataset.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	fmt.Printf("Entries: %d\n", len(ds))
	fmt.Printf("Dimension: %d\n", ds.Dimension())

	counts := ds.CountBySource()
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  %s: %d\n", label, counts[label])
	}

	show := c.Int("show")
	if show > len(ds) {
		show = len(ds)
	}
	for i := 0; i < show; i++ {
		// Content-derived ID: stable across runs, usable to cross-reference
		// entries between dataset rebuilds.
		fmt.Printf("[%d] %016x %s: %s\n", i, uint64(core.IDFromContent(ds[i].Text)), ds[i].Source, ds[i].Text)
	}

	return nil
}

// rootContext returns a context canceled on SIGINT or SIGTERM.
func rootContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// parseSources converts repeated label=path flags into ordered sources.
// Flag order is the document order of the final dataset.
func parseSources(values []string) ([]corpus.Source, error) {
	sources := make([]corpus.Source, 0, len(values))
	for _, value := range values {
		label, path, ok := strings.Cut(value, "=")
		if !ok || label == "" || path == "" {
			return nil, fmt.Errorf("invalid source %q: expected label=path", value)
		}
		sources = append(sources, corpus.Source{Label: label, Path: path})
	}
	return sources, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
