package ingestion

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrSourcesRequired is returned when no corpus sources are configured.
	ErrSourcesRequired = errors.New("at least one corpus source required")

	// ErrOutputPathRequired is returned when no output path is configured.
	ErrOutputPathRequired = errors.New("output path required")
)
