package corpus

import "errors"

var (
	// ErrSourceLabelRequired is returned when a source has no label.
	ErrSourceLabelRequired = errors.New("source label required")

	// ErrSourcePathRequired is returned when a source has no file path.
	ErrSourcePathRequired = errors.New("source path required")
)
