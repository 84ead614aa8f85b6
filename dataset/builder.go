package dataset

import (
	"fmt"

	"github.com/poiesic/paperset/core"
)

// Build merges the ordered records with the positionally matching vectors:
// entry i carries record i's source label and text plus vector i. The two
// sequences must have identical length, and every entry must pass domain
// validation; anything else is a structural error and nothing is built.
func Build(records []core.Record, vectors [][]float32) (core.Dataset, error) {
	if len(records) != len(vectors) {
		return nil, fmt.Errorf("%w: %d records, %d vectors", ErrLengthMismatch, len(records), len(vectors))
	}

	ds := make(core.Dataset, len(records))
	for i, record := range records {
		entry := core.Entry{
			Source: record.Source,
			Text:   record.Text,
			Vector: vectors[i],
		}
		if err := core.ValidateEntry(&entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		ds[i] = entry
	}
	return ds, nil
}
