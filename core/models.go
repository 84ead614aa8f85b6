package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is one source text file's ordered lines, tagged with a source label.
// Input files are pre-segmented one semantic unit (title, paragraph, caption)
// per line; a Document is immutable once loaded.
type Document struct {
	Source string
	Lines  []string
}

// Record is one (source label, text) unit, the atomic item submitted for
// embedding.
type Record struct {
	Source string
	Text   string
}

// Entry is one record augmented with its embedding vector. Position in a
// Dataset matches the record's position in the assembled sequence.
type Entry struct {
	Source string
	Text   string
	Vector []float32
}

// Dataset is the final ordered collection of entries, the pipeline's sole
// durable output.
type Dataset []Entry

// CountBySource returns the number of entries per source label.
func (d Dataset) CountBySource() map[string]int {
	counts := make(map[string]int)
	for _, e := range d {
		counts[e.Source]++
	}
	return counts
}

// Dimension returns the vector length of the first entry, or 0 for an empty
// dataset. All entries in a valid dataset share the service's fixed dimension.
func (d Dataset) Dimension() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Vector)
}
