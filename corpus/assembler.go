package corpus

import "github.com/poiesic/paperset/core"

// Assemble flattens the documents into one ordered record sequence: all of
// the first document's lines, then the second's, and so on, each record
// tagged with its document's source label. No reordering, filtering, or
// deduplication happens across sources, and documents may contribute
// unequal line counts.
func Assemble(docs []*core.Document) []core.Record {
	total := 0
	for _, doc := range docs {
		total += len(doc.Lines)
	}

	records := make([]core.Record, 0, total)
	for _, doc := range docs {
		for _, line := range doc.Lines {
			records = append(records, core.Record{Source: doc.Source, Text: line})
		}
	}
	return records
}
