// Package corpus loads pre-segmented source text files and assembles them
// into one flat ordered record sequence.
//
// Each source file holds one semantic unit (title, paragraph, or caption)
// per line. The loader preserves file order and performs no splitting or
// cleaning; an unreadable source is a fatal error because a partial corpus
// is never acceptable. The assembler concatenates documents in the order
// they were supplied, tagging every line with its document's source label.
package corpus
