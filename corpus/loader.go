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


package corpus

import (
	"bufio"
	"fmt"
	"os"

	"github.com/poiesic/paperset/core"
)

// Source names one corpus input: a short label (e.g. a paper's tag) and the
// path of its pre-segmented text file. The label-to-file mapping is fixed
// configuration, never discovered dynamically.
type Source struct {
	Label string
	Path  string
}

// Validate checks that the source names both a label and a path.
func (s Source) Validate() error {
	if s.Label == "" {
		return ErrSourceLabelRequired
	}
	if s.Path == "" {
		return fmt.Errorf("%w: source %q", ErrSourcePathRequired, s.Label)
	}
	return nil
}

// maxLineSize bounds a single semantic unit. Paragraphs routinely exceed
// bufio's default 64KiB token limit, so the scanner buffer is enlarged.
const maxLineSize = 4 * 1024 * 1024

// LoadDocument reads the UTF-8 text file at path and returns its lines in
// file order as an immutable Document tagged with the source label. One line
// is one semantic unit; no further splitting or cleaning is performed.
func LoadDocument(label, path string) (*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %q: %w", label, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source %q: %w", label, err)
	}

	doc := &core.Document{Source: label, Lines: lines}
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// LoadAll loads every named source in order. It fails on the first
// unreadable source; a partial corpus is never returned.
func LoadAll(sources []Source) ([]*core.Document, error) {
	docs := make([]*core.Document, 0, len(sources))
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			return nil, err
		}
		doc, err := LoadDocument(src.Label, src.Path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
