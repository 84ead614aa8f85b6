package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plain text",
			content: "HIV-1 capsid assembly dynamics",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long paragraph",
			content: "The viral capsid undergoes a series of conformational changes during maturation that are required for infectivity and are the target of several antiviral compounds currently in clinical development.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("capsid assembly")
	id2 := IDFromContent("capsid disassembly")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestDataset_CountBySource(t *testing.T) {
	ds := Dataset{
		{Source: "hiv", Text: "a", Vector: []float32{1}},
		{Source: "hiv", Text: "b", Vector: []float32{2}},
		{Source: "flu", Text: "c", Vector: []float32{3}},
	}

	counts := ds.CountBySource()
	if counts["hiv"] != 2 {
		t.Errorf("CountBySource()[hiv] = %d, want 2", counts["hiv"])
	}
	if counts["flu"] != 1 {
		t.Errorf("CountBySource()[flu] = %d, want 1", counts["flu"])
	}
	if len(counts) != 2 {
		t.Errorf("CountBySource() returned %d labels, want 2", len(counts))
	}
}

func TestDataset_Dimension(t *testing.T) {
	empty := Dataset{}
	if empty.Dimension() != 0 {
		t.Errorf("Dimension() of empty dataset = %d, want 0", empty.Dimension())
	}

	ds := Dataset{
		{Source: "hiv", Text: "a", Vector: []float32{0.1, 0.2, 0.3}},
	}
	if ds.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", ds.Dimension())
	}
}
