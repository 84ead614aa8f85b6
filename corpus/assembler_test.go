package corpus

import (
	"fmt"
	"testing"

	"github.com/poiesic/paperset/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	docs := []*core.Document{
		{Source: "hiv", Lines: []string{"h1", "h2"}},
		{Source: "flu", Lines: []string{"f1", "f2", "f3"}},
	}

	records := Assemble(docs)
	require.Len(t, records, 5)

	want := []core.Record{
		{Source: "hiv", Text: "h1"},
		{Source: "hiv", Text: "h2"},
		{Source: "flu", Text: "f1"},
		{Source: "flu", Text: "f2"},
		{Source: "flu", Text: "f3"},
	}
	assert.Equal(t, want, records)
}

func TestAssemble_UnequalCountsPermitted(t *testing.T) {
	docs := []*core.Document{
		{Source: "a", Lines: []string{"1"}},
		{Source: "b", Lines: nil},
		{Source: "c", Lines: []string{"2", "3", "4"}},
	}

	records := Assemble(docs)
	require.Len(t, records, 4)
	assert.Equal(t, "a", records[0].Source)
	assert.Equal(t, "c", records[1].Source)
}

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
	assert.Empty(t, Assemble([]*core.Document{}))
}

func TestAssemble_FourSourcesOf32(t *testing.T) {
	// Four papers contributing 32 lines each yield 128 records in source
	// order: all of the first source's lines, then the second's, and so on.
	labels := []string{"alpha", "beta", "gamma", "delta"}
	docs := make([]*core.Document, len(labels))
	for i, label := range labels {
		lines := make([]string, 32)
		for j := range lines {
			lines[j] = fmt.Sprintf("%s paragraph %d", label, j)
		}
		docs[i] = &core.Document{Source: label, Lines: lines}
	}

	records := Assemble(docs)
	require.Len(t, records, 128)

	for i, record := range records {
		wantLabel := labels[i/32]
		assert.Equal(t, wantLabel, record.Source, "record %d has wrong label", i)
		assert.Equal(t, fmt.Sprintf("%s paragraph %d", wantLabel, i%32), record.Text)
	}
}
