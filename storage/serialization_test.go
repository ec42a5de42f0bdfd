package storage

import (
	"testing"

	"github.com/poiesic/wordspace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("a great movie")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  *core.Document
	}{
		{
			name: "typical sentence",
			doc:  core.NewDocument([]string{"jennifer", "ehle", "was", "sparkling"}),
		},
		{
			name: "single token",
			doc:  core.NewDocument([]string{"movie"}),
		},
		{
			name: "anchor token survives",
			doc:  core.NewDocument([]string{"see", "<a>here</a>", "now"}),
		},
		{
			name: "empty document",
			doc:  core.NewDocument(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocument(tt.doc)
			require.NotNil(t, data)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.doc.Id, decoded.Id)
			if len(tt.doc.Tokens) == 0 {
				assert.Empty(t, decoded.Tokens)
			} else {
				assert.Equal(t, tt.doc.Tokens, decoded.Tokens)
			}
		})
	}
}

func TestUnmarshalDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDocument(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshalVectorEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry *core.VectorEntry
	}{
		{
			name:  "small vector",
			entry: &core.VectorEntry{Token: "movie", Vector: []float32{0.1, 0.2, 0.3}},
		},
		{
			name:  "wide vector",
			entry: &core.VectorEntry{Token: "film", Vector: make([]float32, 200)},
		},
		{
			name:  "unicode token",
			entry: &core.VectorEntry{Token: "café", Vector: []float32{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalVectorEntry(tt.entry)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalVectorEntry(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.entry.Token, decoded.Token)
			assert.Equal(t, tt.entry.Vector, decoded.Vector)
		})
	}
}

func TestUnmarshalVectorEntry_Invalid(t *testing.T) {
	_, err := UnmarshalVectorEntry([]byte{0xFF})
	assert.Error(t, err)
}
