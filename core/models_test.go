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
			name:    "same content produces same ID",
			content: "jennifer ehle was sparkling",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "a much longer piece of content that should still hash consistently across calls",
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
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument([]string{"pride", "and", "prejudice"})
	if doc.Id == 0 {
		t.Error("NewDocument() produced zero ID for non-empty tokens")
	}
	if doc.Empty() {
		t.Error("Empty() = true for document with tokens")
	}

	same := NewDocument([]string{"pride", "and", "prejudice"})
	if doc.Id != same.Id {
		t.Errorf("NewDocument() IDs differ for identical token sequences: %d vs %d", doc.Id, same.Id)
	}

	other := NewDocument([]string{"pride", "and", "joy"})
	if doc.Id == other.Id {
		t.Error("NewDocument() produced same ID for different token sequences")
	}
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument(nil)
	if !doc.Empty() {
		t.Error("Empty() = false for document without tokens")
	}
}

func TestSynonymResult_Tokens(t *testing.T) {
	result := SynonymResult{
		{Token: "film", Score: 0.91},
		{Token: "flick", Score: 0.85},
	}
	tokens := result.Tokens()
	if len(tokens) != 2 || tokens[0] != "film" || tokens[1] != "flick" {
		t.Errorf("Tokens() = %v, want [film flick]", tokens)
	}
}
