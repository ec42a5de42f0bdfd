package text

import (
	"testing"

	"github.com/poiesic/wordspace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("was"))
	assert.False(t, IsStopword("sparkling"))
	assert.False(t, IsStopword("prejudice"))
}

func TestFilterStopwords(t *testing.T) {
	doc := core.NewDocument([]string{"jennifer", "ehle", "was", "sparkling", "in", "pride", "and", "prejudice"})
	filtered := FilterStopwords(doc)

	assert.Equal(t, []string{"jennifer", "ehle", "sparkling", "pride", "prejudice"}, filtered.Tokens)

	// Input untouched, ID recomputed for the new content.
	assert.Len(t, doc.Tokens, 8)
	assert.NotEqual(t, doc.Id, filtered.Id)
}

func TestFilterStopwords_AllStopwords(t *testing.T) {
	filtered := FilterStopwords(core.NewDocument([]string{"the", "and", "was"}))
	require.NotNil(t, filtered)
	assert.True(t, filtered.Empty())
}
