package keyed

import (
	"strings"
	"testing"

	"github.com/poiesic/wordspace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("plain rows", func(t *testing.T) {
		v, err := Load(strings.NewReader(
			"movie 1.0 0.0\n" +
				"film 0.9 0.1\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, v.Dim())
		assert.Equal(t, 2, v.Len())

		vec, err := v.Vector("film")
		require.NoError(t, err)
		assert.InDelta(t, 0.9, float64(vec[0]), 1e-6)
	})

	t.Run("word2vec header", func(t *testing.T) {
		v, err := Load(strings.NewReader(
			"2 3\n" +
				"movie 1 0 0\n" +
				"film 0 1 0\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, v.Dim())
		assert.Equal(t, 2, v.Len())
		assert.False(t, v.Contains("2"), "header row must not become a token")
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		v, err := Load(strings.NewReader("movie 1 0\n\nfilm 0 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, v.Len())
	})

	t.Run("ragged row rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader("movie 1 0\nfilm 1 0 0\n"))
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("non-numeric component rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader("movie 1 zero\n"))
		assert.Error(t, err)
	})

	t.Run("token without components rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader("movie 1 0\nfilm\n"))
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		v, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
	})
}
