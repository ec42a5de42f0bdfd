package query

import (
	"context"
	"math"
	"testing"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab/keyed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func royaltyVocabulary(t *testing.T) *keyed.Vectors {
	t.Helper()
	v := keyed.New(2)
	require.NoError(t, v.Add("king", []float32{3, 1}))
	require.NoError(t, v.Add("man", []float32{1, 0}))
	require.NoError(t, v.Add("queen", []float32{2, 2}))
	require.NoError(t, v.Add("woman", []float32{0, 2}))
	return v
}

func TestNewAnalogyEngine(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewAnalogyEngine(royaltyVocabulary(t))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("nil vocabulary", func(t *testing.T) {
		_, err := NewAnalogyEngine(nil)
		assert.Equal(t, ErrVocabularyRequired, err)
	})
}

func TestAnalogy(t *testing.T) {
	engine, err := NewAnalogyEngine(royaltyVocabulary(t))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("pairing order is isToA minus likeZ", func(t *testing.T) {
		// left  = king - man    = (2, 1)
		// right = woman - queen = (-2, 0)
		// distance = sqrt(16 + 1)
		score, err := engine.Analogy(ctx, "king", "man", "queen", "woman")
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(17), float64(score), 1e-6)

		// The reversed pairing (queen - woman) would give sqrt(1); make
		// sure that is not what we compute.
		assert.Greater(t, math.Abs(float64(score)-1.0), 0.5)
	})

	t.Run("non-negative and reproducible", func(t *testing.T) {
		first, err := engine.Analogy(ctx, "king", "man", "queen", "woman")
		require.NoError(t, err)
		second, err := engine.Analogy(ctx, "king", "man", "queen", "woman")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, float64(first), 0.0)
		assert.Equal(t, first, second, "same model, same inputs, same score")
	})

	t.Run("perfect analogy scores zero", func(t *testing.T) {
		// king - man == queen' - woman' when the offsets match exactly.
		v := keyed.New(2)
		require.NoError(t, v.Add("king", []float32{3, 1}))
		require.NoError(t, v.Add("man", []float32{1, 0}))
		require.NoError(t, v.Add("queen", []float32{0, 1}))
		require.NoError(t, v.Add("woman", []float32{2, 2}))

		engine, err := NewAnalogyEngine(v)
		require.NoError(t, err)
		score, err := engine.Analogy(ctx, "king", "man", "queen", "woman")
		require.NoError(t, err)
		assert.InDelta(t, 0.0, float64(score), 1e-6)
	})

	t.Run("phrases reduce to their first token", func(t *testing.T) {
		direct, err := engine.Analogy(ctx, "king", "man", "queen", "woman")
		require.NoError(t, err)
		phrased, err := engine.Analogy(ctx, "king kong", "man overboard", "queen mother", "woman king")
		require.NoError(t, err)
		assert.Equal(t, direct, phrased)
	})

	t.Run("case folded before lookup", func(t *testing.T) {
		score, err := engine.Analogy(ctx, "King", "MAN", "Queen", "Woman")
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(17), float64(score), 1e-6)
	})
}

func TestAnalogy_OutOfVocabulary(t *testing.T) {
	engine, err := NewAnalogyEngine(royaltyVocabulary(t))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name       string
		x, y, z, a string
	}{
		{name: "x unknown", x: "emperor", y: "man", z: "queen", a: "woman"},
		{name: "isToY unknown", x: "king", y: "duke", z: "queen", a: "woman"},
		{name: "likeZ unknown", x: "king", y: "man", z: "empress", a: "woman"},
		{name: "isToA unknown", x: "king", y: "man", z: "queen", a: "duchess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Analogy(ctx, tt.x, tt.y, tt.z, tt.a)
			assert.ErrorIs(t, err, core.ErrTokenNotFound)
		})
	}
}

func TestAnalogy_EmptyPhrase(t *testing.T) {
	engine, err := NewAnalogyEngine(royaltyVocabulary(t))
	require.NoError(t, err)

	_, err = engine.Analogy(context.Background(), "king", "", "queen", "woman")
	assert.ErrorIs(t, err, core.ErrEmptyPhrase)
}
