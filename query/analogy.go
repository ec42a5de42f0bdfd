package query

import (
	"context"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab"
)

// AnalogyEngine scores word analogies over a trained vocabulary.
type AnalogyEngine struct {
	vocabulary vocab.Vocabulary
	settings   *settings
}

// NewAnalogyEngine creates a new analogy engine.
func NewAnalogyEngine(vocabulary vocab.Vocabulary, opts ...Option) (*AnalogyEngine, error) {
	if vocabulary == nil {
		return nil, ErrVocabularyRequired
	}
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &AnalogyEngine{
		vocabulary: vocabulary,
		settings:   s,
	}, nil
}

// Analogy scores how well "x is to isToY as likeZ is to isToA" holds in
// the embedding space. Each phrase resolves through the vocabulary's
// first-token transform. The score is the raw Euclidean distance between
// vector(x)-vector(isToY) and vector(isToA)-vector(likeZ); smaller means
// the relationship holds more strongly.
//
// Note the pairing order on the right side: isToA minus likeZ, not the
// reverse.
//
// Returns core.ErrTokenNotFound if any phrase is out of vocabulary.
func (e *AnalogyEngine) Analogy(ctx context.Context, x, isToY, likeZ, isToA string) (core.AnalogyScore, error) {
	vecX, _, err := phraseVector(ctx, e.vocabulary, x)
	if err != nil {
		return 0, e.logResolveError("x", x, err)
	}
	vecY, _, err := phraseVector(ctx, e.vocabulary, isToY)
	if err != nil {
		return 0, e.logResolveError("isToY", isToY, err)
	}
	vecZ, _, err := phraseVector(ctx, e.vocabulary, likeZ)
	if err != nil {
		return 0, e.logResolveError("likeZ", likeZ, err)
	}
	vecA, _, err := phraseVector(ctx, e.vocabulary, isToA)
	if err != nil {
		return 0, e.logResolveError("isToA", isToA, err)
	}

	left, err := core.Subtract(vecX, vecY)
	if err != nil {
		return 0, err
	}
	right, err := core.Subtract(vecA, vecZ)
	if err != nil {
		return 0, err
	}

	distance, err := core.EuclideanDistance(left, right)
	if err != nil {
		return 0, err
	}

	e.settings.logger.Debug("analogy query answered",
		"x", x, "isToY", isToY, "likeZ", likeZ, "isToA", isToA, "score", distance)
	return core.AnalogyScore(distance), nil
}

func (e *AnalogyEngine) logResolveError(position, phrase string, err error) error {
	e.settings.logger.Error("error resolving analogy phrase",
		"position", position, "phrase", phrase, "err", err)
	return err
}
