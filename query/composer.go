package query

import (
	"context"
	"strings"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab"
)

// Composer answers synonym queries over a trained vocabulary.
type Composer struct {
	vocabulary vocab.Vocabulary
	settings   *settings
}

// NewComposer creates a new composer.
func NewComposer(vocabulary vocab.Vocabulary, opts ...Option) (*Composer, error) {
	if vocabulary == nil {
		return nil, ErrVocabularyRequired
	}
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &Composer{
		vocabulary: vocabulary,
		settings:   s,
	}, nil
}

// Synonyms returns up to k vocabulary tokens nearest to the phrase,
// ordered by descending similarity, excluding any token that appears in
// the phrase itself.
//
// The phrase is resolved through the vocabulary's first-token transform,
// so multi-word phrases reduce to their first word's vector. Because the
// phrase's own tokens are filtered AFTER retrieving k neighbors, the
// result may hold fewer than k entries.
//
// Returns core.ErrInvalidLimit for k < 1, core.ErrEmptyPhrase for blank
// phrases, and core.ErrTokenNotFound when the resolved token is out of
// vocabulary.
func (c *Composer) Synonyms(ctx context.Context, phrase string, k int) (core.SynonymResult, error) {
	if k < 1 {
		return nil, core.ErrInvalidLimit
	}

	vec, queryTokens, err := phraseVector(ctx, c.vocabulary, phrase)
	if err != nil {
		c.settings.logger.Error("error resolving query phrase", "phrase", phrase, "err", err)
		return nil, err
	}

	matches, err := c.vocabulary.Nearest(ctx, vec, k)
	if err != nil {
		c.settings.logger.Error("error querying nearest tokens", "phrase", phrase, "err", err)
		return nil, err
	}

	// Exclude the phrase's own tokens, case-insensitively.
	querySet := make(map[string]bool, len(queryTokens))
	for _, token := range queryTokens {
		querySet[token] = true
	}

	result := make(core.SynonymResult, 0, len(matches))
	for _, match := range matches {
		if querySet[strings.ToLower(match.Token)] {
			continue
		}
		result = append(result, match)
	}

	c.settings.logger.Debug("synonym query answered",
		"phrase", phrase, "k", k, "hits", len(result))
	return result, nil
}
