package query

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab"
)

// settings holds configuration shared by the query engines.
type settings struct {
	logger *slog.Logger
}

// Option configures a query engine.
type Option func(*settings) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// phraseTokens lowercases and whitespace-splits a query phrase. No
// punctuation or markup stripping happens here; query phrases are
// expected to arrive already clean.
func phraseTokens(phrase string) []string {
	return strings.Fields(strings.ToLower(phrase))
}

// phraseVector resolves a phrase to its embedding via the vocabulary's
// first-token transform, returning the phrase tokens alongside.
func phraseVector(ctx context.Context, v vocab.Vocabulary, phrase string) ([]float32, []string, error) {
	tokens := phraseTokens(phrase)
	if len(tokens) == 0 {
		return nil, nil, core.ErrEmptyPhrase
	}
	vec, err := v.Embed(ctx, tokens)
	if err != nil {
		return nil, tokens, err
	}
	return vec, tokens, nil
}
