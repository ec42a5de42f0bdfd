package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/wordspace/vocab"
	"github.com/poiesic/wordspace/vocab/keyed"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Default number of tokens embedded per service request.
const defaultBatchSize = 64

// Embedder generates token vectors through an OpenAI-compatible
// embedding API. It serves corpora that have no locally trained word2vec
// model: the service's vectors are materialized into an in-memory table
// which then behaves like any other vocabulary.
type Embedder struct {
	embedder  embeddings.Embedder
	batchSize int
	logger    *slog.Logger
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithBatchSize sets the number of tokens sent per embedding request.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(e *Embedder) {
		if size < 1 {
			size = 1
		}
		e.batchSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Embedder) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger.With("component", "openai-embedder")
	}
}

// NewEmbedder creates an embedder for the configured service.
func NewEmbedder(config *vocab.Config, opts ...Option) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	e := &Embedder{
		embedder:  embedder,
		batchSize: defaultBatchSize,
		logger:    slog.Default().With("component", "openai-embedder"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// EmbedTokens generates one vector per token, in input order.
func (e *Embedder) EmbedTokens(ctx context.Context, tokens []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for tokens", "count", len(tokens))

	vectors, err := e.embedder.EmbedDocuments(ctx, tokens)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(tokens), "err", err)
		return nil, err
	}
	return vectors, nil
}

// BuildVocabulary embeds every distinct token and materializes the
// results into an in-memory vector table. Duplicate tokens are embedded
// once; requests go out in batches.
func (e *Embedder) BuildVocabulary(ctx context.Context, tokens []string) (*keyed.Vectors, error) {
	distinct := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			distinct = append(distinct, token)
		}
	}

	e.logger.Info("building vocabulary from embedding service",
		"tokens", len(tokens), "distinct", len(distinct))

	var vectors *keyed.Vectors
	for start := 0; start < len(distinct); start += e.batchSize {
		end := min(start+e.batchSize, len(distinct))
		batch := distinct[start:end]

		embedded, err := e.EmbedTokens(ctx, batch)
		if err != nil {
			return nil, err
		}

		for i, vec := range embedded {
			if vectors == nil {
				// The service fixes the dimensionality with its first answer.
				vectors = keyed.New(len(vec))
			}
			if err := vectors.Add(batch[i], vec); err != nil {
				return nil, err
			}
		}
	}

	if vectors == nil {
		vectors = keyed.New(0)
	}
	return vectors, nil
}
