package ingestion

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/storage"
	"github.com/poiesic/wordspace/text"
)

const (
	defaultBatchSize = 256

	// Review lines can run long; match the loader's generous cap.
	maxLineSize = 1024 * 1024
)

// Pipeline orchestrates corpus ingestion. It normalizes raw lines into
// token documents concurrently and persists them in batches.
type Pipeline struct {
	documents       storage.DocumentRepository
	normalizer      *text.Normalizer
	pool            *ants.Pool
	batchSize       int
	filterStopwords bool
	logger          *slog.Logger
}

// Stats summarizes one ingestion run.
type Stats struct {
	Lines          int // raw input lines read
	Documents      int // non-empty documents persisted
	EmptyDocuments int // documents normalization left without tokens
	Tokens         int // total tokens across persisted documents
	DistinctTokens int // distinct tokens across persisted documents
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent normalization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are persisted per transaction.
// Default is 256.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithStopwordFilter enables stopword removal after normalization.
// Default is off, keeping the corpus as the normalizer produced it.
func WithStopwordFilter(enabled bool) Option {
	return func(p *Pipeline) error {
		p.filterStopwords = enabled
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(documents storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents:  documents,
		normalizer: text.NewNormalizer(),
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest reads newline-delimited raw text from r, normalizes each line
// into token documents, and persists the non-empty ones. Lines are
// normalized concurrently; persistence happens in batches on a single
// collector goroutine, so repository implementations only see serial
// writes from one ingestion run.
func (p *Pipeline) Ingest(ctx context.Context, r io.Reader) (*Stats, error) {
	stats := &Stats{}
	counts := text.TokenCounts{}

	results := make(chan []*core.Document, p.pool.Cap()*2)

	var collectErr error
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()

		batch := make([]*core.Document, 0, p.batchSize)
		flush := func() {
			if len(batch) == 0 || collectErr != nil {
				return
			}
			if err := p.documents.AddDocuments(ctx, batch...); err != nil {
				p.logger.Error("error persisting document batch", "size", len(batch), "err", err)
				collectErr = err
				return
			}
			batch = batch[:0]
		}

		for docs := range results {
			for _, doc := range docs {
				if doc.Empty() {
					stats.EmptyDocuments++
					continue
				}
				stats.Documents++
				stats.Tokens += len(doc.Tokens)
				counts.Add(doc)

				batch = append(batch, doc)
				if len(batch) >= p.batchSize {
					flush()
				}
			}
		}
		flush()
	}()

	var workWg sync.WaitGroup
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var scanErr error
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			scanErr = err
			break
		}

		line := scanner.Text()
		stats.Lines++

		workWg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer workWg.Done()

			docs := p.normalizer.Normalize(line)
			if p.filterStopwords {
				for i, doc := range docs {
					docs[i] = text.FilterStopwords(doc)
				}
			}
			results <- docs
		})
		if submitErr != nil {
			workWg.Done()
			scanErr = submitErr
			break
		}
	}
	if scanErr == nil {
		scanErr = scanner.Err()
	}

	workWg.Wait()
	close(results)
	collectWg.Wait()

	stats.DistinctTokens = counts.Distinct()

	if scanErr != nil {
		return stats, scanErr
	}
	if collectErr != nil {
		return stats, collectErr
	}

	p.logger.Info("corpus ingested",
		"lines", stats.Lines,
		"documents", stats.Documents,
		"tokens", stats.Tokens,
		"distinctTokens", stats.DistinctTokens)
	return stats, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
