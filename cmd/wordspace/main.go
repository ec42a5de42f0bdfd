// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/wordspace"
	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/ingestion"
	"github.com/poiesic/wordspace/query"
	"github.com/poiesic/wordspace/text"
	"github.com/poiesic/wordspace/vocab"
	"github.com/poiesic/wordspace/vocab/keyed"
	"github.com/poiesic/wordspace/vocab/openai"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wordspace",
		Usage: "Word-vector queries over a normalized review corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Normalize a raw corpus and persist its documents",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Path to newline-delimited corpus file (- for stdin)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent normalization workers",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents persisted per transaction",
						Value: 256,
					},
					&cli.BoolFlag{
						Name:  "keep-stopwords",
						Usage: "Keep stopwords instead of filtering them",
					},
				},
			},
			{
				Name:   "import-vectors",
				Usage:  "Persist a trained word2vec text-format model",
				Action: importVectorsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "vectors",
						Aliases:  []string{"v"},
						Usage:    "Path to word2vec text-format model file",
						Required: true,
					},
				},
			},
			{
				Name:   "build-vectors",
				Usage:  "Embed the ingested corpus tokens through an embedding service",
				Action: buildVectorsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "min-count",
						Usage: "Minimum corpus occurrences for a token to be embedded",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of tokens embedded per service request",
						Value: 64,
					},
				},
			},
			{
				Name:      "synonyms",
				Usage:     "Find the tokens nearest to a phrase",
				ArgsUsage: "<phrase>",
				Action:    synonymsCommand,
				Flags: append(sourceFlags(),
					&cli.IntFlag{
						Name:    "k",
						Aliases: []string{"n"},
						Usage:   "Number of neighbors to retrieve",
						Value:   10,
					},
				),
			},
			{
				Name:      "analogy",
				Usage:     "Score the analogy: x is to isToY as likeZ is to isToA",
				ArgsUsage: "<x> <isToY> <likeZ> <isToA>",
				Action:    analogyCommand,
				Flags:     sourceFlags(),
			},
			{
				Name:   "stats",
				Usage:  "Summarize the stored corpus and vectors",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of most frequent tokens to list",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// sourceFlags are shared by the query commands, which read their
// vocabulary either from a model file or from a database.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "vectors",
			Aliases: []string{"v"},
			Usage:   "Path to word2vec text-format model file",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
		},
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := wordspace.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := []ingestion.Option{
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithStopwordFilter(!c.Bool("keep-stopwords")),
	}
	if c.IsSet("pool-size") {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	corpus := os.Stdin
	if path := c.String("corpus"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open corpus: %w", err)
		}
		defer f.Close()
		corpus = f
	}

	stats, err := pipeline.Ingest(ctx, corpus)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Lines:           %d\n", stats.Lines)
	fmt.Printf("Documents:       %d\n", stats.Documents)
	fmt.Printf("Tokens:          %d\n", stats.Tokens)
	fmt.Printf("Distinct tokens: %d\n", stats.DistinctTokens)
	return nil
}

func importVectorsCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := wordspace.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	f, err := os.Open(c.String("vectors"))
	if err != nil {
		return fmt.Errorf("failed to open vectors file: %w", err)
	}
	defer f.Close()

	count, err := db.ImportVectors(ctx, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d token vectors\n", count)
	return nil
}

func buildVectorsCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := wordspace.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	config := vocab.NewConfig(
		vocab.WithEmbeddingHost(c.String("embedding-host")),
		vocab.WithEmbeddingModel(c.String("embedding-model")),
		vocab.WithMinCount(c.Int("min-count")),
	)

	embedder, err := openai.NewEmbedder(config, openai.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	// Tally the stored corpus and cut rare tokens, mirroring the
	// vocabulary cut a trained model applies.
	counts := text.TokenCounts{}
	err = db.DocumentRepository().AllDocuments(ctx, func(doc *core.Document) error {
		counts.Add(doc)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan documents: %w", err)
	}

	tokens := counts.AboveMinCount(config.MinCount)
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens meet the min-count cut of %d", config.MinCount)
	}

	vectors, err := embedder.BuildVocabulary(ctx, tokens)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	entries := vectors.Entries()
	if err := db.VectorRepository().PutVectors(ctx, entries...); err != nil {
		return fmt.Errorf("failed to persist vectors: %w", err)
	}

	fmt.Printf("Built %d token vectors (dim %d)\n", len(entries), vectors.Dim())
	return nil
}

func synonymsCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one phrase argument")
	}
	phrase := c.Args().Get(0)

	vocabulary, cleanup, err := loadVocabulary(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	composer, err := query.NewComposer(vocabulary)
	if err != nil {
		return err
	}

	result, err := composer.Synonyms(ctx, phrase, c.Int("k"))
	if err != nil {
		return fmt.Errorf("synonym query failed: %w", err)
	}

	for _, match := range result {
		fmt.Printf("%-24s %.4f\n", match.Token, match.Score)
	}
	return nil
}

func analogyCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 4 {
		return fmt.Errorf("expected exactly four phrase arguments")
	}

	vocabulary, cleanup, err := loadVocabulary(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	engine, err := query.NewAnalogyEngine(vocabulary)
	if err != nil {
		return err
	}

	args := c.Args()
	score, err := engine.Analogy(ctx, args.Get(0), args.Get(1), args.Get(2), args.Get(3))
	if err != nil {
		return fmt.Errorf("analogy query failed: %w", err)
	}

	fmt.Printf("%s is to %s as %s is to %s: %.4f\n",
		args.Get(0), args.Get(1), args.Get(2), args.Get(3), score)
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := wordspace.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	counts := text.TokenCounts{}
	documents := 0
	err = db.DocumentRepository().AllDocuments(ctx, func(doc *core.Document) error {
		documents++
		counts.Add(doc)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan documents: %w", err)
	}

	vectorCount, err := db.VectorRepository().CountVectors(ctx)
	if err != nil {
		return fmt.Errorf("failed to count vectors: %w", err)
	}
	dim, err := db.VectorRepository().Dim(ctx)
	if err != nil {
		return fmt.Errorf("failed to read vector dim: %w", err)
	}

	fmt.Printf("Documents:       %d\n", documents)
	fmt.Printf("Tokens:          %d\n", counts.Total())
	fmt.Printf("Distinct tokens: %d\n", counts.Distinct())
	fmt.Printf("Vectors:         %d (dim %d)\n", vectorCount, dim)

	if top := c.Int("top"); top > 0 && counts.Distinct() > 0 {
		fmt.Printf("\nTop %d tokens:\n", top)
		for _, token := range counts.MostCommon(top) {
			fmt.Printf("%-24s %d\n", token, counts[token])
		}
	}
	return nil
}

// loadVocabulary resolves the query vocabulary from either a model file
// or a database directory.
func loadVocabulary(ctx context.Context, c *cli.Context) (vocab.Vocabulary, func(), error) {
	vectorsPath := c.String("vectors")
	dbPath := c.String("db")

	switch {
	case vectorsPath != "" && dbPath != "":
		return nil, nil, fmt.Errorf("use either --vectors or --db, not both")
	case vectorsPath != "":
		vectors, err := keyed.LoadFile(vectorsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load vectors: %w", err)
		}
		return vectors, func() {}, nil
	case dbPath != "":
		db, err := wordspace.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		vocabulary, err := db.Vocabulary(ctx)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		return vocabulary, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("either --vectors or --db is required")
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
