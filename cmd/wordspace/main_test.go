package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "DeBuG"})
		require.NoError(t, err)
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLoadVocabulary(t *testing.T) {
	ctx := context.Background()

	runWith := func(t *testing.T, args []string, action func(c *cli.Context) error) error {
		t.Helper()
		app := &cli.App{
			Name: "test",
			Commands: []*cli.Command{
				{
					Name:   "q",
					Flags:  sourceFlags(),
					Action: action,
				},
			},
		}
		return app.Run(append([]string{"test", "q"}, args...))
	}

	t.Run("vectors file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vectors.txt")
		require.NoError(t, os.WriteFile(path, []byte("movie 1 0\nfilm 0 1\n"), 0644))

		err := runWith(t, []string{"--vectors", path}, func(c *cli.Context) error {
			vocabulary, cleanup, err := loadVocabulary(ctx, c)
			require.NoError(t, err)
			defer cleanup()

			assert.Equal(t, 2, vocabulary.Dim())
			assert.True(t, vocabulary.Contains("movie"))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("no source fails", func(t *testing.T) {
		err := runWith(t, nil, func(c *cli.Context) error {
			_, _, err := loadVocabulary(ctx, c)
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--vectors or --db")
	})

	t.Run("both sources fail", func(t *testing.T) {
		err := runWith(t, []string{"--vectors", "v.txt", "--db", "d"}, func(c *cli.Context) error {
			_, _, err := loadVocabulary(ctx, c)
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not both")
	})
}
