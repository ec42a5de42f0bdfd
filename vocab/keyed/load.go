package keyed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/wordspace/core"
)

// Scanner buffer large enough for wide embedding rows.
const maxLineBytes = 1 << 20

// Load reads a word2vec text-format model: one "token v1 v2 ... vn" row
// per line, optionally preceded by a "vocabSize dim" header line. Every
// row must share the first row's dimensionality; ragged rows fail with
// core.ErrDimensionMismatch.
func Load(r io.Reader) (*Vectors, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var vectors *Vectors
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		// Optional word2vec header: two integer fields on the first row.
		if vectors == nil && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				if dim, err := strconv.Atoi(fields[1]); err == nil {
					vectors = New(dim)
					continue
				}
			}
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("vectors line %d: no vector components for %q", lineNo, fields[0])
		}

		token := fields[0]
		vec := make([]float32, len(fields)-1)
		for i, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("vectors line %d: parsing component %d: %w", lineNo, i, err)
			}
			vec[i] = float32(val)
		}

		if vectors == nil {
			vectors = New(len(vec))
		}
		if err := vectors.Add(token, vec); err != nil {
			return nil, fmt.Errorf("vectors line %d: %d components, want %d: %w",
				lineNo, len(vec), vectors.Dim(), err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if vectors == nil {
		vectors = New(0)
	}
	return vectors, nil
}

// LoadFile reads a word2vec text-format model from disk.
func LoadFile(path string) (*Vectors, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// FromEntries builds a vector table from persisted entries, e.g. out of a
// vector repository. All entries must share one dimensionality.
func FromEntries(entries []*core.VectorEntry) (*Vectors, error) {
	if len(entries) == 0 {
		return New(0), nil
	}
	vectors := New(len(entries[0].Vector))
	for _, entry := range entries {
		if err := vectors.Add(entry.Token, entry.Vector); err != nil {
			return nil, fmt.Errorf("vector entry %q: %w", entry.Token, err)
		}
	}
	return vectors, nil
}
