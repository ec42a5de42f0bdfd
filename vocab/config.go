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


package vocab

import (
	"errors"
	"strings"
)

// Config holds model construction parameters shared by trainers and the
// service-backed embedding adapter.
type Config struct {
	// VectorSize is the embedding dimensionality fixed at training time.
	// Default: 200
	VectorSize int

	// MinCount is the minimum corpus frequency for a token to enter the
	// vocabulary. Rarer tokens are excluded and later lookups for them
	// fail with core.ErrTokenNotFound.
	// Default: 10
	MinCount int

	// EmbeddingHost is the base URL for the embedding service API, used
	// by the openai adapter only.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	EmbeddingHost string

	// EmbeddingModel is the model identifier for the embedding service,
	// used by the openai adapter only.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithVectorSize sets the embedding dimensionality.
func WithVectorSize(size int) ConfigOption {
	return func(c *Config) {
		c.VectorSize = size
	}
}

// WithMinCount sets the minimum corpus frequency for vocabulary entry.
func WithMinCount(min int) ConfigOption {
	return func(c *Config) {
		c.MinCount = min
	}
}

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// DefaultConfig returns a Config with the standard training parameters
// and a local OpenAI-compatible service endpoint.
func DefaultConfig() *Config {
	return &Config{
		VectorSize:     200,
		MinCount:       10,
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "embeddinggemma",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithVectorSize(200),
//	    WithMinCount(10),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. It adds the
// /v1 suffix to the embedding host if missing, which OpenAI-compatible
// APIs (Ollama, LocalAI, vLLM, etc) require.
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.VectorSize < 1 {
		return errors.New("vocab config: VectorSize must be at least 1")
	}
	if c.MinCount < 1 {
		return errors.New("vocab config: MinCount must be at least 1")
	}
	if c.EmbeddingHost == "" {
		return errors.New("vocab config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("vocab config: EmbeddingModel is required")
	}
	return nil
}
