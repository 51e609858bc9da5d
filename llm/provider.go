// Copyright 2025 Blog SEO Writer
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

package llm

import (
	"context"
	"errors"
)

// Error taxonomy for generation failures. ErrMisconfigured means required
// provider credentials are absent; ErrUnavailable means the provider call
// itself failed or timed out. Neither is retried here.
var (
	ErrMisconfigured = errors.New("generation provider misconfigured")
	ErrUnavailable   = errors.New("generation provider unavailable")
)

// Request is a single completion request to a provider backend.
type Request struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Provider is the unified interface over text-generation backends.
// Implementations must be safe for concurrent use; the context bounds the
// call per request so a slow provider never blocks other requests.
type Provider interface {
	// Name returns the provider identifier ("openai", "groq", ...).
	Name() string

	// Complete returns the provider's response text verbatim, or the empty
	// string if the provider returned no content.
	Complete(ctx context.Context, req Request) (string, error)
}

// Default completion parameters shared by all backends.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4096
)

// Generator produces SEO blog articles through a Provider.
type Generator struct {
	provider Provider
}

// NewGenerator wraps the given provider.
func NewGenerator(p Provider) *Generator {
	return &Generator{provider: p}
}

// Provider returns the backend in use (for logging).
func (g *Generator) Provider() string {
	return g.provider.Name()
}

// Generate builds the article prompt for the given parameters and returns the
// provider's response text. A single failed call is a single failure; there
// is no retry.
func (g *Generator) Generate(ctx context.Context, keyword, tone string, length int) (string, error) {
	return g.provider.Complete(ctx, Request{
		Prompt:       BuildPrompt(keyword, tone, length),
		SystemPrompt: SystemPrompt,
		MaxTokens:    DefaultMaxTokens,
		Temperature:  DefaultTemperature,
	})
}
