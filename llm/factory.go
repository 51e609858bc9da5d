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
	"fmt"
	"strings"

	"github.com/Icarly2701/codex-blog-seo/llm/anthropic"
	"github.com/Icarly2701/codex-blog-seo/llm/bedrock"
	"github.com/Icarly2701/codex-blog-seo/llm/openai"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
)

// Config selects and configures the generation backend. The choice is made
// once at startup; a missing credential for the selected provider is a
// configuration error, not a per-request one.
type Config struct {
	Provider string // openai (default), groq, anthropic, or bedrock

	OpenAIAPIKey string
	OpenAIModel  string

	GroqAPIKey string
	GroqModel  string

	AnthropicAPIKey string
	AnthropicModel  string

	BedrockRegion string
	BedrockModel  string
}

// NewProvider constructs the configured backend behind the Provider
// interface. Unknown provider names and missing credentials return errors
// wrapping ErrMisconfigured.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI, "":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is missing", ErrMisconfigured)
		}
		client, err := openai.NewClient(openai.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
		}
		return &openAIProvider{name: ProviderOpenAI, client: client}, nil

	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("%w: GROQ_API_KEY is missing", ErrMisconfigured)
		}
		model := cfg.GroqModel
		if model == "" {
			model = "llama-3.1-8b-instant"
		}
		client, err := openai.NewClient(openai.Config{
			APIKey:  cfg.GroqAPIKey,
			BaseURL: openai.GroqBaseURL,
			Model:   model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
		}
		return &openAIProvider{name: ProviderGroq, client: client}, nil

	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is missing", ErrMisconfigured)
		}
		client, err := anthropic.NewClient(anthropic.Config{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.AnthropicModel,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
		}
		return &anthropicProvider{client: client}, nil

	case ProviderBedrock:
		client, err := bedrock.NewClient(ctx, bedrock.Config{
			Region: cfg.BedrockRegion,
			Model:  cfg.BedrockModel,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMisconfigured, err)
		}
		return &bedrockProvider{client: client}, nil

	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrMisconfigured, cfg.Provider)
	}
}

// openAIProvider adapts an openai.Client (shared by the OpenAI and Groq
// variants) to the Provider interface.
type openAIProvider struct {
	name   string
	client *openai.Client
}

func (p *openAIProvider) Name() string {
	return p.name
}

func (p *openAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	content, err := p.client.Complete(ctx, openai.CompletionRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return content, nil
}

type anthropicProvider struct {
	client *anthropic.Client
}

func (p *anthropicProvider) Name() string {
	return ProviderAnthropic
}

func (p *anthropicProvider) Complete(ctx context.Context, req Request) (string, error) {
	content, err := p.client.Complete(ctx, anthropic.CompletionRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return content, nil
}

type bedrockProvider struct {
	client *bedrock.Client
}

func (p *bedrockProvider) Name() string {
	return ProviderBedrock
}

func (p *bedrockProvider) Complete(ctx context.Context, req Request) (string, error) {
	content, err := p.client.Complete(ctx, bedrock.CompletionRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return content, nil
}
