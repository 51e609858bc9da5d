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

// Package bedrock calls AWS Bedrock managed models through the AWS SDK,
// which handles Signature V4 authentication via IAM.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	// DefaultRegion is used when no region is configured.
	DefaultRegion = "us-east-1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "anthropic.claude-3-5-sonnet-20240620-v1:0"
)

// InvokeAPI is the subset of the Bedrock runtime client used here
// (enables testing).
type InvokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Config contains configuration for the Bedrock client.
type Config struct {
	Region string // Optional: AWS region (default: us-east-1)
	Model  string // Optional: default model id
}

// Client invokes Bedrock models.
type Client struct {
	api    InvokeAPI
	region string
	model  string
}

// CompletionRequest is a single model invocation.
type CompletionRequest struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// NewClient loads AWS configuration for the region and creates a client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for region %s: %w", cfg.Region, err)
	}

	return &Client{
		api:    bedrockruntime.NewFromConfig(awsCfg),
		region: cfg.Region,
		model:  cfg.Model,
	}, nil
}

// Model returns the configured default model id.
func (c *Client) Model() string {
	return c.model
}

// Complete invokes the configured model and returns its text output.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body, err := buildRequestBody(c.model, req)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.model),
		Body:        payload,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke failed: %w", err)
	}

	return parseResponseBody(c.model, output.Body)
}

// modelFamily identifies the request/response dialect from the model id
// prefix, e.g. "anthropic.claude-..." or "amazon.titan-...".
func modelFamily(model string) string {
	family, _, found := strings.Cut(model, ".")
	if !found {
		return ""
	}
	return family
}

func buildRequestBody(model string, req CompletionRequest) (map[string]interface{}, error) {
	switch modelFamily(model) {
	case "anthropic":
		body := map[string]interface{}{
			"anthropic_version": "bedrock-2023-05-31",
			"max_tokens":        req.MaxTokens,
			"temperature":       req.Temperature,
			"messages": []map[string]string{
				{"role": "user", "content": req.Prompt},
			},
		}
		if req.SystemPrompt != "" {
			body["system"] = req.SystemPrompt
		}
		return body, nil
	case "amazon":
		return map[string]interface{}{
			"inputText": req.Prompt,
			"textGenerationConfig": map[string]interface{}{
				"maxTokenCount": req.MaxTokens,
				"temperature":   req.Temperature,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported bedrock model family for model %q", model)
	}
}

func parseResponseBody(model string, body []byte) (string, error) {
	switch modelFamily(model) {
	case "anthropic":
		var resp struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
		var text strings.Builder
		for _, block := range resp.Content {
			if block.Type == "text" {
				text.WriteString(block.Text)
			}
		}
		return text.String(), nil
	case "amazon":
		var resp struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
		if len(resp.Results) == 0 {
			return "", nil
		}
		return resp.Results[0].OutputText, nil
	default:
		return "", fmt.Errorf("unsupported bedrock model family for model %q", model)
	}
}
