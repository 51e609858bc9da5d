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

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHTTPClient is a mock implementation of HTTPClient.
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultModel, client.Model())
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	client, err := NewClient(Config{})

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClient_GroqEndpoint(t *testing.T) {
	client, err := NewClient(Config{
		APIKey:  "gsk-test",
		BaseURL: GroqBaseURL,
		Model:   "llama-3.1-8b-instant",
	})

	require.NoError(t, err)
	assert.Equal(t, GroqBaseURL, client.baseURL)
	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
}

func TestComplete_Success(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)

	mockClient := new(MockHTTPClient)
	client.client = mockClient

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://api.openai.com/v1/chat/completions" {
			return false
		}
		if req.Header.Get("Authorization") != "Bearer sk-test" {
			return false
		}

		var body apiRequest
		raw, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(strings.NewReader(string(raw)))
		if err := json.Unmarshal(raw, &body); err != nil {
			return false
		}
		return body.Model == "gpt-4o-mini" &&
			len(body.Messages) == 2 &&
			body.Messages[0].Role == "system" &&
			body.Messages[1].Role == "user"
	})).Return(jsonResponse(200, `{
		"choices": [{"message": {"content": "# generated article"}}]
	}`), nil)

	content, err := client.Complete(context.Background(), CompletionRequest{
		Prompt:       "write about golang",
		SystemPrompt: "you are a writer",
		MaxTokens:    1024,
		Temperature:  0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "# generated article", content)
	mockClient.AssertExpectations(t)
}

func TestComplete_NoSystemPrompt(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	mockClient := new(MockHTTPClient)
	client.client = mockClient

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		var body apiRequest
		raw, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(strings.NewReader(string(raw)))
		_ = json.Unmarshal(raw, &body)
		return len(body.Messages) == 1 && body.Messages[0].Role == "user"
	})).Return(jsonResponse(200, `{"choices": [{"message": {"content": "ok"}}]}`), nil)

	content, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "ok", content)
}

func TestComplete_EmptyChoices(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	mockClient := new(MockHTTPClient)
	client.client = mockClient
	mockClient.On("Do", mock.Anything).Return(jsonResponse(200, `{"choices": []}`), nil)

	content, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})

	require.NoError(t, err, "no content is an empty string, not an error")
	assert.Empty(t, content)
}

func TestComplete_APIError(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	mockClient := new(MockHTTPClient)
	client.client = mockClient
	mockClient.On("Do", mock.Anything).Return(jsonResponse(429, `{"error": {"message": "rate limited"}}`), nil)

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestComplete_TransportError(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	mockClient := new(MockHTTPClient)
	client.client = mockClient
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})

	assert.Error(t, err)
}
