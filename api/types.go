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

package api

import "time"

// Request length bounds. Out-of-range values are rejected, a zero value
// selects the default.
const (
	MinLength     = 500
	MaxLength     = 5000
	DefaultLength = 2000

	// DefaultTone is used when the request leaves tone empty.
	DefaultTone = "전문적이지만 이해하기 쉽게"
)

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Keyword string `json:"keyword"`
	Tone    string `json:"tone,omitempty"`
	Length  int    `json:"length,omitempty"`
}

// GenerateResponse is the success payload of the generation endpoint.
type GenerateResponse struct {
	Content    string `json:"content"`
	UsageCount int    `json:"usage_count"`
	UsageLimit int    `json:"usage_limit"`
	Remaining  int    `json:"remaining"`
}

// PostResponse is one stored post in the listing payload.
type PostResponse struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Tone      string    `json:"tone"`
	Length    int       `json:"length"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostsResponse is the payload of GET /posts.
type PostsResponse struct {
	Items []PostResponse `json:"items"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
