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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Icarly2701/codex-blog-seo/llm"
	"github.com/Icarly2701/codex-blog-seo/shared/logger"
	"github.com/Icarly2701/codex-blog-seo/store"
	"github.com/Icarly2701/codex-blog-seo/writer"
)

// Workflow is the writer capability the handlers depend on.
type Workflow interface {
	Generate(ctx context.Context, in writer.GenerateInput) (*writer.GenerateResult, error)
	ListPosts(ctx context.Context, token string) ([]store.Post, error)
}

// Handler serves the HTTP endpoints backed by the generation workflow.
type Handler struct {
	workflow Workflow
	log      *logger.Logger
}

// NewHandler creates a Handler around the given workflow.
func NewHandler(workflow Workflow) *Handler {
	return &Handler{
		workflow: workflow,
		log:      logger.New("api"),
	}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   "blog-seo-writer",
		Timestamp: time.Now().UTC(),
	})
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	token, err := bearerToken(r)
	if err != nil {
		promRequestsTotal.WithLabelValues("generate", "unauthorized").Inc()
		writeError(w, http.StatusUnauthorized, "missing bearer token", requestID)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		promRequestsTotal.WithLabelValues("generate", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body", requestID)
		return
	}

	if err := normalizeRequest(&req); err != nil {
		promRequestsTotal.WithLabelValues("generate", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	start := time.Now()
	result, err := h.workflow.Generate(r.Context(), writer.GenerateInput{
		Token:     token,
		RequestID: requestID,
		Keyword:   req.Keyword,
		Tone:      req.Tone,
		Length:    req.Length,
	})
	promGenerationDuration.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		status, message := mapWorkflowError(err)
		h.log.ErrorWithCode("", requestID, "generation failed", status, err, map[string]interface{}{
			"keyword": req.Keyword,
		})
		promRequestsTotal.WithLabelValues("generate", statusLabel(status)).Inc()
		if status == http.StatusTooManyRequests {
			promQuotaDenials.Inc()
		}
		writeError(w, status, message, requestID)
		return
	}

	promRequestsTotal.WithLabelValues("generate", "success").Inc()
	writeJSON(w, http.StatusOK, GenerateResponse{
		Content:    result.Content,
		UsageCount: result.UsageCount,
		UsageLimit: result.UsageLimit,
		Remaining:  result.Remaining,
	})
}

// Posts handles GET /posts.
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	token, err := bearerToken(r)
	if err != nil {
		promRequestsTotal.WithLabelValues("posts", "unauthorized").Inc()
		writeError(w, http.StatusUnauthorized, "missing bearer token", requestID)
		return
	}

	posts, err := h.workflow.ListPosts(r.Context(), token)
	if err != nil {
		status, message := mapWorkflowError(err)
		promRequestsTotal.WithLabelValues("posts", statusLabel(status)).Inc()
		writeError(w, status, message, requestID)
		return
	}

	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostResponse{
			ID:        p.ID,
			Keyword:   p.Keyword,
			Tone:      p.Tone,
			Length:    p.Length,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
	}

	promRequestsTotal.WithLabelValues("posts", "success").Inc()
	writeJSON(w, http.StatusOK, PostsResponse{Items: out})
}

// normalizeRequest validates a generation request and fills in defaults.
func normalizeRequest(req *GenerateRequest) error {
	req.Keyword = strings.TrimSpace(req.Keyword)
	if req.Keyword == "" {
		return fmt.Errorf("keyword is required")
	}

	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = DefaultTone
	}

	if req.Length == 0 {
		req.Length = DefaultLength
	}
	if req.Length < MinLength || req.Length > MaxLength {
		return fmt.Errorf("length must be between %d and %d", MinLength, MaxLength)
	}

	return nil
}

// mapWorkflowError maps workflow errors to an HTTP status and a client-safe
// message.
func mapWorkflowError(err error) (int, string) {
	var quotaErr *writer.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		return http.StatusTooManyRequests, quotaErr.Error()
	case errors.Is(err, writer.ErrUnauthenticated):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, llm.ErrMisconfigured):
		return http.StatusInternalServerError, "generation provider misconfigured"
	case errors.Is(err, llm.ErrUnavailable):
		return http.StatusInternalServerError, "generation provider unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func statusLabel(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusTooManyRequests:
		return "quota_exceeded"
	default:
		return "error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, requestID string) {
	writeJSON(w, status, ErrorResponse{Error: message, RequestID: requestID})
}
