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

package writer

import (
	"context"
	"fmt"
	"time"

	"github.com/Icarly2701/codex-blog-seo/auth"
	"github.com/Icarly2701/codex-blog-seo/metering"
	"github.com/Icarly2701/codex-blog-seo/shared/logger"
	"github.com/Icarly2701/codex-blog-seo/store"
	"github.com/Icarly2701/codex-blog-seo/usage"
)

// Store is the record-store capability the workflow needs: usage counters
// keyed by (user, month) and append-only posts.
type Store interface {
	GetUsage(ctx context.Context, userID, month string) (*store.UsageRecord, error)
	UpsertDefaultUsage(ctx context.Context, userID, month string) (*store.UsageRecord, error)
	UpdateUsageCount(ctx context.Context, userID, month string, count int) error
	InsertPost(ctx context.Context, post store.Post) error
	ListPosts(ctx context.Context, userID string) ([]store.Post, error)
}

// ContentGenerator produces article text for the given parameters.
type ContentGenerator interface {
	Generate(ctx context.Context, keyword, tone string, length int) (string, error)
}

// EventRecorder receives one event per provider call. Recording is
// observational and never fails the request.
type EventRecorder interface {
	RecordGeneration(ctx context.Context, event metering.GenerationEvent) error
}

// Service runs the quota-gated generation workflow. It holds no per-request
// state; all shared state lives in the Store.
type Service struct {
	verifier  auth.TokenVerifier
	store     Store
	generator ContentGenerator
	log       *logger.Logger

	events       EventRecorder
	providerName string

	// monthKey is swappable in tests to pin the period.
	monthKey func() string
}

// NewService wires the workflow's collaborators.
func NewService(verifier auth.TokenVerifier, st Store, gen ContentGenerator) *Service {
	return &Service{
		verifier:  verifier,
		store:     st,
		generator: gen,
		log:       logger.New("writer"),
		monthKey:  usage.CurrentMonthKey,
	}
}

// WithEventRecorder enables generation-event metering. The provider name is
// stamped on every event.
func (s *Service) WithEventRecorder(rec EventRecorder, providerName string) *Service {
	s.events = rec
	s.providerName = providerName
	return s
}

func (s *Service) recordEvent(ctx context.Context, userID, month, keyword string, length int, status string, started time.Time) {
	if s.events == nil {
		return
	}
	// Errors are already logged by the recorder.
	_ = s.events.RecordGeneration(ctx, metering.GenerationEvent{
		UserID:    userID,
		Month:     month,
		Provider:  s.providerName,
		Keyword:   keyword,
		Length:    length,
		Status:    status,
		LatencyMs: time.Since(started).Milliseconds(),
	})
}

// GenerateInput is one generation request.
type GenerateInput struct {
	Token     string
	RequestID string
	Keyword   string
	Tone      string
	Length    int
}

// GenerateResult is the complete payload of a successful generation.
type GenerateResult struct {
	Content    string
	UsageCount int
	UsageLimit int
	Remaining  int
}

// Generate runs the workflow for one request.
//
// Ordering matters: the counter is written only after the provider call
// succeeds, so a failed generation never consumes quota. If the counter
// write succeeds and the post insert then fails, the count is deliberately
// not rolled back; the request fails but the quota stays consumed.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	userID, err := s.verifier.Verify(ctx, in.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	month := s.monthKey()

	record, err := s.store.GetUsage(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if record == nil {
		record, err = s.store.UpsertDefaultUsage(ctx, userID, month)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	state := usage.State{Count: record.Count, Limit: record.Limit}
	if !usage.CanGenerate(state) {
		s.log.Info(userID, in.RequestID, "generation denied, quota exhausted", map[string]interface{}{
			"month": month,
			"count": state.Count,
			"limit": state.Limit,
		})
		return nil, &QuotaExceededError{Limit: state.Limit}
	}

	started := time.Now()
	content, err := s.generator.Generate(ctx, in.Keyword, in.Tone, in.Length)
	if err != nil {
		s.recordEvent(ctx, userID, month, in.Keyword, in.Length, metering.StatusError, started)
		// No usage mutation on generator failure.
		return nil, err
	}
	s.recordEvent(ctx, userID, month, in.Keyword, in.Length, metering.StatusSuccess, started)

	next := usage.Increment(state)
	if err := s.store.UpdateUsageCount(ctx, userID, month, next.Count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	err = s.store.InsertPost(ctx, store.Post{
		UserID:  userID,
		Keyword: in.Keyword,
		Tone:    in.Tone,
		Length:  in.Length,
		Content: content,
	})
	if err != nil {
		// The count write already landed; no compensation here. The caller
		// sees a failure and the quota stays consumed.
		s.log.Warn(userID, in.RequestID, "post insert failed after usage write", map[string]interface{}{
			"month": month,
			"count": next.Count,
		})
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.log.Info(userID, in.RequestID, "post generated", map[string]interface{}{
		"month":     month,
		"count":     next.Count,
		"limit":     next.Limit,
		"remaining": usage.Remaining(next),
	})

	return &GenerateResult{
		Content:    content,
		UsageCount: next.Count,
		UsageLimit: next.Limit,
		Remaining:  usage.Remaining(next),
	}, nil
}

// ListPosts resolves the caller and returns their posts, newest first.
func (s *Service) ListPosts(ctx context.Context, token string) ([]store.Post, error) {
	userID, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	posts, err := s.store.ListPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return posts, nil
}
