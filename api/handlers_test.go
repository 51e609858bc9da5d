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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Icarly2701/codex-blog-seo/llm"
	"github.com/Icarly2701/codex-blog-seo/store"
	"github.com/Icarly2701/codex-blog-seo/writer"
)

// MockWorkflow is a mock Workflow.
type MockWorkflow struct {
	mock.Mock
}

func (m *MockWorkflow) Generate(ctx context.Context, in writer.GenerateInput) (*writer.GenerateResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*writer.GenerateResult), args.Error(1)
}

func (m *MockWorkflow) ListPosts(ctx context.Context, token string) ([]store.Post, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Post), args.Error(1)
}

func newTestServer(wf Workflow) http.Handler {
	return NewRouter(NewHandler(wf), []string{"*"})
}

func generateBody(t *testing.T, req GenerateRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestGenerateEndpoint_Success(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("Generate", mock.Anything, mock.MatchedBy(func(in writer.GenerateInput) bool {
		return in.Token == "tok" &&
			in.Keyword == "제주도 맛집" &&
			in.Tone == DefaultTone &&
			in.Length == DefaultLength &&
			in.RequestID != ""
	})).Return(&writer.GenerateResult{
		Content:    "# 결과",
		UsageCount: 1,
		UsageLimit: 3,
		Remaining:  2,
	}, nil)

	r := httptest.NewRequest("POST", "/generate",
		generateBody(t, GenerateRequest{Keyword: "제주도 맛집"}))
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "# 결과", resp.Content)
	assert.Equal(t, 1, resp.UsageCount)
	assert.Equal(t, 3, resp.UsageLimit)
	assert.Equal(t, 2, resp.Remaining)
	wf.AssertExpectations(t)
}

func TestGenerateEndpoint_MissingToken(t *testing.T) {
	wf := new(MockWorkflow)

	r := httptest.NewRequest("POST", "/generate",
		generateBody(t, GenerateRequest{Keyword: "kw"}))
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wf.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateEndpoint_InvalidJSON(t *testing.T) {
	wf := new(MockWorkflow)

	r := httptest.NewRequest("POST", "/generate", bytes.NewReader([]byte("{not json")))
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		want string
	}{
		{
			name: "empty keyword",
			req:  GenerateRequest{Keyword: "   "},
			want: "keyword is required",
		},
		{
			name: "length below minimum",
			req:  GenerateRequest{Keyword: "kw", Length: 100},
			want: "length must be between",
		},
		{
			name: "length above maximum",
			req:  GenerateRequest{Keyword: "kw", Length: 10000},
			want: "length must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := new(MockWorkflow)

			r := httptest.NewRequest("POST", "/generate", generateBody(t, tt.req))
			r.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()

			newTestServer(wf).ServeHTTP(w, r)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Contains(t, resp.Error, tt.want)
			wf.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "invalid token",
			err:        writer.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "quota exceeded",
			err:        &writer.QuotaExceededError{Limit: 3},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "provider misconfigured",
			err:        llm.ErrMisconfigured,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "provider unavailable",
			err:        llm.ErrUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "store unavailable",
			err:        writer.ErrStoreUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := new(MockWorkflow)
			wf.On("Generate", mock.Anything, mock.Anything).Return(nil, tt.err)

			r := httptest.NewRequest("POST", "/generate",
				generateBody(t, GenerateRequest{Keyword: "kw"}))
			r.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()

			newTestServer(wf).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGenerateEndpoint_QuotaErrorBody(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("Generate", mock.Anything, mock.Anything).
		Return(nil, &writer.QuotaExceededError{Limit: 3})

	r := httptest.NewRequest("POST", "/generate",
		generateBody(t, GenerateRequest{Keyword: "kw"}))
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "quota")
	assert.NotEmpty(t, resp.RequestID)
}

func TestPostsEndpoint(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	wf := new(MockWorkflow)
	wf.On("ListPosts", mock.Anything, "tok").Return([]store.Post{
		{ID: "p1", UserID: "user-1", Keyword: "kw", Tone: "tone", Length: 2000, Content: "c", CreatedAt: created},
	}, nil)

	r := httptest.NewRequest("GET", "/posts", nil)
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PostsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p1", resp.Items[0].ID)
	assert.Equal(t, created, resp.Items[0].CreatedAt)
}

func TestPostsEndpoint_EmptyListStaysArray(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("ListPosts", mock.Anything, "tok").Return([]store.Post{}, nil)

	r := httptest.NewRequest("GET", "/posts", nil)
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestPostsEndpoint_Unauthenticated(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("ListPosts", mock.Anything, "tok").Return(nil, writer.ErrUnauthenticated)

	r := httptest.NewRequest("GET", "/posts", nil)
	r.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	wf := new(MockWorkflow)

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "blog-seo-writer", resp.Service)
}

func TestMetricsEndpoint(t *testing.T) {
	wf := new(MockWorkflow)

	r := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	newTestServer(wf).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNormalizeRequest_Defaults(t *testing.T) {
	req := GenerateRequest{Keyword: " 제주도 "}

	require.NoError(t, normalizeRequest(&req))

	assert.Equal(t, "제주도", req.Keyword)
	assert.Equal(t, DefaultTone, req.Tone)
	assert.Equal(t, DefaultLength, req.Length)
}
