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

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultGoTrueTimeout bounds a single auth lookup.
const DefaultGoTrueTimeout = 10 * time.Second

// HTTPClient is the subset of http.Client used by GoTrueVerifier (enables testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GoTrueVerifier resolves tokens by calling the Supabase auth user endpoint,
// GET {base}/auth/v1/user, with the project anon key.
type GoTrueVerifier struct {
	baseURL string
	anonKey string
	client  HTTPClient
}

// NewGoTrueVerifier creates a verifier for the given Supabase project.
func NewGoTrueVerifier(baseURL, anonKey string) (*GoTrueVerifier, error) {
	if baseURL == "" {
		return nil, errors.New("supabase url is required")
	}
	if anonKey == "" {
		return nil, errors.New("supabase anon key is required")
	}

	return &GoTrueVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client:  &http.Client{Timeout: DefaultGoTrueTimeout},
	}, nil
}

// Verify asks the auth endpoint for the user behind the token and returns
// the user id.
func (v *GoTrueVerifier) Verify(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.anonKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: auth request failed: %v", ErrInvalidToken, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: auth endpoint returned %d", ErrInvalidToken, resp.StatusCode)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("%w: failed to decode auth response: %v", ErrInvalidToken, err)
	}
	if user.ID == "" {
		return "", fmt.Errorf("%w: auth response has no user id", ErrInvalidToken)
	}

	return user.ID, nil
}
