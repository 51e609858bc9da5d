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

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Repository provides access to usage counters and posts in PostgreSQL.
type Repository struct {
	db           *sql.DB
	defaultLimit int
}

// NewRepository creates a repository over an open database handle.
// defaultLimit is the monthly generation limit assigned to newly
// initialized usage rows.
func NewRepository(db *sql.DB, defaultLimit int) *Repository {
	return &Repository{db: db, defaultLimit: defaultLimit}
}

// InitSchema creates the tables and indexes this repository needs.
// Safe to call on every startup.
func (r *Repository) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS usage_monthly (
			user_id    TEXT        NOT NULL,
			month      TEXT        NOT NULL,
			count      INTEGER     NOT NULL DEFAULT 0,
			"limit"    INTEGER     NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, month)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id         UUID        PRIMARY KEY,
			user_id    TEXT        NOT NULL,
			keyword    TEXT        NOT NULL,
			tone       TEXT        NOT NULL,
			length     INTEGER     NOT NULL,
			content    TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_user_created ON posts (user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return nil
}

// GetUsage returns the usage record for (userID, month), or a nil record
// with a nil error when no row exists yet. Absence is not an error.
func (r *Repository) GetUsage(ctx context.Context, userID, month string) (*UsageRecord, error) {
	query := `
		SELECT user_id, month, count, "limit", updated_at
		FROM usage_monthly
		WHERE user_id = $1 AND month = $2
	`

	var rec UsageRecord
	err := r.db.QueryRowContext(ctx, query, userID, month).Scan(
		&rec.UserID,
		&rec.Month,
		&rec.Count,
		&rec.Limit,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read usage: %w", err)
	}

	return &rec, nil
}

// UpsertDefaultUsage creates the usage row for (userID, month) with a zero
// count and the default limit, then returns the stored row. The insert uses
// ON CONFLICT DO NOTHING so concurrent initializers for the same key converge
// on a single row; the loser of the race reads the winner's row back.
func (r *Repository) UpsertDefaultUsage(ctx context.Context, userID, month string) (*UsageRecord, error) {
	insert := `
		INSERT INTO usage_monthly (user_id, month, count, "limit", updated_at)
		VALUES ($1, $2, 0, $3, NOW())
		ON CONFLICT (user_id, month) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, insert, userID, month, r.defaultLimit); err != nil {
		return nil, fmt.Errorf("failed to initialize usage: %w", err)
	}

	rec, err := r.GetUsage(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("usage row for %s/%s missing after upsert", userID, month)
	}

	return rec, nil
}

// UpdateUsageCount overwrites the stored count for (userID, month) and bumps
// updated_at.
func (r *Repository) UpdateUsageCount(ctx context.Context, userID, month string, count int) error {
	query := `
		UPDATE usage_monthly
		SET count = $3, updated_at = NOW()
		WHERE user_id = $1 AND month = $2
	`

	if _, err := r.db.ExecContext(ctx, query, userID, month, count); err != nil {
		return fmt.Errorf("failed to update usage count: %w", err)
	}

	return nil
}

// InsertPost appends a generated post. The row id is assigned here.
func (r *Repository) InsertPost(ctx context.Context, post Post) error {
	id := post.ID
	if id == "" {
		id = uuid.New().String()
	}

	query := `
		INSERT INTO posts (id, user_id, keyword, tone, length, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		id,
		post.UserID,
		post.Keyword,
		post.Tone,
		post.Length,
		post.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// ListPosts returns the user's posts, newest first. The result is an empty
// slice, not nil, when the user has no posts.
func (r *Repository) ListPosts(ctx context.Context, userID string) ([]Post, error) {
	query := `
		SELECT id, user_id, keyword, tone, length, content, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Keyword, &p.Tone, &p.Length, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}
