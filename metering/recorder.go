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

package metering

import (
	"context"
	"database/sql"
	"log"
)

// Event outcome values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// GenerationEvent is one provider call, successful or not.
type GenerationEvent struct {
	UserID    string
	Month     string
	Provider  string
	Keyword   string
	Length    int
	Status    string
	LatencyMs int64
}

// Recorder writes generation events to the database.
type Recorder struct {
	db *sql.DB
}

// NewRecorder creates a Recorder over the given database connection.
func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{db: db}
}

// EnsureSchema creates the events table when it does not exist yet.
func (r *Recorder) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS generation_events (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			month TEXT NOT NULL,
			provider TEXT NOT NULL,
			keyword TEXT NOT NULL,
			length INT NOT NULL,
			status TEXT NOT NULL,
			latency_ms BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// RecordGeneration inserts one event. Errors are logged here as well because
// callers treat recording as fire-and-forget.
func (r *Recorder) RecordGeneration(ctx context.Context, event GenerationEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generation_events (
			user_id, month, provider, keyword, length, status, latency_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.UserID, event.Month, event.Provider, event.Keyword,
		event.Length, event.Status, event.LatencyMs)

	if err != nil {
		log.Printf("[METERING] Failed to record generation event: %v", err)
	}

	return err
}
