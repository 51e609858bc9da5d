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

import "time"

// UsageRecord is one user's generation counter for one calendar month.
type UsageRecord struct {
	UserID    string    `json:"user_id"`
	Month     string    `json:"month"`
	Count     int       `json:"count"`
	Limit     int       `json:"limit"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post is a generated blog article together with the parameters it was
// generated from. Rows are immutable once inserted.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Keyword   string    `json:"keyword"`
	Tone      string    `json:"tone"`
	Length    int       `json:"length"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
