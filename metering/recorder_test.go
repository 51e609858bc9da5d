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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGeneration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO generation_events").
		WithArgs("user-1", "2024-03", "openai", "제주도", 2000, StatusSuccess, int64(1500)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	recorder := NewRecorder(db)
	err = recorder.RecordGeneration(context.Background(), GenerationEvent{
		UserID:    "user-1",
		Month:     "2024-03",
		Provider:  "openai",
		Keyword:   "제주도",
		Length:    2000,
		Status:    StatusSuccess,
		LatencyMs: 1500,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordGeneration_InsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO generation_events").
		WillReturnError(errors.New("connection refused"))

	recorder := NewRecorder(db)
	err = recorder.RecordGeneration(context.Background(), GenerationEvent{
		UserID: "user-1", Month: "2024-03", Provider: "openai",
		Keyword: "kw", Length: 2000, Status: StatusError, LatencyMs: 10,
	})

	assert.Error(t, err)
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS generation_events").
		WillReturnResult(sqlmock.NewResult(0, 0))

	recorder := NewRecorder(db)

	assert.NoError(t, recorder.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
