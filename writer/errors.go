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
	"errors"
	"fmt"
)

// Workflow failure taxonomy. Generator failures keep their llm package
// sentinels and pass through unchanged.
var (
	// ErrUnauthenticated marks a missing, malformed, or rejected credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrStoreUnavailable marks a storage read or write failure.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// QuotaExceededError is returned when the monthly quota denies a generation.
// It carries the limit for the user-facing message.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly quota exceeded (%d/month)", e.Limit)
}
