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

package usage

import "time"

// MonthKeyFormat is the layout of the period identifier that partitions
// usage records, e.g. "2024-03".
const MonthKeyFormat = "2006-01"

// CurrentMonthKey returns the month key for the current instant.
func CurrentMonthKey() string {
	return MonthKeyAt(time.Now())
}

// MonthKeyAt returns the month key for t. The key is derived in UTC so
// deployments in different regions agree on month boundaries.
func MonthKeyAt(t time.Time) string {
	return t.UTC().Format(MonthKeyFormat)
}
