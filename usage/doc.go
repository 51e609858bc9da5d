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

// Package usage implements the monthly generation quota ledger.
//
// The ledger is pure state-transition logic over a (count, limit) pair: it
// decides whether another generation is allowed, produces incremented states,
// and reports remaining quota. It performs no I/O; durable usage records live
// in the store package. Counters are partitioned by a UTC calendar-month key
// so that a new month always starts a fresh counter.
package usage
