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

// Package writer orchestrates quota-gated blog generation.
//
// One request flows through: resolve the caller's identity, load (or lazily
// initialize) this month's usage counter, apply the quota gate, invoke the
// content generator, then persist the incremented counter and the generated
// post. The counter only advances after generation succeeds; a failed
// provider call never consumes quota.
package writer
