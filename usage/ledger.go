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

// State is an immutable snapshot of a user's quota for one month:
// Count generations used against a Limit. Transitions return a new
// value rather than mutating in place.
//
// Count is never negative and Limit is always positive for states built
// from stored records. Count may exceed Limit (e.g. the limit was lowered
// after use); Remaining clamps at zero in that case.
type State struct {
	Count int
	Limit int
}

// CanGenerate reports whether the state permits one more generation.
func CanGenerate(s State) bool {
	return s.Count < s.Limit
}

// Increment returns a new state with one more generation consumed.
// It does not gate on CanGenerate; callers must check the gate first.
func Increment(s State) State {
	return State{Count: s.Count + 1, Limit: s.Limit}
}

// Remaining returns the number of generations left, never negative.
func Remaining(s State) int {
	if left := s.Limit - s.Count; left > 0 {
		return left
	}
	return 0
}
