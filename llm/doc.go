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

// Package llm turns generation parameters into blog articles via an external
// text-generation provider.
//
// The concrete backend is a discriminated choice made once at startup from
// configuration: OpenAI, Groq (OpenAI-compatible API), Anthropic, or AWS
// Bedrock. Each backend lives in its own subpackage; this package holds the
// shared Provider interface, the prompt template, and the factory that wires
// a configured backend behind the interface.
package llm
