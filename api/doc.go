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

// Package api exposes the HTTP surface of the service: the generation
// endpoint, the post listing endpoint, health and Prometheus metrics. It
// owns request validation and the mapping from workflow errors to HTTP
// status codes; all business rules live in the writer package.
package api
