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

// Package auth maps bearer credentials to stable user identifiers.
//
// Two verifier implementations are provided: JWTVerifier validates Supabase
// access tokens locally against the project's JWT secret, and GoTrueVerifier
// asks the Supabase auth endpoint to resolve the token. Both satisfy
// TokenVerifier; which one runs is a startup-time configuration choice.
package auth
