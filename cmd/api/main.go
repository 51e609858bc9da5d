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

// Package main is the entry point for the Blog SEO Writer service.
//
// The service generates Korean SEO blog articles through an LLM provider,
// gated by a per-user monthly quota stored in PostgreSQL.
//
// Usage:
//
//	./api
//
// Environment Variables:
//
//	PORT - HTTP server port (default: 8090)
//	DATABASE_URL - PostgreSQL connection string (required)
//	SUPABASE_JWT_SECRET - HS256 secret for local token verification
//	SUPABASE_URL, SUPABASE_ANON_KEY - GoTrue fallback verification
//	LLM_PROVIDER - openai (default), groq, anthropic, or bedrock
//	OPENAI_API_KEY, GROQ_API_KEY, ANTHROPIC_API_KEY - provider credentials
//	BEDROCK_REGION, BEDROCK_MODEL - AWS Bedrock settings
//	CORS_ORIGINS - comma-separated allowed origins (default: http://localhost:3000)
//	DEFAULT_MONTHLY_LIMIT - posts per user per month (default: 3)
//	CONFIG_FILE - optional YAML config file, env vars take precedence
package main

import (
	"github.com/Icarly2701/codex-blog-seo/api"
)

func main() {
	api.Run()
}
