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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultPort         = "8090"
	DefaultProvider     = "openai"
	DefaultMonthlyLimit = 3
)

// Settings is the complete configuration of the service.
type Settings struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`

	// Auth verifies Supabase-issued tokens, either locally against the
	// project JWT secret or remotely against the GoTrue user endpoint.
	SupabaseURL       string `yaml:"supabase_url"`
	SupabaseAnonKey   string `yaml:"supabase_anon_key"`
	SupabaseJWTSecret string `yaml:"supabase_jwt_secret"`

	// Provider selects the generation backend: openai, groq, anthropic
	// or bedrock.
	Provider        string `yaml:"llm_provider"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	OpenAIModel     string `yaml:"openai_model"`
	GroqAPIKey      string `yaml:"groq_api_key"`
	GroqModel       string `yaml:"groq_model"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`
	BedrockRegion   string `yaml:"bedrock_region"`
	BedrockModel    string `yaml:"bedrock_model"`

	CORSOrigins  []string `yaml:"cors_origins"`
	MonthlyLimit int      `yaml:"default_monthly_limit"`
}

// Load builds the settings from the optional YAML file named by CONFIG_FILE
// and the environment, applies defaults and validates the result.
func Load() (*Settings, error) {
	settings := &Settings{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(settings)
	applyDefaults(settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func applyEnv(s *Settings) {
	setFromEnv(&s.Port, "PORT")
	setFromEnv(&s.DatabaseURL, "DATABASE_URL")
	setFromEnv(&s.SupabaseURL, "SUPABASE_URL")
	setFromEnv(&s.SupabaseAnonKey, "SUPABASE_ANON_KEY")
	setFromEnv(&s.SupabaseJWTSecret, "SUPABASE_JWT_SECRET")
	setFromEnv(&s.Provider, "LLM_PROVIDER")
	setFromEnv(&s.OpenAIAPIKey, "OPENAI_API_KEY")
	setFromEnv(&s.OpenAIModel, "OPENAI_MODEL")
	setFromEnv(&s.GroqAPIKey, "GROQ_API_KEY")
	setFromEnv(&s.GroqModel, "GROQ_MODEL")
	setFromEnv(&s.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setFromEnv(&s.AnthropicModel, "ANTHROPIC_MODEL")
	setFromEnv(&s.BedrockModel, "BEDROCK_MODEL")

	if region := os.Getenv("BEDROCK_REGION"); region != "" {
		s.BedrockRegion = region
	} else if region := os.Getenv("AWS_REGION"); region != "" && s.BedrockRegion == "" {
		s.BedrockRegion = region
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		s.CORSOrigins = ParseOrigins(origins)
	}

	if limitStr := os.Getenv("DEFAULT_MONTHLY_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			s.MonthlyLimit = limit
		}
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(s *Settings) {
	if s.Port == "" {
		s.Port = DefaultPort
	}
	if s.Provider == "" {
		s.Provider = DefaultProvider
	}
	if s.MonthlyLimit <= 0 {
		s.MonthlyLimit = DefaultMonthlyLimit
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"http://localhost:3000"}
	}
}

// ParseOrigins splits a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

var validProviders = map[string]bool{
	"openai":    true,
	"groq":      true,
	"anthropic": true,
	"bedrock":   true,
}

// Validate checks that the settings can actually run the service.
func (s *Settings) Validate() error {
	if s.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if s.SupabaseJWTSecret == "" && (s.SupabaseURL == "" || s.SupabaseAnonKey == "") {
		return fmt.Errorf("auth requires SUPABASE_JWT_SECRET, or SUPABASE_URL and SUPABASE_ANON_KEY")
	}

	if !validProviders[strings.ToLower(s.Provider)] {
		return fmt.Errorf("unknown LLM provider %q (supported: openai, groq, anthropic, bedrock)", s.Provider)
	}

	return nil
}
