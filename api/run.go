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

package api

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Icarly2701/codex-blog-seo/auth"
	"github.com/Icarly2701/codex-blog-seo/config"
	"github.com/Icarly2701/codex-blog-seo/llm"
	"github.com/Icarly2701/codex-blog-seo/metering"
	"github.com/Icarly2701/codex-blog-seo/store"
	"github.com/Icarly2701/codex-blog-seo/writer"
)

// Prometheus metrics
var (
	promRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_writer_requests_total",
			Help: "Total number of API requests by endpoint and outcome",
		},
		[]string{"endpoint", "status"},
	)
	promGenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blog_writer_generation_duration_milliseconds",
			Help:    "End-to-end generation duration in milliseconds",
			Buckets: []float64{100, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000},
		},
	)
	promQuotaDenials = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_writer_quota_denials_total",
			Help: "Total number of requests denied because the monthly quota was exhausted",
		},
	)
)

func init() {
	prometheus.MustRegister(promRequestsTotal)
	prometheus.MustRegister(promGenerationDuration)
	prometheus.MustRegister(promQuotaDenials)
}

// NewRouter builds the HTTP handler tree around the given workflow.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/generate", h.Generate).Methods("POST")
	r.HandleFunc("/posts", h.Posts).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

// newVerifier selects the token verification strategy: local HS256 when the
// project JWT secret is configured, otherwise a round trip to the GoTrue
// user endpoint.
func newVerifier(settings *config.Settings) (auth.TokenVerifier, error) {
	if settings.SupabaseJWTSecret != "" {
		return auth.NewJWTVerifier(settings.SupabaseJWTSecret)
	}
	return auth.NewGoTrueVerifier(settings.SupabaseURL, settings.SupabaseAnonKey)
}

// Run is the exported entry point for the service.
//
// It loads the configuration, connects to PostgreSQL, ensures the schema,
// wires the auth verifier and the generation provider into the workflow,
// and serves HTTP until the process exits.
func Run() {
	log.Println("Starting Blog SEO Writer...")

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := sql.Open("postgres", settings.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := store.NewRepository(db, settings.MonthlyLimit)
	if err := repo.InitSchema(context.Background()); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	verifier, err := newVerifier(settings)
	if err != nil {
		log.Fatalf("Failed to configure auth: %v", err)
	}

	provider, err := llm.NewProvider(context.Background(), llm.Config{
		Provider:        settings.Provider,
		OpenAIAPIKey:    settings.OpenAIAPIKey,
		OpenAIModel:     settings.OpenAIModel,
		GroqAPIKey:      settings.GroqAPIKey,
		GroqModel:       settings.GroqModel,
		AnthropicAPIKey: settings.AnthropicAPIKey,
		AnthropicModel:  settings.AnthropicModel,
		BedrockRegion:   settings.BedrockRegion,
		BedrockModel:    settings.BedrockModel,
	})
	if err != nil {
		log.Fatalf("Failed to configure generation provider: %v", err)
	}
	log.Printf("Generation provider: %s", provider.Name())

	recorder := metering.NewRecorder(db)
	if err := recorder.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to initialize metering schema: %v", err)
	}

	service := writer.NewService(verifier, repo, llm.NewGenerator(provider)).
		WithEventRecorder(recorder, provider.Name())
	handler := NewRouter(NewHandler(service), settings.CORSOrigins)

	addr := fmt.Sprintf(":%s", settings.Port)
	log.Printf("Blog SEO Writer listening on port %s", settings.Port)
	log.Fatal(http.ListenAndServe(addr, handler))
}
