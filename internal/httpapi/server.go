// Package httpapi exposes the documentation analysis pipeline over HTTP.
// Route handlers stay thin: decode the request, call into the fetch,
// markdown, normalizer, analysis, or generator packages, and classify
// any failure onto the error taxonomy.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/doclens/doclens"
	"github.com/doclens/doclens/analysis"
	"github.com/doclens/doclens/internal/fetch"
	"github.com/doclens/doclens/normalizer"
)

// Server wires the service dependencies behind the HTTP routes.
type Server struct {
	cfg      Config
	fetcher  *fetch.Fetcher
	analyzer *analysis.Analyzer
	logger   normalizer.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger normalizer.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAnalyzer injects the analyzer, overriding the one built from
// configuration. Tests use this to supply a fake completion client.
func WithAnalyzer(a *analysis.Analyzer) Option {
	return func(s *Server) {
		s.analyzer = a
	}
}

// WithFetcher injects the document fetcher.
func WithFetcher(f *fetch.Fetcher) Option {
	return func(s *Server) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// New builds a Server from configuration. When an API key is configured
// an Anthropic-backed analyzer is constructed; otherwise the LLM routes
// report the missing configuration at request time.
func New(cfg Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		fetcher: fetch.New(),
		logger:  normalizer.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil && cfg.AnthropicAPIKey != "" {
		clientOpts := []analysis.ClientOption{
			analysis.WithUserAgent(doclens.UserAgent()),
		}
		if cfg.Model != "" {
			clientOpts = append(clientOpts, analysis.WithModel(cfg.Model))
		}
		client, err := analysis.NewAnthropicClient(cfg.AnthropicAPIKey, clientOpts...)
		if err != nil {
			return nil, err
		}
		s.analyzer = analysis.NewAnalyzer(client)
	}
	s.fetcher.Logger = s.logger
	return s, nil
}

// Router assembles the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/", s.handleRoot)
	r.Get("/api/health", s.handleHealth)

	r.Post("/api/parse/url", s.handleParseURL)
	r.Post("/api/parse/text", s.handleParseText)
	r.Post("/api/parse/file", s.handleParseFile)
	r.Post("/api/parse/openapi", s.handleParseOpenAPI)

	r.Post("/api/generate/app", s.handleGenerateApp)
	r.Post("/api/generate/diagram", s.handleGenerateDiagram)
	r.Post("/api/generate/example", s.handleGenerateExample)
	r.Post("/api/generate/sdk-example", s.handleGenerateSDKExample)
	r.Post("/api/generate/api-playground", s.handleGenerateAPIPlayground)

	return r
}

// cors implements the allowed-origins policy. Preflight requests are
// answered directly.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
