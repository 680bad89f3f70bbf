package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/doclens/doclens"
	"github.com/doclens/doclens/analysis"
	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/generator"
	"github.com/doclens/doclens/markdown"
	"github.com/doclens/doclens/normalizer"
)

const maxUploadSize = 10 << 20

var errNoAnalyzer = &docerrors.ConfigError{
	Option:  "api_key",
	Message: "analysis routes require an Anthropic API key; set ANTHROPIC_API_KEY",
}

func (s *Server) requireAnalyzer(w http.ResponseWriter) *analysis.Analyzer {
	if s.analyzer == nil {
		writeError(w, errNoAnalyzer)
		return nil
	}
	return s.analyzer
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "request body must be valid JSON: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "running",
		"service": "doclens",
		"version": doclens.Version(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	llm := "disconnected"
	if s.analyzer != nil {
		llm = "connected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"llm":        llm,
			"parser":     "ready",
			"normalizer": "ready",
			"generator":  "ready",
		},
	})
}

type parseURLRequest struct {
	URL     string `json:"url"`
	DocType string `json:"doc_type"`
}

func (s *Server) handleParseURL(w http.ResponseWriter, r *http.Request) {
	analyzer := s.requireAnalyzer(w)
	if analyzer == nil {
		return
	}
	var req parseURLRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeBadRequest(w, "url is required")
		return
	}

	content, err := s.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}
	doc := markdown.Split(content)
	out, err := analyzer.AnalyzeDocumentation(r.Context(), doc, analysis.DocMeta{DocType: req.DocType})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type parseTextRequest struct {
	Content string `json:"content"`
	DocType string `json:"doc_type"`
	Title   string `json:"title"`
}

func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	analyzer := s.requireAnalyzer(w)
	if analyzer == nil {
		return
	}
	var req parseTextRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Content == "" {
		writeBadRequest(w, "content is required")
		return
	}

	doc := markdown.Split(req.Content)
	out, err := analyzer.AnalyzeDocumentation(r.Context(), doc, analysis.DocMeta{
		DocType: req.DocType,
		Title:   req.Title,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	analyzer := s.requireAnalyzer(w)
	if analyzer == nil {
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeBadRequest(w, "expected multipart form upload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeBadRequest(w, "reading upload: "+err.Error())
		return
	}

	doc := markdown.Split(string(content))
	out, err := analyzer.AnalyzeDocumentation(r.Context(), doc, analysis.DocMeta{
		DocType: "readme",
		Title:   header.Filename,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type parseOpenAPIRequest struct {
	URL  string          `json:"url"`
	Spec json.RawMessage `json:"spec"`
}

// apiAnalysisResponse flattens the normalized document and attaches
// model insights alongside it.
type apiAnalysisResponse struct {
	*normalizer.Document
	AIInsights map[string]any `json:"ai_insights,omitempty"`
}

func (s *Server) handleParseOpenAPI(w http.ResponseWriter, r *http.Request) {
	var req parseOpenAPIRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var data []byte
	switch {
	case req.URL != "":
		content, err := s.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			writeError(w, err)
			return
		}
		data = []byte(content)
	case len(req.Spec) > 0:
		data = req.Spec
	default:
		writeBadRequest(w, "must provide either 'url' or 'spec'")
		return
	}

	doc, err := normalizer.Normalize(data)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := apiAnalysisResponse{Document: doc}
	if s.analyzer != nil {
		insights, err := s.analyzer.AnalyzeAPI(r.Context(), doc)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.AIInsights = insights
	} else {
		s.logger.Warn("returning specification analysis without ai insights; no api key configured")
	}
	writeJSON(w, http.StatusOK, resp)
}

type generateAppRequest struct {
	AnalysisID string   `json:"analysis_id"`
	AppType    string   `json:"app_type"`
	Features   []string `json:"features"`
}

func (s *Server) handleGenerateApp(w http.ResponseWriter, r *http.Request) {
	var req generateAppRequest
	if !decodeBody(w, r, &req) {
		return
	}
	app, err := generator.GenerateApp(req.AppType)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, app)
}

type generateDiagramRequest struct {
	Concept string `json:"concept"`
	Context string `json:"context"`
}

func (s *Server) handleGenerateDiagram(w http.ResponseWriter, r *http.Request) {
	analyzer := s.requireAnalyzer(w)
	if analyzer == nil {
		return
	}
	var req generateDiagramRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Concept == "" {
		writeBadRequest(w, "concept is required")
		return
	}

	diagram, err := analyzer.GenerateConceptDiagram(r.Context(), req.Concept, req.Context)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"diagram": diagram,
		"type":    "mermaid",
	})
}

type generateExampleRequest struct {
	Concept  string `json:"concept"`
	Language string `json:"language"`
}

func (s *Server) handleGenerateExample(w http.ResponseWriter, r *http.Request) {
	analyzer := s.requireAnalyzer(w)
	if analyzer == nil {
		return
	}
	var req generateExampleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Concept == "" {
		writeBadRequest(w, "concept is required")
		return
	}

	example, err := analyzer.GenerateConceptExample(r.Context(), req.Concept, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, example)
}

type sdkExampleRequest struct {
	Endpoint sdkEndpoint `json:"endpoint"`
	Language string      `json:"language"`
	BaseURL  string      `json:"base_url"`
}

type sdkEndpoint struct {
	Path        string                  `json:"path"`
	Method      string                  `json:"method"`
	Summary     string                  `json:"summary"`
	Security    []any                   `json:"security"`
	RequestBody *normalizer.RequestBody `json:"request_body"`
}

func (s *Server) handleGenerateSDKExample(w http.ResponseWriter, r *http.Request) {
	var req sdkExampleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Endpoint.Path == "" || req.Endpoint.Method == "" {
		writeBadRequest(w, "endpoint path and method are required")
		return
	}
	language := req.Language
	if language == "" {
		language = "python"
	}

	in := generator.FromEndpoint(&normalizer.Endpoint{
		Path:        req.Endpoint.Path,
		Method:      req.Endpoint.Method,
		Summary:     req.Endpoint.Summary,
		Security:    req.Endpoint.Security,
		RequestBody: req.Endpoint.RequestBody,
	}, req.BaseURL)

	code, err := generator.SDKSnippet(in, language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"language": language,
		"code":     code,
		"endpoint": req.Endpoint,
	})
}

type apiPlaygroundRequest struct {
	Endpoints  []sdkEndpoint  `json:"endpoints"`
	AuthConfig map[string]any `json:"auth_config"`
}

func (s *Server) handleGenerateAPIPlayground(w http.ResponseWriter, r *http.Request) {
	var req apiPlaygroundRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Endpoints) == 0 {
		writeBadRequest(w, "at least one endpoint is required")
		return
	}

	app := generator.Playground()
	writeJSON(w, http.StatusOK, map[string]any{
		"app_id":        app.AppID,
		"frontend_code": app.FrontendCode,
		"backend_code":  app.BackendCode,
		"explanation":   app.Explanation,
		"endpoints":     req.Endpoints,
		"auth_config":   req.AuthConfig,
	})
}
