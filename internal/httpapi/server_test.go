package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens/analysis"
)

// fakeClient plays back a canned model response.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(_ context.Context, _ analysis.Request) (string, error) {
	return f.response, f.err
}

func testConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           8000,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func newTestServer(t *testing.T, model *fakeClient) *Server {
	t.Helper()
	opts := []Option{}
	if model != nil {
		opts = append(opts, WithAnalyzer(analysis.NewAnalyzer(model)))
	}
	srv, err := New(testConfig(), opts...)
	require.NoError(t, err)
	return srv
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRootStatus(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, "running", out["status"])
	assert.Equal(t, "doclens", out["service"])
}

func TestHealthReflectsLLMConfiguration(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	out := decodeResponse(t, rec)
	services := out["services"].(map[string]any)
	assert.Equal(t, "disconnected", services["llm"])

	srv = newTestServer(t, &fakeClient{response: "{}"})
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	services = decodeResponse(t, rec)["services"].(map[string]any)
	assert.Equal(t, "connected", services["llm"])
}

func TestParseText(t *testing.T) {
	srv := newTestServer(t, &fakeClient{
		response: `{"title": "Guide", "summary": "s", "concepts": ["a"]}`,
	})

	rec := postJSON(t, srv.Router(), "/api/parse/text", map[string]any{
		"content": "# Guide\n\nSome intro.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, "Guide", out["title"])
}

func TestParseTextRequiresContent(t *testing.T) {
	srv := newTestServer(t, &fakeClient{response: "{}"})
	rec := postJSON(t, srv.Router(), "/api/parse/text", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeResponse(t, rec)["error"])
}

func TestParseTextWithoutAPIKey(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/parse/text", map[string]any{"content": "# T"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec)["message"], "ANTHROPIC_API_KEY")
}

func TestParseFile(t *testing.T) {
	srv := newTestServer(t, &fakeClient{response: `{"title": "README.md"}`})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "README.md")
	require.NoError(t, err)
	_, err = fw.Write([]byte("# Uploaded\n\nContent."))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "README.md", decodeResponse(t, rec)["title"])
}

func TestParseOpenAPISpec(t *testing.T) {
	srv := newTestServer(t, &fakeClient{response: `{"summary": "a ping API"}`})

	rec := postJSON(t, srv.Router(), "/api/parse/openapi", map[string]any{
		"spec": map[string]any{
			"swagger": "2.0",
			"paths": map[string]any{
				"/ping": map[string]any{
					"get": map[string]any{
						"responses": map[string]any{"200": map[string]any{"description": "ok"}},
					},
				},
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeResponse(t, rec)
	assert.Equal(t, float64(1), out["endpoint_count"])
	assert.Equal(t, "2.0", out["version"])
	insights := out["ai_insights"].(map[string]any)
	assert.Equal(t, "a ping API", insights["summary"])

	endpoints := out["endpoints"].([]any)
	require.Len(t, endpoints, 1)
	ep := endpoints[0].(map[string]any)
	assert.Equal(t, "/ping", ep["path"])
	assert.Equal(t, "GET", ep["method"])
}

func TestParseOpenAPIWithoutAnalyzer(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/parse/openapi", map[string]any{
		"spec": map[string]any{"openapi": "3.0.0", "paths": map[string]any{}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, float64(0), out["endpoint_count"])
	_, present := out["ai_insights"]
	assert.False(t, present)
}

func TestParseOpenAPIErrorStatuses(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name   string
		spec   map[string]any
		status int
		code   string
	}{
		{
			name:   "not a specification",
			spec:   map[string]any{"title": "nope"},
			status: http.StatusBadRequest,
			code:   "invalid_specification",
		},
		{
			name:   "unsupported dialect",
			spec:   map[string]any{"openapi": "1.2"},
			status: http.StatusUnprocessableEntity,
			code:   "unsupported_dialect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, srv.Router(), "/api/parse/openapi", map[string]any{"spec": tt.spec})
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeResponse(t, rec)["error"])
		})
	}
}

func TestParseOpenAPIRequiresSource(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/parse/openapi", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseURLFetchFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer upstream.Close()

	srv := newTestServer(t, &fakeClient{response: "{}"})
	rec := postJSON(t, srv.Router(), "/api/parse/url", map[string]any{"url": upstream.URL})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "fetch_failed", decodeResponse(t, rec)["error"])
}

func TestAnalysisFailureStatus(t *testing.T) {
	srv := newTestServer(t, &fakeClient{response: "no json here"})
	rec := postJSON(t, srv.Router(), "/api/parse/text", map[string]any{"content": "# T"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "analysis_failed", decodeResponse(t, rec)["error"])
}

func TestGenerateDiagram(t *testing.T) {
	srv := newTestServer(t, &fakeClient{response: "```mermaid\ngraph TD\n    A --> B\n```"})
	rec := postJSON(t, srv.Router(), "/api/generate/diagram", map[string]any{
		"concept": "request flow",
		"context": "ctx",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, "mermaid", out["type"])
	assert.Equal(t, "graph TD\n    A --> B", out["diagram"])
}

func TestGenerateSDKExample(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/generate/sdk-example", map[string]any{
		"endpoint": map[string]any{"path": "/pets", "method": "get"},
		"language": "curl",
		"base_url": "https://api.acme.io",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, "curl", out["language"])
	assert.Contains(t, out["code"], "curl -X GET 'https://api.acme.io/pets'")
}

func TestGenerateSDKExampleUnsupportedLanguage(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/generate/sdk-example", map[string]any{
		"endpoint": map[string]any{"path": "/pets", "method": "get"},
		"language": "cobol",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported_language", decodeResponse(t, rec)["error"])
}

func TestGenerateApp(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/generate/app", map[string]any{
		"analysis_id": "x",
		"app_type":    "playground",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.NotEmpty(t, out["app_id"])
	assert.Contains(t, out["frontend_code"], "CodePlayground")
}

func TestGenerateAPIPlayground(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv.Router(), "/api/generate/api-playground", map[string]any{
		"endpoints":   []map[string]any{{"path": "/pets", "method": "get"}},
		"auth_config": map[string]any{"type": "bearer"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.NotEmpty(t, out["app_id"])
	endpoints := out["endpoints"].([]any)
	assert.Len(t, endpoints, 1)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	// Disallowed origins get no CORS headers.
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/parse/openapi", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
