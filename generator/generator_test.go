package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens/normalizer"
)

func TestSDKSnippetAllLanguages(t *testing.T) {
	in := EndpointInput{
		Path:          "/widgets",
		Method:        "post",
		BaseURL:       "https://api.acme.io/v1",
		Authenticated: true,
		HasBody:       true,
	}

	for _, lang := range SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			code, err := SDKSnippet(in, lang)
			require.NoError(t, err)
			assert.Contains(t, code, "https://api.acme.io/v1/widgets")
			assert.Contains(t, code, "YOUR_API_KEY")
		})
	}
}

func TestSDKSnippetCurl(t *testing.T) {
	in := EndpointInput{Path: "/ping", Method: "get", BaseURL: "https://api.acme.io"}
	code, err := SDKSnippet(in, "curl")
	require.NoError(t, err)
	assert.Equal(t, "curl -X GET 'https://api.acme.io/ping'", code)
}

func TestSDKSnippetMutatingBody(t *testing.T) {
	in := EndpointInput{Path: "/items", Method: "put", BaseURL: "https://h", HasBody: true}

	code, err := SDKSnippet(in, "curl")
	require.NoError(t, err)
	assert.Contains(t, code, `-d '{"key": "value"}'`)

	code, err = SDKSnippet(in, "python")
	require.NoError(t, err)
	assert.Contains(t, code, "requests.put(url, json=data)")

	code, err = SDKSnippet(in, "ruby")
	require.NoError(t, err)
	assert.Contains(t, code, "Net::HTTP::Put.new(uri)")

	code, err = SDKSnippet(in, "go")
	require.NoError(t, err)
	assert.Contains(t, code, `http.NewRequest("PUT", "https://h/items", body)`)
}

func TestSDKSnippetUnsupportedLanguage(t *testing.T) {
	_, err := SDKSnippet(EndpointInput{Path: "/p", Method: "get"}, "cobol")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "cobol")
}

func TestSDKSnippetCaseInsensitiveLanguage(t *testing.T) {
	_, err := SDKSnippet(EndpointInput{Path: "/p", Method: "get", BaseURL: "https://h"}, "Python")
	assert.NoError(t, err)
}

func TestFromEndpoint(t *testing.T) {
	ep := &normalizer.Endpoint{
		Path:     "/orders",
		Method:   "post",
		Summary:  "Create order",
		Security: []any{map[string]any{"bearer": []any{}}},
		RequestBody: &normalizer.RequestBody{
			ContentType: "application/json",
		},
	}

	in := FromEndpoint(ep, "https://shop.example.com")
	assert.Equal(t, "/orders", in.Path)
	assert.True(t, in.Authenticated)
	assert.True(t, in.HasBody)

	in = FromEndpoint(&normalizer.Endpoint{Path: "/p", Method: "get"}, "")
	assert.Equal(t, "https://api.example.com", in.BaseURL)
	assert.False(t, in.Authenticated)
}

func TestFlowDiagram(t *testing.T) {
	diagram := FlowDiagram([]string{"Fetch", "Parse", "Render"})
	want := strings.Join([]string{
		"graph TD",
		"    N0[Fetch]",
		"    N0 --> N1",
		"    N1[Parse]",
		"    N1 --> N2",
		"    N2[Render]",
	}, "\n")
	assert.Equal(t, want, diagram)
}

func TestFlowDiagramSingleStep(t *testing.T) {
	assert.Equal(t, "graph TD\n    N0[Only]", FlowDiagram([]string{"Only"}))
}

func TestFlowDiagramEmpty(t *testing.T) {
	assert.Equal(t, "graph TD", FlowDiagram(nil))
}

func TestGenerateApp(t *testing.T) {
	for _, appType := range AppTypes {
		t.Run(appType, func(t *testing.T) {
			app, err := GenerateApp(appType)
			require.NoError(t, err)
			assert.NotEmpty(t, app.AppID)
			assert.NotEmpty(t, app.FrontendCode)
			assert.NotEmpty(t, app.Explanation)
			assert.NotNil(t, app.Diagrams)
		})
	}
}

func TestGenerateAppUnknownType(t *testing.T) {
	_, err := GenerateApp("kiosk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kiosk")
}

func TestGenerateAppUniqueIDs(t *testing.T) {
	a, err := GenerateApp("demo")
	require.NoError(t, err)
	b, err := GenerateApp("demo")
	require.NoError(t, err)
	assert.NotEqual(t, a.AppID, b.AppID)
}

func TestPlaygroundHasExecutionWiring(t *testing.T) {
	app := Playground()
	assert.Contains(t, app.FrontendCode, "/api/execute")
	assert.Contains(t, app.BackendCode, "/api/execute")
}

func TestTutorialHasNoBackend(t *testing.T) {
	app := Tutorial()
	assert.Empty(t, app.BackendCode)
	assert.Contains(t, app.FrontendCode, "tutorialSteps")
}
