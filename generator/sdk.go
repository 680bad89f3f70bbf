// Package generator produces SDK request snippets, mermaid diagrams, and
// scaffold application code from normalized endpoint data. Everything in
// this package is a pure function over its inputs; LLM-backed generation
// lives in the analysis package.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doclens/doclens/normalizer"
)

// ErrUnsupportedLanguage reports a request for an SDK language outside the
// supported set.
var ErrUnsupportedLanguage = errors.New("unsupported SDK language")

// SupportedLanguages lists the SDK snippet languages, in documentation
// order.
var SupportedLanguages = []string{"curl", "python", "javascript", "ruby", "php", "go", "java"}

// EndpointInput is the endpoint shape the snippet builders consume.
type EndpointInput struct {
	Path          string
	Method        string
	Summary       string
	BaseURL       string
	Authenticated bool
	HasBody       bool
}

// FromEndpoint adapts a normalized endpoint for snippet generation.
func FromEndpoint(ep *normalizer.Endpoint, baseURL string) EndpointInput {
	if baseURL == "" {
		baseURL = "https://api.example.com"
	}
	return EndpointInput{
		Path:          ep.Path,
		Method:        ep.Method,
		Summary:       ep.Summary,
		BaseURL:       baseURL,
		Authenticated: len(ep.Security) > 0,
		HasBody:       ep.RequestBody != nil,
	}
}

// SDKSnippet renders a ready-to-run request snippet for the endpoint in
// the given language. Supported languages are listed in
// SupportedLanguages; anything else fails with ErrUnsupportedLanguage.
func SDKSnippet(in EndpointInput, language string) (string, error) {
	switch strings.ToLower(language) {
	case "curl":
		return curlSnippet(in), nil
	case "python":
		return pythonSnippet(in), nil
	case "javascript":
		return javascriptSnippet(in), nil
	case "ruby":
		return rubySnippet(in), nil
	case "php":
		return phpSnippet(in), nil
	case "go":
		return goSnippet(in), nil
	case "java":
		return javaSnippet(in), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
}

const snippetBody = `{"key": "value"}`

func (in EndpointInput) url() string {
	return in.BaseURL + in.Path
}

func (in EndpointInput) mutating() bool {
	switch strings.ToLower(in.Method) {
	case "post", "put", "patch":
		return true
	}
	return false
}

func (in EndpointInput) upperMethod() string {
	return strings.ToUpper(in.Method)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func curlSnippet(in EndpointInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s '%s'", in.upperMethod(), in.url())
	if in.Authenticated {
		b.WriteString(" \\\n  -H 'Authorization: Bearer YOUR_API_KEY'")
	}
	if in.mutating() && in.HasBody {
		b.WriteString(" \\\n  -H 'Content-Type: application/json'")
		fmt.Fprintf(&b, " \\\n  -d '%s'", snippetBody)
	}
	return b.String()
}

func pythonSnippet(in EndpointInput) string {
	var b strings.Builder
	b.WriteString("import requests\n\n")
	fmt.Fprintf(&b, "url = \"%s\"\n", in.url())
	args := "url"
	if in.Authenticated {
		b.WriteString("headers = {\"Authorization\": \"Bearer YOUR_API_KEY\"}\n")
		args += ", headers=headers"
	}
	if in.mutating() {
		fmt.Fprintf(&b, "data = %s\n", snippetBody)
		args += ", json=data"
	}
	fmt.Fprintf(&b, "\nresponse = requests.%s(%s)\nprint(response.json())",
		strings.ToLower(in.Method), args)
	return b.String()
}

func javascriptSnippet(in EndpointInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const response = await fetch(\"%s\", {\n", in.url())
	fmt.Fprintf(&b, "  method: \"%s\",\n", in.upperMethod())
	headers := make([]string, 0, 2)
	if in.Authenticated {
		headers = append(headers, "\"Authorization\": \"Bearer YOUR_API_KEY\"")
	}
	if in.mutating() {
		headers = append(headers, "\"Content-Type\": \"application/json\"")
	}
	if len(headers) > 0 {
		fmt.Fprintf(&b, "  headers: { %s },\n", strings.Join(headers, ", "))
	}
	if in.mutating() {
		fmt.Fprintf(&b, "  body: JSON.stringify(%s),\n", snippetBody)
	}
	b.WriteString("});\nconst data = await response.json();\nconsole.log(data);")
	return b.String()
}

func rubySnippet(in EndpointInput) string {
	var b strings.Builder
	b.WriteString("require 'net/http'\nrequire 'json'\n\n")
	fmt.Fprintf(&b, "uri = URI('%s')\n", in.url())
	fmt.Fprintf(&b, "request = Net::HTTP::%s.new(uri)\n", titleCase(in.Method))
	if in.Authenticated {
		b.WriteString("request['Authorization'] = 'Bearer YOUR_API_KEY'\n")
	}
	if in.mutating() {
		b.WriteString("request['Content-Type'] = 'application/json'\n")
		fmt.Fprintf(&b, "request.body = '%s'\n", snippetBody)
	}
	b.WriteString("\nresponse = Net::HTTP.start(uri.hostname, uri.port, use_ssl: uri.scheme == 'https') do |http|\n  http.request(request)\nend\nputs response.body")
	return b.String()
}

func phpSnippet(in EndpointInput) string {
	var b strings.Builder
	b.WriteString("<?php\n$ch = curl_init();\n\n")
	fmt.Fprintf(&b, "curl_setopt($ch, CURLOPT_URL, '%s');\n", in.url())
	fmt.Fprintf(&b, "curl_setopt($ch, CURLOPT_CUSTOMREQUEST, '%s');\n", in.upperMethod())
	b.WriteString("curl_setopt($ch, CURLOPT_RETURNTRANSFER, true);\n")
	headers := make([]string, 0, 2)
	if in.Authenticated {
		headers = append(headers, "'Authorization: Bearer YOUR_API_KEY'")
	}
	if in.mutating() {
		headers = append(headers, "'Content-Type: application/json'")
		fmt.Fprintf(&b, "curl_setopt($ch, CURLOPT_POSTFIELDS, '%s');\n", snippetBody)
	}
	if len(headers) > 0 {
		fmt.Fprintf(&b, "curl_setopt($ch, CURLOPT_HTTPHEADER, [%s]);\n", strings.Join(headers, ", "))
	}
	b.WriteString("\n$response = curl_exec($ch);\ncurl_close($ch);\necho $response;")
	return b.String()
}

func goSnippet(in EndpointInput) string {
	var b strings.Builder
	b.WriteString("package main\n\nimport (\n\t\"fmt\"\n\t\"io\"\n\t\"net/http\"\n")
	if in.mutating() {
		b.WriteString("\t\"strings\"\n")
	}
	b.WriteString(")\n\nfunc main() {\n")
	if in.mutating() {
		fmt.Fprintf(&b, "\tbody := strings.NewReader(`%s`)\n", snippetBody)
		fmt.Fprintf(&b, "\treq, err := http.NewRequest(\"%s\", \"%s\", body)\n", in.upperMethod(), in.url())
	} else {
		fmt.Fprintf(&b, "\treq, err := http.NewRequest(\"%s\", \"%s\", nil)\n", in.upperMethod(), in.url())
	}
	b.WriteString("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	if in.Authenticated {
		b.WriteString("\treq.Header.Set(\"Authorization\", \"Bearer YOUR_API_KEY\")\n")
	}
	if in.mutating() {
		b.WriteString("\treq.Header.Set(\"Content-Type\", \"application/json\")\n")
	}
	b.WriteString("\n\tresp, err := http.DefaultClient.Do(req)\n\tif err != nil {\n\t\tpanic(err)\n\t}\n\tdefer resp.Body.Close()\n\n\tdata, _ := io.ReadAll(resp.Body)\n\tfmt.Println(string(data))\n}")
	return b.String()
}

func javaSnippet(in EndpointInput) string {
	var b strings.Builder
	b.WriteString("import java.net.URI;\nimport java.net.http.HttpClient;\nimport java.net.http.HttpRequest;\nimport java.net.http.HttpResponse;\n\n")
	b.WriteString("public class ApiExample {\n    public static void main(String[] args) throws Exception {\n")
	b.WriteString("        HttpRequest.Builder builder = HttpRequest.newBuilder()\n")
	fmt.Fprintf(&b, "            .uri(URI.create(\"%s\"))", in.url())
	if in.mutating() {
		fmt.Fprintf(&b, "\n            .method(\"%s\", HttpRequest.BodyPublishers.ofString(\"{\\\"key\\\": \\\"value\\\"}\"))", in.upperMethod())
		b.WriteString("\n            .header(\"Content-Type\", \"application/json\")")
	} else {
		fmt.Fprintf(&b, "\n            .method(\"%s\", HttpRequest.BodyPublishers.noBody())", in.upperMethod())
	}
	if in.Authenticated {
		b.WriteString("\n            .header(\"Authorization\", \"Bearer YOUR_API_KEY\")")
	}
	b.WriteString(";\n\n        HttpClient client = HttpClient.newHttpClient();\n")
	b.WriteString("        HttpResponse<String> response = client.send(builder.build(), HttpResponse.BodyHandlers.ofString());\n")
	b.WriteString("        System.out.println(response.body());\n    }\n}")
	return b.String()
}
