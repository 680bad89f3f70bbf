package normalizer

import (
	"fmt"
	"strings"
)

const (
	// placeholderServer is used when a document declares no servers.
	placeholderServer = "https://api.example.com"
	// placeholderBody is the generic JSON body used for mutating methods.
	placeholderBody = `{"key": "value"}`

	maxExampleEndpoints = 5
)

// synthesizeExamples produces ready-to-run request snippets for the leading
// endpoints of the document. Snippets target the first declared server and
// include a bearer token header whenever the endpoint declares any security
// requirement.
func synthesizeExamples(doc *Document) []EndpointExample {
	examples := make([]EndpointExample, 0, maxExampleEndpoints)
	baseURL := placeholderServer
	if len(doc.Servers) > 0 && doc.Servers[0].URL != "" {
		baseURL = doc.Servers[0].URL
	}

	for i, ep := range doc.Endpoints {
		if i >= maxExampleEndpoints {
			break
		}
		examples = append(examples, EndpointExample{
			Endpoint: fmt.Sprintf("%s %s", strings.ToUpper(ep.Method), ep.Path),
			Summary:  ep.Summary,
			Languages: map[string]string{
				"curl":       curlExample(ep, baseURL),
				"python":     pythonExample(ep, baseURL),
				"javascript": javascriptExample(ep, baseURL),
			},
		})
	}
	return examples
}

func isMutating(method string) bool {
	switch strings.ToLower(method) {
	case "post", "put", "patch":
		return true
	}
	return false
}

func curlExample(ep *Endpoint, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s '%s%s'", strings.ToUpper(ep.Method), baseURL, ep.Path)
	if len(ep.Security) > 0 {
		b.WriteString(" \\\n  -H 'Authorization: Bearer YOUR_API_KEY'")
	}
	if isMutating(ep.Method) && ep.RequestBody != nil {
		b.WriteString(" \\\n  -H 'Content-Type: application/json'")
		fmt.Fprintf(&b, " \\\n  -d '%s'", placeholderBody)
	}
	return b.String()
}

func pythonExample(ep *Endpoint, baseURL string) string {
	var b strings.Builder
	b.WriteString("import requests\n\n")
	fmt.Fprintf(&b, "url = \"%s%s\"\n", baseURL, ep.Path)
	args := "url"
	if len(ep.Security) > 0 {
		b.WriteString("headers = {\"Authorization\": \"Bearer YOUR_API_KEY\"}\n")
		args += ", headers=headers"
	}
	if isMutating(ep.Method) {
		fmt.Fprintf(&b, "data = %s\n", placeholderBody)
		args += ", json=data"
	}
	fmt.Fprintf(&b, "\nresponse = requests.%s(%s)\nprint(response.json())", strings.ToLower(ep.Method), args)
	return b.String()
}

func javascriptExample(ep *Endpoint, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const response = await fetch(\"%s%s\", {\n", baseURL, ep.Path)
	fmt.Fprintf(&b, "  method: \"%s\",\n", strings.ToUpper(ep.Method))
	headers := make([]string, 0, 2)
	if len(ep.Security) > 0 {
		headers = append(headers, "\"Authorization\": \"Bearer YOUR_API_KEY\"")
	}
	if isMutating(ep.Method) {
		headers = append(headers, "\"Content-Type\": \"application/json\"")
	}
	if len(headers) > 0 {
		fmt.Fprintf(&b, "  headers: { %s },\n", strings.Join(headers, ", "))
	}
	if isMutating(ep.Method) {
		fmt.Fprintf(&b, "  body: JSON.stringify(%s),\n", placeholderBody)
	}
	b.WriteString("});\nconst data = await response.json();\nconsole.log(data);")
	return b.String()
}
