package normalizer

// Document is the dialect-neutral representation of an API specification.
// Downstream consumers (snippet generators, LLM prompt builders, the HTTP
// and MCP surfaces) work exclusively against this shape and never see the
// original document.
type Document struct {
	// Version is the raw dialect marker value from the source document,
	// for example "3.0.0" or "2.0".
	Version string `json:"version"`
	// Info carries the descriptive metadata block, with titles and
	// versions defaulted when the source omits them.
	Info Info `json:"info"`
	// Servers lists the base URLs the API is reachable at. For Swagger
	// 2.0 documents the entries are synthesized from host, basePath, and
	// schemes.
	Servers []Server `json:"servers"`
	// Authentication lists the declared security schemes in declaration
	// order.
	Authentication []AuthScheme `json:"authentication"`
	// Endpoints holds one entry per path+method pair, in path declaration
	// order and fixed method order within each path.
	Endpoints []*Endpoint `json:"endpoints"`
	// Schemas is the raw reusable schema mapping, passed through without
	// interpretation.
	Schemas map[string]any `json:"schemas"`
	// Examples holds synthesized request snippets for the leading
	// endpoints.
	Examples []EndpointExample `json:"examples"`
	// EndpointCount equals len(Endpoints).
	EndpointCount int `json:"endpoint_count"`
	// Tags lists the document-level tag declarations.
	Tags []Tag `json:"tags"`

	// Dialect records which schema family the document was classified as.
	Dialect Dialect `json:"-"`
}

// Info holds the descriptive metadata of a specification.
type Info struct {
	Title          string         `json:"title"`
	Version        string         `json:"version"`
	Description    string         `json:"description"`
	Contact        map[string]any `json:"contact"`
	License        map[string]any `json:"license"`
	TermsOfService string         `json:"terms_of_service"`
}

// Server is a single API base URL.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// AuthScheme describes one declared security scheme. Fields that only
// exist in one dialect are left unset for documents of the other dialect.
type AuthScheme struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	In          string `json:"in,omitempty"`
	// Scheme and BearerFormat are OpenAPI 3.x http scheme fields.
	Scheme       string `json:"scheme,omitempty"`
	BearerFormat string `json:"bearer_format,omitempty"`
	// Flows is the OpenAPI 3.x oauth2 flows object.
	Flows map[string]any `json:"flows,omitempty"`
	// Flow is the Swagger 2.0 oauth2 flow name.
	Flow string `json:"flow,omitempty"`
}

// Endpoint is one path+method operation.
type Endpoint struct {
	Path        string               `json:"path"`
	Method      string               `json:"method"`
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	OperationID string               `json:"operation_id"`
	Tags        []string             `json:"tags"`
	Parameters  []Parameter          `json:"parameters"`
	RequestBody *RequestBody         `json:"request_body,omitempty"`
	Responses   map[string]*Response `json:"responses"`
	Security    []any                `json:"security"`
	Deprecated  bool                 `json:"deprecated"`
}

// Parameter is a normalized operation parameter. For OpenAPI 3.x the type
// information is lifted out of the nested schema object; for Swagger 2.0
// it is read off the parameter itself.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Default     any    `json:"default,omitempty"`
	Example     any    `json:"example,omitempty"`
}

// RequestBody describes the request payload of an operation. Only the
// first declared content type is retained.
type RequestBody struct {
	ContentType string         `json:"content_type"`
	Required    bool           `json:"required"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
	Example     any            `json:"example"`
}

// Response describes one status code entry of an operation.
type Response struct {
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
	Example     any            `json:"example"`
}

// Tag is a document-level tag declaration.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EndpointExample is a synthesized request snippet set for one endpoint.
type EndpointExample struct {
	Endpoint  string            `json:"endpoint"`
	Summary   string            `json:"summary"`
	Languages map[string]string `json:"languages"`
}
