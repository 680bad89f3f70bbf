// Package normalizer converts OpenAPI 3.x and Swagger 2.0 documents into a
// single dialect-neutral model.
//
// The normalizer is permissive by design: missing sections yield empty
// collections or zero values rather than errors, and unknown or extra keys
// are ignored. Only two conditions are fatal at the document level: the
// input is not recognizable as a specification at all, or its dialect
// marker carries a value that is neither 2.x-shaped nor 3.x-shaped.
//
// Iteration order follows declaration order throughout. Paths, security
// schemes, response codes, and content types all appear in the normalized
// model in the order the source document declared them.
package normalizer

import (
	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/jsonval"
)

// Normalize decodes raw specification bytes (JSON or YAML) and produces
// the dialect-neutral document model.
func Normalize(data []byte) (*Document, error) {
	return NormalizeWithOptions(WithData(data))
}

// NormalizeValue normalizes an already decoded specification document.
func NormalizeValue(v jsonval.Value) (*Document, error) {
	return NormalizeWithOptions(WithValue(v))
}

// NormalizeWithOptions normalizes a specification using functional options.
// Exactly one source option (WithData or WithValue) must be provided.
func NormalizeWithOptions(opts ...NormalizeOption) (*Document, error) {
	cfg := &normalizeConfig{
		logger:   NopLogger{},
		examples: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var root jsonval.Value
	if cfg.value != nil {
		root = *cfg.value
	} else {
		decoded, err := jsonval.Decode(cfg.data)
		if err != nil {
			return nil, &docerrors.SpecificationError{
				Message: "document is not valid JSON or YAML",
				Cause:   err,
			}
		}
		root = decoded
	}

	dialect, version, err := detectDialect(root)
	if err != nil {
		return nil, err
	}
	log := cfg.logger.With("dialect", dialect.String(), "version", version)
	log.Debug("detected specification dialect")

	info, err := extractInfo(root)
	if err != nil {
		return nil, err
	}

	endpoints, err := extractEndpoints(root, dialect)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version:        version,
		Dialect:        dialect,
		Info:           info,
		Servers:        extractServers(root, dialect),
		Authentication: extractAuth(root, dialect),
		Endpoints:      endpoints,
		Schemas:        extractSchemas(root, dialect),
		Tags:           extractTags(root),
		EndpointCount:  len(endpoints),
	}
	if cfg.examples {
		doc.Examples = synthesizeExamples(doc)
	} else {
		doc.Examples = []EndpointExample{}
	}

	log.Info("normalized specification",
		"endpoints", doc.EndpointCount,
		"servers", len(doc.Servers),
		"auth_schemes", len(doc.Authentication))
	return doc, nil
}

// extractInfo reads the info block, applying the documented defaults for
// title and version. An info value that is present but not a mapping makes
// metadata extraction impossible and is rejected.
func extractInfo(root jsonval.Value) (Info, error) {
	info := root.Get("info")
	if !info.IsAbsent() && !info.IsNull() && !info.IsObject() {
		return Info{}, &docerrors.SpecificationError{
			Path:    "info",
			Message: "info must be an object",
		}
	}
	return Info{
		Title:          info.Get("title").StrOr("API Documentation"),
		Version:        info.Get("version").StrOr("1.0.0"),
		Description:    info.Get("description").StrOr(""),
		Contact:        info.Get("contact").MapOr(map[string]any{}),
		License:        info.Get("license").MapOr(map[string]any{}),
		TermsOfService: info.Get("termsOfService").StrOr(""),
	}, nil
}

// extractServers returns the declared servers for 3.x documents. For 2.0
// documents it synthesizes one entry per declared scheme from host and
// basePath; the scheme list defaults to https only when the schemes key is
// absent entirely.
func extractServers(root jsonval.Value, dialect Dialect) []Server {
	servers := make([]Server, 0)
	switch dialect {
	case DialectOpenAPI3:
		for _, item := range root.Get("servers").Items() {
			servers = append(servers, Server{
				URL:         item.Get("url").StrOr(""),
				Description: item.Get("description").StrOr(""),
			})
		}
	case DialectSwagger2:
		host := root.Get("host").StrOr("")
		basePath := root.Get("basePath").StrOr("")
		schemes := root.Get("schemes")
		if !schemes.IsArray() {
			servers = append(servers, Server{
				URL:         "https://" + host + basePath,
				Description: "API Server",
			})
			break
		}
		for _, s := range schemes.Items() {
			scheme, ok := s.Str()
			if !ok {
				continue
			}
			servers = append(servers, Server{
				URL:         scheme + "://" + host + basePath,
				Description: "API Server",
			})
		}
	}
	return servers
}

// extractSchemas passes the reusable schema mapping through untouched.
func extractSchemas(root jsonval.Value, dialect Dialect) map[string]any {
	switch dialect {
	case DialectOpenAPI3:
		return root.Get("components").Get("schemas").MapOr(map[string]any{})
	case DialectSwagger2:
		return root.Get("definitions").MapOr(map[string]any{})
	}
	return map[string]any{}
}

// extractTags reads the document-level tag declarations.
func extractTags(root jsonval.Value) []Tag {
	tags := make([]Tag, 0)
	for _, item := range root.Get("tags").Items() {
		tags = append(tags, Tag{
			Name:        item.Get("name").StrOr(""),
			Description: item.Get("description").StrOr(""),
		})
	}
	return tags
}
