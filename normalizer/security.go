package normalizer

import "github.com/doclens/doclens/jsonval"

// extractAuth lists the declared security schemes in declaration order.
// OpenAPI 3.x declares them under components.securitySchemes, Swagger 2.0
// under securityDefinitions. Dialect-specific fields stay unset for the
// other dialect.
func extractAuth(root jsonval.Value, dialect Dialect) []AuthScheme {
	schemes := make([]AuthScheme, 0)
	switch dialect {
	case DialectOpenAPI3:
		for _, m := range root.Get("components").Get("securitySchemes").Members() {
			schemes = append(schemes, AuthScheme{
				Name:         m.Key,
				Type:         m.Value.Get("type").StrOr(""),
				Description:  m.Value.Get("description").StrOr(""),
				In:           m.Value.Get("in").StrOr(""),
				Scheme:       m.Value.Get("scheme").StrOr(""),
				BearerFormat: m.Value.Get("bearerFormat").StrOr(""),
				Flows:        m.Value.Get("flows").MapOr(nil),
			})
		}
	case DialectSwagger2:
		for _, m := range root.Get("securityDefinitions").Members() {
			schemes = append(schemes, AuthScheme{
				Name:        m.Key,
				Type:        m.Value.Get("type").StrOr(""),
				Description: m.Value.Get("description").StrOr(""),
				In:          m.Value.Get("in").StrOr(""),
				Flow:        m.Value.Get("flow").StrOr(""),
			})
		}
	}
	return schemes
}
