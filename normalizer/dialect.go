package normalizer

import (
	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/jsonval"
)

// Dialect identifies which of the two specification schema versions a
// document follows. It is determined exactly once per document; every
// extraction step branches on the resulting tag and never re-detects
// structure from shape.
type Dialect int

const (
	// DialectUnknown represents an undetected or invalid dialect
	DialectUnknown Dialect = iota
	// DialectSwagger2 is Swagger 2.0
	DialectSwagger2
	// DialectOpenAPI3 is OpenAPI 3.x (3.0.x, 3.1.x, and any future 3.x)
	DialectOpenAPI3
)

func (d Dialect) String() string {
	switch d {
	case DialectSwagger2:
		return "swagger-2.0"
	case DialectOpenAPI3:
		return "openapi-3.x"
	default:
		return "unknown"
	}
}

// ParseDialect classifies a dialect string by its first character: a leading
// '3' is OpenAPI 3.x and a leading '2' is Swagger 2.0.
//
// The first-character rule is loose on purpose: real documents carry
// "3.0.0", "3.0.1", "3.1.0" and occasionally stranger values, and the
// normalizer accepts them all (including a malformed "30.0"). Tightening
// this to exact-version allow-listing would be a behavior change.
func ParseDialect(s string) (Dialect, bool) {
	if s == "" {
		return DialectUnknown, false
	}
	switch s[0] {
	case '3':
		return DialectOpenAPI3, true
	case '2':
		return DialectSwagger2, true
	default:
		return DialectUnknown, false
	}
}

// detectDialect inspects the top-level mapping for the dialect marker.
// A document with neither an "openapi" nor a "swagger" key is not a
// specification at all; a marker with an unclassifiable value is an
// unsupported dialect.
func detectDialect(root jsonval.Value) (Dialect, string, error) {
	if !root.IsObject() {
		return DialectUnknown, "", &docerrors.SpecificationError{
			Path:    "$",
			Message: "document root must be an object",
		}
	}

	marker := ""
	switch {
	case root.Has("openapi"):
		marker = "openapi"
	case root.Has("swagger"):
		marker = "swagger"
	default:
		return DialectUnknown, "", &docerrors.SpecificationError{
			Message: "document must contain either an 'openapi' or a 'swagger' version field at the root level",
		}
	}

	version := root.Get(marker).StrOr("")
	dialect, ok := ParseDialect(version)
	if !ok {
		return DialectUnknown, "", &docerrors.DialectError{Marker: marker, Value: version}
	}
	return dialect, version, nil
}
