package normalizer

import (
	"fmt"
	"strings"

	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/jsonval"
)

// httpMethods is the fixed probe order for operations within a path item.
// Endpoints appear in the normalized model in path declaration order, and
// in this order within each path.
var httpMethods = []string{"get", "post", "put", "patch", "delete", "head", "options"}

// extractEndpoints walks the paths mapping in declaration order and builds
// one Endpoint per path+method pair. Path-level parameters are prepended
// to each operation's own parameters without deduplication. The same
// path+method pair declared twice produces two entries.
func extractEndpoints(root jsonval.Value, dialect Dialect) ([]*Endpoint, error) {
	paths := root.Get("paths")
	if paths.IsAbsent() || paths.IsNull() {
		return []*Endpoint{}, nil
	}
	if !paths.IsObject() {
		return nil, &docerrors.SpecificationError{
			Path:    "paths",
			Message: "paths must be an object",
		}
	}

	endpoints := make([]*Endpoint, 0)
	for _, pm := range paths.Members() {
		path, item := pm.Key, pm.Value
		if !item.IsObject() {
			return nil, &docerrors.SpecificationError{
				Path:    fmt.Sprintf("paths.%s", path),
				Message: "path item must be an object",
			}
		}
		pathParams := item.Get("parameters").Items()

		for _, method := range httpMethods {
			if !item.Has(method) {
				continue
			}
			op := item.Get(method)
			if !op.IsObject() {
				return nil, &docerrors.SpecificationError{
					Path:    fmt.Sprintf("paths.%s.%s", path, method),
					Message: "operation must be an object",
				}
			}

			combined := make([]jsonval.Value, 0, len(pathParams))
			combined = append(combined, pathParams...)
			combined = append(combined, op.Get("parameters").Items()...)

			ep := &Endpoint{
				Path:        path,
				Method:      strings.ToUpper(method),
				Summary:     op.Get("summary").StrOr(""),
				Description: op.Get("description").StrOr(""),
				OperationID: op.Get("operationId").StrOr(""),
				Tags:        stringItems(op.Get("tags")),
				Parameters:  parseParameters(combined, dialect),
				Responses:   parseResponses(op.Get("responses"), dialect),
				Security:    securityItems(op.Get("security")),
				Deprecated:  op.Get("deprecated").BoolOr(false),
			}
			if dialect == DialectOpenAPI3 {
				ep.RequestBody = parseRequestBody(op.Get("requestBody"))
			}
			endpoints = append(endpoints, ep)
		}
	}
	return endpoints, nil
}

// parseParameters normalizes a combined parameter list. For 3.x the type
// information lives in the nested schema; for 2.0 it sits on the parameter
// itself and no example is carried. Entries that are not objects are
// skipped.
func parseParameters(params []jsonval.Value, dialect Dialect) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if !p.IsObject() {
			continue
		}
		param := Parameter{
			Name:        p.Get("name").StrOr(""),
			In:          p.Get("in").StrOr(""),
			Description: p.Get("description").StrOr(""),
			Required:    p.Get("required").BoolOr(false),
		}
		switch dialect {
		case DialectOpenAPI3:
			schema := p.Get("schema")
			param.Type = schema.Get("type").StrOr("")
			param.Format = schema.Get("format").StrOr("")
			param.Default = schema.Get("default").Interface()
			param.Example = firstPresent(p.Get("example"), schema.Get("example")).Interface()
		case DialectSwagger2:
			param.Type = p.Get("type").StrOr("")
			param.Format = p.Get("format").StrOr("")
			param.Default = p.Get("default").Interface()
		}
		out = append(out, param)
	}
	return out
}

// parseRequestBody keeps only the first declared content type. An explicit
// media-type example wins over a schema-embedded one.
func parseRequestBody(rb jsonval.Value) *RequestBody {
	if !rb.IsObject() {
		return nil
	}
	for _, m := range rb.Get("content").Members() {
		schema := m.Value.Get("schema")
		return &RequestBody{
			ContentType: m.Key,
			Required:    rb.Get("required").BoolOr(false),
			Description: rb.Get("description").StrOr(""),
			Schema:      schema.MapOr(map[string]any{}),
			Example:     firstPresent(m.Value.Get("example"), schema.Get("example")).Interface(),
		}
	}
	return nil
}

// parseResponses normalizes the per-status mapping in declaration order.
// For 3.x only the application/json content entry contributes schema and
// example; for 2.0 they come from the response object itself.
func parseResponses(rv jsonval.Value, dialect Dialect) map[string]*Response {
	out := make(map[string]*Response)
	for _, m := range rv.Members() {
		resp := &Response{
			Description: m.Value.Get("description").StrOr(""),
			Schema:      map[string]any{},
		}
		switch dialect {
		case DialectOpenAPI3:
			media := m.Value.Get("content").Get("application/json")
			schema := media.Get("schema")
			resp.Schema = schema.MapOr(map[string]any{})
			resp.Example = firstPresent(media.Get("example"), schema.Get("example")).Interface()
		case DialectSwagger2:
			resp.Schema = m.Value.Get("schema").MapOr(map[string]any{})
			resp.Example = m.Value.Get("examples").Get("application/json").Interface()
		}
		out[m.Key] = resp
	}
	return out
}

// stringItems collects the string elements of an array value, skipping
// anything else.
func stringItems(v jsonval.Value) []string {
	out := make([]string, 0)
	for _, item := range v.Items() {
		if s, ok := item.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}

// securityItems passes the operation security list through untouched.
func securityItems(v jsonval.Value) []any {
	if !v.IsArray() {
		return []any{}
	}
	if items, ok := v.Interface().([]any); ok {
		return items
	}
	return []any{}
}

// firstPresent returns the first value that is actually set, treating both
// absent and explicit null as unset.
func firstPresent(vals ...jsonval.Value) jsonval.Value {
	for _, v := range vals {
		if !v.IsAbsent() && !v.IsNull() {
			return v
		}
	}
	return jsonval.Value{}
}
