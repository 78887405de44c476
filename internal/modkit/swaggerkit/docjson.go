package swaggerkit

import (
	"encoding/json"
	"net/http"

	"wifiman/internal/core/version"
	perr "wifiman/internal/platform/errors"
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return statusDoc }

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		schemas := section(section(spec, "components"), "schemas")
		schemas["ErrorResponse"] = errorSchema()
		addDefaultErrors(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// section returns parent[key] as an object, creating it when absent
func section(parent map[string]any, key string) map[string]any {
	if m, ok := parent[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	parent[key] = m
	return m
}

// errorSchema describes the error envelope with the code enum taken from perr.Codes
func errorSchema() map[string]any {
	codes := perr.Codes()
	values := make([]any, 0, len(codes))
	names := make([]any, 0, len(codes))
	for _, c := range codes {
		values = append(values, int(c))
		names = append(names, c.String())
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code": map[string]any{
				"type":            "integer",
				"format":          "int32",
				"enum":            values,
				"x-enum-varnames": names,
			},
			"error":      map[string]any{"type": "string"},
			"request_id": map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultErrors gives every operation a 500 and every operation that
// takes a body a 400, unless the document already names one
func addDefaultErrors(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	ref := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				},
			},
		}
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := section(op, "responses")
			if _, exists := responses["500"]; !exists {
				responses["500"] = ref("Internal Server Error")
			}
			if _, body := op["requestBody"]; body {
				if _, exists := responses["400"]; !exists {
					responses["400"] = ref("Bad Request")
				}
			}
		}
	}
}
