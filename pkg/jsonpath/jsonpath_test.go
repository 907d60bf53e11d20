package jsonpath

import (
	"strings"
	"testing"
)

const doc = `{
	"users": [
		{"name": "Ada", "age": 36},
		{"name": "Grace", "age": 85}
	],
	"meta": {"total": 2},
	"deleted": null
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Dotted path", "$.meta.total", "2"},
		{"Array index", "$.users[0].name", "Ada"},
		{"Nested array field", "$.users[1].age", "85"},
		{"Bracketed key single quotes", "$['meta']['total']", "2"},
		{"Bracketed key double quotes", `$["meta"]["total"]`, "2"},
		{"Null value", "$.deleted", "null"},
		{"Without dollar prefix", "users[0].name", "Ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(doc, tt.path)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtract_RootArray(t *testing.T) {
	got, err := Extract(`[{"id":1},{"id":2}]`, "$[1].id")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "2" {
		t.Errorf("Expected 2, got %q", got)
	}
}

func TestExtract_Errors(t *testing.T) {
	if _, err := Extract("", "$.a"); err == nil {
		t.Error("Expected error for empty document")
	}
	if _, err := Extract(doc, ""); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := Extract(doc, "$.nope.nothing"); err == nil {
		t.Error("Expected error for unresolved path")
	}
}

func TestExtractMap(t *testing.T) {
	results, err := ExtractMap(doc, map[string]string{
		"first": "$.users[0].name",
		"total": "$.meta.total",
	})
	if err != nil {
		t.Fatalf("ExtractMap returned error: %v", err)
	}
	if results["first"] != "Ada" || results["total"] != "2" {
		t.Errorf("Unexpected results: %v", results)
	}
}

func TestExtractMap_PartialFailure(t *testing.T) {
	results, err := ExtractMap(doc, map[string]string{
		"ok":      "$.meta.total",
		"missing": "$.nope",
	})
	if err == nil {
		t.Fatal("Expected error for failed extraction")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("Expected failure to be named, got %v", err)
	}
	if results["ok"] != "2" {
		t.Errorf("Expected successful extraction kept, got %v", results)
	}
}

func TestToGjsonPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"$", "@this"},
		{"$.a.b", "a.b"},
		{"$.a[0].b", "a.0.b"},
		{"$[2]", "2"},
		{"$['key'].x", "key.x"},
	}
	for _, tt := range tests {
		if got := toGjsonPath(tt.in); got != tt.expected {
			t.Errorf("toGjsonPath(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
