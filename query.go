package simplefetch

import (
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// QueryParam is a single query-string entry. Value must be a string, a
// number, or a homogeneous slice of strings/numbers; slices produce one
// key=value pair per element, in order.
type QueryParam struct {
	Key   string
	Value any
}

// QueryParams is an ordered set of query parameters. Order is preserved
// exactly in the serialized output, which makes it the canonical input
// when repeated-key or ordering behavior matters.
type QueryParams []QueryParam

// ValidateQueryParams checks that params is an accepted container
// (QueryParams, map[string]any, or map[string]string) and that every
// value is a string, a number, or a slice of those. It returns a
// *QueryShapeError for bad containers and a *QueryValueError naming the
// offending key otherwise.
func ValidateQueryParams(params any) error {
	pairs, err := queryPairs(params)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err := validateQueryValue(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// SerializeQueryParams turns params into a URL query string such as
// "page=1&limit=10". Keys and values are percent-encoded; slice values
// produce repeated keys ("ids=1&ids=2"). When lowerCaseKeys is set, keys
// are lower-cased before encoding. Validation failures surface before any
// encoding happens.
//
// QueryParams input serializes in insertion order. Plain map input has no
// insertion order in Go, so it serializes in sorted-key order for
// deterministic output.
func SerializeQueryParams(params any, lowerCaseKeys bool) (string, error) {
	pairs, err := queryPairs(params)
	if err != nil {
		return "", err
	}
	for _, p := range pairs {
		if err := validateQueryValue(p.Key, p.Value); err != nil {
			return "", err
		}
	}

	var parts []string
	for _, p := range pairs {
		key := p.Key
		if lowerCaseKeys {
			key = strings.ToLower(key)
		}
		encodedKey := url.QueryEscape(key)

		rv := reflect.ValueOf(p.Value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				elem := rv.Index(i).Interface()
				parts = append(parts, encodedKey+"="+url.QueryEscape(formatQueryScalar(elem)))
			}
			continue
		}
		parts = append(parts, encodedKey+"="+url.QueryEscape(formatQueryScalar(p.Value)))
	}
	return strings.Join(parts, "&"), nil
}

// queryPairs flattens an accepted container into ordered key/value pairs.
func queryPairs(params any) (QueryParams, error) {
	switch p := params.(type) {
	case QueryParams:
		return p, nil
	case []QueryParam:
		return QueryParams(p), nil
	case map[string]any:
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make(QueryParams, 0, len(p))
		for _, k := range keys {
			pairs = append(pairs, QueryParam{Key: k, Value: p[k]})
		}
		return pairs, nil
	case map[string]string:
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make(QueryParams, 0, len(p))
		for _, k := range keys {
			pairs = append(pairs, QueryParam{Key: k, Value: p[k]})
		}
		return pairs, nil
	default:
		return nil, &QueryShapeError{Got: params}
	}
}

func validateQueryValue(key string, v any) error {
	if v == nil {
		return &QueryValueError{Key: key, Preview: "<nil>"}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if !isQueryScalar(elem) {
				return &QueryValueError{Key: key, Preview: preview(v)}
			}
		}
		return nil
	default:
		if !isQueryScalar(v) {
			return &QueryValueError{Key: key, Preview: preview(v)}
		}
		return nil
	}
}

func isQueryScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func formatQueryScalar(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return ""
}
