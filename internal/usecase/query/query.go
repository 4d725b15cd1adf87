// Package query evaluates JSONPath expressions over saved run reports.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

// Select evaluates expr against the JSON document and renders the result.
// Single-element arrays unwrap to their element; strings print bare; other
// values print as compact JSON.
func Select(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("empty jsonpath expression"),
		}
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("document is not valid JSON: %w", err),
		}
	}

	val, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found", expr),
		}
	}
	return toString(val)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: jsonpath returns a slice with 1 element
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
