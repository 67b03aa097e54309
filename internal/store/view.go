package store

import (
	"reflect"
	"strconv"
	"strings"
)

// Filter maps a JSON field name to an exact-match constraint. An empty
// value means no restriction on that field.
type Filter map[string]string

// Apply returns the subsequence of items matching every non-empty
// constraint, preserving the original order. A record matches when each
// constrained field (or the identifier of a nested reference) equals
// the constraint exactly; no partial or case-insensitive matching.
func Apply[T any](items []T, f Filter) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, f) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, f Filter) bool {
	for field, want := range f {
		if want == "" {
			continue
		}
		got, ok := fieldValue(reflect.ValueOf(item), field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// fieldValue resolves a JSON field name against a struct value,
// descending into embedded structs (gorm.Model) for ID/CreatedAt.
func fieldValue(v reflect.Value, field string) (string, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			if got, ok := fieldValue(v.Field(i), field); ok {
				return got, true
			}
			continue
		}
		if jsonName(sf) != field && !strings.EqualFold(sf.Name, field) {
			continue
		}
		return stringify(v.Field(i))
	}
	return "", false
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

func stringify(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Struct:
		// Nested reference: compare against its identifier
		return fieldValue(v, "ID")
	default:
		return "", false
	}
}

// CountBy groups the items by a category key, e.g. status or type.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// SumBy totals a numeric projection over the items, e.g. worked hours
// or net pay.
func SumBy[T any](items []T, value func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		total += value(item)
	}
	return total
}
