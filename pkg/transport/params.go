package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
)

// encodeParams renders params as a query string with deterministic key order.
// Nil values — including typed nil pointers hidden inside the interface — are
// dropped so optional filters can be passed unconditionally.
func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key, value := range params {
		if isNil(value) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		values.Set(key, render(params[key]))
	}
	return values.Encode()
}

// render stringifies one parameter value, dereferencing pointers so optional
// filters encode as their underlying value.
func render(value any) string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
		value = rv.Interface()
	}
	if rv.Kind() == reflect.Bool {
		// Euroleague endpoints expect lowercase true/false.
		return fmt.Sprintf("%t", rv.Bool())
	}
	return fmt.Sprint(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	default:
		return false
	}
}
