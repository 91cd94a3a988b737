package aassert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that object is a struct, or a pointer to one, with the expected number of exported fields.
// Exported fields of nested and embedded structs count as well.
//
// Use it to get notified when a struct that is mapped between layers changes,
// e.g. a domain filter and the query parameters of a controller.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	elem := reflect.ValueOf(object)
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	if elem.Kind() != reflect.Struct {
		return assert.Fail(t, "invalid argument, it has to be a struct")
	}

	fields := countFields(elem.Type())
	if fields != expected {
		t.Logf("the number of exported fields of %s changed: check all code mapping it and update %s",
			elem.Type(), t.Name())

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", fields, expected), msgAndArgs...)
	}

	return true
}

func countFields(typ reflect.Type) int {
	switch typ.Kind() { //nolint:exhaustive // all other kinds have no fields
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return countFields(typ.Elem())
	case reflect.Map:
		if typ.Elem().Kind() == reflect.String {
			return 0
		}

		return countFields(typ.Elem())
	case reflect.Struct:
	default:
		return 0
	}

	fields := 0

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		fields++
		fields += countFields(field.Type)
	}

	return fields
}
