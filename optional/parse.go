package optional

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var ErrUnsupportedType = errors.New("unsupported type for parameter binding")

// parse converts a single textual parameter into T.
// It supports all types with an underlying string, bool, int, uint or float kind
// and everything implementing encoding.TextUnmarshaler.
func parse[T any](param string) (T, error) {
	var val T

	if tu, ok := any(&val).(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(param)); err != nil {
			return val, fmt.Errorf("could not parse %q: %w", param, err)
		}

		return val, nil
	}

	rv := reflect.ValueOf(&val).Elem()

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(param)
	case reflect.Bool:
		b, err := strconv.ParseBool(param)
		if err != nil {
			return val, fmt.Errorf("could not parse %q as bool: %w", param, err)
		}

		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(param, 10, rv.Type().Bits())
		if err != nil {
			return val, fmt.Errorf("could not parse %q as integer: %w", param, err)
		}

		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(param, 10, rv.Type().Bits())
		if err != nil {
			return val, fmt.Errorf("could not parse %q as unsigned integer: %w", param, err)
		}

		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(param, rv.Type().Bits())
		if err != nil {
			return val, fmt.Errorf("could not parse %q as number: %w", param, err)
		}

		rv.SetFloat(f)
	default:
		return val, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}

	return val, nil
}
