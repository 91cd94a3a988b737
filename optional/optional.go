// Package optional contains a value wrapper that can tell "not set"
// apart from "set to the zero value".
//
// It is used for partial updates and for filter criteria,
// where an absent field has a different meaning than e.g. a count of 0.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Value holds a T or nothing.
// The zero Value is unset.
type Value[T any] struct {
	val T
	set bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the wrapped value and whether it is set.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.set
}

func (v Value[T]) IsSet() bool {
	return v.set
}

func (v Value[T]) String() string {
	if !v.set {
		return "<unset>"
	}

	return fmt.Sprint(v.val)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}

	return json.Marshal(v.val) //nolint:wrapcheck // export the underlying error
}

// UnmarshalJSON treats an explicit null the same as an absent key.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value[T]{}
		return nil
	}

	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err //nolint:wrapcheck // export the underlying error
	}

	*v = Of(val)

	return nil
}

func (v Value[T]) MarshalYAML() (any, error) {
	if !v.set {
		return nil, nil //nolint:nilnil // yaml encodes nil as null
	}

	return v.val, nil
}

func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*v = Value[T]{}
		return nil
	}

	var val T
	if err := node.Decode(&val); err != nil {
		return err //nolint:wrapcheck // export the underlying error
	}

	*v = Of(val)

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler, so query and path
// parameters can be bound into a Value directly.
// An empty parameter is the same as an absent one.
func (v *Value[T]) UnmarshalParam(param string) error {
	if param == "" {
		*v = Value[T]{}
		return nil
	}

	val, err := parse[T](param)
	if err != nil {
		return err
	}

	*v = Of(val)

	return nil
}

// ValidatorTypeFunc unwraps a Value for go-playground/validator.
// An unset Value is reported as nil, so it passes `omitempty`.
// A set Value is reported as a pointer, so `omitempty` does not skip set zero values.
func ValidatorTypeFunc(field reflect.Value) any {
	if u, ok := field.Interface().(interface{ unwrap() (any, bool) }); ok {
		if val, set := u.unwrap(); set {
			return val
		}
	}

	return nil
}

func (v Value[T]) unwrap() (any, bool) {
	return &v.val, v.set
}

// RegisterValidation makes validate aware of the given Value types, e.g.:
//
//	optional.RegisterValidation(v, optional.Value[string]{}, optional.Value[int]{})
//
// Validation tags on a Value field then apply to the wrapped value.
func RegisterValidation(validate *validator.Validate, samples ...any) *validator.Validate {
	if validate == nil {
		validate = validator.New()
	}

	validate.RegisterCustomTypeFunc(ValidatorTypeFunc, samples...)

	return validate
}
