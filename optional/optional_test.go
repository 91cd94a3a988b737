package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-arrower/recordstore/optional"
)

type color string

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("zero value is unset", func(t *testing.T) {
		t.Parallel()

		var v optional.Value[int]

		val, ok := v.Get()
		assert.False(t, ok)
		assert.Equal(t, 0, val)
		assert.False(t, v.IsSet())
	})

	t.Run("set to the zero value is still set", func(t *testing.T) {
		t.Parallel()

		v := optional.Of(0)

		val, ok := v.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		assert.False(t, optional.None[string]().IsSet())
		assert.Equal(t, "<unset>", optional.None[string]().String())
		assert.Equal(t, "tools", optional.Of("tools").String())
	})
}

func TestValue_JSON(t *testing.T) {
	t.Parallel()

	type patch struct {
		Name  optional.Value[string]  `json:"name"`
		Price optional.Value[float64] `json:"price"`
		Count optional.Value[int]     `json:"count"`
	}

	t.Run("absent, null and zero", func(t *testing.T) {
		t.Parallel()

		var p patch

		err := json.Unmarshal([]byte(`{"price": null, "count": 0}`), &p)
		require.NoError(t, err)

		assert.False(t, p.Name.IsSet(), "absent key")
		assert.False(t, p.Price.IsSet(), "explicit null")
		assert.True(t, p.Count.IsSet(), "zero value")
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Parallel()

		var p patch

		err := json.Unmarshal([]byte(`{"count": "many"}`), &p)
		assert.Error(t, err)
	})

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(patch{Name: optional.Of("Hammer")})
		require.NoError(t, err)

		assert.JSONEq(t, `{"name":"Hammer","price":null,"count":null}`, string(b))
	})
}

func TestValue_YAML(t *testing.T) {
	t.Parallel()

	type record struct {
		Description optional.Value[string] `yaml:"description"`
		Note        optional.Value[string] `yaml:"note"`
	}

	var r record

	err := yaml.Unmarshal([]byte("description: strong\nnote: ~\n"), &r)
	require.NoError(t, err)

	assert.Equal(t, optional.Of("strong"), r.Description)
	assert.False(t, r.Note.IsSet())
}

func TestValue_UnmarshalParam(t *testing.T) {
	t.Parallel()

	t.Run("kinds", func(t *testing.T) {
		t.Parallel()

		var (
			s optional.Value[color]
			b optional.Value[bool]
			i optional.Value[int]
			u optional.Value[uint8]
			f optional.Value[float64]
		)

		assert.NoError(t, s.UnmarshalParam("red"))
		assert.NoError(t, b.UnmarshalParam("true"))
		assert.NoError(t, i.UnmarshalParam("-3"))
		assert.NoError(t, u.UnmarshalParam("255"))
		assert.NoError(t, f.UnmarshalParam("5.99"))

		assert.Equal(t, optional.Of(color("red")), s)
		assert.Equal(t, optional.Of(true), b)
		assert.Equal(t, optional.Of(-3), i)
		assert.Equal(t, optional.Of(uint8(255)), u)
		assert.Equal(t, optional.Of(5.99), f)
	})

	t.Run("empty param is unset", func(t *testing.T) {
		t.Parallel()

		i := optional.Of(1)

		assert.NoError(t, i.UnmarshalParam(""))
		assert.False(t, i.IsSet())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		var (
			i optional.Value[int]
			u optional.Value[uint8]
			m optional.Value[map[string]string]
		)

		assert.Error(t, i.UnmarshalParam("ten"))
		assert.Error(t, u.UnmarshalParam("256"))
		assert.ErrorIs(t, m.UnmarshalParam("a"), optional.ErrUnsupportedType)
	})
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	type request struct {
		Name  optional.Value[string] `validate:"omitempty,min=1,max=5"`
		Count optional.Value[int]    `validate:"omitempty,gte=0"`
	}

	validate := optional.RegisterValidation(validator.New(),
		optional.Value[string]{},
		optional.Value[int]{},
	)

	assert.NoError(t, validate.Struct(request{}), "unset values are skipped")
	assert.NoError(t, validate.Struct(request{Name: optional.Of("Nails"), Count: optional.Of(0)}))
	assert.Error(t, validate.Struct(request{Name: optional.Of("")}), "set zero values are validated")
	assert.Error(t, validate.Struct(request{Name: optional.Of("Screwdriver")}))
	assert.Error(t, validate.Struct(request{Count: optional.Of(-1)}))
}
