package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

func TestMetadataIsDetached(t *testing.T) {
	t.Parallel()

	t.Run("later changes to options do not leak", func(t *testing.T) {
		t.Parallel()

		minLength := 3
		maximum := 5.0
		str := field.String(field.StringOptions{MinLength: &minLength})
		num := field.Number(field.NumberOptions{Maximum: &maximum})
		minLength = 100
		maximum = 1000

		m, ok := str.Metadata()
		require.True(t, ok)
		assert.Equal(t, 3, *m.MinLength)
		_, errs := str.Process("name", "abcd", true, field.ModeAll)
		assert.Empty(t, errs)

		m, ok = num.Metadata()
		require.True(t, ok)
		assert.Equal(t, 5.0, *m.Maximum)
		_, errs = num.Process("qty", 6, true, field.ModeAll)
		assert.True(t, errs.HasRule("qty", "max"))
	})

	t.Run("returned metadata can be modified freely", func(t *testing.T) {
		t.Parallel()

		d := field.String(field.StringOptions{MinLength: field.Ptr(3), MaxLength: field.Ptr(8)})
		m, _ := d.Metadata()
		*m.MinLength = 42
		*m.MaxLength = 42

		again, _ := d.Metadata()
		assert.Equal(t, 3, *again.MinLength)
		assert.Equal(t, 8, *again.MaxLength)
	})

	t.Run("enum values are copied", func(t *testing.T) {
		t.Parallel()

		d := field.Enum(func() []string { return []string{"draft", "active"} }, field.EnumOptions{})
		m, _ := d.Metadata()
		values := m.EnumValues()
		values[0] = "sold"

		assert.Equal(t, []any{"draft", "active"}, m.EnumValues())
		_, errs := d.Process("status", "draft", true, field.ModeAll)
		assert.Empty(t, errs)
	})
}
