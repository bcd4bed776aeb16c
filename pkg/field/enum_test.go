package field_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

type role string

const (
	roleAdmin role = "admin"
	roleUser  role = "user"
)

func TestLazyAccessorsConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	var enumCalls, nestedCalls atomic.Int32
	enum := field.Enum(func() []role {
		enumCalls.Add(1)
		return []role{roleAdmin, roleUser}
	}, field.EnumOptions{Name: "Role"})
	translations := field.TranslationSet(func() *field.Schema {
		nestedCalls.Add(1)
		return translationSchema()
	}, field.TranslationOptions{Languages: 1})

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()

			if i%2 == 0 {
				m, _ := enum.Metadata()
				assert.Len(t, m.EnumValues(), 2)
				m, _ = translations.Metadata()
				assert.NotNil(t, m.Items())
				return
			}

			_, errs := enum.Process("role", "user", true, field.ModeAll)
			assert.Empty(t, errs)
			_, errs = translations.Process("titles", []any{
				map[string]any{"languageCode": "EN", "text": "Hi"},
			}, true, field.ModeAll)
			assert.Empty(t, errs)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), enumCalls.Load())
	assert.Equal(t, int32(1), nestedCalls.Load())
}

func TestEnum(t *testing.T) {
	t.Parallel()

	t.Run("accessor is resolved lazily and once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		d := field.Enum(func() []role {
			calls.Add(1)
			return []role{roleAdmin, roleUser}
		}, field.EnumOptions{Name: "Role"})
		assert.Equal(t, int32(0), calls.Load())

		_, errs := d.Process("role", "admin", true, field.ModeAll)
		assert.Empty(t, errs)
		assert.Equal(t, int32(1), calls.Load())

		_, errs = d.Process("role", "guest", true, field.ModeAll)
		assert.True(t, errs.HasRule("role", "enum"))

		m, ok := d.Metadata()
		require.True(t, ok)
		assert.Equal(t, []any{roleAdmin, roleUser}, m.EnumValues())
		assert.Equal(t, "Role", m.EnumName)
		assert.Equal(t, "string", m.Type)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("accessor may reference values declared later", func(t *testing.T) {
		t.Parallel()

		var statuses []int
		d := field.Enum(func() []int { return statuses }, field.EnumOptions{})
		statuses = []int{1, 2, 3}

		_, errs := d.Process("status", 2.0, true, field.ModeAll)
		assert.Empty(t, errs)

		m, _ := d.Metadata()
		assert.Equal(t, "number", m.Type)
	})

	t.Run("each", func(t *testing.T) {
		t.Parallel()
		d := field.Enum(func() []role { return []role{roleAdmin, roleUser} }, field.EnumOptions{Each: true})

		_, errs := d.Process("roles", []any{"user", "root"}, true, field.ModeAll)
		require.Len(t, errs, 1)
		assert.Equal(t, "roles[1]", errs[0].Field)

		m, _ := d.Metadata()
		assert.True(t, m.IsArray)
	})

	t.Run("nil accessor", func(t *testing.T) {
		t.Parallel()
		_, err := field.Catch(func() field.Descriptor {
			return field.Enum[string](nil, field.EnumOptions{})
		})
		assert.ErrorIs(t, err, field.ErrConfiguration)
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	const id = "550e8400-e29b-41d4-a716-446655440000"
	d := field.UUID(field.UUIDOptions{})

	_, errs := d.Process("id", id, true, field.ModeAll)
	assert.Empty(t, errs)

	_, errs = d.Process("id", "not-a-uuid", true, field.ModeAll)
	assert.True(t, errs.HasRule("id", "uuid"))

	each := field.UUID(field.UUIDOptions{Each: true})

	value, errs := each.Process("ids", id, true, field.ModeAll)
	assert.Empty(t, errs)
	assert.Equal(t, []any{id}, value)

	_, errs = each.Process("ids", []any{}, true, field.ModeAll)
	assert.True(t, errs.HasRule("ids", "array_not_empty"))

	_, errs = each.Process("ids", []any{id, "bad"}, true, field.ModeAll)
	assert.True(t, errs.Has("ids[1]"))
}

func TestPhone(t *testing.T) {
	t.Parallel()

	d := field.Phone(field.PhoneOptions{})

	value, errs := d.Process("phone", "+1 201-555-0123", true, field.ModeAll)
	assert.Empty(t, errs)
	assert.Equal(t, "+12015550123", value)

	_, errs = d.Process("phone", "123", true, field.ModeAll)
	assert.True(t, errs.HasRule("phone", "phone"))

	regional := field.Phone(field.PhoneOptions{Region: "US"})
	value, errs = regional.Process("phone", "(201) 555-0123", true, field.ModeAll)
	assert.Empty(t, errs)
	assert.Equal(t, "+12015550123", value)

	_, err := field.Catch(func() field.Descriptor {
		return field.Phone(field.PhoneOptions{Region: "XX"})
	})
	assert.ErrorIs(t, err, field.ErrConfiguration)
}
