package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestIsNumber(t *testing.T) {
	t.Parallel()

	rule := validator.IsNumber()
	for _, v := range []any{1, int8(1), uint64(2), float32(1.5), 2.5, json.Number("3.14")} {
		assert.True(t, rule.Check(v), "%T(%v)", v, v)
	}
	for _, v := range []any{nil, "1", true, math.NaN(), math.Inf(1), json.Number("x")} {
		assert.False(t, rule.Check(v), "%T(%v)", v, v)
	}
}

func TestIsInteger(t *testing.T) {
	t.Parallel()

	rule := validator.IsInteger()
	assert.True(t, rule.Check(3))
	assert.True(t, rule.Check(3.0))
	assert.True(t, rule.Check(-7.0))
	assert.False(t, rule.Check(5.5))
	assert.False(t, rule.Check("3"))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	t.Run("minimum is inclusive", func(t *testing.T) {
		rule := validator.Min(10)
		assert.True(t, rule.Check(10))
		assert.False(t, rule.Check(math.Nextafter(10, math.Inf(-1))))
	})

	t.Run("zero minimum is enforced", func(t *testing.T) {
		rule := validator.Min(0)
		assert.True(t, rule.Check(0.0))
		assert.False(t, rule.Check(-math.SmallestNonzeroFloat64))
		assert.False(t, rule.Check(-1))
	})

	t.Run("maximum is inclusive", func(t *testing.T) {
		rule := validator.Max(5)
		assert.True(t, rule.Check(5))
		assert.False(t, rule.Check(math.Nextafter(5, math.Inf(1))))
	})

	t.Run("non-number fails bounds", func(t *testing.T) {
		assert.False(t, validator.Min(0).Check("1"))
		assert.False(t, validator.Max(10).Check(nil))
	})

	t.Run("between honors zero bounds", func(t *testing.T) {
		rule := validator.NumberBetween(floatPtr(0), floatPtr(0))
		assert.True(t, rule.Check(0))
		assert.False(t, rule.Check(0.1))
		assert.False(t, rule.Check(-0.1))
	})

	t.Run("between with one bound", func(t *testing.T) {
		assert.True(t, validator.NumberBetween(nil, floatPtr(1)).Check(-100))
		assert.False(t, validator.NumberBetween(floatPtr(1), nil).Check(0))
	})
}

func TestIsPositive(t *testing.T) {
	t.Parallel()

	rule := validator.IsPositive()
	assert.True(t, rule.Check(0.001))
	assert.False(t, rule.Check(0))
	assert.False(t, rule.Check(-1))
}

func TestAsNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"int", 7, 7, true},
		{"uint8", uint8(3), 3, true},
		{"float32", float32(1.5), 1.5, true},
		{"json number", json.Number("2.25"), 2.25, true},
		{"bad json number", json.Number("x"), 0, false},
		{"numeric string", "5", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"nan", math.NaN(), 0, false},
		{"infinity", math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := validator.AsNumber(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
