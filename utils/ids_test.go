package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   interface{}
		want uint
	}{
		{name: "number", in: float64(12), want: 12},
		{name: "json number", in: json.Number("3"), want: 3},
		{name: "numeric string", in: "42", want: 42},
		{name: "padded string", in: " 5 ", want: 5},
		{name: "int", in: 9, want: 9},
		{name: "missing", in: nil},
		{name: "zero", in: float64(0)},
		{name: "negative", in: float64(-4)},
		{name: "fraction", in: 1.5},
		{name: "word", in: "abc"},
		{name: "empty string", in: ""},
		{name: "bool", in: true},
		{name: "object", in: map[string]interface{}{"id": 1}},
		{name: "nan string", in: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceID(tt.in))
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(7), ParseID("7"))
	assert.Equal(t, uint(0), ParseID("7a"))
	assert.Equal(t, uint(0), ParseID("-1"))
	assert.Equal(t, uint(0), ParseID("Infinity"))
}
