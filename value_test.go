package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuePredicates(t *testing.T) {
	assert.True(t, NullValue().IsNull())
	assert.True(t, IntegerValue(3).IsInteger())
	assert.True(t, TextValue("x").IsText())

	assert.False(t, NullValue().IsInteger())
	assert.False(t, IntegerValue(3).IsText())
	assert.False(t, TextValue("x").IsNull())
}

func TestValueCastInt(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  int64
		ok    bool
	}{
		{name: "Integer", value: IntegerValue(12), want: 12, ok: true},
		{name: "DecimalText", value: TextValue("-34"), want: -34, ok: true},
		{name: "UnparseableText", value: TextValue("twelve"), want: 0, ok: true},
		{name: "EmptyText", value: TextValue(""), want: 0, ok: true},
		{name: "Null", value: NullValue(), want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.CastInt()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueCastText(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
		ok    bool
	}{
		{name: "Text", value: TextValue("hi"), want: "hi", ok: true},
		{name: "Integer", value: IntegerValue(56), want: "56", ok: true},
		{name: "NegativeInteger", value: IntegerValue(-56), want: "-56", ok: true},
		{name: "Null", value: NullValue(), want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.CastText()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueFromCell(t *testing.T) {
	require.True(t, valueFromCell(nil).IsNull())
	require.True(t, valueFromCell(int64(9)).IsInteger())
	require.True(t, valueFromCell("s").IsText())
	require.True(t, valueFromCell([]byte("b")).IsText())
	require.True(t, valueFromCell(1.5).IsText())

	i, _ := valueFromCell(true).CastInt()
	assert.Equal(t, int64(1), i)

	s, _ := valueFromCell([]byte("blob")).CastText()
	assert.Equal(t, "blob", s)

	s, _ = valueFromCell(1.5).CastText()
	assert.Equal(t, "1.5", s)
}
