package ember

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accessorRowSet(t *testing.T) *RowSet {
	t.Helper()
	return boundRowSet(t, []string{"missing", "num", "word"}, [][]Value{
		{NullValue(), IntegerValue(7), TextValue("hello")},
		{NullValue(), IntegerValue(-42), TextValue("123")},
	})
}

func TestColumnResolution(t *testing.T) {
	rs := accessorRowSet(t)

	tests := []struct {
		name   string
		column Column
		code   Code
	}{
		{name: "ByIndex", column: ColumnIndex(1), code: Ok},
		{name: "ByName", column: ColumnName("num"), code: Ok},
		{name: "IndexOutOfRange", column: ColumnIndex(3), code: NoColumn},
		{name: "NegativeIndex", column: ColumnIndex(-1), code: NoColumn},
		{name: "UnknownName", column: ColumnName("nope"), code: NoColumn},
		{name: "MalformedName", column: ColumnName(string([]byte{0xff, 0xfe})), code: NoColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code := rs.IsNull(tt.column)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestTypePredicates(t *testing.T) {
	rs := accessorRowSet(t)

	isNull, code := rs.IsNull(ColumnName("missing"))
	require.Equal(t, Ok, code)
	assert.True(t, isNull)

	isInt, code := rs.IsInt(ColumnIndex(1))
	require.Equal(t, Ok, code)
	assert.True(t, isInt)

	isString, code := rs.IsString(ColumnName("word"))
	require.Equal(t, Ok, code)
	assert.True(t, isString)

	isString, code = rs.IsString(ColumnIndex(1))
	require.Equal(t, Ok, code)
	assert.False(t, isString)
}

func TestPredicatesPastEnd(t *testing.T) {
	rs := accessorRowSet(t)
	require.Equal(t, Ok, rs.SetRow(2))

	_, code := rs.IsNull(ColumnIndex(0))
	assert.Equal(t, End, code)
	_, code = rs.GetInt(ColumnIndex(1))
	assert.Equal(t, End, code)
}

func TestGetInt(t *testing.T) {
	rs := accessorRowSet(t)

	i, code := rs.GetInt(ColumnName("num"))
	require.Equal(t, Ok, code)
	assert.Equal(t, int64(7), i)

	_, code = rs.GetInt(ColumnName("word"))
	assert.Equal(t, WrongType, code)

	_, code = rs.GetInt(ColumnName("missing"))
	assert.Equal(t, ValueIsNull, code)
}

func TestGetString(t *testing.T) {
	rs := accessorRowSet(t)

	t.Run("ExactFit", func(t *testing.T) {
		buf := make([]byte, len("hello")+1)
		code := rs.GetString(ColumnName("word"), buf)
		require.Equal(t, Ok, code)
		assert.Equal(t, append([]byte("hello"), 0), buf)
	})

	t.Run("OneByteShortWritesNothing", func(t *testing.T) {
		buf := bytes.Repeat([]byte{0xAA}, len("hello"))
		code := rs.GetString(ColumnName("word"), buf)
		assert.Equal(t, BufferTooSmall, code)
		assert.Equal(t, bytes.Repeat([]byte{0xAA}, len("hello")), buf)
	})

	t.Run("WrongType", func(t *testing.T) {
		buf := make([]byte, 32)
		assert.Equal(t, WrongType, rs.GetString(ColumnName("num"), buf))
	})

	t.Run("Null", func(t *testing.T) {
		buf := make([]byte, 32)
		assert.Equal(t, ValueIsNull, rs.GetString(ColumnName("missing"), buf))
	})
}

func TestCastAccessors(t *testing.T) {
	rs := accessorRowSet(t)

	t.Run("IntToText", func(t *testing.T) {
		buf := make([]byte, 32)
		code := rs.GetStringCast(ColumnName("num"), buf)
		require.Equal(t, Ok, code)
		assert.Equal(t, "7", stringFromBuffer(buf))
	})

	t.Run("TextToInt", func(t *testing.T) {
		require.Equal(t, Ok, rs.SetRow(1))
		defer func() { require.Equal(t, Ok, rs.SetRow(0)) }()

		i, code := rs.GetIntCast(ColumnName("word"))
		require.Equal(t, Ok, code)
		assert.Equal(t, int64(123), i)
	})

	t.Run("UnparseableTextCastsToZero", func(t *testing.T) {
		i, code := rs.GetIntCast(ColumnName("word"))
		require.Equal(t, Ok, code)
		assert.Equal(t, int64(0), i)
	})

	t.Run("NullHasNoCast", func(t *testing.T) {
		_, code := rs.GetIntCast(ColumnName("missing"))
		assert.Equal(t, ValueIsNull, code)

		buf := make([]byte, 32)
		assert.Equal(t, ValueIsNull, rs.GetStringCast(ColumnName("missing"), buf))
	})

	t.Run("BufferRulesApply", func(t *testing.T) {
		buf := make([]byte, 1)
		assert.Equal(t, BufferTooSmall, rs.GetStringCast(ColumnName("num"), buf))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, want := range []int64{0, 1, -1, 4096, -4096, 1<<62 - 1} {
			rs := boundRowSet(t, []string{"v"}, [][]Value{{IntegerValue(want)}})

			buf := make([]byte, 32)
			require.Equal(t, Ok, rs.GetStringCast(ColumnIndex(0), buf))

			text := boundRowSet(t, []string{"v"}, [][]Value{{TextValue(stringFromBuffer(buf))}})
			got, code := text.GetIntCast(ColumnIndex(0))
			require.Equal(t, Ok, code)
			assert.Equal(t, want, got, strconv.FormatInt(want, 10))
		}
	})
}

// stringFromBuffer reads a NUL-terminated string out of buf.
func stringFromBuffer(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
