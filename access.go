package ember

import "unicode/utf8"

// Column locates a column either by zero-based index or by name.
type Column struct {
	index int
	name  string
	named bool
}

// ColumnIndex locates a column by its zero-based index.
func ColumnIndex(index int) Column {
	return Column{index: index}
}

// ColumnName locates a column by exact name match. The first match
// wins if the relation carries duplicate names.
func ColumnName(name string) Column {
	return Column{name: name, named: true}
}

// valueAt resolves the cell at the cursor row and the given column.
// Checks happen in a fixed order: empty RowSet, cursor past the end,
// then column resolution.
func (rs *RowSet) valueAt(column Column) (Value, Code) {
	if rs == nil || rs.relation == nil {
		return Value{}, NullRowSet
	}
	if rs.currentRow >= rs.relation.NumRows() {
		return Value{}, End
	}

	index := column.index
	if column.named {
		if !utf8.ValidString(column.name) {
			return Value{}, NoColumn
		}
		resolved, ok := rs.relation.columnIndex(column.name)
		if !ok {
			return Value{}, NoColumn
		}
		index = resolved
	} else if index < 0 || index >= rs.relation.NumColumns() {
		return Value{}, NoColumn
	}

	return rs.relation.value(rs.currentRow, index), Ok
}

// IsNull reports whether the value at the cursor row is null.
func (rs *RowSet) IsNull(column Column) (bool, Code) {
	value, code := rs.valueAt(column)
	if code != Ok {
		return false, code
	}
	return value.IsNull(), Ok
}

// IsString reports whether the value at the cursor row is text.
func (rs *RowSet) IsString(column Column) (bool, Code) {
	value, code := rs.valueAt(column)
	if code != Ok {
		return false, code
	}
	return value.IsText(), Ok
}

// IsInt reports whether the value at the cursor row is an integer.
func (rs *RowSet) IsInt(column Column) (bool, Code) {
	value, code := rs.valueAt(column)
	if code != Ok {
		return false, code
	}
	return value.IsInteger(), Ok
}

// GetInt returns the integer at the cursor row. A null cell reports
// ValueIsNull and any other type reports WrongType.
func (rs *RowSet) GetInt(column Column) (int64, Code) {
	value, code := rs.valueAt(column)
	if code != Ok {
		return 0, code
	}
	switch {
	case value.IsInteger():
		i, _ := value.CastInt()
		return i, Ok
	case value.IsNull():
		return 0, ValueIsNull
	}
	return 0, WrongType
}

// GetString copies the text at the cursor row into buf, including a
// NUL terminator. If buf cannot hold the bytes plus terminator the
// call reports BufferTooSmall and writes nothing; the caller retries
// with a larger buffer, as this protocol exposes no required-size
// query. A null cell reports ValueIsNull and any other type reports
// WrongType.
func (rs *RowSet) GetString(column Column, buf []byte) Code {
	value, code := rs.valueAt(column)
	if code != Ok {
		return code
	}
	switch {
	case value.IsText():
		s, _ := value.CastText()
		return fillBuffer(buf, s)
	case value.IsNull():
		return ValueIsNull
	}
	return WrongType
}

// GetIntCast returns the value at the cursor row coerced to an
// integer. Text is parsed as decimal. A null cell reports ValueIsNull;
// casting does not invent a value for null.
func (rs *RowSet) GetIntCast(column Column) (int64, Code) {
	value, code := rs.valueAt(column)
	if code != Ok {
		return 0, code
	}
	i, ok := value.CastInt()
	if !ok {
		return 0, ValueIsNull
	}
	return i, Ok
}

// GetStringCast copies the value at the cursor row coerced to text
// into buf, with the same buffer rules as GetString. A null cell
// reports ValueIsNull.
func (rs *RowSet) GetStringCast(column Column, buf []byte) Code {
	value, code := rs.valueAt(column)
	if code != Ok {
		return code
	}
	s, ok := value.CastText()
	if !ok {
		return ValueIsNull
	}
	return fillBuffer(buf, s)
}

// fillBuffer copies s plus a NUL terminator into buf. When buf is too
// small it reports BufferTooSmall without touching buf, so a failed
// call never leaves a partial write behind.
func fillBuffer(buf []byte, s string) Code {
	if len(s)+1 > len(buf) {
		return BufferTooSmall
	}
	n := copy(buf, s)
	buf[n] = 0
	return Ok
}
