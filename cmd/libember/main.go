//go:build cgo

// Command libember exports the ember boundary as a plain C ABI.
//
// Build it as a shared library:
//
//	go build -buildmode=c-shared -o libember.so ./cmd/libember
//
// Connections and row sets cross the boundary as opaque uintptr
// handles; 0 is the null handle. No Go pointer is ever stored in C
// memory. All functions return the numeric codes of the ember package
// and write out parameters only on success.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/emberdb/ember"
)

func connFromHandle(h C.uintptr_t) *ember.Conn {
	if h == 0 {
		return nil
	}
	conn, _ := cgo.Handle(h).Value().(*ember.Conn)
	return conn
}

func rowSetFromHandle(h C.uintptr_t) *ember.RowSet {
	if h == 0 {
		return nil
	}
	rows, _ := cgo.Handle(h).Value().(*ember.RowSet)
	return rows
}

// goBuffer borrows the caller's buffer for the duration of a call.
func goBuffer(buf *C.char, bufLen C.size_t) []byte {
	if buf == nil || bufLen == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(bufLen))
}

func setBool(out *C.int, v bool) {
	if v {
		*out = 1
	} else {
		*out = 0
	}
}

//export ember_open
func ember_open(path *C.char, out *C.uintptr_t) C.int {
	if path == nil || out == nil {
		return C.int(ember.InvalidPathEncoding)
	}
	conn, code := ember.Open(C.GoString(path))
	if code != ember.Ok {
		return C.int(code)
	}
	*out = C.uintptr_t(cgo.NewHandle(conn))
	return C.int(ember.Ok)
}

//export ember_open_ephemeral
func ember_open_ephemeral(out *C.uintptr_t) C.int {
	if out == nil {
		return C.int(ember.EphemeralSetupError)
	}
	conn, code := ember.OpenEphemeral()
	if code != ember.Ok {
		return C.int(code)
	}
	*out = C.uintptr_t(cgo.NewHandle(conn))
	return C.int(ember.Ok)
}

//export ember_close
func ember_close(db *C.uintptr_t) {
	if db == nil || *db == 0 {
		return
	}
	handle := cgo.Handle(*db)
	if conn, ok := handle.Value().(*ember.Conn); ok {
		conn.Close()
	}
	handle.Delete()
	*db = 0
}

//export ember_row_set_new
func ember_row_set_new(out *C.uintptr_t) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	*out = C.uintptr_t(cgo.NewHandle(&ember.RowSet{}))
	return C.int(ember.Ok)
}

//export ember_row_set_close
func ember_row_set_close(rs *C.uintptr_t) {
	if rs == nil || *rs == 0 {
		return
	}
	handle := cgo.Handle(*rs)
	if rows, ok := handle.Value().(*ember.RowSet); ok {
		rows.Close()
	}
	handle.Delete()
	*rs = 0
}

//export ember_execute
func ember_execute(db C.uintptr_t, query *C.char, rs C.uintptr_t, errBuf *C.char, errBufLen C.size_t) C.int {
	conn := connFromHandle(db)
	if conn == nil {
		return C.int(ember.NullConnection)
	}
	if query == nil {
		return C.int(ember.InvalidQueryEncoding)
	}
	return C.int(conn.Execute(C.GoString(query), rowSetFromHandle(rs), goBuffer(errBuf, errBufLen)))
}

//export ember_next_row
func ember_next_row(rs C.uintptr_t) C.int {
	return C.int(rowSetFromHandle(rs).Next())
}

//export ember_set_row
func ember_set_row(rs C.uintptr_t, row C.size_t) C.int {
	return C.int(rowSetFromHandle(rs).SetRow(int(row)))
}

//export ember_is_end
func ember_is_end(rs C.uintptr_t, out *C.int) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	setBool(out, rowSetFromHandle(rs).IsEnd())
	return C.int(ember.Ok)
}

//export ember_num_rows
func ember_num_rows(rs C.uintptr_t, out *C.size_t) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	n, code := rowSetFromHandle(rs).NumRows()
	if code != ember.Ok {
		return C.int(code)
	}
	*out = C.size_t(n)
	return C.int(ember.Ok)
}

//export ember_num_columns
func ember_num_columns(rs C.uintptr_t, out *C.size_t) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	n, code := rowSetFromHandle(rs).NumColumns()
	if code != ember.Ok {
		return C.int(code)
	}
	*out = C.size_t(n)
	return C.int(ember.Ok)
}

func namedColumn(column *C.char) (ember.Column, bool) {
	if column == nil {
		return ember.Column{}, false
	}
	return ember.ColumnName(C.GoString(column)), true
}

func isPredicate(rs C.uintptr_t, column ember.Column, out *C.int,
	pred func(*ember.RowSet, ember.Column) (bool, ember.Code),
) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	v, code := pred(rowSetFromHandle(rs), column)
	if code != ember.Ok {
		return C.int(code)
	}
	setBool(out, v)
	return C.int(ember.Ok)
}

//export ember_is_null_index
func ember_is_null_index(rs C.uintptr_t, column C.size_t, out *C.int) C.int {
	return isPredicate(rs, ember.ColumnIndex(int(column)), out, (*ember.RowSet).IsNull)
}

//export ember_is_string_index
func ember_is_string_index(rs C.uintptr_t, column C.size_t, out *C.int) C.int {
	return isPredicate(rs, ember.ColumnIndex(int(column)), out, (*ember.RowSet).IsString)
}

//export ember_is_int_index
func ember_is_int_index(rs C.uintptr_t, column C.size_t, out *C.int) C.int {
	return isPredicate(rs, ember.ColumnIndex(int(column)), out, (*ember.RowSet).IsInt)
}

//export ember_is_null_named
func ember_is_null_named(rs C.uintptr_t, column *C.char, out *C.int) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return isPredicate(rs, col, out, (*ember.RowSet).IsNull)
}

//export ember_is_string_named
func ember_is_string_named(rs C.uintptr_t, column *C.char, out *C.int) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return isPredicate(rs, col, out, (*ember.RowSet).IsString)
}

//export ember_is_int_named
func ember_is_int_named(rs C.uintptr_t, column *C.char, out *C.int) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return isPredicate(rs, col, out, (*ember.RowSet).IsInt)
}

func getInt(rs C.uintptr_t, column ember.Column, out *C.int64_t,
	get func(*ember.RowSet, ember.Column) (int64, ember.Code),
) C.int {
	if out == nil {
		return C.int(ember.NullRowSet)
	}
	v, code := get(rowSetFromHandle(rs), column)
	if code != ember.Ok {
		return C.int(code)
	}
	*out = C.int64_t(v)
	return C.int(ember.Ok)
}

//export ember_get_int_index
func ember_get_int_index(rs C.uintptr_t, column C.size_t, out *C.int64_t) C.int {
	return getInt(rs, ember.ColumnIndex(int(column)), out, (*ember.RowSet).GetInt)
}

//export ember_get_int_named
func ember_get_int_named(rs C.uintptr_t, column *C.char, out *C.int64_t) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return getInt(rs, col, out, (*ember.RowSet).GetInt)
}

//export ember_get_int_index_cast
func ember_get_int_index_cast(rs C.uintptr_t, column C.size_t, out *C.int64_t) C.int {
	return getInt(rs, ember.ColumnIndex(int(column)), out, (*ember.RowSet).GetIntCast)
}

//export ember_get_int_named_cast
func ember_get_int_named_cast(rs C.uintptr_t, column *C.char, out *C.int64_t) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return getInt(rs, col, out, (*ember.RowSet).GetIntCast)
}

//export ember_get_string_index
func ember_get_string_index(rs C.uintptr_t, column C.size_t, buf *C.char, bufLen C.size_t) C.int {
	return C.int(rowSetFromHandle(rs).GetString(ember.ColumnIndex(int(column)), goBuffer(buf, bufLen)))
}

//export ember_get_string_named
func ember_get_string_named(rs C.uintptr_t, column *C.char, buf *C.char, bufLen C.size_t) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return C.int(rowSetFromHandle(rs).GetString(col, goBuffer(buf, bufLen)))
}

//export ember_get_string_index_cast
func ember_get_string_index_cast(rs C.uintptr_t, column C.size_t, buf *C.char, bufLen C.size_t) C.int {
	return C.int(rowSetFromHandle(rs).GetStringCast(ember.ColumnIndex(int(column)), goBuffer(buf, bufLen)))
}

//export ember_get_string_named_cast
func ember_get_string_named_cast(rs C.uintptr_t, column *C.char, buf *C.char, bufLen C.size_t) C.int {
	col, ok := namedColumn(column)
	if !ok {
		return C.int(ember.NoColumn)
	}
	return C.int(rowSetFromHandle(rs).GetStringCast(col, goBuffer(buf, bufLen)))
}

func main() {}
