// Package ember is the embeddable boundary of a relational query
// engine. It opens database connections, executes query strings,
// materializes results into relations, and gives callers typed,
// bounds-checked access to every cell through caller-supplied buffers.
//
// Every fallible operation reports its outcome as a Code instead of a
// Go error so the whole surface can be re-exported unchanged across a
// C ABI, where the caller cannot be trusted to hold any invariant.
package ember

// Code is the numeric result of every boundary operation. The values
// are part of the wire contract and must stay bit-exact.
type Code int

const (
	// Ok means the operation succeeded.
	Ok Code = 0
	// InvalidPathEncoding means the database path is not valid UTF-8.
	InvalidPathEncoding Code = 1
	// InvalidPathLocation means the database path points at an
	// unusable location.
	InvalidPathLocation Code = 2
	// NullRowSet means the row set has no relation bound.
	NullRowSet Code = 3
	// NullConnection means the connection is not initialized.
	NullConnection Code = 4
	// InvalidQueryEncoding means the query text is not valid UTF-8.
	InvalidQueryEncoding Code = 5
	// NoResult means the query ran but produced no row result.
	NoResult Code = 6
	// ExecutionError means the query failed; a diagnostic has been
	// written to the caller's buffer.
	ExecutionError Code = 7
	// End means the cursor is past the end of the row set.
	End Code = 8
	// NoColumn means no column matches the given index or name.
	NoColumn Code = 9
	// BufferTooSmall means the caller's buffer cannot hold the value.
	BufferTooSmall Code = 10
	// WrongType means the value has a different type than requested.
	WrongType Code = 11
	// ValueIsNull means the value is null where a concrete value is
	// required.
	ValueIsNull Code = 12
	// EphemeralSetupError means the ephemeral database storage could
	// not be created.
	EphemeralSetupError Code = 13
)

var codeNames = map[Code]string{
	Ok:                   "ok",
	InvalidPathEncoding:  "invalid path encoding",
	InvalidPathLocation:  "invalid path location",
	NullRowSet:           "null row set",
	NullConnection:       "null connection",
	InvalidQueryEncoding: "invalid query encoding",
	NoResult:             "no result",
	ExecutionError:       "execution error",
	End:                  "end of row set",
	NoColumn:             "no such column",
	BufferTooSmall:       "buffer too small",
	WrongType:            "wrong value type",
	ValueIsNull:          "value is null",
	EphemeralSetupError:  "ephemeral setup error",
}

// String returns a short human-readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown code"
}
