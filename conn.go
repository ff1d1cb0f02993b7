package ember

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/emberdb/ember/internal/engine"
	"github.com/emberdb/ember/internal/log"
	"github.com/google/uuid"
	"github.com/orsinium-labs/enum"
)

// connKind represents the lifecycle variant of a connection.
type connKind = enum.Member[string]

var (
	connOrdinary  = connKind{Value: "ordinary"}
	connEphemeral = connKind{Value: "ephemeral"}
)

// Conn is a handle to a database. An ordinary connection persists its
// storage across Close; an ephemeral connection deletes its backing
// storage when closed. A Conn is either fully open or closed, never
// partially initialized.
type Conn struct {
	kind    connKind
	logger  log.Logger
	eng     *engine.DB
	tempDir string
}

// Option configures a connection at open time.
type Option func(*Conn)

// WithLogger sets the structured logger used by the connection and its
// engine. Without it the connection stays silent.
func WithLogger(logger log.Logger) Option {
	return func(c *Conn) {
		c.logger = logger
	}
}

// Open opens or creates a database at the given path and returns an
// ordinary connection. The path must be valid UTF-8 and point at a
// usable location.
func Open(path string, opts ...Option) (*Conn, Code) {
	if !utf8.ValidString(path) {
		return nil, InvalidPathEncoding
	}

	conn := &Conn{kind: connOrdinary, logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(conn)
	}

	eng, err := engine.Open(engine.Config{Logger: conn.logger, Path: path})
	if err != nil {
		return nil, InvalidPathLocation
	}
	conn.eng = eng
	return conn, Ok
}

// OpenEphemeral creates a database in a private location under the OS
// temporary directory and returns an ephemeral connection. The backing
// storage is deleted when the connection is closed.
func OpenEphemeral(opts ...Option) (*Conn, Code) {
	conn := &Conn{kind: connEphemeral, logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(conn)
	}

	dir := filepath.Join(os.TempDir(), "ember-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, EphemeralSetupError
	}

	eng, err := engine.Open(engine.Config{
		Logger: conn.logger,
		Path:   filepath.Join(dir, "ember.sqlite"),
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, EphemeralSetupError
	}

	conn.eng = eng
	conn.tempDir = dir
	conn.logger.DebugNs(log.NsEphemeral, "ephemeral database created", log.KV{"dir": dir})
	return conn, Ok
}

// Close releases the connection. For ephemeral connections the backing
// storage is deleted as well; deletion is best-effort and any failure
// is logged and swallowed, a known limitation of the close contract.
// Close never fails and repeated calls are safe.
func (c *Conn) Close() {
	if c == nil || c.eng == nil {
		return
	}

	if err := c.eng.Close(); err != nil {
		c.logger.WarnNs(log.NsEngine, "failed to close database", log.KV{"error": err.Error()})
	}
	c.eng = nil

	if c.kind == connEphemeral && c.tempDir != "" {
		if err := os.RemoveAll(c.tempDir); err != nil {
			c.logger.WarnNs(log.NsEphemeral, "failed to delete ephemeral storage", log.KV{
				"dir":   c.tempDir,
				"error": err.Error(),
			})
		}
		c.tempDir = ""
	}
}

// Execute runs the given query text and binds its result to rs.
//
// On success any relation previously owned by rs is destroyed, the new
// relation is installed, and the cursor resets to 0. On failure rs is
// left exactly as it was: an execution failure writes a truncated,
// NUL-terminated diagnostic into diag and reports ExecutionError, and
// a statement that legitimately produced no row output reports
// NoResult.
func (c *Conn) Execute(query string, rs *RowSet, diag []byte) Code {
	if c == nil || c.eng == nil {
		return NullConnection
	}
	if rs == nil {
		return NullRowSet
	}
	if !utf8.ValidString(query) {
		return InvalidQueryEncoding
	}

	result, err := c.eng.Execute(context.Background(), query)
	if err != nil {
		writeDiagnostic(diag, err.Error())
		return ExecutionError
	}
	if result == nil {
		return NoResult
	}

	relation, err := relationFromResult(result.Columns, result.Rows)
	if err != nil {
		writeDiagnostic(diag, err.Error())
		return ExecutionError
	}

	rs.bind(relation)
	return Ok
}

// writeDiagnostic copies msg into buf, truncating to fit and always
// NUL-terminating when the buffer has any capacity. It never writes
// past len(buf).
func writeDiagnostic(buf []byte, msg string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], msg)
	buf[n] = 0
}
