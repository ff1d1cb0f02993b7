// Package engine runs SQL text against a SQLite database and hands back
// fully materialized results. It is the only place in the project that
// talks to the underlying database driver.
package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/emberdb/ember/internal/log"
	"github.com/mattn/go-sqlite3"
	"github.com/orsinium-labs/enum"
)

// Config represents the configuration for a DB instance.
type Config struct {
	// Logger is the shared project logger.
	Logger log.Logger
	// Path is the file path of the SQLite database. The file is created
	// if it does not exist, but its parent directory must already exist.
	Path string
}

// DB is a handle to a single SQLite database file.
type DB struct {
	logger log.Logger
	conn   *sql.DB
}

// Result holds the materialized output of a row-returning query:
// ordered column names plus every row scanned into driver values.
type Result struct {
	Columns []string
	Rows    [][]any
}

func createDSN(dbPath string) string {
	qp := url.Values{}
	qp.Add("_foreign_keys", "true")
	qp.Add("_busy_timeout", "5000")
	return fmt.Sprintf("file:%s?%s", dbPath, qp.Encode())
}

// Open opens the SQLite database at config.Path.
func Open(config Config) (*DB, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Path == "" {
		return nil, errors.New("database path is required")
	}

	conn, err := sql.Open("sqlite3", createDSN(config.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps every statement strictly ordered, so the
	// layer above can stay free of locking.
	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open database file: %w", err)
	}

	config.Logger.DebugNs(log.NsEngine, "database opened", log.KV{"path": config.Path})
	return &DB{logger: config.Logger, conn: conn}, nil
}

// Close releases the underlying connection. Safe to call more than once.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.conn = nil
	return nil
}

// queryType represents the type of a given SQLite query.
type queryType = enum.Member[string]

var (
	queryTypeRead      = queryType{Value: "read"}
	queryTypeStatement = queryType{Value: "statement"}
	queryTypeUnknown   = queryType{Value: "unknown"}
)

// detectQueryType reports whether the query returns rows or is executed
// purely for effect. The statement is compiled by SQLite itself, so
// syntax errors surface here with the engine's own message.
func (db *DB) detectQueryType(ctx context.Context, query string) (queryType, error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return queryTypeUnknown, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	isReadOnly := false
	err = conn.Raw(func(driverConn any) error {
		sqliteConn := driverConn.(*sqlite3.SQLiteConn)
		drvStmt, err := sqliteConn.Prepare(query)
		if err != nil {
			return err
		}
		defer drvStmt.Close()
		sqliteStmt := drvStmt.(*sqlite3.SQLiteStmt)
		isReadOnly = sqliteStmt.Readonly()
		return nil
	})
	if err != nil {
		return queryTypeUnknown, err
	}

	if isReadOnly {
		return queryTypeRead, nil
	}
	return queryTypeStatement, nil
}

// Execute runs the given query from start to finish. Row-returning
// queries yield a non-nil Result; statements executed for effect yield
// a nil Result and no error.
func (db *DB) Execute(ctx context.Context, query string) (*Result, error) {
	if db.conn == nil {
		return nil, errors.New("database is closed")
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	typeOfQuery, err := db.detectQueryType(ctx, query)
	if err != nil {
		return nil, err
	}

	if typeOfQuery == queryTypeRead {
		return db.executeRead(ctx, query)
	}
	return nil, db.executeStatement(ctx, query)
}

// executeStatement executes a query that produces no rows.
func (db *DB) executeStatement(ctx context.Context, query string) error {
	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return err
	}
	db.logger.DebugNs(log.NsEngine, "statement executed")
	return nil
}

// executeRead executes a row-returning query and materializes every row.
func (db *DB) executeRead(ctx context.Context, query string) (*Result, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	values := [][]any{}
	for rows.Next() {
		row := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range scans {
			scans[i] = &row[i]
		}
		if err := rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.logger.DebugNs(log.NsEngine, "query executed", log.KV{"rows": len(values)})
	return &Result{Columns: columns, Rows: values}, nil
}
