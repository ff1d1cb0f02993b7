// Package bench measures the throughput of the ember boundary layer
// against a throwaway database.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/emberdb/ember"
	"github.com/emberdb/ember/internal/log"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Config represents the configuration for a benchmark run.
type Config struct {
	// Logger is the shared project logger.
	Logger log.Logger
	// Rows is the number of rows to insert and read back.
	Rows int
}

type phaseResult struct {
	name     string
	ops      int
	duration time.Duration
}

func (p phaseResult) opsPerSecond() float64 {
	if p.duration <= 0 {
		return 0
	}
	return float64(p.ops) / p.duration.Seconds()
}

// Run executes the benchmark: inserts cfg.Rows rows one statement at a
// time, then reads every cell back through the typed accessors.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Rows <= 0 {
		return fmt.Errorf("row count must be positive, got %d", cfg.Rows)
	}

	conn, code := ember.OpenEphemeral(ember.WithLogger(cfg.Logger))
	if code != ember.Ok {
		return fmt.Errorf("failed to open ephemeral database: %s", code)
	}
	defer conn.Close()

	rows := &ember.RowSet{}
	defer rows.Close()

	if code := conn.Execute(
		"CREATE TABLE users (id INTEGER, name TEXT)", rows, nil,
	); code != ember.NoResult {
		return fmt.Errorf("failed to create schema: %s", code)
	}

	cfg.Logger.InfoNs(log.NsBench, "benchmark started", log.KV{"rows": cfg.Rows})

	insert, err := runInserts(ctx, conn, rows, cfg.Rows)
	if err != nil {
		return err
	}

	scan, err := runScan(ctx, conn, rows, cfg.Rows)
	if err != nil {
		return err
	}

	renderSummary(insert, scan)
	return nil
}

func runInserts(ctx context.Context, conn *ember.Conn, rows *ember.RowSet, n int) (phaseResult, error) {
	pb := newBar("inserting rows", n)
	defer pb.Finish()

	diag := make([]byte, 1024)
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return phaseResult{}, err
		}

		query := fmt.Sprintf("INSERT INTO users VALUES (%d, 'user-%d')", i, i)
		if code := conn.Execute(query, rows, diag); code != ember.NoResult {
			return phaseResult{}, fmt.Errorf("insert failed: %s", code)
		}
		pb.Inc()
	}

	return phaseResult{name: "insert", ops: n, duration: time.Since(start)}, nil
}

func runScan(ctx context.Context, conn *ember.Conn, rows *ember.RowSet, n int) (phaseResult, error) {
	pb := newBar("scanning rows", n)
	defer pb.Finish()

	diag := make([]byte, 1024)
	start := time.Now()
	if code := conn.Execute("SELECT id, name FROM users ORDER BY id", rows, diag); code != ember.Ok {
		return phaseResult{}, fmt.Errorf("select failed: %s", code)
	}

	buf := make([]byte, 64)
	count := 0
	for !rows.IsEnd() {
		if err := ctx.Err(); err != nil {
			return phaseResult{}, err
		}

		if _, code := rows.GetInt(ember.ColumnIndex(0)); code != ember.Ok {
			return phaseResult{}, fmt.Errorf("failed to read id: %s", code)
		}
		if code := rows.GetString(ember.ColumnIndex(1), buf); code != ember.Ok {
			return phaseResult{}, fmt.Errorf("failed to read name: %s", code)
		}

		count++
		pb.Inc()
		rows.Next()
	}

	if count != n {
		return phaseResult{}, fmt.Errorf("scanned %d rows, expected %d", count, n)
	}
	return phaseResult{name: "scan", ops: count, duration: time.Since(start)}, nil
}

func renderSummary(results ...phaseResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Phase", "Operations", "Duration", "Ops/sec"})
	for _, res := range results {
		tw.AppendRow(table.Row{
			res.name,
			res.ops,
			res.duration.Round(time.Millisecond),
			fmt.Sprintf("%.0f", res.opsPerSecond()),
		})
	}
	fmt.Println(tw.Render())
}
