package repl

import (
	"fmt"

	"github.com/emberdb/ember"
	"github.com/emberdb/ember/internal/shell/styled"
	"github.com/jedib0t/go-pretty/v6/table"
)

// diagCapacity bounds the diagnostic text shown for a failed query.
const diagCapacity = 1024

func cmdQuery(r *Repl, input string) {
	diag := make([]byte, diagCapacity)

	switch code := r.conn.Execute(input, r.rows, diag); code {
	case ember.Ok:
		renderRows(r.rows)
	case ember.NoResult:
		fmt.Println("OK")
	case ember.ExecutionError:
		styled.ErrorColor().Println(cString(diag))
	default:
		styled.ErrorColor().Printf("query failed: %s\n", code)
	}
}

func renderRows(rows *ember.RowSet) {
	tw := styled.NewTableWriter()

	columns, code := rows.Columns()
	if code != ember.Ok {
		styled.ErrorColor().Printf("failed to read columns: %s\n", code)
		return
	}

	header := table.Row{}
	for _, column := range columns {
		header = append(header, column)
	}
	tw.AppendHeader(header)

	for code := rows.SetRow(0); code == ember.Ok && !rows.IsEnd(); rows.Next() {
		row := table.Row{}
		for i := range columns {
			row = append(row, cellText(rows, i))
		}
		tw.AppendRow(row)
	}

	numRows, _ := rows.NumRows()
	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("%d row(s)\n", numRows)
}

// cellText renders a single cell, retrying with a larger buffer until
// the value fits.
func cellText(rows *ember.RowSet, index int) string {
	column := ember.ColumnIndex(index)

	if isNull, code := rows.IsNull(column); code != ember.Ok {
		return fmt.Sprintf("<%s>", code)
	} else if isNull {
		return "NULL"
	}

	buf := make([]byte, 64)
	for {
		switch code := rows.GetStringCast(column, buf); code {
		case ember.Ok:
			return cString(buf)
		case ember.BufferTooSmall:
			buf = make([]byte, len(buf)*2)
		default:
			return fmt.Sprintf("<%s>", code)
		}
	}
}

// cString reads a NUL-terminated string out of buf.
func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
