package ember

import "fmt"

// Relation is an immutable materialized result table: ordered column
// names plus ordered rows of Values, every row with the same arity as
// the column list.
type Relation struct {
	columns []string
	rows    [][]Value
}

// NewRelation builds a Relation from the given column names and rows.
// Every row must have exactly one Value per column.
func NewRelation(columns []string, rows [][]Value) (*Relation, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf(
				"row %d has %d values, expected %d", i, len(row), len(columns),
			)
		}
	}
	return &Relation{columns: columns, rows: rows}, nil
}

// NumColumns returns the number of columns.
func (r *Relation) NumColumns() int {
	return len(r.columns)
}

// NumRows returns the number of rows.
func (r *Relation) NumRows() int {
	return len(r.rows)
}

// ColumnNames returns a copy of the ordered column names.
func (r *Relation) ColumnNames() []string {
	names := make([]string, len(r.columns))
	copy(names, r.columns)
	return names
}

// value returns the cell at the given row and column. Both must have
// been bounds-checked by the caller.
func (r *Relation) value(row, column int) Value {
	return r.rows[row][column]
}

// columnIndex resolves a column name to its index. The first match
// wins when names repeat; duplicates are not prevented by this layer.
func (r *Relation) columnIndex(name string) (int, bool) {
	for i, column := range r.columns {
		if column == name {
			return i, true
		}
	}
	return 0, false
}

// relationFromResult converts engine output into a Relation.
func relationFromResult(columns []string, rows [][]any) (*Relation, error) {
	converted := make([][]Value, len(rows))
	for i, row := range rows {
		values := make([]Value, len(row))
		for j, cell := range row {
			values[j] = valueFromCell(cell)
		}
		converted[i] = values
	}
	return NewRelation(columns, converted)
}
