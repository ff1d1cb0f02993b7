package ember

// RowSet pairs a Relation with a cursor position. Its zero value is
// the documented empty sentinel: no relation bound, cursor at 0. An
// empty RowSet is valid only as the target of Execute or Close; every
// other operation reports NullRowSet.
//
// The cursor position always stays within [0, NumRows]; position
// NumRows is the valid "at end" state.
type RowSet struct {
	relation   *Relation
	currentRow int
}

// bind installs a freshly materialized relation, dropping any previous
// one and resetting the cursor.
func (rs *RowSet) bind(relation *Relation) {
	rs.relation = relation
	rs.currentRow = 0
}

// Next advances the cursor one row. Advancing to or past the end
// leaves the cursor at the end position and reports End.
func (rs *RowSet) Next() Code {
	if rs == nil || rs.relation == nil {
		return NullRowSet
	}
	if rs.currentRow < rs.relation.NumRows() {
		rs.currentRow++
	}
	if rs.currentRow >= rs.relation.NumRows() {
		return End
	}
	return Ok
}

// SetRow moves the cursor to the given row. Row NumRows is accepted as
// the valid "at end" position; anything beyond reports End and leaves
// the cursor unchanged.
func (rs *RowSet) SetRow(row int) Code {
	if rs == nil || rs.relation == nil {
		return NullRowSet
	}
	if row < 0 || row > rs.relation.NumRows() {
		return End
	}
	rs.currentRow = row
	return Ok
}

// Row returns the current cursor position.
func (rs *RowSet) Row() (int, Code) {
	if rs == nil || rs.relation == nil {
		return 0, NullRowSet
	}
	return rs.currentRow, Ok
}

// IsEnd reports whether the cursor is past the last row. An empty
// RowSet is trivially at the end.
func (rs *RowSet) IsEnd() bool {
	if rs == nil || rs.relation == nil {
		return true
	}
	return rs.currentRow >= rs.relation.NumRows()
}

// NumColumns returns the number of columns of the bound relation.
func (rs *RowSet) NumColumns() (int, Code) {
	if rs == nil || rs.relation == nil {
		return 0, NullRowSet
	}
	return rs.relation.NumColumns(), Ok
}

// NumRows returns the number of rows of the bound relation.
func (rs *RowSet) NumRows() (int, Code) {
	if rs == nil || rs.relation == nil {
		return 0, NullRowSet
	}
	return rs.relation.NumRows(), Ok
}

// Columns returns the ordered column names of the bound relation.
func (rs *RowSet) Columns() ([]string, Code) {
	if rs == nil || rs.relation == nil {
		return nil, NullRowSet
	}
	return rs.relation.ColumnNames(), Ok
}

// Close drops the bound relation and resets the RowSet to its empty
// sentinel state. Idempotent.
func (rs *RowSet) Close() {
	if rs == nil {
		return
	}
	rs.relation = nil
	rs.currentRow = 0
}
