// core/table/table.go
package table

// Table holds one parsed tabular file: the header columns in declared order
// and every data row beneath them. All rows have exactly one cell per column.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New builds a Table over the given header and rows.
func New(columns []string, rows [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := idx[c]; dup {
			continue // first occurrence wins for duplicate names
		}
		idx[c] = i
	}
	return &Table{Columns: columns, Rows: rows, index: idx}
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the text of one cell by row position and column name.
func (t *Table) Cell(row int, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }
