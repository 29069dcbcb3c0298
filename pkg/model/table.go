// pkg/model/table.go
package model

// ColumnNNumber is the registration number column every input file must
// carry. Its values key the registry lookups and are never modified.
const ColumnNNumber = "N-NUMBER"

// Row holds one aircraft record as a column name to value mapping.
// Columns absent from a row read back as empty strings.
type Row map[string]string

// Get returns the value for a column, or "" when the row has none.
func (r Row) Get(column string) string {
	return r[column]
}

// Set stores a value, replacing any previous value for the column.
func (r Row) Set(column, value string) {
	r[column] = value
}

// NNumber returns the row's registration number.
func (r Row) NNumber() string {
	return r[ColumnNNumber]
}

// Table is an ordered sequence of rows sharing one column set. Columns keep
// the order of the original header; columns added later are appended.
type Table struct {
	columns []string
	seen    map[string]struct{}
	Rows    []Row
}

// NewTable creates a table with the given initial columns. Duplicate names
// are kept once, first position wins.
func NewTable(columns []string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		seen:    make(map[string]struct{}, len(columns)),
		Rows:    make([]Row, 0),
	}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// Columns returns a copy of the column set in output order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// HasColumn reports whether the table already carries the column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.seen[name]
	return ok
}

// AddColumn appends a column to the column set. Adding an existing column is
// a no-op, so its original position is preserved.
func (t *Table) AddColumn(name string) {
	if _, ok := t.seen[name]; ok {
		return
	}
	t.seen[name] = struct{}{}
	t.columns = append(t.columns, name)
}

// Append adds a row at the end of the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Record flattens row i into column order for serialization. Cells the row
// never carried come out as empty strings.
func (t *Table) Record(i int) []string {
	record := make([]string, len(t.columns))
	for j, column := range t.columns {
		record[j] = t.Rows[i][column]
	}
	return record
}
