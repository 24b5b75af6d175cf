package models

// Row is one data row of a sheet. Cell 0 is the row key.
type Row []string

// Cell returns the text at the 0-based column, or "" when the row is shorter.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// TableSheet is the text content of one worksheet.
type TableSheet struct {
	// Name is the worksheet name.
	Name string
	// Headers is row 1, padded to Columns. Blank headers are kept in place.
	Headers []string
	// Rows holds rows 2..N, each padded to Columns.
	Rows []Row
	// Columns is the width of the populated bounding rectangle, counted from column A.
	Columns int
}

// Header is a non-blank header cell and its position.
type Header struct {
	// Column is the 0-based column index.
	Column int
	// Name is the header text.
	Name string
}

// Pair is a (key, text) row read in fixed two-column mode.
type Pair struct {
	Key  string
	Text string
}

// KeyedRow is a row read in header-keyed mode.
type KeyedRow struct {
	// Key is the text of column 1.
	Key string
	// Cells maps header name to cell text, in header order.
	Cells []Cell
}

// Cell is a named cell of a KeyedRow.
type Cell struct {
	Header string
	Text   string
}
