package sheetstore

import "context"

// Store is the row-oriented view of the spreadsheet backing the
// attendance system. All operations hit the remote store; none of them
// offers atomic read-modify-write, so check-then-append callers get
// best-effort semantics only.
//
// Two read shapes are provided on purpose: ReadTable fetches a whole
// sheet in one round trip (bigger payload, scan locally), ReadColumn
// fetches a single column (smaller payload, may need a second call for
// the matched row). Call sites pick per expected table size and the
// request deadline budget.
type Store interface {
	// ReadTable returns every row of the sheet, header included.
	ReadTable(ctx context.Context, table string) ([][]string, error)

	// ReadColumn returns the values of one column from row 2 onward,
	// skipping the header. Empty trailing cells are not returned by
	// the backing API.
	ReadColumn(ctx context.Context, table, column string) ([]string, error)

	// ReadCell returns the single cell at <column><row>.
	ReadCell(ctx context.Context, table string, row int, column string) (string, error)

	// AppendRow appends a row at the bottom of the sheet.
	AppendRow(ctx context.Context, table string, row []string) error
}
