package sheetstore

import "github.com/tpeo/attendbot/errors"

// ColumnIndex maps a single uppercase column letter to its zero-based
// index. Only A..Z are supported; the sheets in play never grow past
// column E, and rejecting anything wider here beats a silent
// out-of-range scan later.
func ColumnIndex(letter string) (int, error) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0, errors.NewAppError(errors.ErrCodeBadColumn,
			"unsupported column letter "+letter, nil)
	}
	return int(letter[0] - 'A'), nil
}

// FindRowByColumn returns the first row whose cell at colIndex equals
// key under exact string comparison. Rows too short to have the column
// are skipped. Returns false for an empty table or no match.
func FindRowByColumn(rows [][]string, colIndex int, key string) ([]string, bool) {
	for _, row := range rows {
		if colIndex >= len(row) {
			continue
		}
		if row[colIndex] == key {
			return row, true
		}
	}
	return nil, false
}
