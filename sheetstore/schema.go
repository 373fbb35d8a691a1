package sheetstore

import (
	"context"
	"fmt"

	"github.com/tpeo/attendbot/errors"
)

// Schema pins down the expected shape of one sheet: its header cells in
// column order starting at A, and the column holding the lookup key.
// The sheets are edited by hand out-of-band, so validating them at
// startup (and periodically) catches drift before it turns into wrong
// matches on the request path.
type Schema struct {
	Table     string
	Header    []string
	KeyColumn string
}

// Validate checks the key column letter and compares each expected
// header cell against row 1 of the live sheet. Header reads go cell by
// cell to keep the semester sheet, which can be thousands of rows, off
// the wire.
func (s Schema) Validate(ctx context.Context, store Store) error {
	if _, err := ColumnIndex(s.KeyColumn); err != nil {
		return err
	}
	for i, want := range s.Header {
		col := string(rune('A' + i))
		got, err := store.ReadCell(ctx, s.Table, 1, col)
		if err != nil {
			return err
		}
		if got != want {
			return errors.NewAppError(errors.ErrCodeSchemaMismatch,
				fmt.Sprintf("sheet %s header %s: want %q, got %q", s.Table, col, want, got), nil)
		}
	}
	return nil
}

// ValidateAll validates every schema, stopping at the first failure.
func ValidateAll(ctx context.Context, store Store, schemas []Schema) error {
	for _, s := range schemas {
		if err := s.Validate(ctx, store); err != nil {
			return err
		}
	}
	return nil
}
