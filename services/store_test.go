package services

import (
	"context"
	"sync"
	"time"

	"github.com/tpeo/attendbot/errors"
	"github.com/tpeo/attendbot/sheetstore"
)

// fakeStore is an in-memory Store with optional per-call latency and a
// fail switch, enough to exercise the orchestration paths without a
// live spreadsheet.
type fakeStore struct {
	mu            sync.Mutex
	tables        map[string][][]string
	latency       time.Duration
	appendLatency time.Duration
	failing       bool
	appends       int
}

func newFakeStore(tables map[string][][]string) *fakeStore {
	return &fakeStore{tables: tables}
}

func (f *fakeStore) wait(ctx context.Context) error {
	if f.failing {
		return errors.NewAppError(errors.ErrCodeStoreUnavailable, "fake store down", nil)
	}
	if f.latency == 0 {
		return nil
	}
	select {
	case <-time.After(f.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeStore) ReadTable(ctx context.Context, table string) ([][]string, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tables[table], nil
}

func (f *fakeStore) ReadColumn(ctx context.Context, table, column string) ([]string, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	idx, err := sheetstore.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var values []string
	for i, row := range f.tables[table] {
		if i == 0 {
			continue
		}
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (f *fakeStore) ReadCell(ctx context.Context, table string, row int, column string) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	idx, err := sheetstore.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.tables[table]
	if row < 1 || row > len(rows) || idx >= len(rows[row-1]) {
		return "", nil
	}
	return rows[row-1][idx], nil
}

func (f *fakeStore) AppendRow(ctx context.Context, table string, row []string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	if f.appendLatency > 0 {
		select {
		case <-time.After(f.appendLatency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table] = append(f.tables[table], row)
	f.appends++
	return nil
}

func (f *fakeStore) appendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appends
}

func (f *fakeStore) lastRow(table string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.tables[table]
	if len(rows) == 0 {
		return nil
	}
	return rows[len(rows)-1]
}

// fixedClock pins Now for deterministic admission decisions.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }
