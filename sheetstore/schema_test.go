package sheetstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpeo/attendbot/errors"
)

// memStore is an in-memory Store for schema tests.
type memStore struct {
	tables map[string][][]string
}

func (m *memStore) ReadTable(_ context.Context, table string) ([][]string, error) {
	return m.tables[table], nil
}

func (m *memStore) ReadColumn(_ context.Context, table, column string) ([]string, error) {
	idx, err := ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	var values []string
	rows := m.tables[table]
	for i, row := range rows {
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

func (m *memStore) ReadCell(_ context.Context, table string, row int, column string) (string, error) {
	idx, err := ColumnIndex(column)
	if err != nil {
		return "", err
	}
	rows := m.tables[table]
	if row < 1 || row > len(rows) || idx >= len(rows[row-1]) {
		return "", nil
	}
	return rows[row-1][idx], nil
}

func (m *memStore) AppendRow(_ context.Context, table string, row []string) error {
	m.tables[table] = append(m.tables[table], row)
	return nil
}

func TestSchemaValidate_Passes(t *testing.T) {
	store := &memStore{tables: map[string][][]string{
		"Users": {{"Name", "Slack ID"}, {"Jane Doe", "U123"}},
	}}
	schema := Schema{Table: "Users", Header: []string{"Name", "Slack ID"}, KeyColumn: "B"}

	require.NoError(t, schema.Validate(context.Background(), store))
}

func TestSchemaValidate_HeaderDrift(t *testing.T) {
	store := &memStore{tables: map[string][][]string{
		"Users": {{"Full Name", "Slack ID"}},
	}}
	schema := Schema{Table: "Users", Header: []string{"Name", "Slack ID"}, KeyColumn: "B"}

	err := schema.Validate(context.Background(), store)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchemaMismatch))
}

func TestSchemaValidate_BadKeyColumn(t *testing.T) {
	store := &memStore{tables: map[string][][]string{}}
	schema := Schema{Table: "Users", Header: []string{"Name"}, KeyColumn: "AA"}

	err := schema.Validate(context.Background(), store)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBadColumn))
}

func TestValidateAll_StopsAtFirstFailure(t *testing.T) {
	store := &memStore{tables: map[string][][]string{
		"Good": {{"A"}},
		"Bad":  {{"wrong"}},
	}}
	schemas := []Schema{
		{Table: "Good", Header: []string{"A"}, KeyColumn: "A"},
		{Table: "Bad", Header: []string{"A"}, KeyColumn: "A"},
	}

	err := ValidateAll(context.Background(), store, schemas)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchemaMismatch))
}
