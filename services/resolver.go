package services

import (
	"context"

	"github.com/tpeo/attendbot/errors"
	"github.com/tpeo/attendbot/models"
	"github.com/tpeo/attendbot/services/logger"
	"github.com/tpeo/attendbot/sheetstore"
)

// KeyColumn is the lookup column shared by the Users and Events sheets:
// handles and abbreviations both live in column B.
const KeyColumn = "B"

// Resolver maps external identifiers onto stored records. Absence is a
// nil record with a nil error; only store faults produce errors.
type Resolver struct {
	store       sheetstore.Store
	usersTable  string
	eventsTable string
	logger      logger.Logger
}

// ResolverOptions configures NewResolver
type ResolverOptions struct {
	Store       sheetstore.Store
	UsersTable  string
	EventsTable string
	Logger      logger.Logger
}

func NewResolver(opts ResolverOptions) *Resolver {
	return &Resolver{
		store:       opts.Store,
		usersTable:  opts.UsersTable,
		eventsTable: opts.EventsTable,
		logger:      opts.Logger,
	}
}

// ResolveUser finds the registered user with the given handle.
// The Users sheet stays small, so one whole-table read beats the
// column-then-row pair of round trips.
func (r *Resolver) ResolveUser(ctx context.Context, handle string) (*models.UserRecord, error) {
	row, err := r.findByKey(ctx, r.usersTable, handle)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return models.UserFromRow(row), nil
}

// ResolveEvent finds the event definition with the given abbreviation.
func (r *Resolver) ResolveEvent(ctx context.Context, abbrev string) (*models.EventDefinition, error) {
	row, err := r.findByKey(ctx, r.eventsTable, abbrev)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return models.EventFromRow(row), nil
}

// UserExists reports whether a handle is already registered.
func (r *Resolver) UserExists(ctx context.Context, handle string) (bool, error) {
	user, err := r.ResolveUser(ctx, handle)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// AppendUser appends a registration row to the Users sheet.
func (r *Resolver) AppendUser(ctx context.Context, user models.UserRecord) error {
	return r.store.AppendRow(ctx, r.usersTable, user.Row())
}

// ListEvents returns every event definition, in sheet order. Used to
// render the valid-abbreviations listing on a failed event lookup.
func (r *Resolver) ListEvents(ctx context.Context) ([]models.EventDefinition, error) {
	rows, err := r.store.ReadTable(ctx, r.eventsTable)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeResolutionFailed,
			"listing events failed", err)
	}
	events := make([]models.EventDefinition, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		if event := models.EventFromRow(row); event != nil {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (r *Resolver) findByKey(ctx context.Context, table, key string) ([]string, error) {
	colIndex, err := sheetstore.ColumnIndex(KeyColumn)
	if err != nil {
		return nil, err
	}
	rows, err := r.store.ReadTable(ctx, table)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeResolutionFailed,
			"lookup in "+table+" failed", err)
	}
	row, ok := sheetstore.FindRowByColumn(rows, colIndex, key)
	if !ok {
		return nil, nil
	}
	return row, nil
}
