package sheetstore

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/tpeo/attendbot/errors"
	"github.com/tpeo/attendbot/services/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Render options matching the store-local formats persisted in the
// sheet (dates as MM/DD/YYYY strings, times as formatted strings).
const (
	valueRender    = "FORMATTED_VALUE"
	dateTimeRender = "FORMATTED_STRING"
)

// Client implements Store against the Google Sheets values API for a
// single spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        logger.Logger
}

// ClientOptions configures NewClient
type ClientOptions struct {
	CredentialsFile string
	SpreadsheetID   string
	Logger          logger.Logger
}

// NewClient creates a Sheets-backed Store using service-account
// credentials.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(opts.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable,
			"failed to create sheets service", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: opts.SpreadsheetID,
		logger:        opts.Logger,
	}, nil
}

func (c *Client) ReadTable(ctx context.Context, table string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, table).
		ValueRenderOption(valueRender).
		DateTimeRenderOption(dateTimeRender).
		Context(ctx).Do()
	if err != nil {
		return nil, c.storeError("read table "+table, err)
	}
	return toStringRows(resp.Values), nil
}

func (c *Client) ReadColumn(ctx context.Context, table, column string) ([]string, error) {
	rng := fmt.Sprintf("%s!%s2:%s", table, column, column)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption(valueRender).
		DateTimeRenderOption(dateTimeRender).
		Context(ctx).Do()
	if err != nil {
		return nil, c.storeError("read column "+rng, err)
	}
	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, fmt.Sprint(row[0]))
	}
	return values, nil
}

func (c *Client) ReadCell(ctx context.Context, table string, row int, column string) (string, error) {
	rng := fmt.Sprintf("%s!%s%d", table, column, row)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption(valueRender).
		DateTimeRenderOption(dateTimeRender).
		Context(ctx).Do()
	if err != nil {
		return "", c.storeError("read cell "+rng, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprint(resp.Values[0][0]), nil
}

func (c *Client) AppendRow(ctx context.Context, table string, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	body := &sheets.ValueRange{
		Range:          table,
		MajorDimension: "ROWS",
		Values:         [][]interface{}{cells},
	}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, table, body).
		ValueInputOption("RAW").
		InsertDataOption("OVERWRITE").
		Context(ctx).Do()
	if err != nil {
		return c.storeError("append to "+table, err)
	}
	return nil
}

// storeError maps API failures onto the store error taxonomy. An HTTP
// status from the API becomes StoreError; anything else (DNS, TLS,
// context cancellation in flight) is StoreUnavailable.
func (c *Client) storeError(op string, err error) error {
	var gerr *googleapi.Error
	if stderrors.As(err, &gerr) {
		c.logger.Error("sheets API error on %s: status %d", op, gerr.Code)
		return errors.NewAppError(errors.ErrCodeStoreError,
			fmt.Sprintf("sheets API status %d on %s", gerr.Code, op), err)
	}
	c.logger.Error("sheets unreachable on %s: %v", op, err)
	return errors.NewAppError(errors.ErrCodeStoreUnavailable,
		"sheets unreachable on "+op, err)
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}
	return rows
}
